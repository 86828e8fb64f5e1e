package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/fenglish/internal"
)

// Display formats accepted by --format
var displayFormats = []string{"lines", "list", "json"}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fenglish [phrase...]",
		Short: "Persian to Fenglish spelling generator",
		Long: `fenglish lists the informal Latin spellings ("Fenglish") a Persian
word or phrase may be written with.

Each word is segmented into syllable patterns in every possible way and
every segment is spelled with every candidate Latin spelling. A phrase
yields the cross product of its words' spellings.

Examples:
  fenglish سلام                      # Spellings of a single word
  fenglish سلام دوست                 # Spellings of a phrase
  fenglish -i                        # Read phrases from a persian> prompt
  fenglish --batch words.txt -e out.sqlite   # Export a word list`,
		Version: internal.Version,

		// Phrases are free text; subcommand names still take precedence
		Args: cobra.ArbitraryArgs,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "fenglish", "exports")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.fenglish.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&flags.Strict, "strict", flags.Strict, "Reject letters outside the Persian alphabet (otherwise they are dropped)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Directory for relative export paths")
	cmd.Flags().StringVarP(&flags.ExportFile, "export", "e", "", "Export results to a .csv, .sqlite or .xlsx file")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Display format: lines, list or json")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process phrases from file (one per line)")
	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Read phrases from standard input")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the export directory into a timestamped archive")
	cmd.Flags().BoolVar(&flags.CountOnly, "count", false, "Print only the number of spellings")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "n", 0, "Show at most this many spellings per phrase (0 = all)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("output.limit", cmd.Flags().Lookup("limit"))
	viper.BindPFlag("input.strict", cmd.PersistentFlags().Lookup("strict"))
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
}

// ApplyConfig copies config file and environment values into flags the user
// did not set on the command line.
func ApplyConfig(flags *Flags) error {
	flags.OutputDir = viper.GetString("output.directory")
	flags.Format = viper.GetString("output.format")
	flags.Limit = viper.GetInt("output.limit")
	flags.Strict = viper.GetBool("input.strict")
	flags.LogLevel = viper.GetString("log.level")

	return ValidateFlags(flags)
}

// ValidateFlags checks flag combinations that cobra cannot express
func ValidateFlags(flags *Flags) error {
	valid := false
	for _, f := range displayFormats {
		if flags.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown display format %q (want one of %v)", flags.Format, displayFormats)
	}
	if flags.Limit < 0 {
		return fmt.Errorf("limit must not be negative: %d", flags.Limit)
	}
	if flags.Interactive && flags.BatchFile != "" {
		return fmt.Errorf("--interactive and --batch cannot be combined")
	}
	return nil
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".fenglish" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fenglish")
	}

	// Environment variables
	viper.SetEnvPrefix("FENGLISH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ResolveExportPath resolves a relative export path against the output
// directory. Absolute paths and paths with a directory part are kept.
func ResolveExportPath(outputDir, exportFile string) string {
	if exportFile == "" || filepath.IsAbs(exportFile) || filepath.Dir(exportFile) != "." {
		return exportFile
	}
	return filepath.Join(outputDir, exportFile)
}
