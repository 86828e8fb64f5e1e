package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/fenglish/internal/alphabet"
	"codeberg.org/snonux/fenglish/internal/export"
)

// CreateTablesCommand creates the "tables" subcommand, which prints the
// letter tables and the forbidden consonant clusters
func CreateTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the alphabet tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return WriteTables(cmd.OutOrStdout())
		},
	}
}

// WriteTables writes the vowel and consonant tables followed by the
// forbidden clusters
func WriteTables(w io.Writer) error {
	var b strings.Builder

	b.WriteString("Vowels:\n")
	for _, r := range alphabet.Vowels() {
		fmt.Fprintf(&b, "  %c  %s\n", r, strings.Join(alphabet.MustVowelSpellings(r), " "))
	}

	b.WriteString("\nConsonants:\n")
	for _, r := range alphabet.Consonants() {
		fmt.Fprintf(&b, "  %c  %s\n", r, strings.Join(alphabet.MustConsonantSpellings(r), " "))
	}

	b.WriteString("\nForbidden clusters:\n")
	clusters := alphabet.ForbiddenClusters()
	for i := 0; i < len(clusters); i += 10 {
		end := min(i+10, len(clusters))
		fmt.Fprintf(&b, "  %s\n", strings.Join(clusters[i:end], " "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// CreateLookupCommand creates the "lookup" subcommand, which finds the
// phrases in an SQLite export that produce a given spelling
func CreateLookupCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <spelling>",
		Short: "Find the Persian phrases behind a spelling in an SQLite export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.LookupDB == "" {
				return fmt.Errorf("--db is required")
			}

			phrases, err := export.LookupSQLite(flags.LookupDB, strings.ToLower(args[0]))
			if err != nil {
				return err
			}
			if len(phrases) == 0 {
				return fmt.Errorf("no phrase spells as %q in %s", args[0], flags.LookupDB)
			}

			for _, phrase := range phrases {
				fmt.Fprintln(cmd.OutOrStdout(), phrase)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.LookupDB, "db", "", "SQLite export to search")

	return cmd
}
