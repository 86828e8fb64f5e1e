package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	OutputDir   string
	ExportFile  string
	Format      string
	BatchFile   string
	Interactive bool
	Archive     bool
	CountOnly   bool
	Limit       int
	Strict      bool
	LogLevel    string

	// Lookup flags
	LookupDB string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Format:   "lines",
		Strict:   true,
		LogLevel: "warn",
	}
}
