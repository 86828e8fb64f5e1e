// Package cli wires the fenglish command line: the root command and its
// flags, the tables and lookup subcommands, and the viper configuration
// read from ~/.fenglish.yaml, FENGLISH_* variables and a local .env file.
package cli
