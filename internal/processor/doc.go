// Package processor contains the core business logic for spelling Persian
// phrases from the command line, a batch file or an interactive prompt.
// It prints results in the selected display format and collects them for
// export.
package processor
