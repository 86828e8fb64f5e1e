// Package export writes spelling results to files: CSV for spreadsheets and
// scripts, an SQLite database that supports reverse lookup from a Latin
// spelling to the Persian phrases that produce it, and XLSX workbooks.
package export
