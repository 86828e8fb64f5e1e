// Package batch reads word lists for bulk spelling runs. Each line holds a
// Persian phrase, optionally followed by "= note".
package batch
