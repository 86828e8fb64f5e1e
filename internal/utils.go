package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
	"unicode"
)

// GenerateRunID creates a unique ID for an export run based on timestamp and input
// Format: epochMillis_md5(input)[:8]
func GenerateRunID(input string) string {
	epochMillis := time.Now().UnixNano() / 1000000

	hash := md5.Sum([]byte(input))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isAlphaNumeric checks if a rune is an ASCII or Arabic-script letter or digit
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		(unicode.In(r, unicode.Arabic) && (unicode.IsLetter(r) || unicode.IsDigit(r)))
}
