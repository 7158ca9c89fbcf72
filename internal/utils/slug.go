// Package utils
package utils

import (
	"strings"
	"unicode"
)

// Slugify lowercases s, keeps letters and digits, and collapses every other run into one hyphen
func Slugify(s string) string {
	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
		case r == '_' || r == '-' || unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			pendingHyphen = true
		}
	}
	return sb.String()
}
