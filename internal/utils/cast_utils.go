// Package utils
package utils

import (
	"strconv"
	"strings"
)

func StrToInt(str string, defaultValue int) int {
	result, err := strconv.Atoi(str)
	if err != nil {
		return defaultValue
	}
	return result
}

// StrToUint parses a positive id; zero, negatives and garbage yield defaultValue
func StrToUint(str string, defaultValue uint) uint {
	result, err := strconv.ParseUint(strings.TrimSpace(str), 10, 64)
	if err != nil || result == 0 {
		return defaultValue
	}
	return uint(result)
}

// StrToOptionalBool returns nil for an empty or unparsable value
func StrToOptionalBool(str string) *bool {
	if str == "" {
		return nil
	}
	result, err := strconv.ParseBool(str)
	if err != nil {
		return nil
	}
	return &result
}
