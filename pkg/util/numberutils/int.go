package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return i
	}
	return defaultVal
}

// ToIntPointer converts the given string to an integer pointer, nil when it cannot be converted.
func ToIntPointer(s string) *int {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return &i
	}
	return nil
}
