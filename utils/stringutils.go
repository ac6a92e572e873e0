package utils

import "strings"

// RemoveChars drops every occurrence of the given runes from s.
func RemoveChars(s string, chars ...rune) string {
	return strings.Map(func(r rune) rune {
		for _, c := range chars {
			if r == c {
				return -1
			}
		}
		return r
	}, s)
}

// SplitAny splits s on any of the given runes and drops empty fields.
func SplitAny(s string, seps ...rune) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		for _, sep := range seps {
			if r == sep {
				return true
			}
		}
		return false
	})
}
