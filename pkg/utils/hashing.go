package utils

import "unicode/utf16"

// HashString is the seed used by every synthetic generator. It is the classic
// polynomial rolling hash (h = h*31 + code unit) wrapped to a signed 32-bit
// integer, returned as its absolute value.
func HashString(text string) int {
	var h int32
	for _, unit := range utf16.Encode([]rune(text)) {
		h = h*31 + int32(unit)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}

// Pick returns the element of options selected by seed, or the zero value
// when options is empty.
func Pick[T any](options []T, seed int) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	if seed < 0 {
		seed = -seed
	}
	return options[seed%len(options)]
}
