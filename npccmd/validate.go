// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package npccmd

import "strconv"

// NotInteger reports whether s is nil or not a valid 32-bit decimal integer.
func NotInteger(s *string) bool {
	return s == nil || NotIntegerString(*s)
}

// NotDouble reports whether s is nil or not a valid 64-bit floating point
// number.
func NotDouble(s *string) bool {
	return s == nil || NotDoubleString(*s)
}

// IsFloat reports whether s is a valid 32-bit floating point number.
func IsFloat(s *string) bool {
	return s != nil && IsFloatString(*s)
}

// NotIntegerString is NotInteger for a string that is always present.
func NotIntegerString(s string) bool {
	_, err := strconv.ParseInt(s, 10, 32)
	return err != nil
}

// NotDoubleString is NotDouble for a string that is always present.
func NotDoubleString(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err != nil
}

// IsFloatString is IsFloat for a string that is always present.
func IsFloatString(s string) bool {
	_, err := strconv.ParseFloat(s, 32)
	return err == nil
}
