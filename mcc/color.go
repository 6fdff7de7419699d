// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package mcc

import "strings"

// ColorChar is the escape character the host uses for color codes.
const ColorChar = '§'

// AltColorChar is the escape character used in configuration files and
// messages typed by users.
const AltColorChar = '&'

const (
	ColorBlack       = "&0"
	ColorDarkBlue    = "&1"
	ColorDarkGreen   = "&2"
	ColorDarkAqua    = "&3"
	ColorDarkRed     = "&4"
	ColorDarkPurple  = "&5"
	ColorGold        = "&6"
	ColorGray        = "&7"
	ColorDarkGray    = "&8"
	ColorBlue        = "&9"
	ColorGreen       = "&a"
	ColorAqua        = "&b"
	ColorRed         = "&c"
	ColorLightPurple = "&d"
	ColorYellow      = "&e"
	ColorWhite       = "&f"

	FormatObfuscated    = "&k"
	FormatBold          = "&l"
	FormatStrikethrough = "&m"
	FormatUnderline     = "&n"
	FormatItalic        = "&o"
	FormatReset         = "&r"

	ColorDefault = ColorWhite
)

// IsColorCode reports whether c may follow a color escape character.
func IsColorCode(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	case c >= 'k' && c <= 'o', c >= 'K' && c <= 'O':
		return true
	case c == 'r' || c == 'R':
		return true
	}

	return false
}

// TranslateColorCodes returns message with each occurence of alt followed by
// a valid color code replaced by ColorChar and the lowercase code.
func TranslateColorCodes(alt byte, message string) string {
	var b strings.Builder
	b.Grow(len(message) + len(message)/4)
	for i := 0; i < len(message); i++ {
		if message[i] == alt && i < len(message)-1 && IsColorCode(message[i+1]) {
			b.WriteRune(ColorChar)
			b.WriteByte(lower(message[i+1]))
			i++
			continue
		}

		b.WriteByte(message[i])
	}

	return b.String()
}

// StripColors returns message without any native color sequences.
func StripColors(message string) string {
	var b strings.Builder
	skip := false
	for _, c := range message {
		if skip {
			skip = false
			continue
		}

		if c == ColorChar {
			skip = true
			continue
		}

		b.WriteRune(c)
	}

	return b.String()
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
