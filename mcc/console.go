// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package mcc

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var ansiColors = map[byte]color.Attribute{
	'0': color.FgBlack,
	'1': color.FgBlue,
	'2': color.FgGreen,
	'3': color.FgCyan,
	'4': color.FgRed,
	'5': color.FgMagenta,
	'6': color.FgYellow,
	'7': color.FgWhite,
	'8': color.FgHiBlack,
	'9': color.FgHiBlue,
	'a': color.FgHiGreen,
	'b': color.FgHiCyan,
	'c': color.FgHiRed,
	'd': color.FgHiMagenta,
	'e': color.FgHiYellow,
	'f': color.FgHiWhite,
}

var ansiFormats = map[byte]color.Attribute{
	'k': color.ReverseVideo,
	'l': color.Bold,
	'm': color.CrossedOut,
	'n': color.Underline,
	'o': color.Italic,
}

// Console is the CommandSender representing the server operator. Color codes
// in messages are rendered as ANSI escape sequences unless NoColor is set.
type Console struct {
	NoColor bool

	server  *Server
	out     io.Writer
	outLock sync.Mutex
}

// Server implements CommandSender.
func (console *Console) Server() *Server {
	return console.server
}

// Name implements CommandSender.
func (console *Console) Name() string {
	return "Console"
}

// SendMessage implements CommandSender.
func (console *Console) SendMessage(message string) {
	message = TranslateColorCodes(AltColorChar, message)
	if console.NoColor {
		message = StripColors(message)
	} else {
		message = renderANSI(message)
	}

	console.outLock.Lock()
	fmt.Fprintln(console.out, message)
	console.outLock.Unlock()
}

// HasPermission implements CommandSender.
func (console *Console) HasPermission(permission string) bool {
	return true
}

func renderANSI(message string) string {
	var b strings.Builder
	var attrs []color.Attribute
	var segment strings.Builder

	flush := func() {
		if segment.Len() == 0 {
			return
		}

		if len(attrs) == 0 {
			b.WriteString(segment.String())
		} else {
			c := color.New(attrs...)
			c.EnableColor()
			b.WriteString(c.Sprint(segment.String()))
		}
		segment.Reset()
	}

	runes := []rune(message)
	for i := 0; i < len(runes); i++ {
		if runes[i] != ColorChar || i == len(runes)-1 || runes[i+1] > 0x7f {
			segment.WriteRune(runes[i])
			continue
		}

		code := byte(runes[i+1])
		i++
		flush()
		if fg, ok := ansiColors[code]; ok {
			attrs = []color.Attribute{fg}
		} else if format, ok := ansiFormats[code]; ok {
			attrs = append(attrs, format)
		} else if code == 'r' {
			attrs = nil
		}
	}

	flush()
	return b.String()
}
