// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package npccmd

import (
	"strings"
	"time"

	"github.com/hako/durafmt"

	"github.com/structinf/go-npccmd/mcc"
)

const (
	Header = "&c&m-&6&m-&e&m-&a&m-&b&m-&3&l NPCCmd &b&m-&a&m-&e&m-&6&m-&c&m-"
	Tag    = "&f[&3NPC&cCmd&f]&r "
)

// Values of the cooldown-time-display setting.
const (
	DisplayShort  = "SHORT"
	DisplayMedium = "MEDIUM"
	DisplayFull   = "FULL"
)

// Color translates &-prefixed color codes in msg to the native format.
func Color(msg string) string {
	return mcc.TranslateColorCodes(mcc.AltColorChar, msg)
}

// SecondsDifference returns the whole seconds elapsed between stored and now.
func SecondsDifference(stored, now time.Time) int64 {
	return int64(now.Sub(stored) / time.Second)
}

// FormatCooldown renders a cooldown of seconds in the style selected by
// display. Unknown styles fall back to SHORT.
func FormatCooldown(seconds int, display string) string {
	if seconds <= 0 {
		return "0 seconds"
	}

	d := time.Duration(seconds) * time.Second
	switch strings.ToUpper(display) {
	case DisplayFull:
		return durafmt.Parse(d).String()
	case DisplayMedium:
		return durafmt.Parse(d).LimitFirstN(2).String()
	default:
		return durafmt.ParseShort(d).String()
	}
}
