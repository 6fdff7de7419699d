// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package mcc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateColorCodes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"&cHello", "§cHello"},
		{"&CHello", "§cHello"},
		{"&l&4bold red", "§l§4bold red"},
		{"a & b", "a & b"},
		{"&zHello", "&zHello"},
		{"trailing&", "trailing&"},
		{"&&c", "&§c"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TranslateColorCodes('&', tt.in), "input %q", tt.in)
	}
}

func TestStripColors(t *testing.T) {
	assert.Equal(t, "Hello world", StripColors("§cHello §l§nworld"))
	assert.Equal(t, "no codes", StripColors("no codes"))
}

func TestConsoleNoColor(t *testing.T) {
	var b bytes.Buffer
	server := NewServer(&Config{}, &b)
	server.Console().NoColor = true
	server.Console().SendMessage("&cDisabling &7plugin")
	assert.Equal(t, "Disabling plugin\n", b.String())
}

func TestConsoleANSI(t *testing.T) {
	var b bytes.Buffer
	server := NewServer(&Config{}, &b)
	server.Console().SendMessage("plain &cred")
	out := b.String()
	assert.Contains(t, out, "plain ")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "red")
	assert.NotContains(t, out, "§")
}
