// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package npccmd

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestColor(t *testing.T) {
	assert.Equal(t, "§cHello", Color("&cHello"))
	assert.Equal(t, "§f[§3NPC§cCmd§f]§r ", Color(Tag))
	assert.Equal(t, "R§d", Color("R&D"))
	assert.Equal(t, "R&Z", Color("R&Z"))
	assert.Equal(t, "a&&", Color("a&&"))
}

func TestFormatCooldown(t *testing.T) {
	assert.Equal(t, "1 hour 2 minutes 5 seconds", FormatCooldown(3725, DisplayFull))
	assert.Equal(t, "1 hour 2 minutes", FormatCooldown(3725, "medium"))
	assert.Equal(t, "1 hour", FormatCooldown(3725, DisplayShort))
	assert.Equal(t, "1 hour", FormatCooldown(3725, "unknown"))
	assert.Equal(t, "0 seconds", FormatCooldown(0, DisplayFull))
}

func TestSecondsDifference(t *testing.T) {
	stored := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(90), SecondsDifference(stored, stored.Add(90*time.Second+999*time.Millisecond)))
	assert.Equal(t, int64(0), SecondsDifference(stored, stored))
}

func TestLoadLang(t *testing.T) {
	en := LoadLang("", "en")
	assert.Equal(t, language.English, en.Tag)
	assert.Equal(t, "§cYou must have an NPC selected to execute this command!", en.Message(MsgNoNPC))

	pt := LoadLang("", "pt-BR")
	assert.Equal(t, language.Portuguese, pt.Tag)
	assert.Contains(t, pt.Message(MsgNoNPC), "Você")

	assert.Equal(t, language.English, LoadLang("", "fr").Tag)
	assert.Equal(t, language.English, LoadLang("", "").Tag)

	assert.Equal(t, "§aSound set to §fUI_BUTTON_CLICK", en.Message(MsgSoundSet, "sound", "UI_BUTTON_CLICK"))
	assert.Equal(t, "unknown-key", en.Message("unknown-key"))
}

func TestLoadLangOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "lang_en.yml"),
		[]byte("no-npc: \"&eSelect an NPC first\"\n"), 0644))

	lang := LoadLang(dir, "en")
	assert.Equal(t, "§eSelect an NPC first", lang.Message(MsgNoNPC))
	assert.Equal(t, "§cPlease provide a valid number!", lang.Message(MsgInvalidNumber))
}
