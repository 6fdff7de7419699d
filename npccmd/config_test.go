// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package npccmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentConfig = `check-updates: false
lang: pt
default-cooldown: 30
shift-confirm: true
cooldown-time-display: FULL
`

func writeConfig(t *testing.T, dir, content string) {
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0644))
}

func TestCheckOldConfigCurrent(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, currentConfig)

	assert.False(t, CheckOldConfig(dir))
	assert.FileExists(t, filepath.Join(dir, ConfigFile))
	assert.NoFileExists(t, filepath.Join(dir, OldConfigFile))
}

func TestCheckOldConfigPresenceOnly(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "check-updates:\nlang: 3\ndefault-cooldown: x\nshift-confirm: ~\ncooldown-time-display: {}\n")

	assert.False(t, CheckOldConfig(dir))
	assert.NoFileExists(t, filepath.Join(dir, OldConfigFile))
}

func TestCheckOldConfigMissingKey(t *testing.T) {
	keys := []string{
		"check-updates: false\n",
		"lang: pt\n",
		"default-cooldown: 30\n",
		"shift-confirm: true\n",
		"cooldown-time-display: FULL\n",
	}

	for skip := range keys {
		dir := t.TempDir()
		content := ""
		for i, line := range keys {
			if i != skip {
				content += line
			}
		}
		writeConfig(t, dir, content)

		assert.True(t, CheckOldConfig(dir), "missing %q", keys[skip])
		assert.NoFileExists(t, filepath.Join(dir, ConfigFile))

		data, err := ioutil.ReadFile(filepath.Join(dir, OldConfigFile))
		require.NoError(t, err)
		assert.Equal(t, content, string(data))

		files, err := ioutil.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, files, 1)
	}
}

func TestCheckOldConfigMissingFile(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, CheckOldConfig(dir))

	files, err := ioutil.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCheckOldConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "check-updates: [unterminated\n")

	assert.False(t, CheckOldConfig(dir))
	assert.FileExists(t, filepath.Join(dir, ConfigFile))
	assert.NoFileExists(t, filepath.Join(dir, OldConfigFile))
}

func TestLoadConfigWritesDefault(t *testing.T) {
	dir := t.TempDir()
	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.True(t, UpdateCheck(config))
	assert.Equal(t, 0, DefaultCooldown(config))
	assert.Equal(t, "en", config.String(KeyLang))
	assert.Equal(t, DisplayMedium, config.String(KeyCooldownTimeDisplay))

	_, err = os.Stat(filepath.Join(dir, ConfigFile))
	require.NoError(t, err)
	assert.False(t, CheckOldConfig(dir))
}

func TestConfigAccessors(t *testing.T) {
	config, err := ParseConfig([]byte(currentConfig + "nested:\n  value: 2.9\n  flag: true\n"))
	require.NoError(t, err)

	assert.False(t, UpdateCheck(config))
	assert.Equal(t, 30, DefaultCooldown(config))
	assert.Equal(t, 2, config.Int("nested.value"))
	assert.True(t, config.Bool("nested.flag"))
	assert.True(t, config.Contains("nested"))
	assert.False(t, config.Contains("nested.missing"))
	assert.False(t, config.Contains("lang.sub"))

	config, err = ParseConfig([]byte("check-updates: yes please\ndefault-cooldown: soon\n"))
	require.NoError(t, err)
	assert.False(t, UpdateCheck(config))
	assert.Equal(t, 0, DefaultCooldown(config))
	assert.Equal(t, "", config.String(KeyLang))

	for text, want := range map[string]bool{"yes": true, "On": true, "no": false, "off": false} {
		config, err = ParseConfig([]byte("check-updates: " + text + "\n"))
		require.NoError(t, err)
		assert.Equal(t, want, UpdateCheck(config), text)
	}
}
