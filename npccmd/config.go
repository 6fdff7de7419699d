// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package npccmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ConfigFile    = "config.yml"
	OldConfigFile = "config_old.yml"
)

// Configuration keys.
const (
	KeyCheckUpdates        = "check-updates"
	KeyLang                = "lang"
	KeyDefaultCooldown     = "default-cooldown"
	KeyShiftConfirm        = "shift-confirm"
	KeyCooldownTimeDisplay = "cooldown-time-display"
)

// requiredKeys are the keys a current configuration file contains.
var requiredKeys = []string{
	KeyCheckUpdates,
	KeyLang,
	KeyDefaultCooldown,
	KeyShiftConfirm,
	KeyCooldownTimeDisplay,
}

const defaultConfig = `# Check for new versions on startup.
check-updates: true

# Language of the plugin messages (en, pt).
lang: en

# Cooldown in seconds applied to NPCs without their own cooldown.
default-cooldown: 0

# Ask for a second shift-click before running commands.
shift-confirm: true

# How remaining cooldowns are displayed: SHORT, MEDIUM or FULL.
cooldown-time-display: MEDIUM
`

// Config is a YAML configuration file. Nested values are addressed with
// dot-separated paths.
type Config struct {
	values map[string]interface{}
}

// ParseConfig parses YAML data into a Config.
func ParseConfig(data []byte) (*Config, error) {
	values := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &Config{values}, nil
}

// LoadConfig reads the configuration file in dataDir. If the file does not
// exist, the default configuration is written and returned.
func LoadConfig(dataDir string) (*Config, error) {
	path := filepath.Join(dataDir, ConfigFile)
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		data = []byte(defaultConfig)
		if err := ioutil.WriteFile(path, data, 0644); err != nil {
			log.Printf("LoadConfig: %s\n", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)
}

func (config *Config) lookup(path string) (interface{}, bool) {
	var node interface{} = config.values
	for _, key := range strings.Split(path, ".") {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}

		if node, ok = m[key]; !ok {
			return nil, false
		}
	}

	return node, true
}

// Contains reports whether path is set, whatever its value.
func (config *Config) Contains(path string) bool {
	_, ok := config.lookup(path)
	return ok
}

// Bool returns the boolean at path, or false. The YAML 1.1 spellings
// yes/no and on/off are accepted as well.
func (config *Config) Bool(path string) bool {
	v, _ := config.lookup(path)
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(b) {
		case "yes", "y", "on", "true":
			return true
		}
	}
	return false
}

// Int returns the number at path truncated to an int, or 0.
func (config *Config) Int(path string) int {
	v, _ := config.lookup(path)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// String returns the value at path formatted as a string, or "".
func (config *Config) String(path string) string {
	v, ok := config.lookup(path)
	if !ok || v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// UpdateCheck reports whether the plugin should check for updates.
func UpdateCheck(config *Config) bool {
	return config.Bool(KeyCheckUpdates)
}

// DefaultCooldown returns the cooldown in seconds of NPCs that have none.
func DefaultCooldown(config *Config) int {
	return config.Int(KeyDefaultCooldown)
}

// CheckOldConfig renames a configuration file in dataDir that lacks any of the
// current keys to config_old.yml, so that a fresh one can be written in its
// place. A missing file is left alone. Errors are logged and reported as no
// migration.
func CheckOldConfig(dataDir string) bool {
	path := filepath.Join(dataDir, ConfigFile)
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return false
	} else if err != nil {
		log.Printf("CheckOldConfig: %s\n", err)
		return false
	}

	config, err := ParseConfig(data)
	if err != nil {
		log.Printf("CheckOldConfig: %s\n", err)
		return false
	}

	current := true
	for _, key := range requiredKeys {
		if !config.Contains(key) {
			current = false
			break
		}
	}

	if current {
		return false
	}

	if err := os.Rename(path, filepath.Join(dataDir, OldConfigFile)); err != nil {
		log.Printf("CheckOldConfig: %s\n", err)
		return false
	}

	return true
}
