// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package npccmd

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Message keys.
const (
	MsgNoNPC            = "no-npc"
	MsgInvalidNumber    = "invalid-number"
	MsgInvalidClickType = "invalid-click-type"
	MsgInvalidType      = "invalid-type"
	MsgInvalidSound     = "invalid-sound"
	MsgInvalidIndex     = "invalid-index"
	MsgCommandAdded     = "command-added"
	MsgCommandRemoved   = "command-removed"
	MsgCommandEdited    = "command-edited"
	MsgSoundSet         = "sound-set"
	MsgCooldownSet      = "cooldown-set"
	MsgCooldownCurrent  = "cooldown-current"
	MsgNoCommands       = "no-commands"
	MsgListHeader       = "list-header"
	MsgNoPermission     = "no-permission"
	MsgDatabaseError    = "database-error"
)

var languages = []language.Tag{
	language.English,
	language.Portuguese,
}

var builtinMessages = map[language.Tag]map[string]string{
	language.English: {
		MsgNoNPC:            "&cYou must have an NPC selected to execute this command!",
		MsgInvalidNumber:    "&cPlease provide a valid number!",
		MsgInvalidClickType: "&cClick type must be &fleft &cor &fright&c!",
		MsgInvalidType:      "&cInvalid command type! Use one of &f{types}",
		MsgInvalidSound:     "&cUnknown sound &f{sound}",
		MsgInvalidIndex:     "&cThere is no {click} command number &f{index}",
		MsgCommandAdded:     "&aAdded {click} command &f#{index}&a to &f{npc}",
		MsgCommandRemoved:   "&aRemoved {click} command &f#{index}",
		MsgCommandEdited:    "&aUpdated {click} command &f#{index}",
		MsgSoundSet:         "&aSound set to &f{sound}",
		MsgCooldownSet:      "&aCooldown set to &f{time}",
		MsgCooldownCurrent:  "&7Cooldown of &f{npc}&7: &f{time}",
		MsgNoCommands:       "&7This NPC has no commands",
		MsgListHeader:       "&3{click} click commands:",
		MsgNoPermission:     "&cYou do not have permission to do that!",
		MsgDatabaseError:    "&cCould not access the command database, check the console",
	},
	language.Portuguese: {
		MsgNoNPC:            "&cVocê precisa selecionar um NPC para executar este comando!",
		MsgInvalidNumber:    "&cPor favor, informe um número válido!",
		MsgInvalidClickType: "&cO tipo de clique deve ser &fleft &cou &fright&c!",
		MsgInvalidType:      "&cTipo de comando inválido! Use um de &f{types}",
		MsgInvalidSound:     "&cSom desconhecido &f{sound}",
		MsgInvalidIndex:     "&cNão existe comando {click} número &f{index}",
		MsgCommandAdded:     "&aComando {click} &f#{index}&a adicionado a &f{npc}",
		MsgCommandRemoved:   "&aComando {click} &f#{index}&a removido",
		MsgCommandEdited:    "&aComando {click} &f#{index}&a atualizado",
		MsgSoundSet:         "&aSom definido para &f{sound}",
		MsgCooldownSet:      "&aCooldown definido para &f{time}",
		MsgCooldownCurrent:  "&7Cooldown de &f{npc}&7: &f{time}",
		MsgNoCommands:       "&7Este NPC não tem comandos",
		MsgListHeader:       "&3Comandos de clique {click}:",
		MsgNoPermission:     "&cVocê não tem permissão para isso!",
		MsgDatabaseError:    "&cNão foi possível acessar o banco de comandos, verifique o console",
	},
}

// Lang holds the messages of one language.
type Lang struct {
	Tag      language.Tag
	messages map[string]string
}

// LoadLang returns the built-in language closest to code. Messages found in
// lang_<tag>.yml in dataDir override the built-in ones.
func LoadLang(dataDir string, code string) *Lang {
	matcher := language.NewMatcher(languages)
	_, index, _ := matcher.Match(language.Make(code))
	tag := languages[index]

	lang := &Lang{Tag: tag, messages: make(map[string]string)}
	for key, message := range builtinMessages[language.English] {
		lang.messages[key] = message
	}
	for key, message := range builtinMessages[tag] {
		lang.messages[key] = message
	}

	if len(dataDir) == 0 {
		return lang
	}

	data, err := ioutil.ReadFile(filepath.Join(dataDir, "lang_"+tag.String()+".yml"))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("LoadLang: %s\n", err)
		}
		return lang
	}

	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		log.Printf("LoadLang: %s\n", err)
		return lang
	}

	for key, message := range overrides {
		lang.messages[key] = message
	}

	return lang
}

// Message returns the colored message for key with each {name} placeholder
// replaced. replacements alternates names and values.
func (lang *Lang) Message(key string, replacements ...string) string {
	message, ok := lang.messages[key]
	if !ok {
		return key
	}

	if len(replacements) > 1 {
		pairs := make([]string, 0, len(replacements))
		for i := 0; i+1 < len(replacements); i += 2 {
			pairs = append(pairs, "{"+replacements[i]+"}", replacements[i+1])
		}
		message = strings.NewReplacer(pairs...).Replace(message)
	}

	return Color(message)
}
