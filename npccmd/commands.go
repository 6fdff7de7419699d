// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package npccmd

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/structinf/go-npccmd/citizens"
	"github.com/structinf/go-npccmd/mcc"
	"github.com/structinf/go-npccmd/storage"
)

var subCommands = []string{"add", "remove", "edit", "sound", "cooldown", "list", "help"}

var subUsage = map[string]string{
	"add":      "/npcmd add [-l] <type> <command...>",
	"remove":   "/npcmd remove <left|right> <number>",
	"edit":     "/npcmd edit <perm|cmd> <left|right> <number> <value...>",
	"sound":    "/npcmd sound <sound> [volume] [pitch]",
	"cooldown": "/npcmd cooldown [seconds]",
	"list":     "/npcmd list",
	"help":     "/npcmd help",
}

// cutFields returns the first n words of message and the rest of message as
// typed, without leading blanks.
func cutFields(message string, n int) ([]string, string) {
	fields := make([]string, 0, n)
	rest := strings.TrimLeft(message, " \t")
	for len(fields) < n && rest != "" {
		i := strings.IndexAny(rest, " \t")
		if i < 0 {
			fields = append(fields, rest)
			return fields, ""
		}
		fields = append(fields, rest[:i])
		rest = strings.TrimLeft(rest[i+1:], " \t")
	}
	return fields, rest
}

func (plugin *Plugin) handleNpcmd(sender mcc.CommandSender, command *mcc.Command, message string) {
	if plugin.Data == nil {
		sender.SendMessage(Color(Tag + "&cThis plugin is disabled"))
		return
	}

	args := strings.Fields(message)
	if len(args) == 0 {
		plugin.printHelp(sender)
		return
	}

	sub := strings.ToLower(args[0])
	if _, ok := subUsage[sub]; !ok || sub == "help" {
		plugin.printHelp(sender)
		return
	}

	if !sender.HasPermission("npccmd." + sub) {
		sender.SendMessage(plugin.Lang.Message(MsgNoPermission))
		return
	}

	if NPCNotSelected(plugin.Selector, plugin.Lang, sender) {
		return
	}

	npc := plugin.Selector.Selected(sender)
	switch sub {
	case "add":
		plugin.handleAdd(sender, npc, message)
	case "remove":
		plugin.handleRemove(sender, npc, args[1:])
	case "edit":
		plugin.handleEdit(sender, npc, message)
	case "sound":
		plugin.handleSound(sender, npc, args[1:])
	case "cooldown":
		plugin.handleCooldown(sender, npc, args[1:])
	case "list":
		plugin.handleList(sender, npc)
	}
}

func (plugin *Plugin) printHelp(sender mcc.CommandSender) {
	sender.SendMessage(Color(Header))
	for _, sub := range subCommands {
		sender.SendMessage(Color("&3" + subUsage[sub]))
	}
}

func (plugin *Plugin) usage(sender mcc.CommandSender, sub string) {
	sender.SendMessage(Color("&cUsage: &f" + subUsage[sub]))
}

func (plugin *Plugin) databaseError(sender mcc.CommandSender, err error) {
	log.Printf("npcmd: %s\n", err)
	sender.SendMessage(plugin.Lang.Message(MsgDatabaseError))
}

// handleAdd stores the text after the command type exactly as typed.
func (plugin *Plugin) handleAdd(sender mcc.CommandSender, npc *citizens.NPC, message string) {
	click := storage.ClickRight
	fields, rest := cutFields(message, 2)
	if len(fields) == 2 && fields[1] == "-l" {
		click = storage.ClickLeft
		var typ []string
		typ, rest = cutFields(rest, 1)
		fields = append(fields[:1], typ...)
	}

	args := fields[1:]
	if len(args) < 1 || rest == "" {
		plugin.usage(sender, "add")
		return
	}

	if !storage.IsCommandType(args[0]) {
		sender.SendMessage(plugin.Lang.Message(MsgInvalidType, "types", strings.Join(storage.CommandTypes, ", ")))
		return
	}

	position, err := plugin.Data.AddCommand(npc.ID, click, storage.Command{
		Type:    strings.ToLower(args[0]),
		Command: rest,
	})
	if err != nil {
		plugin.databaseError(sender, err)
		return
	}

	sender.SendMessage(plugin.Lang.Message(MsgCommandAdded,
		"click", string(click), "index", strconv.Itoa(position), "npc", npc.Name))
}

func (plugin *Plugin) parseTarget(sender mcc.CommandSender, side, number string) (storage.ClickType, int, bool) {
	click, ok := storage.ParseClickType(side)
	if !ok {
		sender.SendMessage(plugin.Lang.Message(MsgInvalidClickType))
		return "", 0, false
	}

	if NotInteger(&number) {
		sender.SendMessage(plugin.Lang.Message(MsgInvalidNumber))
		return "", 0, false
	}

	position, _ := strconv.Atoi(number)
	return click, position, true
}

func (plugin *Plugin) handleRemove(sender mcc.CommandSender, npc *citizens.NPC, args []string) {
	if len(args) != 2 {
		plugin.usage(sender, "remove")
		return
	}

	click, position, ok := plugin.parseTarget(sender, args[0], args[1])
	if !ok {
		return
	}

	err := plugin.Data.RemoveCommand(npc.ID, click, position)
	if err == storage.ErrNotFound {
		sender.SendMessage(plugin.Lang.Message(MsgInvalidIndex, "click", string(click), "index", args[1]))
		return
	} else if err != nil {
		plugin.databaseError(sender, err)
		return
	}

	sender.SendMessage(plugin.Lang.Message(MsgCommandRemoved, "click", string(click), "index", args[1]))
}

func (plugin *Plugin) handleEdit(sender mcc.CommandSender, npc *citizens.NPC, message string) {
	fields, value := cutFields(message, 4)
	args := fields[1:]
	if len(args) < 3 || value == "" {
		plugin.usage(sender, "edit")
		return
	}

	field := storage.EditField(strings.ToLower(args[0]))
	if field != storage.EditCommand && field != storage.EditPermission {
		plugin.usage(sender, "edit")
		return
	}

	click, position, ok := plugin.parseTarget(sender, args[1], args[2])
	if !ok {
		return
	}

	err := plugin.Data.EditCommand(npc.ID, click, position, field, value)
	if err == storage.ErrNotFound {
		sender.SendMessage(plugin.Lang.Message(MsgInvalidIndex, "click", string(click), "index", args[2]))
		return
	} else if err != nil {
		plugin.databaseError(sender, err)
		return
	}

	sender.SendMessage(plugin.Lang.Message(MsgCommandEdited, "click", string(click), "index", args[2]))
}

func (plugin *Plugin) handleSound(sender mcc.CommandSender, npc *citizens.NPC, args []string) {
	if len(args) < 1 || len(args) > 3 {
		plugin.usage(sender, "sound")
		return
	}

	s, ok := mcc.ParseSound(args[0])
	if !ok {
		sender.SendMessage(plugin.Lang.Message(MsgInvalidSound, "sound", args[0]))
		return
	}

	sound := storage.Sound{Name: s.String(), Volume: 1, Pitch: 1}
	if len(args) > 1 {
		if NotDouble(&args[1]) {
			sender.SendMessage(plugin.Lang.Message(MsgInvalidNumber))
			return
		}
		sound.Volume, _ = strconv.ParseFloat(args[1], 64)
	}

	if len(args) > 2 {
		if !IsFloat(&args[2]) {
			sender.SendMessage(plugin.Lang.Message(MsgInvalidNumber))
			return
		}
		sound.Pitch, _ = strconv.ParseFloat(args[2], 32)
	}

	if err := plugin.Data.SetSound(npc.ID, sound); err != nil {
		plugin.databaseError(sender, err)
		return
	}

	sender.SendMessage(plugin.Lang.Message(MsgSoundSet, "sound", sound.Name))
}

func (plugin *Plugin) handleCooldown(sender mcc.CommandSender, npc *citizens.NPC, args []string) {
	display := plugin.Config.String(KeyCooldownTimeDisplay)
	switch len(args) {
	case 0:
		seconds, err := plugin.Data.Cooldown(npc.ID, DefaultCooldown(plugin.Config))
		if err != nil {
			plugin.databaseError(sender, err)
			return
		}

		sender.SendMessage(plugin.Lang.Message(MsgCooldownCurrent,
			"npc", npc.Name, "time", FormatCooldown(seconds, display)))

	case 1:
		if NotInteger(&args[0]) || strings.HasPrefix(args[0], "-") {
			sender.SendMessage(plugin.Lang.Message(MsgInvalidNumber))
			return
		}

		seconds, _ := strconv.Atoi(args[0])
		if err := plugin.Data.SetCooldown(npc.ID, seconds); err != nil {
			plugin.databaseError(sender, err)
			return
		}

		sender.SendMessage(plugin.Lang.Message(MsgCooldownSet, "time", FormatCooldown(seconds, display)))

	default:
		plugin.usage(sender, "cooldown")
	}
}

func (plugin *Plugin) handleList(sender mcc.CommandSender, npc *citizens.NPC) {
	sender.SendMessage(Color(Header))

	total := 0
	for _, click := range []storage.ClickType{storage.ClickLeft, storage.ClickRight} {
		commands, err := plugin.Data.Commands(npc.ID, click)
		if err != nil {
			plugin.databaseError(sender, err)
			return
		}

		if len(commands) == 0 {
			continue
		}

		total += len(commands)
		sender.SendMessage(plugin.Lang.Message(MsgListHeader, "click", string(click)))
		for _, c := range commands {
			line := fmt.Sprintf("&7%d &8[&b%s&8] &f%s", c.Position, c.Type, c.Command)
			if len(c.Permission) > 0 {
				line += " &8(&7" + c.Permission + "&8)"
			}
			sender.SendMessage(Color(line))
		}
	}

	if total == 0 {
		sender.SendMessage(plugin.Lang.Message(MsgNoCommands))
	}
}

func (plugin *Plugin) completeNpcmd(sender mcc.CommandSender, command *mcc.Command, args []string) []string {
	if plugin.Data == nil || len(args) == 0 {
		return nil
	}

	if len(args) == 1 {
		var allowed []string
		for _, sub := range subCommands {
			if sub == "help" || sender.HasPermission("npccmd."+sub) {
				allowed = append(allowed, sub)
			}
		}
		return filterPrefix(allowed, args[0])
	}

	sub := strings.ToLower(args[0])
	if (sub == "remove" || sub == "edit") && NPCNotSelectedQuiet(plugin.Selector, sender) {
		return nil
	}

	table, err := TabCompleteArgs(plugin.Selector, plugin.Data, sub, sender)
	if err != nil {
		log.Printf("completeNpcmd: %s\n", err)
		return nil
	}

	return filterPrefix(candidates(table, args), args[len(args)-1])
}
