// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package npccmd

import (
	"errors"

	"github.com/structinf/go-npccmd/citizens"
	"github.com/structinf/go-npccmd/mcc"
)

// ErrNoSelection is returned when an operation needs a selected NPC and the
// sender has none.
var ErrNoSelection = errors.New("npccmd: no NPC selected")

// NPCNotSelected reports whether sender has no NPC selected. In that case the
// sender is told so.
func NPCNotSelected(selector citizens.Selector, lang *Lang, sender mcc.CommandSender) bool {
	if selector.Selected(sender) != nil {
		return false
	}

	sender.SendMessage(Color(Header))
	sender.SendMessage(lang.Message(MsgNoNPC))
	return true
}

// NPCNotSelectedQuiet reports whether sender has no NPC selected, without
// messaging the sender.
func NPCNotSelectedQuiet(selector citizens.Selector, sender mcc.CommandSender) bool {
	return selector.Selected(sender) == nil
}

// SelectedNPCID returns the id of the NPC selected by sender.
func SelectedNPCID(selector citizens.Selector, sender mcc.CommandSender) (int, error) {
	npc := selector.Selected(sender)
	if npc == nil {
		return 0, ErrNoSelection
	}
	return npc.ID, nil
}

// CitizensExists reports whether the NPC framework is enabled on server.
func CitizensExists(server *mcc.Server) bool {
	return server.IsPluginEnabled(citizens.PluginName)
}

// Info sends msg to the console of server.
func Info(server *mcc.Server, msg string) {
	server.Console().SendMessage(msg)
}

// DisablePlugin explains on the console that the NPC framework is missing
// and disables plugin.
func DisablePlugin(server *mcc.Server, plugin mcc.Plugin) {
	Info(server, Color(Tag+"&cCitizens &7is needed for this plugin to work!"))
	Info(server, Color(Tag+"&cCitizens &7is not installed on the server!"))
	Info(server, Color(Tag+"&cDisabling "+plugin.Name()+"..."))
	server.DisablePlugin(plugin)
}
