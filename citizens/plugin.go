// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package citizens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/structinf/go-npccmd/mcc"
)

// PluginName is the name under which the NPC framework registers itself.
const PluginName = "Citizens"

// Plugin exposes a Registry to players through the /npc command.
type Plugin struct {
	Registry *Registry
}

// NewPlugin returns a Plugin backed by registry.
func NewPlugin(registry *Registry) *Plugin {
	return &Plugin{registry}
}

func (plugin *Plugin) Name() string {
	return PluginName
}

func (plugin *Plugin) Enable(server *mcc.Server) {
	server.RegisterCommand(&mcc.Command{
		Name:        "npc",
		Description: "Create, select, list and remove NPCs.",
		Usage:       "/npc <create <name>|select <id>|deselect|list|remove>",
		Permission:  "citizens.npc",
		Handler:     plugin.handleNpc,
		Completer:   plugin.completeNpc,
	})
}

func (plugin *Plugin) Disable(server *mcc.Server) {}

func (plugin *Plugin) handleNpc(sender mcc.CommandSender, command *mcc.Command, message string) {
	args := strings.Fields(message)
	if len(args) == 0 {
		command.PrintUsage(sender)
		return
	}

	switch strings.ToLower(args[0]) {
	case "create":
		if len(args) != 2 {
			command.PrintUsage(sender)
			return
		}

		if !mcc.IsValidName(args[1]) {
			sender.SendMessage(args[1] + " is not a valid name")
			return
		}

		npc := plugin.Registry.Create(args[1])
		plugin.Registry.Select(sender, npc.ID)
		sender.SendMessage(fmt.Sprintf("&aCreated NPC &f%s &a(ID %d)", npc.Name, npc.ID))

	case "select":
		if len(args) != 2 {
			command.PrintUsage(sender)
			return
		}

		id, err := strconv.Atoi(args[1])
		if err != nil || !plugin.Registry.Select(sender, id) {
			sender.SendMessage("&cNo NPC with ID " + args[1])
			return
		}

		sender.SendMessage(fmt.Sprintf("&aSelected &f%s", plugin.Registry.Find(id).Name))

	case "deselect":
		plugin.Registry.Deselect(sender)
		sender.SendMessage("&aSelection cleared")

	case "list":
		count := 0
		plugin.Registry.ForEach(func(npc *NPC) {
			sender.SendMessage(fmt.Sprintf("&7%d &f%s", npc.ID, npc.Name))
			count++
		})

		if count == 0 {
			sender.SendMessage("&7There are no NPCs")
		}

	case "remove":
		npc := plugin.Registry.Selected(sender)
		if npc == nil {
			sender.SendMessage("&cYou must have an NPC selected")
			return
		}

		plugin.Registry.Remove(npc.ID)
		sender.SendMessage(fmt.Sprintf("&aRemoved &f%s", npc.Name))

	default:
		command.PrintUsage(sender)
	}
}

func (plugin *Plugin) completeNpc(sender mcc.CommandSender, command *mcc.Command, args []string) []string {
	var candidates []string
	switch len(args) {
	case 1:
		candidates = []string{"create", "select", "deselect", "list", "remove"}
	case 2:
		if strings.EqualFold(args[0], "select") {
			plugin.Registry.ForEach(func(npc *NPC) {
				candidates = append(candidates, strconv.Itoa(npc.ID))
			})
		}
	}

	var result []string
	prefix := strings.ToLower(args[len(args)-1])
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, prefix) {
			result = append(result, candidate)
		}
	}

	return result
}
