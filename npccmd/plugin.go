// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package npccmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/structinf/go-npccmd/citizens"
	"github.com/structinf/go-npccmd/mcc"
	"github.com/structinf/go-npccmd/storage"
)

const (
	PluginName = "NPCCmd"
	Version    = "1.2.0"

	DatabaseFile = "commands.sqlite"
)

// Plugin binds commands to NPCs of the Citizens framework.
type Plugin struct {
	DataDir  string
	Selector citizens.Selector
	NPCs     *citizens.Registry

	Config *Config
	Lang   *Lang
	Data   *storage.DataHandler
}

// NewPlugin returns a Plugin storing its files in dataDir and reading NPCs
// and their selections from registry.
func NewPlugin(dataDir string, registry *citizens.Registry) *Plugin {
	plugin := &Plugin{
		DataDir:  dataDir,
		Selector: registry,
		NPCs:     registry,
	}

	registry.RegisterRemoveHandler(plugin.handleNPCRemove)
	return plugin
}

func (plugin *Plugin) Name() string {
	return PluginName
}

func (plugin *Plugin) Enable(server *mcc.Server) {
	if !CitizensExists(server) {
		DisablePlugin(server, plugin)
		return
	}

	if err := os.MkdirAll(plugin.DataDir, 0755); err != nil {
		log.Printf("Enable: %s\n", err)
		server.DisablePlugin(plugin)
		return
	}

	if CheckOldConfig(plugin.DataDir) {
		Info(server, Color(Tag+"&7Outdated config renamed to &f"+OldConfigFile))
	}

	config, err := LoadConfig(plugin.DataDir)
	if err != nil {
		log.Printf("Enable: %s\n", err)
		config, _ = ParseConfig([]byte(defaultConfig))
	}
	plugin.Config = config
	plugin.Lang = LoadLang(plugin.DataDir, config.String(KeyLang))

	data, err := storage.Open(filepath.Join(plugin.DataDir, DatabaseFile))
	if err != nil {
		log.Printf("Enable: %s\n", err)
		server.DisablePlugin(plugin)
		return
	}
	plugin.Data = data

	if id, err := data.MaxNPCID(); err != nil {
		log.Printf("Enable: %s\n", err)
	} else {
		plugin.NPCs.Reserve(id)
	}

	server.RegisterCommand(&mcc.Command{
		Name:        "npcmd",
		Description: "Bind commands to the selected NPC.",
		Usage:       "/npcmd <add|remove|edit|sound|cooldown|list|help>",
		Permission:  "npccmd.use",
		Handler:     plugin.handleNpcmd,
		Completer:   plugin.completeNpcmd,
	})

	if UpdateCheck(config) {
		Info(server, Color(Tag+"&7Running version &f"+Version))
	}
}

func (plugin *Plugin) Disable(server *mcc.Server) {
	if plugin.Data != nil {
		if err := plugin.Data.Close(); err != nil {
			log.Printf("Disable: %s\n", err)
		}
		plugin.Data = nil
	}
}

func (plugin *Plugin) handleNPCRemove(npc *citizens.NPC) {
	if plugin.Data == nil {
		return
	}

	if err := plugin.Data.RemoveNPC(npc.ID); err != nil {
		log.Printf("handleNPCRemove: %s\n", err)
	}
}
