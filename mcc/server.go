// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package mcc

import (
	"io"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/google/shlex"
)

const ServerSoftware = "Go-MCC"

// Config is used to configure a server.
type Config struct {
	Name    string `json:"server-name"`
	DataDir string `json:"data-dir"`
}

// Plugin is the interface that must be implemented by all plugins.
type Plugin interface {
	Name() string
	Enable(*Server)
	Disable(*Server)
}

type pluginEntry struct {
	plugin  Plugin
	enabled bool
}

// Server represents a game server.
type Server struct {
	Config *Config

	console *Console

	commands     map[string]*Command
	commandsLock sync.RWMutex

	players     []*Player
	playersLock sync.RWMutex

	plugins     []*pluginEntry
	pluginsLock sync.RWMutex
}

// NewServer returns a new Server. Messages sent to the console are written
// to out.
func NewServer(config *Config, out io.Writer) *Server {
	server := &Server{
		Config:   config,
		commands: make(map[string]*Command),
	}

	server.console = &Console{server: server, out: out}
	return server
}

// Console returns the sender representing the server console.
func (server *Server) Console() *Console {
	return server.console
}

// Stop disables all plugins and removes all players.
func (server *Server) Stop() {
	server.pluginsLock.RLock()
	plugins := make([]*pluginEntry, len(server.plugins))
	copy(plugins, server.plugins)
	server.pluginsLock.RUnlock()

	for i := len(plugins) - 1; i >= 0; i-- {
		server.disable(plugins[i])
	}

	server.playersLock.Lock()
	server.players = nil
	server.playersLock.Unlock()
}

// BroadcastMessage broadcasts a message to all players.
func (server *Server) BroadcastMessage(message string) {
	server.console.SendMessage(message)
	server.ForEachPlayer(func(player *Player) {
		player.SendMessage(message)
	})
}

// AddPlayer adds player to the server.
// It returns false if a player with the same name is already online.
func (server *Server) AddPlayer(player *Player) bool {
	server.playersLock.Lock()
	defer server.playersLock.Unlock()

	for _, p := range server.players {
		if strings.EqualFold(p.name, player.name) {
			return false
		}
	}

	player.server = server
	server.players = append(server.players, player)
	return true
}

// RemovePlayer removes player from the server.
func (server *Server) RemovePlayer(player *Player) {
	server.playersLock.Lock()
	defer server.playersLock.Unlock()

	for i, p := range server.players {
		if p == player {
			server.players = append(server.players[:i], server.players[i+1:]...)
			return
		}
	}
}

// FindPlayer returns the player with the specified name, ignoring case.
func (server *Server) FindPlayer(name string) *Player {
	server.playersLock.RLock()
	defer server.playersLock.RUnlock()

	for _, player := range server.players {
		if strings.EqualFold(player.name, name) {
			return player
		}
	}

	return nil
}

// ForEachPlayer calls fn for each online player.
func (server *Server) ForEachPlayer(fn func(*Player)) {
	server.playersLock.RLock()
	players := make([]*Player, len(server.players))
	copy(players, server.players)
	server.playersLock.RUnlock()

	for _, player := range players {
		fn(player)
	}
}

// RegisterCommand registers the specified command.
func (server *Server) RegisterCommand(command *Command) {
	server.commandsLock.Lock()
	server.commands[strings.ToLower(command.Name)] = command
	server.commandsLock.Unlock()
}

// FindCommand returns the command with the specified name.
func (server *Server) FindCommand(name string) *Command {
	server.commandsLock.RLock()
	defer server.commandsLock.RUnlock()
	return server.commands[strings.ToLower(name)]
}

// ForEachCommand calls fn for each command, in name order.
func (server *Server) ForEachCommand(fn func(*Command)) {
	server.commandsLock.RLock()
	names := make([]string, 0, len(server.commands))
	for name := range server.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	list := make([]*Command, len(names))
	for i, name := range names {
		list[i] = server.commands[name]
	}
	server.commandsLock.RUnlock()

	for _, command := range list {
		fn(command)
	}
}

// ExecuteCommand executes the command specified by message, if it exists.
// The handler runs on the calling goroutine.
func (server *Server) ExecuteCommand(sender CommandSender, message string) {
	message = strings.TrimPrefix(strings.TrimSpace(message), "/")
	if len(message) == 0 {
		return
	}

	args := strings.SplitN(message, " ", 2)
	command := server.FindCommand(args[0])
	if command == nil {
		sender.SendMessage("Unknown command!")
		return
	}

	if len(args) == 2 {
		message = strings.TrimSpace(args[1])
	} else {
		message = ""
	}

	if len(command.Permission) > 0 && !sender.HasPermission(command.Permission) {
		sender.SendMessage("You do not have permission to execute this command!")
		return
	}

	command.Handler(sender, command, message)
}

// Complete returns the completion candidates for the partially typed
// command line.
func (server *Server) Complete(sender CommandSender, line string) []string {
	line = strings.TrimPrefix(strings.TrimLeft(line, " "), "/")
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		var result []string
		prefix := strings.ToLower(line)
		server.ForEachCommand(func(command *Command) {
			name := strings.ToLower(command.Name)
			if strings.HasPrefix(name, prefix) && (len(command.Permission) == 0 || sender.HasPermission(command.Permission)) {
				result = append(result, command.Name)
			}
		})
		return result
	}

	command := server.FindCommand(line[:i])
	if command == nil || command.Completer == nil {
		return nil
	}

	if len(command.Permission) > 0 && !sender.HasPermission(command.Permission) {
		return nil
	}

	rest := line[i+1:]
	args, err := shlex.Split(rest)
	if err != nil {
		args = strings.Fields(rest)
	}

	if len(rest) == 0 || strings.HasSuffix(rest, " ") {
		args = append(args, "")
	}

	return command.Completer(sender, command, args)
}

// RegisterPlugin registers and enables plugin.
func (server *Server) RegisterPlugin(plugin Plugin) {
	entry := &pluginEntry{plugin: plugin, enabled: true}
	server.pluginsLock.Lock()
	server.plugins = append(server.plugins, entry)
	server.pluginsLock.Unlock()

	log.Printf("Enabling %s\n", plugin.Name())
	plugin.Enable(server)
}

// FindPlugin returns the registered plugin with the specified name.
func (server *Server) FindPlugin(name string) Plugin {
	if entry := server.findEntry(name); entry != nil {
		return entry.plugin
	}
	return nil
}

// IsPluginEnabled reports whether a plugin with the specified name is
// registered and enabled.
func (server *Server) IsPluginEnabled(name string) bool {
	server.pluginsLock.RLock()
	defer server.pluginsLock.RUnlock()

	for _, entry := range server.plugins {
		if entry.plugin.Name() == name {
			return entry.enabled
		}
	}

	return false
}

// DisablePlugin disables plugin. Disabling a plugin that is not enabled has
// no effect.
func (server *Server) DisablePlugin(plugin Plugin) {
	server.pluginsLock.RLock()
	var target *pluginEntry
	for _, entry := range server.plugins {
		if entry.plugin == plugin {
			target = entry
			break
		}
	}
	server.pluginsLock.RUnlock()

	if target != nil {
		server.disable(target)
	}
}

func (server *Server) findEntry(name string) *pluginEntry {
	server.pluginsLock.RLock()
	defer server.pluginsLock.RUnlock()

	for _, entry := range server.plugins {
		if entry.plugin.Name() == name {
			return entry
		}
	}

	return nil
}

func (server *Server) disable(entry *pluginEntry) {
	server.pluginsLock.Lock()
	enabled := entry.enabled
	entry.enabled = false
	server.pluginsLock.Unlock()

	if enabled {
		log.Printf("Disabling %s\n", entry.plugin.Name())
		entry.plugin.Disable(server)
	}
}
