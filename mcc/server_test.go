// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package mcc

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPlugin struct {
	name            string
	enabled         int
	disabled        int
	disableOnEnable bool
}

func (plugin *testPlugin) Name() string {
	return plugin.name
}

func (plugin *testPlugin) Enable(server *Server) {
	plugin.enabled++
	if plugin.disableOnEnable {
		server.DisablePlugin(plugin)
	}
}

func (plugin *testPlugin) Disable(server *Server) {
	plugin.disabled++
}

func newTestServer() *Server {
	return NewServer(&Config{Name: "test"}, ioutil.Discard)
}

func TestPluginLifecycle(t *testing.T) {
	server := newTestServer()
	plugin := &testPlugin{name: "Citizens"}

	assert.False(t, server.IsPluginEnabled("Citizens"))
	server.RegisterPlugin(plugin)
	assert.True(t, server.IsPluginEnabled("Citizens"))
	assert.Equal(t, Plugin(plugin), server.FindPlugin("Citizens"))

	server.DisablePlugin(plugin)
	server.DisablePlugin(plugin)
	assert.False(t, server.IsPluginEnabled("Citizens"))
	assert.Equal(t, 1, plugin.enabled)
	assert.Equal(t, 1, plugin.disabled)

	server.Stop()
	assert.Equal(t, 1, plugin.disabled)
}

func TestPluginDisablesItself(t *testing.T) {
	server := newTestServer()
	plugin := &testPlugin{name: "Self", disableOnEnable: true}
	server.RegisterPlugin(plugin)
	assert.False(t, server.IsPluginEnabled("Self"))
	assert.Equal(t, 1, plugin.disabled)
}

func TestExecuteCommand(t *testing.T) {
	server := newTestServer()
	var got string
	server.RegisterCommand(&Command{
		Name:       "Echo",
		Permission: "test.echo",
		Handler: func(sender CommandSender, command *Command, message string) {
			got = message
		},
	})

	var b bytes.Buffer
	player := NewPlayer("Steve", &b)
	require.True(t, server.AddPlayer(player))

	server.ExecuteCommand(player, "/echo hello world")
	assert.Empty(t, got)
	assert.Contains(t, b.String(), "permission")

	player.AddPermission("test.*")
	server.ExecuteCommand(player, "/echo  hello world ")
	assert.Equal(t, "hello world", got)

	b.Reset()
	server.ExecuteCommand(player, "nothing")
	assert.Equal(t, "Unknown command!\n", b.String())
}

func TestComplete(t *testing.T) {
	server := newTestServer()
	var args []string
	server.RegisterCommand(&Command{
		Name:    "npcmd",
		Handler: func(CommandSender, *Command, string) {},
		Completer: func(sender CommandSender, command *Command, a []string) []string {
			args = a
			return []string{"ok"}
		},
	})
	server.RegisterCommand(&Command{Name: "npc", Handler: func(CommandSender, *Command, string) {}})
	server.RegisterCommand(&Command{Name: "help", Handler: func(CommandSender, *Command, string) {}})

	console := server.Console()
	assert.Equal(t, []string{"npc", "npcmd"}, server.Complete(console, "/np"))

	assert.Equal(t, []string{"ok"}, server.Complete(console, "npcmd add "))
	assert.Equal(t, []string{"add", ""}, args)

	server.Complete(console, `npcmd add "say hi" co`)
	assert.Equal(t, []string{"add", "say hi", "co"}, args)

	assert.Nil(t, server.Complete(console, "npc x"))
}

func TestPlayers(t *testing.T) {
	server := newTestServer()
	steve := NewPlayer("Steve", ioutil.Discard)
	require.True(t, server.AddPlayer(steve))
	assert.False(t, server.AddPlayer(NewPlayer("steve", ioutil.Discard)))
	assert.Equal(t, steve, server.FindPlayer("STEVE"))
	assert.Equal(t, server, steve.Server())

	server.RemovePlayer(steve)
	assert.Nil(t, server.FindPlayer("Steve"))
}

func TestPlayerMessages(t *testing.T) {
	var b bytes.Buffer
	player := NewPlayer("Alex", &b)
	player.SendMessage("&aHi")
	assert.Equal(t, "§aHi\n", b.String())
	assert.False(t, player.HasPermission("npccmd.add"))
	player.Operator = true
	assert.True(t, player.HasPermission("npccmd.add"))
}
