// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestHandler(t *testing.T) *DataHandler {
	handler, err := Open(filepath.Join(t.TempDir(), "commands.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { handler.Close() })
	return handler
}

func TestAddAndListCommands(t *testing.T) {
	handler := openTestHandler(t)

	position, err := handler.AddCommand(1, ClickRight, Command{Type: "CONSOLE", Command: "say hi"})
	require.NoError(t, err)
	assert.Equal(t, 1, position)

	position, err = handler.AddCommand(1, ClickRight, Command{Type: TypeMessage, Command: "Welcome"})
	require.NoError(t, err)
	assert.Equal(t, 2, position)

	_, err = handler.AddCommand(1, ClickLeft, Command{Type: TypeServer, Command: "lobby"})
	require.NoError(t, err)

	commands, err := handler.Commands(1, ClickRight)
	require.NoError(t, err)
	require.Len(t, commands, 2)
	assert.Equal(t, Command{Position: 1, Type: TypeConsole, Command: "say hi"}, commands[0])

	numbers, err := handler.CompleteCommandNumbers(1, ClickRight)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, numbers)

	numbers, err = handler.CompleteCommandNumbers(1, ClickLeft)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, numbers)

	numbers, err = handler.CompleteCommandNumbers(2, ClickLeft)
	require.NoError(t, err)
	assert.Empty(t, numbers)
}

func TestRemoveCommandRenumbers(t *testing.T) {
	handler := openTestHandler(t)
	for _, c := range []string{"a", "b", "c"} {
		_, err := handler.AddCommand(3, ClickLeft, Command{Type: TypeConsole, Command: c})
		require.NoError(t, err)
	}

	require.NoError(t, handler.RemoveCommand(3, ClickLeft, 2))
	assert.Equal(t, ErrNotFound, handler.RemoveCommand(3, ClickLeft, 5))

	commands, err := handler.Commands(3, ClickLeft)
	require.NoError(t, err)
	require.Len(t, commands, 2)
	assert.Equal(t, "a", commands[0].Command)
	assert.Equal(t, 2, commands[1].Position)
	assert.Equal(t, "c", commands[1].Command)

	position, err := handler.AddCommand(3, ClickLeft, Command{Type: TypeConsole, Command: "d"})
	require.NoError(t, err)
	assert.Equal(t, 3, position)
}

func TestEditCommand(t *testing.T) {
	handler := openTestHandler(t)
	_, err := handler.AddCommand(1, ClickRight, Command{Type: TypeConsole, Command: "say hi"})
	require.NoError(t, err)

	require.NoError(t, handler.EditCommand(1, ClickRight, 1, EditCommand, "say bye"))
	require.NoError(t, handler.EditCommand(1, ClickRight, 1, EditPermission, "npc.vip"))
	assert.Equal(t, ErrNotFound, handler.EditCommand(1, ClickLeft, 1, EditCommand, "x"))
	assert.Error(t, handler.EditCommand(1, ClickRight, 1, EditField("type"), "x"))

	commands, err := handler.Commands(1, ClickRight)
	require.NoError(t, err)
	assert.Equal(t, "say bye", commands[0].Command)
	assert.Equal(t, "npc.vip", commands[0].Permission)
}

func TestSettings(t *testing.T) {
	handler := openTestHandler(t)

	cooldown, err := handler.Cooldown(7, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, cooldown)

	_, err = handler.Sound(7)
	assert.Equal(t, ErrNotFound, err)

	require.NoError(t, handler.SetSound(7, Sound{"ENTITY_VILLAGER_YES", 1, 0.5}))
	cooldown, err = handler.Cooldown(7, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, cooldown)

	require.NoError(t, handler.SetCooldown(7, 30))
	cooldown, err = handler.Cooldown(7, 15)
	require.NoError(t, err)
	assert.Equal(t, 30, cooldown)

	sound, err := handler.Sound(7)
	require.NoError(t, err)
	assert.Equal(t, Sound{"ENTITY_VILLAGER_YES", 1, 0.5}, sound)
}

func TestParseClickType(t *testing.T) {
	click, ok := ParseClickType("LEFT")
	assert.True(t, ok)
	assert.Equal(t, ClickLeft, click)

	_, ok = ParseClickType("middle")
	assert.False(t, ok)
	assert.True(t, IsCommandType("Permission"))
	assert.False(t, IsCommandType("shell"))
}

func TestRemoveNPCAndMaxNPCID(t *testing.T) {
	handler := openTestHandler(t)

	id, err := handler.MaxNPCID()
	require.NoError(t, err)
	assert.Equal(t, -1, id)

	_, err = handler.AddCommand(2, ClickRight, Command{Type: TypeConsole, Command: "op Steve"})
	require.NoError(t, err)
	require.NoError(t, handler.SetCooldown(7, 30))
	require.NoError(t, handler.SetSound(2, Sound{Name: "UI_BUTTON_CLICK", Volume: 1, Pitch: 1}))

	id, err = handler.MaxNPCID()
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	require.NoError(t, handler.RemoveNPC(2))
	commands, err := handler.Commands(2, ClickRight)
	require.NoError(t, err)
	assert.Empty(t, commands)
	_, err = handler.Sound(2)
	assert.Equal(t, ErrNotFound, err)

	cooldown, err := handler.Cooldown(7, 0)
	require.NoError(t, err)
	assert.Equal(t, 30, cooldown)
}
