// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package mcc

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// MaxMessageLength is the width at which chat messages are wrapped.
const MaxMessageLength = 256

// Player represents a player connected to the server. Messages sent to the
// player are written line by line to the underlying writer.
type Player struct {
	Nickname string
	Operator bool

	name   string
	server *Server

	out     io.Writer
	outLock sync.Mutex

	permissions     map[string]bool
	permissionsLock sync.RWMutex
}

// NewPlayer returns a new Player named name that writes its messages to out.
func NewPlayer(name string, out io.Writer) *Player {
	return &Player{
		Nickname:    name,
		name:        name,
		out:         out,
		permissions: make(map[string]bool),
	}
}

// Server implements CommandSender.
func (player *Player) Server() *Server {
	return player.server
}

// Name implements CommandSender.
func (player *Player) Name() string {
	return player.name
}

// SendMessage implements CommandSender.
func (player *Player) SendMessage(message string) {
	message = TranslateColorCodes(AltColorChar, message)

	player.outLock.Lock()
	defer player.outLock.Unlock()
	for _, line := range WordWrap(message, MaxMessageLength) {
		fmt.Fprintln(player.out, line)
	}
}

// HasPermission implements CommandSender.
// A permission is granted if it, or a wildcard node covering it, has been
// added to the player. Operators have every permission.
func (player *Player) HasPermission(permission string) bool {
	if player.Operator {
		return true
	}

	player.permissionsLock.RLock()
	defer player.permissionsLock.RUnlock()

	if player.permissions["*"] || player.permissions[permission] {
		return true
	}

	for i := strings.LastIndexByte(permission, '.'); i > 0; i = strings.LastIndexByte(permission[:i], '.') {
		if player.permissions[permission[:i]+".*"] {
			return true
		}
	}

	return false
}

// AddPermission grants permission to the player.
func (player *Player) AddPermission(permission string) {
	player.permissionsLock.Lock()
	player.permissions[permission] = true
	player.permissionsLock.Unlock()
}

// RemovePermission revokes permission from the player.
func (player *Player) RemovePermission(permission string) {
	player.permissionsLock.Lock()
	delete(player.permissions, permission)
	player.permissionsLock.Unlock()
}
