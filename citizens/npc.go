// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package citizens

import (
	"sort"
	"strings"
	"sync"

	"github.com/structinf/go-npccmd/mcc"
)

// NPC is a non-player character.
type NPC struct {
	ID   int
	Name string
}

// A Selector reports which NPC a command sender has selected.
type Selector interface {
	// Selected returns the NPC selected by sender, or nil.
	Selected(sender mcc.CommandSender) *NPC
}

// RemoveHandler is called after an NPC has been removed.
type RemoveHandler func(npc *NPC)

// Registry holds all NPCs and the selection of every sender.
// It implements Selector.
type Registry struct {
	lock      sync.RWMutex
	nextID    int
	npcs      map[int]*NPC
	selection map[string]int

	handlers     []RemoveHandler
	handlersLock sync.RWMutex
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		npcs:      make(map[int]*NPC),
		selection: make(map[string]int),
	}
}

// Create registers a new NPC named name and returns it.
func (registry *Registry) Create(name string) *NPC {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	npc := &NPC{ID: registry.nextID, Name: name}
	registry.npcs[npc.ID] = npc
	registry.nextID++
	return npc
}

// Reserve makes Create hand out only ids greater than id.
func (registry *Registry) Reserve(id int) {
	registry.lock.Lock()
	if id >= registry.nextID {
		registry.nextID = id + 1
	}
	registry.lock.Unlock()
}

// RegisterRemoveHandler registers a handler that is called each time an NPC
// is removed.
func (registry *Registry) RegisterRemoveHandler(handler RemoveHandler) {
	registry.handlersLock.Lock()
	registry.handlers = append(registry.handlers, handler)
	registry.handlersLock.Unlock()
}

// Remove removes the NPC with the specified id and clears every selection of
// it. It returns false if no such NPC exists.
func (registry *Registry) Remove(id int) bool {
	registry.lock.Lock()
	npc, ok := registry.npcs[id]
	if !ok {
		registry.lock.Unlock()
		return false
	}

	delete(registry.npcs, id)
	for name, selected := range registry.selection {
		if selected == id {
			delete(registry.selection, name)
		}
	}
	registry.lock.Unlock()

	registry.handlersLock.RLock()
	for _, handler := range registry.handlers {
		handler(npc)
	}
	registry.handlersLock.RUnlock()

	return true
}

// Find returns the NPC with the specified id, or nil.
func (registry *Registry) Find(id int) *NPC {
	registry.lock.RLock()
	defer registry.lock.RUnlock()
	return registry.npcs[id]
}

// ForEach calls fn for each NPC, in id order.
func (registry *Registry) ForEach(fn func(*NPC)) {
	registry.lock.RLock()
	npcs := make([]*NPC, 0, len(registry.npcs))
	for _, npc := range registry.npcs {
		npcs = append(npcs, npc)
	}
	registry.lock.RUnlock()

	sort.Slice(npcs, func(i, j int) bool {
		return npcs[i].ID < npcs[j].ID
	})

	for _, npc := range npcs {
		fn(npc)
	}
}

// Select makes sender select the NPC with the specified id.
// It returns false if no such NPC exists.
func (registry *Registry) Select(sender mcc.CommandSender, id int) bool {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	if _, ok := registry.npcs[id]; !ok {
		return false
	}

	registry.selection[key(sender)] = id
	return true
}

// Deselect clears the selection of sender.
func (registry *Registry) Deselect(sender mcc.CommandSender) {
	registry.lock.Lock()
	delete(registry.selection, key(sender))
	registry.lock.Unlock()
}

// Selected implements Selector.
func (registry *Registry) Selected(sender mcc.CommandSender) *NPC {
	registry.lock.RLock()
	defer registry.lock.RUnlock()

	id, ok := registry.selection[key(sender)]
	if !ok {
		return nil
	}

	return registry.npcs[id]
}

func key(sender mcc.CommandSender) string {
	return strings.ToLower(sender.Name())
}
