// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package npccmd

import (
	"strings"

	"github.com/structinf/go-npccmd/citizens"
	"github.com/structinf/go-npccmd/mcc"
	"github.com/structinf/go-npccmd/storage"
)

// Args holds the completion candidates of a sub-command, one slot per
// argument kind. A nil slot is unset.
type Args [5][]string

// CommandIndex lists the positions of the commands bound to an NPC.
type CommandIndex interface {
	CompleteCommandNumbers(npcID int, click storage.ClickType) ([]string, error)
}

// TabCompleteArgs returns the completion table of subCommand for sender.
// remove and edit need an NPC selected by sender; otherwise ErrNoSelection is
// returned.
func TabCompleteArgs(selector citizens.Selector, index CommandIndex, subCommand string, sender mcc.CommandSender) (Args, error) {
	var args Args
	switch strings.ToLower(subCommand) {
	case "add":
		args[0] = commandTypes()

	case "remove":
		args[0] = clickTypes()
		left, right, err := commandNumbers(selector, index, sender)
		if err != nil {
			return Args{}, err
		}
		args[1], args[2] = left, right

	case "edit":
		args[0] = []string{"perm", "cmd"}
		args[1] = clickTypes()
		left, right, err := commandNumbers(selector, index, sender)
		if err != nil {
			return Args{}, err
		}
		args[2], args[3] = left, right
		args[4] = commandTypes()

	case "sound":
		args[0] = mcc.SoundNames()
	}

	return args, nil
}

func clickTypes() []string {
	return []string{string(storage.ClickLeft), string(storage.ClickRight)}
}

func commandTypes() []string {
	types := make([]string, len(storage.CommandTypes))
	copy(types, storage.CommandTypes)
	return types
}

func commandNumbers(selector citizens.Selector, index CommandIndex, sender mcc.CommandSender) (left, right []string, err error) {
	id, err := SelectedNPCID(selector, sender)
	if err != nil {
		return nil, nil, err
	}

	if left, err = index.CompleteCommandNumbers(id, storage.ClickLeft); err != nil {
		return nil, nil, err
	}
	if right, err = index.CompleteCommandNumbers(id, storage.ClickRight); err != nil {
		return nil, nil, err
	}

	if left == nil {
		left = []string{}
	}
	if right == nil {
		right = []string{}
	}

	return left, right, nil
}

// candidates picks the slot of table that applies to the last of args, the
// sub-command being args[0].
func candidates(table Args, args []string) []string {
	sub := strings.ToLower(args[0])
	n := len(args)
	switch sub {
	case "add":
		if n == 2 || (n == 3 && args[1] == "-l") {
			return table[0]
		}

	case "sound":
		if n == 2 {
			return table[0]
		}

	case "remove":
		switch n {
		case 2:
			return table[0]
		case 3:
			return bySide(args[1], table[1], table[2])
		}

	case "edit":
		switch n {
		case 2:
			return table[0]
		case 3:
			return table[1]
		case 4:
			return bySide(args[2], table[2], table[3])
		case 5:
			if strings.EqualFold(args[1], "cmd") {
				return table[4]
			}
		}
	}

	return nil
}

func bySide(side string, left, right []string) []string {
	switch click, _ := storage.ParseClickType(side); click {
	case storage.ClickLeft:
		return left
	case storage.ClickRight:
		return right
	}
	return nil
}

func filterPrefix(candidates []string, prefix string) []string {
	var result []string
	prefix = strings.ToLower(prefix)
	for _, candidate := range candidates {
		if strings.HasPrefix(strings.ToLower(candidate), prefix) {
			result = append(result, candidate)
		}
	}
	return result
}
