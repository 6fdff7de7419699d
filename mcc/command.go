// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package mcc

// A CommandSender is a generic entity that can execute commands and receive
// messages.
type CommandSender interface {
	Server() *Server
	Name() string
	SendMessage(message string)
	HasPermission(permission string) bool
}

// CommandHandler is the type of the function called to execute a command. The
// sender argument is the entity that invoked the command. The message argument
// contains the arguments of the command.
type CommandHandler func(sender CommandSender, command *Command, message string)

// CommandCompleter is the type of the function called to complete the
// arguments of a command. args holds the arguments typed so far; the last one
// may be empty or partial.
type CommandCompleter func(sender CommandSender, command *Command, args []string) []string

// A Command describes a command.
type Command struct {
	Name        string
	Description string
	Usage       string
	Permission  string
	Handler     CommandHandler
	Completer   CommandCompleter
}

// PrintUsage sends the usage of the command to sender.
func (command *Command) PrintUsage(sender CommandSender) {
	sender.SendMessage("Usage: " + command.Usage)
}
