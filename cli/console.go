// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package main

import (
	"bufio"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/structinf/go-npccmd/mcc"
)

type console struct {
	server    *mcc.Server
	waitGroup *sync.WaitGroup
	signal    chan os.Signal
	stopOnce  sync.Once
}

func newConsole(server *mcc.Server, waitGroup *sync.WaitGroup) *console {
	console := &console{
		server:    server,
		waitGroup: waitGroup,
		signal:    make(chan os.Signal, 1),
	}

	server.RegisterCommand(&mcc.Command{
		Name:        "stop",
		Description: "Stop the server.",
		Usage:       "/stop",
		Permission:  "server.stop",
		Handler:     console.handleStop,
	})

	server.RegisterCommand(&mcc.Command{
		Name:        "login",
		Description: "Connect a local player whose messages go to the console.",
		Usage:       "/login <name> [op]",
		Permission:  "server.login",
		Handler:     console.handleLogin,
	})

	server.RegisterCommand(&mcc.Command{
		Name:        "logout",
		Description: "Disconnect a local player.",
		Usage:       "/logout <name>",
		Permission:  "server.login",
		Handler:     console.handleLogout,
	})

	server.RegisterCommand(&mcc.Command{
		Name:        "sudo",
		Description: "Execute a command as a player.",
		Usage:       "/sudo <name> <command>",
		Permission:  "server.sudo",
		Handler:     console.handleSudo,
	})

	server.RegisterCommand(&mcc.Command{
		Name:        "complete",
		Description: "Show the tab completions of a command line for a player.",
		Usage:       "/complete <name> <command>",
		Permission:  "server.sudo",
		Handler:     console.handleComplete,
	})

	server.RegisterCommand(&mcc.Command{
		Name:        "commands",
		Description: "List all commands.",
		Usage:       "/commands",
		Handler:     console.handleCommands,
	})

	signal.Notify(console.signal, os.Interrupt)
	console.waitGroup.Add(1)
	go func() {
		if _, ok := <-console.signal; ok {
			console.stop()
		}
	}()

	return console
}

func (console *console) run() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		console.server.ExecuteCommand(console.server.Console(), scanner.Text())
	}

	console.stop()
}

func (console *console) stop() {
	console.stopOnce.Do(func() {
		signal.Stop(console.signal)
		console.server.Stop()
		console.waitGroup.Done()
		os.Exit(0)
	})
}

func (console *console) handleStop(sender mcc.CommandSender, command *mcc.Command, message string) {
	console.stop()
}

func (console *console) handleLogin(sender mcc.CommandSender, command *mcc.Command, message string) {
	args := strings.Fields(message)
	if len(args) < 1 || len(args) > 2 {
		command.PrintUsage(sender)
		return
	}

	if !mcc.IsValidName(args[0]) {
		sender.SendMessage(args[0] + " is not a valid name")
		return
	}

	player := mcc.NewPlayer(args[0], &prefixWriter{console.server.Console(), "[" + args[0] + "] "})
	player.Operator = len(args) == 2 && strings.EqualFold(args[1], "op")
	if !console.server.AddPlayer(player) {
		sender.SendMessage(args[0] + " is already online")
		return
	}

	sender.SendMessage(args[0] + " joined the game")
}

func (console *console) handleLogout(sender mcc.CommandSender, command *mcc.Command, message string) {
	player := console.server.FindPlayer(strings.TrimSpace(message))
	if player == nil {
		sender.SendMessage("Player not found")
		return
	}

	console.server.RemovePlayer(player)
	sender.SendMessage(player.Name() + " left the game")
}

func (console *console) handleSudo(sender mcc.CommandSender, command *mcc.Command, message string) {
	args := strings.SplitN(message, " ", 2)
	if len(args) < 2 {
		command.PrintUsage(sender)
		return
	}

	player := console.server.FindPlayer(args[0])
	if player == nil {
		sender.SendMessage("Player not found")
		return
	}

	console.server.ExecuteCommand(player, args[1])
}

func (console *console) handleComplete(sender mcc.CommandSender, command *mcc.Command, message string) {
	args := strings.SplitN(message, " ", 2)
	if len(args) < 2 {
		command.PrintUsage(sender)
		return
	}

	player := console.server.FindPlayer(args[0])
	if player == nil {
		sender.SendMessage("Player not found")
		return
	}

	completions := console.server.Complete(player, args[1])
	if len(completions) == 0 {
		sender.SendMessage("&7No completions")
		return
	}

	sender.SendMessage(strings.Join(completions, ", "))
}

func (console *console) handleCommands(sender mcc.CommandSender, command *mcc.Command, message string) {
	console.server.ForEachCommand(func(command *mcc.Command) {
		sender.SendMessage("&3" + command.Usage + " &7- " + command.Description)
	})
}

// prefixWriter forwards each line written by a local player to the console.
type prefixWriter struct {
	sender mcc.CommandSender
	prefix string
}

func (writer *prefixWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		writer.sender.SendMessage(writer.prefix + line)
	}
	return len(p), nil
}
