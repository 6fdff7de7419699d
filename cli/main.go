// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/napalu/goopt/v2"

	"github.com/structinf/go-npccmd/citizens"
	"github.com/structinf/go-npccmd/mcc"
	"github.com/structinf/go-npccmd/npccmd"
)

type options struct {
	Name       string `goopt:"name:name;short:n;default:Go-MCC;desc:Server name"`
	DataDir    string `goopt:"name:data-dir;short:d;default:plugins/NPCCmd;desc:Directory holding the plugin configuration and database"`
	NoCitizens bool   `goopt:"name:no-citizens;desc:Start without the Citizens NPC framework"`
	NoColor    bool   `goopt:"name:no-color;desc:Do not color console output"`
	Help       bool   `goopt:"name:help;short:h;desc:Show this help"`
}

func main() {
	opts := &options{}
	parser, err := goopt.NewParserFromStruct(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "main: %s\n", err)
		os.Exit(1)
	}

	if !parser.Parse(os.Args) {
		for _, err := range parser.GetErrors() {
			fmt.Fprintf(os.Stderr, " - %s\n", err)
		}
		parser.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if opts.Help {
		parser.PrintUsage(os.Stdout)
		return
	}

	config := &mcc.Config{Name: opts.Name, DataDir: opts.DataDir}
	server := mcc.NewServer(config, os.Stdout)
	server.Console().NoColor = opts.NoColor

	registry := citizens.NewRegistry()
	if !opts.NoCitizens {
		server.RegisterPlugin(citizens.NewPlugin(registry))
	}
	server.RegisterPlugin(npccmd.NewPlugin(config.DataDir, registry))

	var wg sync.WaitGroup
	console := newConsole(server, &wg)
	console.run()
	wg.Wait()
}
