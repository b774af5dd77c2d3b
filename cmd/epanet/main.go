package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/epanet/cmd/epanet/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = commands.Run(args)
	case "info":
		err = commands.Info(args)
	case "batch":
		err = commands.Batch(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		err = commands.Version(version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`epanet - EPANET toolkit runner

Usage: epanet <command> [options]

Commands:
  run       Run a full simulation of an .inp file
  info      Print a summary of a network
  batch     Run many .inp files in parallel
  init      Write a default epanet.toml
  version   Print CLI and toolkit versions
  help      Show this help message

Examples:
  epanet run net1.inp                   Writes net1.rpt and net1.out
  epanet run --rpt out/net1.rpt net1.inp
  epanet info net1.inp
  epanet batch --workers 4 networks/
  epanet init --lib /opt/epanet/lib/libepanet2.so

Configuration is read from epanet.toml in the current directory or the
nearest parent. EPANET_LIB_PATH overrides the library search path.`)
}
