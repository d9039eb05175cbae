// travelassistant runs one of the Travel Assistant services:
//
//	travelassistant gateway|translation|map|packing|seed [flags]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	gatewaycmd "travelassistant/internal/cmd/gateway"
	mapcmd "travelassistant/internal/cmd/maps"
	packingcmd "travelassistant/internal/cmd/packing"
	seedcmd "travelassistant/internal/cmd/seed"
	translationcmd "travelassistant/internal/cmd/translation"
)

type command func(ctx context.Context, fs *flag.FlagSet, args []string) error

var commands = map[string]command{
	"gateway": func(ctx context.Context, fs *flag.FlagSet, args []string) error {
		cfg, err := gatewaycmd.ParseConfig(fs, args)
		if err != nil {
			return err
		}
		return gatewaycmd.Run(ctx, cfg)
	},
	"translation": func(ctx context.Context, fs *flag.FlagSet, args []string) error {
		cfg, err := translationcmd.ParseConfig(fs, args)
		if err != nil {
			return err
		}
		return translationcmd.Run(ctx, cfg)
	},
	"map": func(ctx context.Context, fs *flag.FlagSet, args []string) error {
		cfg, err := mapcmd.ParseConfig(fs, args)
		if err != nil {
			return err
		}
		return mapcmd.Run(ctx, cfg)
	},
	"packing": func(ctx context.Context, fs *flag.FlagSet, args []string) error {
		cfg, err := packingcmd.ParseConfig(fs, args)
		if err != nil {
			return err
		}
		return packingcmd.Run(ctx, cfg)
	},
	"seed": func(ctx context.Context, fs *flag.FlagSet, args []string) error {
		cfg, err := seedcmd.ParseConfig(fs, args)
		if err != nil {
			return err
		}
		return seedcmd.Run(ctx, cfg)
	},
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: travelassistant gateway|translation|map|packing|seed [flags]")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	name := os.Args[1]
	run, ok := commands[name]
	if !ok {
		usage()
		os.Exit(2)
	}

	log.SetPrefix("[" + name + "] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fs := flag.NewFlagSet(name, flag.ExitOnError)
	if err := run(ctx, fs, os.Args[2:]); err != nil {
		stop()
		log.Fatalf("%s: %v", name, err)
	}
}
