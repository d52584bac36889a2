// Command ramsesctl is a deliberately thin driver: it wires a packet
// source (a log file, or stdin) into a Gateway and prints each decoded
// message. The CLI surface itself is out of scope for this library —
// this exists only to exercise the core end to end.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomkooij/ramses-rf/frame"
	"github.com/tomkooij/ramses-rf/gateway"
	"github.com/tomkooij/ramses-rf/internal/logsource"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "ramsesctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ramsesctl", flag.ContinueOnError)
	logPath := fs.String("log", "", "packet log file to replay (defaults to stdin)")
	execute := fs.Bool("execute", false, "run in execute mode (discovery polling is always disabled)")
	eavesdrop := fs.Bool("eavesdrop", true, "allow entity discovery by eavesdropping on traffic")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if *logPath != "" {
		f, err := os.Open(*logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	cfg := gateway.DefaultConfig()
	cfg.EnableEavesdrop = *eavesdrop
	if *execute {
		// Execute mode is for sending commands, not passively learning a
		// system's topology: discovery stays off regardless of what the
		// flags say, matching the resolved ambiguity around the
		// original's discovery-disable default.
		cfg.DisableDiscovery = true
	}

	gwy, err := gateway.New(cfg, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	src := logsource.NewReader(in)
	for {
		line, _, recvAt, err := src.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}

		f, err := frame.Parse(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ramsesctl: skip:", err)
			continue
		}
		if recvAt.IsZero() {
			recvAt = time.Now()
		}
		msg, err := gwy.Process(ctx, f, recvAt)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ramsesctl: process:", err)
			continue
		}
		fmt.Println(msg.Frame.String())
	}
}
