// ABOUTME: CLI entry point for termctl: terminal control ops over a stream resource registry
// ABOUTME: Parses flags, loads config, opens the feature gate, dispatches the requested op

package main

import (
	"fmt"
	"os"

	"github.com/mauromedda/termctl-go/internal/config"
	"github.com/mauromedda/termctl-go/internal/console"
	"github.com/mauromedda/termctl-go/internal/dispatch"
	"github.com/mauromedda/termctl-go/internal/feature"
	tlog "github.com/mauromedda/termctl-go/internal/log"
	"github.com/mauromedda/termctl-go/internal/ops/tty"
	"github.com/mauromedda/termctl-go/internal/registry"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("termctl %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	cwd, _ := os.Getwd()
	settings, err := config.Load(cwd)
	if err != nil {
		return err
	}

	if args.verbose {
		tlog.SetLevel(tlog.LevelDebug)
	} else {
		tlog.SetLevel(tlog.ParseLevel(settings.LogLevel))
	}

	gate := feature.NewGate()
	if args.unstable || settings.Unstable {
		gate.Enable()
		tlog.Debug("unstable feature gate opened")
	}

	table := registry.NewTable()
	rid := table.AddStdin()
	if args.file != "" {
		f, err := os.OpenFile(args.file, os.O_RDWR, 0)
		if err != nil {
			return fmt.Errorf("opening %s: %w", args.file, err)
		}
		rid = table.AddFile(f)
		defer table.Remove(rid)
		tlog.Debug("registered %s as resource %d", args.file, rid)
	}

	d := dispatch.New(tty.New(table, console.System{}, gate))

	switch {
	case args.isatty:
		return printIsatty(d, rid)
	case args.size:
		return printSize(d, rid)
	case args.rawEcho:
		return rawEcho(d, rid)
	default:
		return printIsatty(d, rid)
	}
}

func printIsatty(d *dispatch.Dispatcher, rid uint32) error {
	out, err := dispatchArgs(d, "isatty", dispatch.RidArgs{Rid: rid})
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", out)
	return nil
}

func printSize(d *dispatch.Dispatcher, rid uint32) error {
	out, err := dispatchArgs(d, "console_size", dispatch.RidArgs{Rid: rid})
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", out)
	return nil
}

// rawEcho toggles the resource into raw mode, echoes each key's byte
// value until q or Ctrl+C, then restores the saved mode.
func rawEcho(d *dispatch.Dispatcher, rid uint32) error {
	if _, err := dispatchArgs(d, "set_raw", dispatch.SetRawArgs{Rid: rid, Mode: true}); err != nil {
		return err
	}
	defer func() {
		if _, err := dispatchArgs(d, "set_raw", dispatch.SetRawArgs{Rid: rid, Mode: false}); err != nil {
			tlog.Error("restoring terminal mode: %v", err)
		}
	}()

	fmt.Print("raw mode on; press q or Ctrl+C to exit\r\n")
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		if n == 0 {
			continue
		}
		fmt.Printf("0x%02x\r\n", buf[0])
		if buf[0] == 'q' || buf[0] == 0x03 {
			return nil
		}
	}
}

func dispatchArgs(d *dispatch.Dispatcher, op string, args interface{ MarshalJSON() ([]byte, error) }) ([]byte, error) {
	payload, err := args.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding %s args: %w", op, err)
	}
	return d.Dispatch(op, payload)
}
