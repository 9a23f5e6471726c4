// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --isatty, --size, --raw-echo, --file, --unstable, --verbose, --version

package main

import "flag"

type cliArgs struct {
	isatty   bool
	size     bool
	rawEcho  bool
	file     string
	unstable bool
	verbose  bool
	version  bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.isatty, "isatty", false, "Report whether the stream is an interactive terminal")
	flag.BoolVar(&args.size, "size", false, "Print the terminal's columns and rows")
	flag.BoolVar(&args.rawEcho, "raw-echo", false, "Raw-mode echo demo: print key bytes until q or Ctrl+C")
	flag.StringVar(&args.file, "file", "", "Operate on a terminal device file instead of stdin (e.g. /dev/tty)")
	flag.BoolVar(&args.unstable, "unstable", false, "Open the unstable feature gate (required for raw mode and size)")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
