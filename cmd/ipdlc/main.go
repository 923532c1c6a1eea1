// Command ipdlc runs the IPDL semantic analyzer over a translation-unit
// set described in JSON or YAML, standing in for the parser stage of a
// full IPDL toolchain.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	ipdl "github.com/ipdl-lang/ipdlc"
)

// Exit codes.
const (
	exitOK    = 0 // success, no diagnostics
	exitError = 1 // usage or I/O error
	exitDiags = 2 // analyzer accumulated diagnostics
)

const usage = `ipdlc - IPDL semantic analyzer

Usage:
  ipdlc [options] <file>

Options:
  -format FORMAT     Input format: json (default) or yaml
  -check-filenames    Verify protocol translation units are named <Protocol>.ipdl
  -manager-order      Print the manager-before-managee handoff order for a code generator
  -v                  Enable debug logging
  -vv                 Enable trace logging (implies -v)

Reads a translation-unit set from <file> (or stdin if <file> is "-"),
runs the analyzer, and reports accumulated diagnostics.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("ipdlc", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	format := fs.String("format", "json", "input format: json or yaml")
	checkFilenames := fs.Bool("check-filenames", false, "verify protocol translation units are named <Protocol>.ipdl")
	managerOrder := fs.Bool("manager-order", false, "print the manager-before-managee handoff order")
	verbose := fs.Bool("v", false, "enable debug logging")
	veryVerbose := fs.Bool("vv", false, "enable trace logging")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return exitError
	}

	var level slog.Level
	switch {
	case *veryVerbose:
		level = ipdl.LevelTrace
	case *verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	data, err := readInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "ipdlc:", err)
		return exitError
	}

	var in inputFile
	switch *format {
	case "json":
		err = json.Unmarshal(data, &in)
	case "yaml":
		err = yaml.Unmarshal(data, &in)
	default:
		fmt.Fprintf(os.Stderr, "ipdlc: unknown format %q\n", *format)
		return exitError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ipdlc: decode:", err)
		return exitError
	}

	tus, err := in.toTUs()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ipdlc:", err)
		return exitError
	}

	prog, err := ipdl.Check(tus, ipdl.WithLogger(logger), ipdl.WithFilenameCheck(*checkFilenames))
	if err != nil {
		var checkErr *ipdl.CheckError
		if errors.As(err, &checkErr) {
			for _, d := range checkErr.Diagnostics {
				fmt.Fprintln(os.Stderr, d.String())
			}
			fmt.Fprintf(os.Stderr, "ipdlc: %d diagnostic(s)\n", len(checkErr.Diagnostics))
			return exitDiags
		}
		fmt.Fprintln(os.Stderr, "ipdlc:", err)
		return exitError
	}

	fmt.Printf("ipdlc: ok, %d translation unit(s) checked\n", len(prog.Units()))

	if *managerOrder {
		order, cyclic := prog.ManagerOrder()
		if len(cyclic) > 0 {
			fmt.Fprintln(os.Stderr, "ipdlc: manager/managee hierarchy is cyclic, no handoff order available")
			return exitError
		}
		for _, id := range order {
			fmt.Println(id)
		}
	}

	return exitOK
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return os.ReadFile("/dev/stdin")
	}
	return os.ReadFile(path)
}
