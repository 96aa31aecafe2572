// Package cli turns raw command-line arguments into generation requests.
// The core never sees argument strings; it consumes the Request this
// package produces.
package cli

import (
	"strconv"
	"strings"

	"github.com/dmahmalat/passgen/src/passgen"
)

// Mode selects how the process runs, based solely on the argument shape.
type Mode int

const (
	// ModeInteractive runs the menu loop (no arguments given).
	ModeInteractive Mode = iota
	// ModeBatch generates one password from a single numeric argument.
	ModeBatch
	// ModeAdvanced generates one password from category flags.
	ModeAdvanced
	// ModeServe runs the HTTP service.
	ModeServe
	// ModeHelp prints usage and exits.
	ModeHelp
)

// Config is the fully parsed command line.
type Config struct {
	Mode        Mode
	Request     passgen.Request
	BatchLength int
	Copy        bool
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "--help", "-h", "-?", "/?":
		return true
	}
	return false
}

// countValue parses the value of a `--flag=N` argument. Returns -1 when
// there is no '=' or the value is not a non-negative integer.
func countValue(arg string) int {
	_, val, found := strings.Cut(arg, "=")
	if !found {
		return -1
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// Parse inspects args (excluding the program name) and returns the run
// configuration.
//
// Mode detection mirrors the historical behavior: no arguments means
// interactive; a single argument that does not start with '-' is a batch
// length; "serve" as the first argument starts the HTTP service; anything
// else is advanced flag parsing. Unrecognized flags are silently ignored
// for forward compatibility, and out-of-range counts leave the default in
// place.
func Parse(args []string) Config {
	cfg := Config{
		Mode:        ModeInteractive,
		Request:     passgen.DefaultRequest(),
		BatchLength: passgen.DefaultBatchLength,
	}

	if len(args) == 0 {
		return cfg
	}

	for _, arg := range args {
		if isHelpFlag(arg) {
			cfg.Mode = ModeHelp
			return cfg
		}
	}

	if args[0] == "serve" {
		cfg.Mode = ModeServe
		return cfg
	}

	if len(args) == 1 && !strings.HasPrefix(args[0], "-") {
		cfg.Mode = ModeBatch
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			cfg.BatchLength = n
		}
		return cfg
	}

	cfg.Mode = ModeAdvanced
	for _, arg := range args {
		switch {
		case arg == "--no-letters":
			cfg.Request.Letters.Enabled = false
		case arg == "--no-numbers":
			cfg.Request.Digits.Enabled = false
		case arg == "--no-symbols":
			cfg.Request.Symbols.Enabled = false
		case arg == "--copy", arg == "-c":
			cfg.Copy = true
		case strings.HasPrefix(arg, "--letters="), strings.HasPrefix(arg, "-l="):
			if v := countValue(arg); v >= 0 && v < passgen.MaxCategoryLength {
				cfg.Request.Letters.Count = v
			}
		case strings.HasPrefix(arg, "--numbers="), strings.HasPrefix(arg, "-n="):
			if v := countValue(arg); v >= 0 && v < passgen.MaxCategoryLength {
				cfg.Request.Digits.Count = v
			}
		case strings.HasPrefix(arg, "--symbols="), strings.HasPrefix(arg, "-s="):
			if v := countValue(arg); v >= 0 && v < passgen.MaxCategoryLength {
				cfg.Request.Symbols.Count = v
			}
		}
	}
	return cfg
}

// Usage is the help text for ModeHelp.
const Usage = `passgen - secure password generator

Usage:
  passgen                generate interactively (menu)
  passgen <length>       batch mode: one password of <length> chars (symbols on)
  passgen [flags]        advanced mode with per-category control
  passgen serve          run the HTTP service

Flags:
  --letters=N, -l=N      number of letter characters (default 8)
  --numbers=N, -n=N      number of digit characters (default 4)
  --symbols=N, -s=N      number of symbol characters (default 4)
  --no-letters           disable the letters category
  --no-numbers           disable the digits category
  --no-symbols           disable the symbols category
  --copy, -c             also copy the password to the clipboard
  --help, -h             show this help
`
