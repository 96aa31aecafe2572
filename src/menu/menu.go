// Package menu implements the interactive console mode: a settings loop
// that toggles categories, adjusts lengths, and generates on demand.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmahmalat/passgen/src/output"
	"github.com/dmahmalat/passgen/src/passgen"
)

func onOff(enabled bool) string {
	if enabled {
		return "ON "
	}
	return "OFF"
}

// Run drives the menu loop until the user exits or input ends. Reader and
// writer are injected so tests can script a session.
func Run(r io.Reader, w io.Writer, gen *passgen.Generator, sink output.Sink) {
	scanner := bufio.NewScanner(r)
	req := passgen.DefaultRequest()

	for {
		fmt.Fprintln(w, "=== passgen interactive mode ===")
		fmt.Fprintf(w, "\n[Settings] Total: %d chars\n", req.TotalLength())
		fmt.Fprintf(w, "  Letters: %s (%d) | Numbers: %s (%d) | Symbols: %s (%d)\n",
			onOff(req.Letters.Enabled), req.Letters.Count,
			onOff(req.Digits.Enabled), req.Digits.Count,
			onOff(req.Symbols.Enabled), req.Symbols.Count)

		fmt.Fprintln(w, "\n1. Generate Password")
		fmt.Fprintln(w, "2. Toggle Letters")
		fmt.Fprintln(w, "3. Toggle Numbers")
		fmt.Fprintln(w, "4. Toggle Symbols")
		fmt.Fprintln(w, "5. Set Letter Length")
		fmt.Fprintln(w, "6. Set Number Length")
		fmt.Fprintln(w, "7. Set Symbol Length")
		fmt.Fprintln(w, "8. Exit")
		fmt.Fprint(w, "Select > ")

		if !scanner.Scan() {
			break
		}
		choice := strings.TrimSpace(scanner.Text())
		if choice == "" {
			continue
		}

		switch choice[0] {
		case '1':
			generate(w, gen, req, sink)
		case '2':
			req.Letters.Enabled = !req.Letters.Enabled
		case '3':
			req.Digits.Enabled = !req.Digits.Enabled
		case '4':
			req.Symbols.Enabled = !req.Symbols.Enabled
		case '5':
			if n, ok := promptLength(scanner, w, "letter"); ok {
				req.Letters.Count = n
			}
		case '6':
			if n, ok := promptLength(scanner, w, "number"); ok {
				req.Digits.Count = n
			}
		case '7':
			if n, ok := promptLength(scanner, w, "symbol"); ok {
				req.Symbols.Count = n
			}
		case '8', 'q':
			fmt.Fprintln(w, "Goodbye.")
			return
		}
	}
}

func generate(w io.Writer, gen *passgen.Generator, req passgen.Request, sink output.Sink) {
	res, err := gen.Generate(req)
	if err != nil {
		var verr *passgen.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(w, "[ERROR] %s\n", verr)
		} else {
			fmt.Fprintf(w, "[ERROR] generation failed: %v\n", err)
		}
		return
	}
	if err := sink.Deliver(res); err != nil {
		fmt.Fprintf(w, "[ERROR] %v\n", err)
	}
}

// promptLength reads a new category length; values outside
// [0, MaxCategoryLength) leave the current setting untouched.
func promptLength(scanner *bufio.Scanner, w io.Writer, name string) (int, bool) {
	fmt.Fprintf(w, "Enter %s length: ", name)
	if !scanner.Scan() {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 0 || n >= passgen.MaxCategoryLength {
		return 0, false
	}
	return n, true
}
