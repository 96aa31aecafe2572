// Package output delivers generated passwords to the user. The generation
// core hands over a Result and has no say in how it is displayed or copied.
package output

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/dmahmalat/passgen/src/passgen"
)

// Sink receives a finished generation result.
type Sink interface {
	Deliver(res passgen.Result) error
}

// Console writes the password and its category breakdown to w.
type Console struct {
	W io.Writer
}

func (c Console) Deliver(res passgen.Result) error {
	// Single-pool results carry no breakdown; print the short form.
	if res.Letters == 0 && res.Digits == 0 && res.Symbols == 0 {
		_, err := fmt.Fprintf(c.W, ">> RESULT (%d chars): %s\n", res.Length, res.Password)
		return err
	}
	_, err := fmt.Fprintf(c.W, ">> RESULT (%d chars: L=%d N=%d S=%d): %s\n",
		res.Length, res.Letters, res.Digits, res.Symbols, res.Password)
	return err
}

// Clipboard copies the password to the system clipboard.
type Clipboard struct{}

func (Clipboard) Deliver(res passgen.Result) error {
	if err := clipboard.WriteAll(res.Password); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Multi fans a result out to several sinks, stopping at the first failure.
type Multi []Sink

func (m Multi) Deliver(res passgen.Result) error {
	for _, s := range m {
		if err := s.Deliver(res); err != nil {
			return err
		}
	}
	return nil
}
