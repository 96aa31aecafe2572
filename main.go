package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/dmahmalat/passgen/src/cli"
	"github.com/dmahmalat/passgen/src/menu"
	"github.com/dmahmalat/passgen/src/output"
	"github.com/dmahmalat/passgen/src/passgen"
	"github.com/dmahmalat/passgen/src/server"
)

func main() {
	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	cfg := cli.Parse(os.Args[1:])

	switch cfg.Mode {
	case cli.ModeHelp:
		fmt.Print(cli.Usage)

	case cli.ModeServe:
		runServer(log)

	case cli.ModeBatch:
		gen := passgen.NewGenerator()
		// Batch mode keeps the historical default: symbols on.
		pw, err := gen.Simple(cfg.BatchLength, true)
		if err != nil {
			exitErr(err)
		}
		res := passgen.Result{Password: pw, Length: len(pw)}
		if err := (output.Console{W: os.Stdout}).Deliver(res); err != nil {
			exitErr(err)
		}

	case cli.ModeAdvanced:
		gen := passgen.NewGenerator()
		res, err := gen.Generate(cfg.Request)
		if err != nil {
			exitErr(err)
		}
		sink := output.Multi{output.Console{W: os.Stdout}}
		if cfg.Copy {
			sink = append(sink, output.Clipboard{})
		}
		if err := sink.Deliver(res); err != nil {
			exitErr(err)
		}

	case cli.ModeInteractive:
		gen := passgen.NewGenerator()
		menu.Run(os.Stdin, os.Stdout, gen, output.Console{W: os.Stdout})
	}
}

// runServer starts the HTTP service. The entropy stream defaults to the
// platform CSPRNG; setting SERIAL_DEVICE_NAME switches to a hardware TRNG
// on a serial port. Either way the stream is wrapped for concurrent use
// and monitored in the background.
func runServer(log *zap.SugaredLogger) {
	var (
		entropy io.Reader
		health  *passgen.Health
		err     error
	)

	if os.Getenv("SERIAL_DEVICE_NAME") != "" {
		entropy, health, err = passgen.NewSerialEntropyFromEnv()
		if err != nil {
			log.Fatalw("hardware entropy source failed", "error", err)
		}
	} else {
		entropy = rand.Reader
		health = passgen.NewHealth()
		if err := passgen.CheckEntropy(entropy, health); err != nil {
			log.Fatalw("entropy source failed initial check", "error", err)
		}
		health.Set(true, "")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "777"
	}

	locked := passgen.NewLockedReader(entropy)
	log.Infow("starting server", "port", port)
	server.New(port, locked, health, log).RunOrDie()
}

func exitErr(err error) {
	var verr *passgen.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "[ERROR] %s\n", verr)
	} else {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
	}
	os.Exit(1)
}
