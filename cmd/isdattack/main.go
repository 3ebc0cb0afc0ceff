package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/attack"
	"github.com/ericlevine/isdgo/bench"
	"github.com/ericlevine/isdgo/goppa"
	"github.com/ericlevine/isdgo/isd"
)

func usage() {
	names := make([]string, len(isdgo.Algorithms))
	for i, a := range isdgo.Algorithms {
		names[i] = a.String()
	}
	fmt.Fprintf(os.Stderr, "Usage: isdattack <algorithm> [flags]\n")
	fmt.Fprintf(os.Stderr, "       isdattack bench [flags]\n\n")
	fmt.Fprintf(os.Stderr, "Generate a code, inject a random error and recover it with a decoder.\n\n")
	fmt.Fprintf(os.Stderr, "Algorithms: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(os.Stderr, "Suites:     %s\n\n", strings.Join(bench.Suites, ", "))
	fmt.Fprintf(os.Stderr, "Run 'isdattack <algorithm> -h' or 'isdattack bench -h' for flags.\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch cmd := os.Args[1]; cmd {
	case "-h", "-help", "--help", "help":
		usage()
		return
	case "bench":
		err = runBench(os.Args[2:])
	default:
		err = runAttack(cmd, os.Args[2:])
	}
	if errors.Is(err, errDecodeFailed) {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

// errDecodeFailed is returned once the report has been printed and only the
// exit status remains to be set.
var errDecodeFailed = errors.New("decoding failed")

// setupLogging installs a logger in every package that logs. Without -v only
// warnings reach stderr.
func setupLogging(verbose bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, err = cfg.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	isd.SetLogger(logger)
	goppa.SetLogger(logger)
	attack.SetLogger(logger)
	bench.SetLogger(logger)
	return logger, nil
}
