package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/attack"
	"github.com/ericlevine/isdgo/codegen"
)

func runAttack(name string, args []string) error {
	alg, err := isdgo.ParseAlgorithm(name)
	if err != nil {
		usage()
		return err
	}
	fs := flag.NewFlagSet(alg.String(), flag.ContinueOnError)
	n := fs.Int("n", 20, "code length")
	k := fs.Int("k", 10, "code dimension")
	w := fs.Int("w", 2, "error weight (the degree t for goppa codes)")
	code := fs.String("code", "", "code type: random, hamming, goppa, qc (default random, goppa for patterson)")
	p := fs.Int("p", isdgo.DefaultPartitions, "MMT partition count")
	l1 := fs.Int("l1", isdgo.DefaultListSize, "MMT first list size")
	l2 := fs.Int("l2", isdgo.DefaultListSize, "MMT second list size")
	iterations := fs.Int("iterations", isdgo.DefaultMaxIterations, "maximum ISD iterations")
	list := fs.Int("list", isdgo.DefaultListSize, "Ball-Collision and BJMM samples per list")
	patterns := fs.Int("patterns", isdgo.DefaultMaxPatterns, "Patterson completion and brute-force budget")
	solver := fs.String("solver", "euclid", "Patterson key equation solver: euclid or bm")
	seed := fs.Uint64("seed", 0, "random seed (0 picks one)")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: isdattack %s [flags]\n\nFlags:\n", alg)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	kindName := *code
	if kindName == "" {
		kindName = codegen.Random.String()
		if alg == isdgo.AlgorithmPatterson {
			kindName = codegen.Goppa.String()
		}
	}
	kind, err := codegen.ParseKind(kindName)
	if err != nil {
		return err
	}
	keq, err := isdgo.ParseKeyEquation(*solver)
	if err != nil {
		return err
	}

	logger, err := setupLogging(*verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	cfg := attack.Config{
		Algorithm: alg,
		Code:      kind,
		N:         *n,
		K:         *k,
		W:         *w,
		Options: &isdgo.Options{
			MaxIterations: *iterations,
			ListSize:      *list,
			Partitions:    *p,
			L1:            *l1,
			L2:            *l2,
			MaxPatterns:   *patterns,
			KeyEquation:   keq,
		},
	}
	rep, err := tryRun(cfg, rand.New(rand.NewPCG(*seed, 0)))
	if err != nil {
		return err
	}
	fmt.Print(renderReport(rep, *seed))
	if !rep.Outcome.Success() {
		return errDecodeFailed
	}
	return nil
}

// tryRun calls attack.Run but recovers from panics a decoder may raise on
// degenerate input, converting them to errors.
func tryRun(cfg attack.Config, rng *rand.Rand) (rep *attack.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			rep = nil
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return attack.Run(cfg, rng)
}

func renderReport(rep *attack.Report, seed uint64) string {
	cfg := rep.Config
	var b strings.Builder
	b.WriteString(titleStyle.Render("isdattack · "+cfg.Algorithm.String()) + "\n\n")
	b.WriteString(field("Code", fmt.Sprintf("%s (n=%d, k=%d, w=%d)", cfg.Code, cfg.N, cfg.K, cfg.W)))
	b.WriteString(field("Seed", fmt.Sprint(seed)))
	b.WriteString(field("Injected error", formatVector(rep.Injected)))
	if rep.Received != nil {
		b.WriteString(field("Received", formatVector(rep.Received)))
	} else {
		b.WriteString(field("Received", helpStyle.Render("syndrome only")))
	}
	b.WriteString(field("Decoded error", formatVector(rep.Decoded)))
	b.WriteString(field("Time", fmt.Sprintf("%d μs", rep.Metrics.Elapsed.Microseconds())))
	b.WriteString(field("Peak memory", fmt.Sprintf("%d KiB", rep.Metrics.PeakBytes/1024)))
	b.WriteString("\n")

	switch rep.Outcome {
	case attack.Exact:
		b.WriteString(successStyle.Render("success: found the exact injected error"))
	case attack.Alternative:
		b.WriteString(successStyle.Render("success: found an alternative error of weight ≤ w"))
	case attack.Invalid:
		b.WriteString(errorStyle.Render("failure: decoder returned an invalid error vector"))
	default:
		msg := "failure: no error vector found"
		if rep.Err != nil {
			msg += " (" + rep.Err.Error() + ")"
		}
		b.WriteString(failStyle.Render(msg))
	}
	b.WriteString("\n")
	return b.String()
}
