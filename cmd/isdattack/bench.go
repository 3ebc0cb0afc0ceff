package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/bench"
)

func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	algName := fs.String("alg", "prange", "algorithm to benchmark")
	suite := fs.String("suite", "hamming", "parameter suite: hamming, goppa, qc, mmt, real")
	runs := fs.Int("runs", bench.DefaultRuns, "runs per configuration")
	workers := fs.Int("workers", 1, "concurrent runs (memory figures need 1)")
	out := fs.String("out", "results", "output directory for csv/ and txt/ reports")
	seed := fs.Uint64("seed", 0, "random seed (0 picks one)")
	interactive := fs.Bool("i", false, "show an interactive progress view")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: isdattack bench [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	alg, err := isdgo.ParseAlgorithm(*algName)
	if err != nil {
		return err
	}
	cfgs, err := bench.Suite(*suite, alg, *runs)
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
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if *interactive && !tty {
		fmt.Fprintln(os.Stderr, helpStyle.Render("stdout is not a terminal, progress view disabled"))
	}

	var rows [][]string
	p := message.NewPrinter(language.English)
	for i, cfg := range cfgs {
		opts := bench.RunOptions{Workers: *workers, Seed: *seed + uint64(i)}
		var results []bench.Result
		if *interactive && tty {
			results, err = runWithProgress(ctx, cfg, opts, i+1, len(cfgs))
		} else {
			fmt.Printf("[%d/%d] %s\n", i+1, len(cfgs), cfg)
			results, err = bench.Run(ctx, cfg, opts)
		}
		if err != nil {
			return err
		}
		st := bench.Summarize(results)
		if _, _, err := bench.Save(*out, cfg, results, st); err != nil {
			return err
		}
		rows = append(rows, []string{
			cfg.Code.String(),
			fmt.Sprintf("(%d,%d) w=%d", cfg.N, cfg.K, cfg.W),
			p.Sprintf("%.1f", st.MedianTime.Seconds()*1e6),
			p.Sprintf("%.1f", st.MedianMemory),
			p.Sprintf("%.1f%%", st.SuccessRate),
		})
	}

	fmt.Println()
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s · %s suite · %d runs", alg, *suite, *runs)))
	fmt.Println(summaryTable(rows))
	fmt.Println(helpStyle.Render("reports written to " + *out))
	return nil
}

func summaryTable(rows [][]string) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(helpStyle).
		Headers("code", "params", "median μs", "median KiB", "success").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}
