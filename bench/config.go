// Package bench runs decoders repeatedly over preset code parameters and
// summarizes time, memory and success rate.
package bench

import (
	"fmt"
	"strings"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/attack"
	"github.com/ericlevine/isdgo/codegen"
)

// DefaultRuns is the number of runs a preset asks for.
const DefaultRuns = 100

// Config is one benchmark: an algorithm, a code and a run count.
type Config struct {
	Algorithm isdgo.Algorithm
	Code      codegen.Kind
	N, K, W   int
	Runs      int

	// Partitions, L1 and L2 are passed to MMT. Zero selects the decoder
	// defaults.
	Partitions int
	L1, L2     int
}

func (c Config) String() string {
	return fmt.Sprintf("%s_%s_n%d_k%d_w%d", c.Algorithm, c.Code, c.N, c.K, c.W)
}

// WithAlgorithm returns c with the algorithm replaced.
func (c Config) WithAlgorithm(alg isdgo.Algorithm) Config {
	c.Algorithm = alg
	return c
}

// WithRuns returns c with the run count replaced.
func (c Config) WithRuns(runs int) Config {
	c.Runs = runs
	return c
}

// WithMMT returns c with the MMT partition count and list sizes replaced.
func (c Config) WithMMT(p, l1, l2 int) Config {
	c.Partitions, c.L1, c.L2 = p, l1, l2
	return c
}

func (c Config) attack() attack.Config {
	return attack.Config{
		Algorithm: c.Algorithm,
		Code:      c.Code,
		N:         c.N,
		K:         c.K,
		W:         c.W,
		Options:   &isdgo.Options{Partitions: c.Partitions, L1: c.L1, L2: c.L2},
	}
}

type params struct{ n, k, w int }

func preset(kind codegen.Kind, p params) Config {
	return Config{Code: kind, N: p.n, K: p.k, W: p.w, Runs: DefaultRuns}
}

func pick(name string, table []params, i int) params {
	if i < 0 || i >= len(table) {
		panic(fmt.Sprintf("bench: %s index %d outside [0, %d)", name, i, len(table)))
	}
	return table[i]
}

var (
	hammingSizes   = []params{{7, 4, 1}, {15, 11, 1}, {31, 26, 1}, {63, 57, 1}}
	hammingWeights = []params{{31, 26, 1}, {31, 26, 3}, {31, 26, 5}, {31, 26, 7}}

	// k is at most n - m·t with m the field degree for n.
	goppaSizes   = []params{{15, 7, 2}, {31, 21, 2}, {63, 51, 2}, {127, 113, 2}}
	goppaWeights = []params{{62, 56, 1}, {63, 51, 2}, {63, 45, 3}, {63, 39, 4}}

	qcSizes   = []params{{30, 20, 2}, {60, 40, 2}, {90, 60, 2}, {120, 80, 2}}
	qcWeights = []params{{60, 40, 1}, {60, 40, 2}, {60, 40, 3}, {60, 40, 4}}

	// Classic McEliece style lengths, with k lowered to n - m·t.
	realGoppa = []params{{2047, 1695, 27}, {3487, 2719, 64}, {4095, 2943, 96}, {6939, 5392, 119}}
	// QC-MDPC style lengths with k a multiple of the block size n - k.
	realQC = []params{{8190, 4095, 142}, {16382, 8191, 159}, {24573, 16382, 199}}
)

// HammingScalingSize returns the i-th Hamming code of growing length, w = 1.
func HammingScalingSize(i int) Config {
	return preset(codegen.Hamming, pick("hamming size", hammingSizes, i))
}

// HammingScalingWeight returns the Hamming(31,26) code with the i-th of the
// weights 1, 3, 5, 7.
func HammingScalingWeight(i int) Config {
	return preset(codegen.Hamming, pick("hamming weight", hammingWeights, i))
}

func GoppaScalingSize(i int) Config {
	return preset(codegen.Goppa, pick("goppa size", goppaSizes, i))
}

func GoppaScalingWeight(i int) Config {
	return preset(codegen.Goppa, pick("goppa weight", goppaWeights, i))
}

func QCScalingSize(i int) Config {
	return preset(codegen.QuasiCyclic, pick("qc size", qcSizes, i))
}

func QCScalingWeight(i int) Config {
	return preset(codegen.QuasiCyclic, pick("qc weight", qcWeights, i))
}

// RealWorldGoppa returns Goppa parameters at the given security level, 0
// through 3.
func RealWorldGoppa(level int) Config {
	return preset(codegen.Goppa, pick("real goppa", realGoppa, level))
}

// RealWorldQC returns quasi-cyclic parameters at the given security level, 0
// through 2.
func RealWorldQC(level int) Config {
	return preset(codegen.QuasiCyclic, pick("real qc", realQC, level))
}

// MMTConfig returns an MMT benchmark with p = 2 and list sizes of 256.
func MMTConfig(kind codegen.Kind, n, k, w int) Config {
	return preset(kind, params{n, k, w}).
		WithAlgorithm(isdgo.AlgorithmMMT).
		WithMMT(2, isdgo.DefaultListSize, isdgo.DefaultListSize)
}

// Suites lists the names accepted by Suite.
var Suites = []string{"hamming", "goppa", "qc", "mmt", "real"}

// Suite returns the configurations of a named suite for alg, each with the
// given run count. The scaling suites sweep size, then weight. The real
// suite takes the two lowest security levels of each family. Patterson only
// runs on Goppa codes; other configurations are dropped for it, and a suite
// with nothing left is an error.
func Suite(name string, alg isdgo.Algorithm, runs int) ([]Config, error) {
	var out []Config
	sweep := func(size, weight func(int) Config) {
		for i := 0; i < 4; i++ {
			out = append(out, size(i))
		}
		for i := 0; i < 4; i++ {
			out = append(out, weight(i))
		}
	}
	switch strings.ToLower(name) {
	case "hamming":
		sweep(HammingScalingSize, HammingScalingWeight)
	case "goppa":
		sweep(GoppaScalingSize, GoppaScalingWeight)
	case "qc":
		sweep(QCScalingSize, QCScalingWeight)
	case "mmt":
		sweep(HammingScalingSize, HammingScalingWeight)
		sweep(GoppaScalingSize, GoppaScalingWeight)
		sweep(QCScalingSize, QCScalingWeight)
		for i := range out {
			out[i] = out[i].WithAlgorithm(isdgo.AlgorithmMMT).
				WithMMT(2, isdgo.DefaultListSize, isdgo.DefaultListSize)
		}
		alg = isdgo.AlgorithmMMT
	case "real":
		for i := 0; i < 2; i++ {
			out = append(out, RealWorldGoppa(i), RealWorldQC(i))
		}
	default:
		return nil, fmt.Errorf("bench: %w: unknown suite %q", isdgo.ErrInvalidParams, name)
	}

	kept := out[:0]
	for _, c := range out {
		if alg == isdgo.AlgorithmPatterson && c.Code != codegen.Goppa {
			continue
		}
		c = c.WithAlgorithm(alg)
		if runs > 0 {
			c = c.WithRuns(runs)
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("bench: %w: suite %q has no goppa codes for %s", isdgo.ErrWrongCode, name, alg)
	}
	return kept, nil
}
