// Package attack runs one decoder against a freshly generated code with a
// known injected error and classifies what came back.
package attack

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/bitutil"
	"github.com/ericlevine/isdgo/codegen"
	"github.com/ericlevine/isdgo/goppa"
	"github.com/ericlevine/isdgo/isd"
	"github.com/ericlevine/isdgo/profiler"
)

// Outcome classifies a decoder result against the injected error.
type Outcome int

const (
	// Failed means the decoder gave up without a candidate.
	Failed Outcome = iota
	// Exact means the decoder returned the injected error.
	Exact
	// Alternative means the decoder returned a different error of weight at
	// most w with the same syndrome.
	Alternative
	// Invalid means the returned vector does not explain the syndrome or is
	// too heavy. Decoders verify their output, so this indicates a bug.
	Invalid
)

func (o Outcome) String() string {
	switch o {
	case Failed:
		return "failed"
	case Exact:
		return "exact"
	case Alternative:
		return "alternative"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Success reports whether the outcome is a valid decoding.
func (o Outcome) Success() bool {
	return o == Exact || o == Alternative
}

// Config describes a single attack.
type Config struct {
	Algorithm isdgo.Algorithm
	Code      codegen.Kind
	N, K, W   int

	// Options is passed to the decoder. When its Rand is nil the runner's
	// generator is used, so a seeded runner gives reproducible attacks.
	Options *isdgo.Options
}

func (c Config) String() string {
	return fmt.Sprintf("%s on %s (%d,%d) w=%d", c.Algorithm, c.Code, c.N, c.K, c.W)
}

// Report is the result of Run.
type Report struct {
	Config   Config
	Code     *codegen.Code
	Injected *bitutil.BitArray

	// Received is the corrupted first row of G. It is nil for MMT, which is
	// given the syndrome of the injected error instead.
	Received *bitutil.BitArray
	Decoded  *bitutil.BitArray
	Outcome  Outcome
	Metrics  profiler.Metrics

	// Err is the decoder error when Outcome is Failed.
	Err error
}

// Run generates a code, corrupts its first codeword with a random error of
// weight W and runs the configured decoder on it. Decoder exhaustion is
// reported as a Failed outcome; invalid configurations are returned as
// errors.
func Run(cfg Config, rng *rand.Rand) (*Report, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Algorithm == isdgo.AlgorithmPatterson && cfg.Code != codegen.Goppa {
		return nil, fmt.Errorf("attack: %w: patterson needs a goppa code, got %s", isdgo.ErrWrongCode, cfg.Code)
	}
	code, err := codegen.Generate(cfg.Code, cfg.N, cfg.K, cfg.W, rng)
	if err != nil {
		return nil, fmt.Errorf("attack: %w", err)
	}
	opts := cfg.Options.WithDefaults()
	if cfg.Options == nil || cfg.Options.Rand == nil {
		opts.Rand = rng
	}

	injected := bitutil.NewBitArrayFromIndices(cfg.N, rng.Perm(cfg.N)[:cfg.W])
	rep := &Report{Config: cfg, Code: code, Injected: injected}
	target := isdgo.Syndrome(injected, code.H)
	var obs isdgo.Observation
	if cfg.Algorithm == isdgo.AlgorithmMMT {
		obs = isdgo.SyndromeOf(target)
	} else {
		rep.Received = isdgo.ApplyErrors(code.G.Row(0, nil), injected)
		obs = isdgo.ReceivedWord(rep.Received)
	}

	log := Logger().With(zap.Stringer("config", cfg))
	log.Debug("attack started", zap.Stringer("injected", injected))

	var decoded *bitutil.BitArray
	var decodeErr error
	rep.Metrics = profiler.Measure(func() {
		decoded, decodeErr = decode(cfg.Algorithm, obs, code, cfg.W, &opts)
	})

	switch {
	case errors.Is(decodeErr, isdgo.ErrNotFound):
		rep.Outcome = Failed
		rep.Err = decodeErr
	case decodeErr != nil:
		return nil, fmt.Errorf("attack: %w", decodeErr)
	default:
		rep.Decoded = decoded
		rep.Outcome = Classify(decoded, injected, code.H, target, cfg.W)
	}
	log.Debug("attack finished",
		zap.Stringer("outcome", rep.Outcome),
		zap.Duration("elapsed", rep.Metrics.Elapsed),
		zap.Uint64("peak_bytes", rep.Metrics.PeakBytes))
	if rep.Outcome == Invalid {
		log.Warn("decoder returned an invalid error vector", zap.Stringer("decoded", decoded))
	}
	return rep, nil
}

func decode(alg isdgo.Algorithm, obs isdgo.Observation, code *codegen.Code, w int, opts *isdgo.Options) (*bitutil.BitArray, error) {
	switch alg {
	case isdgo.AlgorithmPrange:
		return isd.Prange(obs, code.H, w, opts)
	case isdgo.AlgorithmStern:
		return isd.Stern(obs, code.H, w, opts)
	case isdgo.AlgorithmLeeBrickell:
		return isd.LeeBrickell(obs, code.H, w, opts)
	case isdgo.AlgorithmBallCollision:
		return isd.BallCollision(obs, code.H, w, opts)
	case isdgo.AlgorithmBJMM:
		return isd.BJMM(obs, code.H, w, opts)
	case isdgo.AlgorithmMMT:
		return isd.MMT(obs, code.H, w, opts)
	case isdgo.AlgorithmPatterson:
		return goppa.Decode(obs.Received, code.H, code.Goppa, w, opts)
	}
	return nil, fmt.Errorf("%w: unknown algorithm %v", isdgo.ErrInvalidParams, alg)
}

// Classify compares a decoded error with the injected one. target is H·e for
// the injected error e.
func Classify(decoded, injected *bitutil.BitArray, h *bitutil.BitMatrix, target *bitutil.BitArray, w int) Outcome {
	switch {
	case decoded == nil:
		return Failed
	case !isdgo.Verify(decoded, h, target, w):
		return Invalid
	case decoded.Equals(injected):
		return Exact
	default:
		return Alternative
	}
}
