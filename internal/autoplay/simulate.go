package autoplay

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/venue-arcade/internal/config"
	"github.com/vovakirdan/venue-arcade/internal/engine"
	"github.com/vovakirdan/venue-arcade/internal/registry"
)

// Options configures a simulation batch.
type Options struct {
	GameID     string
	Runs       int
	Seconds    float64 // Cap on simulated play per run
	TickRate   int
	Seed       int64 // Run i uses Seed+i
	Accuracy   float64
	ConfigPath string
	Difficulty config.DifficultyPreset
	Workers    int // Zero means GOMAXPROCS
	Logger     *log.Logger
}

// Result is the outcome of one simulated run.
type Result struct {
	Run    int             `json:"run"`
	Seed   int64           `json:"seed"`
	Reason string          `json:"reason"` // "lives", "time" or "cap"
	Final  engine.Snapshot `json:"final"`
}

// Simulate plays opts.Runs independent sessions in parallel and returns
// their results in run order. Each run owns its session; nothing is shared.
func Simulate(ctx context.Context, opts Options) ([]Result, error) {
	if !registry.Exists(opts.GameID) {
		return nil, fmt.Errorf("autoplay: %w %q", registry.ErrUnknownGame, opts.GameID)
	}
	if opts.Runs <= 0 {
		opts.Runs = 1
	}
	if opts.Seconds <= 0 {
		opts.Seconds = 60
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := make([]Result, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := range opts.Runs {
		g.Go(func() error {
			r, err := play(ctx, opts, i)
			if err != nil {
				return err
			}
			logger.Debug("run finished", "game", opts.GameID, "run", i, "score", r.Final.Score, "reason", r.Reason)
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func play(ctx context.Context, opts Options, run int) (Result, error) {
	seed := opts.Seed + int64(run)
	game, err := registry.Create(opts.GameID, registry.Options{
		Seed:       seed,
		ConfigPath: opts.ConfigPath,
		Difficulty: opts.Difficulty,
	})
	if err != nil {
		return Result{}, fmt.Errorf("autoplay: run %d: %w", run, err)
	}

	s := game.Engine()
	bot := NewBot(s.Config().HitMode, opts.Accuracy, rand.New(rand.NewSource(seed)))
	dt := 1 / float64(opts.TickRate)
	ticks := int(opts.Seconds * float64(opts.TickRate))

	s.Start()
	res := Result{Run: run, Seed: seed, Reason: "cap"}
	for i := range ticks {
		// Poll cancellation once per simulated second.
		if i%opts.TickRate == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		snap := s.Tick(dt)
		if over := gameOver(snap); over != "" {
			res.Reason = over
			break
		}
		bot.Step(s, snap, dt)
	}
	res.Final = s.Snapshot()
	if res.Reason == "cap" {
		if over := gameOver(res.Final); over != "" {
			res.Reason = over
		}
	}
	return res, nil
}

// gameOver returns the end reason if snap carries the GameOver event.
func gameOver(snap engine.Snapshot) string {
	for _, ev := range snap.Events {
		if ev.Kind == engine.EventGameOver {
			return ev.Reason
		}
	}
	return ""
}

// Summary aggregates a batch.
type Summary struct {
	Runs      int            `json:"runs"`
	Best      int            `json:"best"`
	Worst     int            `json:"worst"`
	Mean      float64        `json:"mean"`
	Median    int            `json:"median"`
	MeanLevel float64        `json:"mean_level"`
	Reasons   map[string]int `json:"reasons"`
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	sum := Summary{Runs: len(results), Reasons: make(map[string]int)}
	if len(results) == 0 {
		return sum
	}

	scores := make([]int, 0, len(results))
	var total, levels int
	for _, r := range results {
		scores = append(scores, r.Final.Score)
		total += r.Final.Score
		levels += r.Final.Level
		sum.Reasons[r.Reason]++
	}
	slices.Sort(scores)

	sum.Worst = scores[0]
	sum.Best = scores[len(scores)-1]
	sum.Median = scores[len(scores)/2]
	sum.Mean = float64(total) / float64(len(results))
	sum.MeanLevel = float64(levels) / float64(len(results))
	return sum
}
