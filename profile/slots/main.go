// Profiling:
// go build ./profile/slots
// ./slots --mode=allocs
// go tool pprof -http=":8000" -nodefraction=0.001 ./slots mem.pprof

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/edwinsyarief/slotmap"
)

var errUnknownMode = errors.New("unknown profile mode")

type body struct {
	V int64
	W int64
}

type config struct {
	Rounds     int
	Iters      int
	Objects    int
	EraseRatio float64
	Mode       string
	Path       string
	LogLevel   string
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config{}
	flagSet := flag.NewFlagSet("slots", flag.ContinueOnError)
	flagSet.IntVar(&cfg.Rounds, "rounds", 50, "Number of fresh slot maps to churn")
	flagSet.IntVar(&cfg.Iters, "iters", 10000, "Insert/erase iterations per round")
	flagSet.IntVarP(&cfg.Objects, "objects", "n", 1000, "Objects inserted per iteration")
	flagSet.Float64Var(&cfg.EraseRatio, "erase-ratio", 1.0, "Fraction of objects erased per iteration")
	flagSet.StringVar(&cfg.Mode, "mode", "allocs", "Profile mode: allocs, mem or cpu")
	flagSet.StringVar(&cfg.Path, "path", ".", "Directory the profile is written to")
	flagSet.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	var mode func(*profile.Profile)
	switch cfg.Mode {
	case "allocs":
		mode = profile.MemProfileAllocs
	case "mem":
		mode = profile.MemProfile
	case "cpu":
		mode = profile.CPUProfile
	default:
		return fmt.Errorf("%w: %q", errUnknownMode, cfg.Mode)
	}

	log.Info().
		Int("rounds", cfg.Rounds).
		Int("iters", cfg.Iters).
		Int("objects", cfg.Objects).
		Float64("erase_ratio", cfg.EraseRatio).
		Str("mode", cfg.Mode).
		Msg("profiling slot map churn")

	p := profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet)
	start := time.Now()
	live, stale := churn(cfg)
	p.Stop()

	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("live", live).
		Int("stale_rejected", stale).
		Msg("done")
	return nil
}

// churn inserts and erases objects through handles and returns the number of
// objects left in the last map and how many stale lookups were rejected.
func churn(cfg config) (live, stale int) {
	eraseCount := max(int(float64(cfg.Objects)*cfg.EraseRatio), 0)
	handles := make([]slotmap.Handle[body], 0, cfg.Objects)
	var m *slotmap.SlotMap[body]

	for range cfg.Rounds {
		m = slotmap.New[body](cfg.Objects)
		for range cfg.Iters {
			handles = handles[:0]
			for i := range cfg.Objects {
				h, _ := m.CreateHandle(m.Insert(body{V: int64(i)}))
				handles = append(handles, h)
			}
			for p := range m.Pointers() {
				p.W += p.V
			}
			for _, h := range handles[:min(eraseCount, len(handles))] {
				m.EraseHandle(h)
			}
			for _, h := range handles {
				if _, ok := m.Get(h); !ok {
					stale++
				}
			}
		}
	}
	if m != nil {
		live = m.Len()
	}
	return live, stale
}
