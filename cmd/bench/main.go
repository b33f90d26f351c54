// Command bench runs a synthetic workload against a bidirectional map and
// exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"os"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/bidict/bidict"
	pmet "github.com/IvanBrykalov/bidict/metrics/prom"
	"github.com/IvanBrykalov/bidict/syncbidict"
)

type config struct {
	capacity int
	ordered  bool
	policy   string

	workers  int
	duration time.Duration
	readPct  int
	delPct   int

	keys    int
	vals    int
	seed    int64
	preload int

	pprofAddr   string
	metricsAddr string
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:          "bench",
		Short:        "Run a put/get/remove workload against a bidict",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := baseLogger(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd, cfg, logr.FromSlogHandler(base.Handler()))
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.capacity, "cap", 100_000, "initial capacity hint (entries)")
	f.BoolVar(&cfg.ordered, "ordered", false, "use an ordered bidict")
	f.StringVar(&cfg.policy, "policy", "default", "duplication policy for puts: default | raise | dropold")
	f.IntVar(&cfg.workers, "workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
	f.DurationVar(&cfg.duration, "duration", 10*time.Second, "benchmark duration")
	f.IntVar(&cfg.readPct, "reads", 80, "read percentage [0..100]")
	f.IntVar(&cfg.delPct, "removes", 5, "remove percentage [0..100-reads]")
	f.IntVar(&cfg.keys, "keys", 1_000_000, "keyspace size")
	f.IntVar(&cfg.vals, "vals", 1_000_000, "valuespace size")
	f.Int64Var(&cfg.seed, "seed", time.Now().UnixNano(), "random seed")
	f.IntVar(&cfg.preload, "preload", 0, "preload entries (0 = cap/2)")
	f.StringVar(&cfg.pprofAddr, "pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
	f.StringVar(&cfg.metricsAddr, "http", ":8080", "serve Prometheus metrics at addr; empty = disabled")
	registerLoggingFlags(cmd)
	return cmd
}

func parsePolicy(s string) (bidict.OnDup, error) {
	switch s {
	case "default":
		return bidict.OnDupDefault, nil
	case "raise":
		return bidict.OnDupRaise, nil
	case "dropold":
		return bidict.OnDupDropOld, nil
	default:
		return bidict.OnDup{}, fmt.Errorf("unknown policy: %q (use default, raise or dropold)", s)
	}
}

func run(ctx context.Context, cmd *cobra.Command, cfg config, log logr.Logger) error {
	od, err := parsePolicy(cfg.policy)
	if err != nil {
		return err
	}
	if cfg.keys <= 0 || cfg.vals <= 0 {
		return fmt.Errorf("keys and vals must be positive")
	}
	if cfg.readPct < 0 || cfg.delPct < 0 || cfg.readPct+cfg.delPct > 100 {
		return fmt.Errorf("invalid mix: reads=%d removes=%d", cfg.readPct, cfg.delPct)
	}

	// ---- pprof server (on DefaultServeMux) ----
	if cfg.pprofAddr != "" {
		go func() {
			log.Info("pprof: serving", "addr", cfg.pprofAddr)
			log.Error(http.ListenAndServe(cfg.pprofAddr, nil), "pprof server stopped")
		}()
	}

	// ---- Build map ----
	opt := bidict.Options[string, int]{
		Capacity: cfg.capacity,
		OnDup:    od,
		Logger:   log.WithName("bidict"),
	}
	if cfg.metricsAddr != "" {
		opt.Metrics = pmet.New(nil, "bidict", "bench", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Info("metrics: serving", "addr", cfg.metricsAddr)
			log.Error(http.ListenAndServe(cfg.metricsAddr, nil), "metrics server stopped")
		}()
	}
	var inner bidict.Map[string, int]
	if cfg.ordered {
		inner = bidict.NewOrdered(opt)
	} else {
		inner = bidict.New(opt)
	}
	m := syncbidict.New(inner)

	// ---- Preload half capacity ----
	pl := cfg.preload
	if pl == 0 {
		pl = cfg.capacity / 2
	}
	for i := 0; i < pl; i++ {
		if _, err := m.ForcePut("k:"+strconv.Itoa(i%cfg.keys), i%cfg.vals); err != nil {
			return err
		}
	}
	log.V(1).Info("preloaded", "entries", m.Len())

	// ---- Load generation ----
	var reads, hits, puts, rejects, evicted, removes, total atomic.Uint64
	ctx, cancel := context.WithTimeout(ctx, cfg.duration)
	defer cancel()

	workers := max(cfg.workers, 1)
	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			// rand.Rand is not goroutine-safe: one per worker.
			r := rand.New(rand.NewSource(cfg.seed + int64(w)*9973))
			for ctx.Err() == nil {
				total.Add(1)
				k := "k:" + strconv.Itoa(r.Intn(cfg.keys))
				switch p := r.Intn(100); {
				case p < cfg.readPct:
					reads.Add(1)
					var mismatch error
					m.View(func(b bidict.Reader[string, int]) {
						v, ok := b.Get(k)
						if !ok {
							return
						}
						hits.Add(1)
						if back, _ := b.GetKey(v); back != k {
							mismatch = fmt.Errorf("inverse mismatch: %s -> %d -> %s", k, v, back)
						}
					})
					if mismatch != nil {
						return mismatch
					}
				case p < cfg.readPct+cfg.delPct:
					removes.Add(1)
					_, _ = m.Remove(k)
				default:
					puts.Add(1)
					ev, err := m.Put(k, r.Intn(cfg.vals))
					if err != nil {
						rejects.Add(1)
						continue
					}
					evicted.Add(uint64(len(ev)))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	// ---- Verify ----
	items := m.Items()
	for _, it := range items {
		if k, ok := m.GetKey(it.Value); !ok || k != it.Key {
			return fmt.Errorf("bijection broken at %s -> %d", it.Key, it.Value)
		}
	}

	// ---- Report ----
	ops := total.Load()
	readsN := reads.Load()
	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hits.Load()) / float64(readsN) * 100
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "policy=%s ordered=%v workers=%d keys=%d vals=%d dur=%v seed=%d\n",
		cfg.policy, cfg.ordered, workers, cfg.keys, cfg.vals, elapsed, cfg.seed)
	fmt.Fprintf(out, "ops=%d (%.0f ops/s)  reads=%d  puts=%d  removes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, puts.Load(), removes.Load())
	fmt.Fprintf(out, "hit-rate=%.2f%%  rejected=%d  evicted=%d\n", hitRate, rejects.Load(), evicted.Load())
	fmt.Fprintf(out, "Len()=%d\n", len(items))
	return nil
}

func registerLoggingFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("loglevel", "warn", "set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringP("logformat", "f", "text", "set the log format (text, json)")
}

func baseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := loggerLevel(cmd.Flag("loglevel").Value.String())
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	switch format := cmd.Flag("logformat").Value.String(); format {
	case "json":
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	return slog.New(handler), nil
}

// loggerLevel maps a flag value to a slog level. logr V(n) becomes slog
// level -n, so rejected writes and evictions show at "debug".
func loggerLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", s)
	}
}
