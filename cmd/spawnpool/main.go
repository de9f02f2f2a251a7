package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spawnkit/spawnpool/pkg/config"
	"github.com/spawnkit/spawnpool/pkg/logger"
	"github.com/spawnkit/spawnpool/pkg/metrics"
	"github.com/spawnkit/spawnpool/pkg/pool"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	root := &cobra.Command{
		Use:   "spawnpool",
		Short: "Spawnpool - keyed object pool toolkit",
		Long: `Spawnpool is a keyed object pool library for reusable, expensive-to-construct
instances. This CLI runs demo workloads against a pool and reports recycling behavior.`,
	}

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Spawnpool v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	// Templates command to show configured templates
	var templatesConfigFile string
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "List templates configured for a pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New("spawnpool")
			if err := config.Load(templatesConfigFile, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Printf("Templates for pool %q:\n", cfg.Name)
			for _, t := range cfg.Templates {
				fmt.Printf("  - %s (prewarm %d)\n", t.Name, t.Prewarm)
			}
			return nil
		},
	}
	templatesCmd.Flags().StringVarP(&templatesConfigFile, "config", "c", "", "Path to pool configuration YAML file (required)")
	_ = templatesCmd.MarkFlagRequired("config")
	root.AddCommand(templatesCmd)

	// Main simulate command
	var configFile string
	var iterations, maxHeld int
	var seed int64
	var logLevel string
	var enableMetrics bool
	var metricsListen string

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a demo acquire/release workload",
		Long: `Run a randomized acquire/release workload against a pool of demo instances.
The pool is prewarmed per the configuration file, then churned for the requested
number of iterations. A JSON report of recycling behavior is printed at the end.

Example:
  spawnpool simulate --config pool.yaml --iterations 10000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New("spawnpool")
			if configFile != "" {
				if err := config.Load(configFile, cfg); err != nil {
					return err
				}
			} else {
				// Default workload when no config is supplied
				cfg.Templates = []config.TemplateConfig{
					{Name: "enemy", Prewarm: 8},
					{Name: "bullet", Prewarm: 32},
					{Name: "pickup", Prewarm: 4},
				}
			}
			if cmd.Flags().Changed("iterations") {
				cfg.Simulation.Iterations = iterations
			}
			if cmd.Flags().Changed("seed") {
				cfg.Simulation.Seed = seed
			}
			if cmd.Flags().Changed("metrics") {
				cfg.Metrics.Enabled = enableMetrics
			}
			if cmd.Flags().Changed("metrics-listen") {
				cfg.Metrics.Listen = metricsListen
			}
			if maxHeld > 0 {
				cfg.Simulation.MaxHeld = maxHeld
			}
			if cmd.Flags().Changed("log-level") || cfg.Logging.Level == "" {
				cfg.Logging.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSimulation(cfg)
		},
	}

	simulateCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to pool configuration YAML file (optional)")
	simulateCmd.Flags().IntVar(&iterations, "iterations", 1000, "Number of acquire/release rounds")
	simulateCmd.Flags().IntVar(&maxHeld, "max-held", 0, "Cap on concurrently held instances (0 = from config)")
	simulateCmd.Flags().Int64Var(&seed, "seed", 1, "Workload random seed")
	simulateCmd.Flags().StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
	simulateCmd.Flags().BoolVar(&enableMetrics, "metrics", false, "Enable the prometheus scrape endpoint")
	simulateCmd.Flags().StringVar(&metricsListen, "metrics-listen", ":9190", "Prometheus scrape endpoint address")
	root.AddCommand(simulateCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// actor is the demo instance type the workload pools.
type actor struct {
	ID       int
	Template string
	Spawned  time.Time
}

// report summarizes a simulation run for JSON output.
type report struct {
	Pool       string               `json:"pool"`
	Iterations int                  `json:"iterations"`
	Duration   string               `json:"duration"`
	Stats      pool.Stats           `json:"stats"`
	Templates  []pool.TemplateStats `json:"templates"`
}

func runSimulation(cfg *config.Config) error {
	if err := logger.Init(logger.Config{
		Level:    cfg.Logging.Level,
		Encoding: "console",
	}); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	log := logger.With(zap.String("pool", cfg.Name))

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Name)
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			log.Info("serving metrics", zap.String("listen", cfg.Metrics.Listen))
			if err := http.ListenAndServe(cfg.Metrics.Listen, mux); err != nil {
				log.Warn("metrics endpoint stopped", zap.Error(err))
			}
		}()
	}

	nextID := 0
	factory := func(template string) (*actor, error) {
		nextID++
		return &actor{ID: nextID, Template: template, Spawned: time.Now()}, nil
	}

	hooks := pool.Hooks[*actor]{}
	if collector != nil {
		hooks.OnRelease = func(a *actor) { collector.RecordRelease(a.Template) }
	}

	p := pool.New(factory, hooks, log)

	for _, t := range cfg.Templates {
		created := p.Prewarm(t.Name, t.Prewarm, nil)
		if collector != nil {
			collector.RecordPrewarm(t.Name, created)
		}
	}

	templates := make([]string, 0, len(cfg.Templates))
	for _, t := range cfg.Templates {
		templates = append(templates, t.Name)
	}
	if len(templates) == 0 {
		return fmt.Errorf("no templates configured")
	}

	rng := rand.New(rand.NewSource(cfg.Simulation.Seed))
	held := make([]*actor, 0, cfg.Simulation.MaxHeld)
	start := time.Now()

	for i := 0; i < cfg.Simulation.Iterations; i++ {
		acquire := len(held) == 0 ||
			(len(held) < cfg.Simulation.MaxHeld && rng.Intn(2) == 0)
		if acquire {
			template := templates[rng.Intn(len(templates))]
			before := p.Stats().Constructed
			t0 := time.Now()
			a, err := p.Acquire(template)
			if err != nil {
				if collector != nil {
					collector.RecordAcquire(template, metrics.OutcomeFailed, time.Since(t0))
				}
				continue
			}
			if collector != nil {
				outcome := metrics.OutcomeRecycled
				if p.Stats().Constructed > before {
					outcome = metrics.OutcomeConstructed
				}
				collector.RecordAcquire(template, outcome, time.Since(t0))
			}
			held = append(held, a)
		} else {
			j := rng.Intn(len(held))
			p.Release(held[j])
			held[j] = held[len(held)-1]
			held = held[:len(held)-1]
		}
		if collector != nil {
			collector.SetActive(p.ActiveCount())
		}
	}

	p.ReleaseAll()
	if collector != nil {
		collector.SetActive(p.ActiveCount())
		for _, t := range templates {
			collector.SetIdle(t, p.InactiveCount(t))
		}
	}

	out, err := json.MarshalIndent(report{
		Pool:       cfg.Name,
		Iterations: cfg.Simulation.Iterations,
		Duration:   time.Since(start).String(),
		Stats:      p.Stats(),
		Templates:  p.StatsByTemplate(),
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
