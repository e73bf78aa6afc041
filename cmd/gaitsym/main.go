package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"gaitsym/adapters/progress"
	"gaitsym/adapters/rng"
	"gaitsym/app"
	"gaitsym/domain/core"
	"gaitsym/domain/symmetry"
	"gaitsym/internal/simulate"
)

func main() {
	// Optional .env for worker/seed defaults; absence is fine.
	_ = godotenv.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "gaitsym",
		Short: "Gait-symmetry indices and Monte Carlo detection-power sweeps",
	}

	rootCmd.AddCommand(
		newSweepCmd(logger),
		newConvertCmd(),
		newLimitsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sweepOutput is the JSON surface of one sweep run. Durable storage of the
// tensor is the caller's concern; the CLI only prints it.
type sweepOutput struct {
	BatchID     string          `json:"batch_id"`
	GroupSizes  []int           `json:"group_sizes"`
	Metrics     []symmetry.Kind `json:"metrics"`
	MeanRatios  []float64       `json:"mean_ratios"`
	NoiseLevels []float64       `json:"noise_levels"`
	Null        bool            `json:"null"`
	Seed        int64           `json:"seed"`
	// Counts is the flat 4-D tensor, noise axis innermost, in axis order
	// (group size, metric, mean ratio, noise level).
	Counts    []float64 `json:"counts"`
	RuntimeMs int64     `json:"runtime_ms"`
}

func newSweepCmd(logger *slog.Logger) *cobra.Command {
	var (
		metricsFlag    string
		ratiosFlag     string
		noisesFlag     string
		groupSizesFlag string
		groupCount     int
		nullMode       bool
		useFloat32     bool
		seed           int64
		workers        int
		batchID        string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the parallel detection-power sweep",
		Long: `Run a Monte Carlo power sweep over {metric x mean-ratio x noise x group-size}.

Example: gaitsym sweep --ratios 1.01,1.05,1.1 --noises 0.05,0.1,0.2 \
  --group-sizes 10,25,50 --group-count 1000 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(metricsFlag)
			if err != nil {
				return err
			}
			ratios, err := parseFloats(ratiosFlag)
			if err != nil {
				return fmt.Errorf("invalid --ratios: %w", err)
			}
			noises, err := parseFloats(noisesFlag)
			if err != nil {
				return fmt.Errorf("invalid --noises: %w", err)
			}
			groupSizes, err := parseInts(groupSizesFlag)
			if err != nil {
				return fmt.Errorf("invalid --group-sizes: %w", err)
			}

			req := app.PowerSweepRequest{
				Metrics:     kinds,
				MeanRatios:  ratios,
				NoiseLevels: noises,
				GroupSizes:  groupSizes,
				GroupCount:  groupCount,
				Null:        nullMode,
				Seed:        seed,
				BatchID:     core.BatchID(batchID),
			}
			if useFloat32 {
				req.Precision = simulate.Float32
			}
			if req.BatchID == "" {
				req.BatchID = core.BatchID(core.NewID())
			}
			if workers <= 0 {
				workers = envWorkers()
			}

			logger.Info("starting sweep",
				"batch_id", req.BatchID.String(),
				"metrics", len(req.Metrics),
				"ratios", len(req.MeanRatios),
				"noises", len(req.NoiseLevels),
				"group_sizes", len(req.GroupSizes),
				"group_count", req.GroupCount,
				"null", req.Null,
				"workers", workers)

			sink := progress.NewLogger(logger, app.TotalSampleUnits(req))
			svc := app.NewPowerSweepService(rng.New(), sink, workers)

			start := time.Now()
			tensor, err := svc.Run(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("sweep failed: %w", err)
			}

			out := sweepOutput{
				BatchID:     req.BatchID.String(),
				GroupSizes:  tensor.GroupSizes,
				Metrics:     tensor.Metrics,
				MeanRatios:  tensor.MeanRatios,
				NoiseLevels: tensor.NoiseLevels,
				Null:        req.Null,
				Seed:        req.Seed,
				Counts:      tensor.Cells(),
				RuntimeMs:   time.Since(start).Milliseconds(),
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&metricsFlag, "metrics", "", "Comma-separated metric kinds (default: all nine)")
	cmd.Flags().StringVar(&ratiosFlag, "ratios", "1.01,1.05,1.1", "Comma-separated mean ratios")
	cmd.Flags().StringVar(&noisesFlag, "noises", "0.05,0.1,0.2", "Comma-separated noise levels (sigma)")
	cmd.Flags().StringVar(&groupSizesFlag, "group-sizes", "10,25,50", "Comma-separated t-test group sizes")
	cmd.Flags().IntVar(&groupCount, "group-count", 1000, "Number of groups per cell")
	cmd.Flags().BoolVar(&nullMode, "null", false, "Null simulation: identical distributions, measures false-positive rate")
	cmd.Flags().BoolVar(&useFloat32, "float32", false, "Round generated samples through single precision")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic sweeps")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel (noise, ratio) tasks (default: GAITSYM_WORKERS or NumCPU)")
	cmd.Flags().StringVar(&batchID, "batch-id", "", "Batch identifier (default: generated UUID)")

	return cmd
}

func newConvertCmd() *cobra.Command {
	var (
		baseline float64
		sigma    float64
	)

	cmd := &cobra.Command{
		Use:   "convert [target] [source] [score]",
		Short: "Convert a score from one metric to another",
		Long: `Convert a symmetry score from the source metric to the target metric by
inverting the source against the baseline and re-applying the target.

Example: gaitsym convert difference_percent ratio 1.1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := buildMetric(args[0], sigma)
			if err != nil {
				return err
			}
			source, err := buildMetric(args[1], sigma)
			if err != nil {
				return err
			}
			score, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[2], err)
			}

			converted, err := symmetry.ConvertWithBaseline(target, source, baseline)(score)
			if err != nil {
				return err
			}
			fmt.Printf("%.12g\n", converted)
			return nil
		},
	}

	cmd.Flags().Float64Var(&baseline, "baseline", 1, "Known baseline input used for inversion")
	cmd.Flags().Float64Var(&sigma, "sigma", 0.1, "Sigma for the weighted-Euclidean variant")

	return cmd
}

func newLimitsCmd() *cobra.Command {
	var sigma float64

	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Show saturation limits of every metric at float extremes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-32s %10s %10s %10s %10s\n", "metric", "f64 lo", "f64 hi", "f32 lo", "f32 hi")
			for _, kind := range symmetry.Kinds() {
				m, err := buildMetric(string(kind), sigma)
				if err != nil {
					return err
				}
				lo64, hi64 := symmetry.Saturation(m, symmetry.Float64Limits)
				lo32, hi32 := symmetry.Saturation(m, symmetry.Float32Limits)
				fmt.Printf("%-32s %10.6g %10.6g %10.6g %10.6g\n", kind, lo64, hi64, lo32, hi32)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&sigma, "sigma", 0.1, "Sigma for the weighted-Euclidean variant")

	return cmd
}

func buildMetric(kind string, sigma float64) (symmetry.Metric, error) {
	k, err := symmetry.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	if k == symmetry.KindWeightedEuclideanNormalized {
		return symmetry.New(k, sigma)
	}
	return symmetry.New(k)
}

func parseKinds(s string) ([]symmetry.Kind, error) {
	if strings.TrimSpace(s) == "" {
		return symmetry.Kinds(), nil
	}
	var kinds []symmetry.Kind
	for _, part := range strings.Split(s, ",") {
		k, err := symmetry.ParseKind(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func envWorkers() int {
	if v := os.Getenv("GAITSYM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}
