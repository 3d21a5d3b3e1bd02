// Package sweep runs batches of strategic-field simulations across initial
// cooperator densities and seeds, summarizing each run for analysis.
package sweep

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/mudk-ux/emergence-lab/internal/sims/strategic"
)

// Options selects the sweep grid. Every density is crossed with every seed.
type Options struct {
	Game      strategic.Game
	Size      int
	Steps     int
	Densities []float64
	Seeds     []int64
	Workers   int

	// TailWindow is how many trailing generations feed the stability
	// statistics.
	TailWindow int
}

// DefaultOptions sweeps the weak Prisoner's Dilemma around the interesting
// density range.
func DefaultOptions() Options {
	return Options{
		Game:       strategic.GamePrisoners,
		Size:       100,
		Steps:      120,
		Densities:  []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
		Seeds:      []int64{1, 2, 3},
		Workers:    runtime.NumCPU(),
		TailWindow: 20,
	}
}

// Record summarizes one simulation run.
type Record struct {
	Game          string  `csv:"game"`
	Size          int     `csv:"size"`
	Density       float64 `csv:"density"`
	Seed          int64   `csv:"seed"`
	Steps         int     `csv:"steps"`
	FinalCoopFrac float64 `csv:"final_coop_frac"`
	TailMeanCoop  float64 `csv:"tail_mean_coop"`
	TailStdCoop   float64 `csv:"tail_std_coop"`
	MeanFlipRate  float64 `csv:"mean_flip_rate"`
	Frozen        bool    `csv:"frozen"`
}

type job struct {
	density float64
	seed    int64
}

// Run executes the sweep with a worker pool and returns records ordered by
// (density, seed).
func Run(opts Options) ([]Record, error) {
	if opts.Steps < 1 {
		return nil, fmt.Errorf("sweep: steps %d must be positive", opts.Steps)
	}
	if len(opts.Densities) == 0 || len(opts.Seeds) == 0 {
		return nil, fmt.Errorf("sweep: need at least one density and one seed")
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	// Validate the whole grid up front so workers cannot fail mid-sweep.
	for _, density := range opts.Densities {
		if _, err := strategic.New(runConfig(opts, density, opts.Seeds[0])); err != nil {
			return nil, fmt.Errorf("sweep: %w", err)
		}
	}

	jobs := make(chan job)
	results := make(chan Record)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runOne(opts, j.density, j.seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, density := range opts.Densities {
			for _, seed := range opts.Seeds {
				jobs <- job{density: density, seed: seed}
			}
		}
		close(jobs)
	}()

	var records []Record
	for rec := range results {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Density != records[j].Density {
			return records[i].Density < records[j].Density
		}
		return records[i].Seed < records[j].Seed
	})
	return records, nil
}

func runConfig(opts Options, density float64, seed int64) strategic.Config {
	cfg := strategic.DefaultConfig()
	cfg.Size = opts.Size
	cfg.Seed = seed
	cfg.Params.Game = opts.Game
	cfg.Params.Init = strategic.InitRandom
	cfg.Params.CoopDensity = density
	return cfg
}

func runOne(opts Options, density float64, seed int64) Record {
	// Configs were validated in Run; construction cannot fail here.
	a := strategic.MustNew(runConfig(opts, density, seed))

	total := opts.Size * opts.Size
	coopFracs := make([]float64, 0, opts.Steps)
	flipRates := make([]float64, 0, opts.Steps)
	prev := append([]uint8(nil), a.Cells()...)

	lastFlips := 0
	for step := 0; step < opts.Steps; step++ {
		a.Step()
		cells := a.Cells()
		flips := 0
		for i, c := range cells {
			if c != prev[i] {
				flips++
			}
		}
		lastFlips = flips
		copy(prev, cells)
		coopFracs = append(coopFracs, a.CooperatorFraction())
		flipRates = append(flipRates, float64(flips)/float64(total))
	}

	tail := coopFracs
	if opts.TailWindow > 0 && len(tail) > opts.TailWindow {
		tail = tail[len(tail)-opts.TailWindow:]
	}
	tailStd := 0.0
	if len(tail) > 1 {
		tailStd = stat.StdDev(tail, nil)
	}

	return Record{
		Game:          string(opts.Game),
		Size:          opts.Size,
		Density:       density,
		Seed:          seed,
		Steps:         opts.Steps,
		FinalCoopFrac: coopFracs[len(coopFracs)-1],
		TailMeanCoop:  stat.Mean(tail, nil),
		TailStdCoop:   tailStd,
		MeanFlipRate:  stat.Mean(flipRates, nil),
		Frozen:        lastFlips == 0,
	}
}

// WriteCSV writes sweep records to the given path, creating the file.
func WriteCSV(records []Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := gocsv.MarshalFile(&records, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
