// Package strategic implements a cellular automaton for spatial evolutionary
// games on a toroidal grid. Each cell plays a two-strategy game against its
// eight Moore neighbors and then imitates the locally fittest cell under the
// "best takes over" rule.
package strategic

import (
	"math"

	"github.com/mudk-ux/emergence-lab/internal/core"
)

// Strategy is a cell value: cooperate or defect. In the Hawk-Dove variant
// cooperators are doves and defectors are hawks; in Stag Hunt cooperators
// hunt stag and defectors hunt hare.
type Strategy uint8

const (
	Cooperate Strategy = 0
	Defect    Strategy = 1
)

var (
	_ core.Sim                = (*Automaton)(nil)
	_ core.ParametersProvider = (*Automaton)(nil)
)

// Automaton owns the grid and advances it one synchronous generation at a
// time. The zero value is not usable; construct with New.
type Automaton struct {
	cfg Config

	n int

	// table maps (self strategy, neighbor strategy) to a payoff term.
	table [2][2]float64

	cur *core.ByteGrid
	nxt *core.ByteGrid

	// fitness is scratch space fully rewritten on every Step.
	fitness []float64

	rng *core.RNG
}

// New constructs an automaton for the given configuration and populates the
// starting grid from the config seed. All validation happens here; a
// successfully constructed automaton never fails to step.
func New(cfg Config) (*Automaton, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	n := cfg.Size
	a := &Automaton{
		cfg:     cfg,
		n:       n,
		table:   payoffTable(cfg.Params),
		cur:     core.NewByteGrid(n, n),
		nxt:     core.NewByteGrid(n, n),
		fitness: make([]float64, n*n),
	}
	a.Reset(0)
	return a, nil
}

// MustNew is New for configurations known to be valid, such as defaults.
func MustNew(cfg Config) *Automaton {
	a, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return a
}

func payoffTable(p Params) [2][2]float64 {
	var t [2][2]float64
	switch p.Game {
	case GameHawkDove:
		t[Cooperate][Cooperate] = p.HawkDove.V / 2
		t[Cooperate][Defect] = 0
		t[Defect][Cooperate] = p.HawkDove.V
		t[Defect][Defect] = (p.HawkDove.V - p.HawkDove.C) / 2
	case GameStagHunt:
		t[Cooperate][Cooperate] = p.StagHunt.Stag
		t[Cooperate][Defect] = p.StagHunt.Sucker
		t[Defect][Cooperate] = p.StagHunt.Hare
		t[Defect][Defect] = p.StagHunt.BothHare
	default: // GamePrisoners, enforced by validate
		t[Cooperate][Cooperate] = p.Prisoners.R
		t[Cooperate][Defect] = p.Prisoners.S
		t[Defect][Cooperate] = p.Prisoners.T
		t[Defect][Defect] = p.Prisoners.P
	}
	return t
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "strategic" }

// Size reports the grid dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.n, H: a.n} }

// Cells exposes the live strategy buffer for renderers. Values are Strategy
// bytes; callers that need an immutable snapshot should use Strategies.
func (a *Automaton) Cells() []uint8 { return a.cur.Cells() }

// Strategies returns a copy of the current grid in row-major order.
func (a *Automaton) Strategies() []Strategy {
	cells := a.cur.Cells()
	out := make([]Strategy, len(cells))
	for i, c := range cells {
		out[i] = Strategy(c)
	}
	return out
}

// CooperatorFraction reports the share of cells currently cooperating.
func (a *Automaton) CooperatorFraction() float64 {
	cells := a.cur.Cells()
	if len(cells) == 0 {
		return 0
	}
	count := 0
	for _, c := range cells {
		if Strategy(c) == Cooperate {
			count++
		}
	}
	return float64(count) / float64(len(cells))
}

// Reset rebuilds the starting grid using deterministic randomness. A zero
// seed falls back to the config seed.
func (a *Automaton) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = a.cfg.Seed
	}
	a.rng = core.NewRNG(effective)

	switch a.cfg.Params.Init {
	case InitSplit:
		a.initSplit()
	case InitInvader:
		a.initInvader()
	case InitClusters:
		a.initClusters()
	default: // InitRandom, enforced by validate
		a.initRandom()
	}
	copy(a.nxt.Cells(), a.cur.Cells())
}

func (a *Automaton) initRandom() {
	density := a.cfg.Params.CoopDensity
	cells := a.cur.Cells()
	for i := range cells {
		if a.rng.Float64() < density {
			cells[i] = uint8(Cooperate)
		} else {
			cells[i] = uint8(Defect)
		}
	}
}

// initSplit cooperates on columns [0, n/2) and defects on the rest, forming
// a sharp vertical frontier.
func (a *Automaton) initSplit() {
	n := a.n
	cells := a.cur.Cells()
	half := n / 2
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x < half {
				cells[a.cur.Index(x, y)] = uint8(Cooperate)
			} else {
				cells[a.cur.Index(x, y)] = uint8(Defect)
			}
		}
	}
}

// initInvader plants a defector block of side InvaderSize (odd preferred;
// even sizes span one extra cell, matching the calibrated source behavior)
// centered on the grid, clipped at the edges.
func (a *Automaton) initInvader() {
	n := a.n
	a.cur.Fill(uint8(Cooperate))
	cells := a.cur.Cells()
	center := n / 2
	half := a.cfg.Params.InvaderSize / 2
	lo := max(center-half, 0)
	hi := min(center+half, n-1)
	for y := lo; y <= hi; y++ {
		for x := lo; x <= hi; x++ {
			cells[a.cur.Index(x, y)] = uint8(Defect)
		}
	}
}

// clusterCenters holds the (y, x) patch positions calibrated for a 150-cell
// grid; initClusters scales them proportionally for other sizes.
var clusterCenters = [4][2]int{{30, 30}, {120, 40}, {70, 100}, {40, 120}}

const clusterRadius = 8

// initClusters defects everywhere, then stamps four cooperator disks with
// toroidal wraparound.
func (a *Automaton) initClusters() {
	n := a.n
	a.cur.Fill(uint8(Defect))
	cells := a.cur.Cells()
	for _, c := range clusterCenters {
		cy := c[0] * n / 150
		cx := c[1] * n / 150
		for dy := -clusterRadius; dy <= clusterRadius; dy++ {
			for dx := -clusterRadius; dx <= clusterRadius; dx++ {
				if dy*dy+dx*dx > clusterRadius*clusterRadius {
					continue
				}
				x, y := a.cur.Wrap(cx+dx, cy+dy)
				cells[a.cur.Index(x, y)] = uint8(Cooperate)
			}
		}
	}
}

// Step advances the grid one generation with the best-takes-over rule: each
// cell adopts the strategy of the fittest among itself and its eight
// toroidal neighbors, all fitness values drawn from one pre-step snapshot.
func (a *Automaton) Step() {
	a.computeFitness()

	n := a.n
	cur := a.cur.Cells()
	nxt := a.nxt.Cells()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			best := math.Inf(-1)
			winner := cur[y*n+x]
			// Strictly-greater comparison keeps the first candidate on
			// ties; the scan order (row offset outer, column offset inner,
			// self at the center position) is part of the update contract.
			for dy := -1; dy <= 1; dy++ {
				row := ((y + dy + n) % n) * n
				for dx := -1; dx <= 1; dx++ {
					i := row + (x+dx+n)%n
					if f := a.fitness[i]; f > best {
						best = f
						winner = cur[i]
					}
				}
			}
			nxt[y*n+x] = winner
		}
	}
	a.cur, a.nxt = a.nxt, a.cur
}

// computeFitness sums, for every cell, the payoff term for each of its eight
// toroidal neighbors under the active game table. Pure read of the current
// grid; only the scratch field is written.
func (a *Automaton) computeFitness() {
	n := a.n
	cur := a.cur.Cells()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			self := cur[y*n+x]
			score := 0.0
			for dy := -1; dy <= 1; dy++ {
				row := ((y + dy + n) % n) * n
				for dx := -1; dx <= 1; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					score += a.table[self][cur[row+(x+dx+n)%n]]
				}
			}
			a.fitness[y*n+x] = score
		}
	}
}

func init() {
	// The registry factory cannot return an error, so a malformed map config
	// falls back to DefaultConfig. Callers that need rejection semantics
	// construct through FromMap and New directly.
	core.Register("strategic", func(cfg map[string]string) core.Sim {
		c, err := FromMap(cfg)
		if err != nil {
			c = DefaultConfig()
		}
		if err := c.validate(); err != nil {
			c = DefaultConfig()
		}
		return MustNew(c)
	})
}
