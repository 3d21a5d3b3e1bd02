package strategic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig(size int, game Game, init Init) Config {
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.Seed = 42
	cfg.Params.Game = game
	cfg.Params.Init = init
	return cfg
}

func TestPayoffTables(t *testing.T) {
	pd := MustNew(testConfig(4, GamePrisoners, InitRandom))
	require.Equal(t, 3.0, pd.table[Cooperate][Cooperate], "R: mutual cooperation")
	require.Equal(t, 0.0, pd.table[Cooperate][Defect], "S: sucker's payoff")
	require.Equal(t, 3.1, pd.table[Defect][Cooperate], "T: temptation")
	require.Equal(t, 1.0, pd.table[Defect][Defect], "P: mutual defection")

	hd := MustNew(testConfig(4, GameHawkDove, InitRandom))
	require.Equal(t, 1.75, hd.table[Cooperate][Cooperate], "dove/dove shares V/2")
	require.Equal(t, 0.0, hd.table[Cooperate][Defect], "dove concedes to hawk")
	require.Equal(t, 3.5, hd.table[Defect][Cooperate], "hawk takes V from dove")
	require.Equal(t, -0.5, hd.table[Defect][Defect], "hawk/hawk pays (V-C)/2")

	sh := MustNew(testConfig(4, GameStagHunt, InitRandom))
	require.Equal(t, 4.0, sh.table[Cooperate][Cooperate], "mutual stag")
	require.Equal(t, 0.0, sh.table[Cooperate][Defect], "abandoned stag hunter")
	require.Equal(t, 2.5, sh.table[Defect][Cooperate], "hare against stag hunter")
	require.Equal(t, 1.5, sh.table[Defect][Defect], "mutual hare")
}

func TestToroidalFitnessWrap(t *testing.T) {
	cfg := testConfig(5, GamePrisoners, InitRandom)
	cfg.Params.CoopDensity = 1
	a := MustNew(cfg)

	// A lone defector at (4,4) must show up in the corner cell's neighbor
	// scan through both wrapped axes.
	a.Cells()[a.cur.Index(4, 4)] = uint8(Defect)
	a.computeFitness()

	require.Equal(t, 7*3.0+0.0, a.fitness[a.cur.Index(0, 0)],
		"corner cell must see the wrapped defector at (4,4)")
	require.Equal(t, 8*3.0, a.fitness[a.cur.Index(2, 2)],
		"interior cell away from the defector scores eight mutual cooperations")
	require.Equal(t, 8*3.0, a.fitness[a.cur.Index(0, 2)],
		"cell not adjacent to the defector on the torus is unaffected")
}

func TestUniformGridIsFixedPoint(t *testing.T) {
	for _, game := range []Game{GamePrisoners, GameHawkDove, GameStagHunt} {
		for _, density := range []float64{0, 1} {
			cfg := testConfig(8, game, InitRandom)
			cfg.Params.CoopDensity = density
			a := MustNew(cfg)
			before := a.Strategies()
			for i := 0; i < 3; i++ {
				a.Step()
			}
			require.Equal(t, before, a.Strategies(),
				"uniform grid must be a fixed point (game=%s density=%v)", game, density)
		}
	}
}

func TestSingleCellGrid(t *testing.T) {
	a := MustNew(testConfig(1, GameHawkDove, InitSplit))
	require.Equal(t, []Strategy{Defect}, a.Strategies(), "split leaves no cooperator columns at N=1")
	a.Step()
	require.Equal(t, []Strategy{Defect}, a.Strategies(), "N=1 torus interacts only with itself")
}

func TestSplitInit(t *testing.T) {
	a := MustNew(testConfig(10, GamePrisoners, InitSplit))
	grid := a.Strategies()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := Cooperate
			if x >= 5 {
				want = Defect
			}
			require.Equal(t, want, grid[y*10+x], "cell (%d,%d)", y, x)
		}
	}
}

func TestInvaderInit(t *testing.T) {
	cfg := testConfig(11, GamePrisoners, InitInvader)
	cfg.Params.InvaderSize = 3
	a := MustNew(cfg)
	grid := a.Strategies()
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			want := Cooperate
			if y >= 4 && y <= 6 && x >= 4 && x <= 6 {
				want = Defect
			}
			require.Equal(t, want, grid[y*11+x], "cell (%d,%d)", y, x)
		}
	}
}

func TestInvaderInitLargerThanGrid(t *testing.T) {
	cfg := testConfig(5, GamePrisoners, InitInvader)
	cfg.Params.InvaderSize = 99
	a := MustNew(cfg)
	for i, s := range a.Strategies() {
		require.Equal(t, Defect, s, "oversized invader block clips to the whole grid (cell %d)", i)
	}
}

func TestClustersInit(t *testing.T) {
	a := MustNew(testConfig(150, GameStagHunt, InitClusters))
	grid := a.Strategies()
	idx := func(y, x int) int { return y*150 + x }

	for _, c := range clusterCenters {
		require.Equal(t, Cooperate, grid[idx(c[0], c[1])], "patch center (%d,%d)", c[0], c[1])
	}
	require.Equal(t, Cooperate, grid[idx(38, 30)], "disk edge at squared offset 64 is included")
	require.Equal(t, Defect, grid[idx(39, 30)], "just past the disk edge")
	require.Equal(t, Defect, grid[idx(75, 75)], "far from every patch")
}

func TestClustersInitWrapsAtEdges(t *testing.T) {
	// At N=32 the scaled patch at (6,6) extends past row 0 and must wrap to
	// the bottom of the grid.
	a := MustNew(testConfig(32, GameStagHunt, InitClusters))
	grid := a.Strategies()
	require.Equal(t, Cooperate, grid[30*32+6], "patch stamping wraps toroidally")
	require.Equal(t, Defect, grid[20*32+0], "cell outside all scaled patches")
}

func TestClosureAfterManySteps(t *testing.T) {
	for _, game := range []Game{GamePrisoners, GameHawkDove, GameStagHunt} {
		a := MustNew(testConfig(16, game, InitRandom))
		for i := 0; i < 10; i++ {
			a.Step()
			for j, s := range a.Strategies() {
				require.True(t, s == Cooperate || s == Defect,
					"cell %d holds %d after step %d (game=%s)", j, s, i, game)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig(16, GameHawkDove, InitRandom)
	a := MustNew(cfg)
	b := MustNew(cfg)
	for i := 0; i < 8; i++ {
		a.Step()
		b.Step()
	}
	require.Equal(t, a.Strategies(), b.Strategies(), "identical seeds must evolve identically")

	a.Reset(777)
	b.Reset(777)
	require.Equal(t, a.Strategies(), b.Strategies(), "explicit reseed must be deterministic")

	b.Reset(778)
	require.NotEqual(t, a.Strategies(), b.Strategies(), "different seeds should diverge")
}

func TestResetZeroSeedUsesConfigSeed(t *testing.T) {
	a := MustNew(testConfig(16, GamePrisoners, InitRandom))
	initial := a.Strategies()
	for i := 0; i < 4; i++ {
		a.Step()
	}
	a.Reset(0)
	require.Equal(t, initial, a.Strategies(), "Reset(0) must rebuild from the config seed")
}

func TestStrategiesReturnsCopy(t *testing.T) {
	a := MustNew(testConfig(8, GamePrisoners, InitSplit))
	snapshot := a.Strategies()
	snapshot[0] = Defect
	require.Equal(t, Cooperate, Strategy(a.Cells()[0]), "mutating a snapshot must not touch the grid")
}

func TestWeakPDClusterPersists(t *testing.T) {
	// With T only marginally above R, an interior cooperator earns 8R = 24
	// while no exterior defector can beat it, so a compact cluster survives.
	cfg := testConfig(21, GamePrisoners, InitRandom)
	cfg.Params.CoopDensity = 0
	a := MustNew(cfg)

	cells := a.Cells()
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			if dy*dy+dx*dx > 9 {
				continue
			}
			cells[(10+dy)*21+(10+dx)] = uint8(Cooperate)
		}
	}

	for i := 0; i < 5; i++ {
		a.Step()
	}
	require.Greater(t, a.CooperatorFraction(), 0.0,
		"a radius-3 cooperator cluster must survive in the weak-PD regime")
}

func TestTieBreakPrefersFirstInScanOrder(t *testing.T) {
	// Stag Hunt makes an exact cross-strategy tie: a cooperator with four
	// cooperating neighbors earns 4*4 = 16, a defector with four cooperating
	// neighbors earns 4*2.5 + 4*1.5 = 16. Both sit in the neighborhood of
	// the focal cell (3,3), with the cooperator at (2,2) scanned first and
	// the defector at (4,4) scanned last.
	cfg := testConfig(8, GameStagHunt, InitRandom)
	cfg.Params.CoopDensity = 0
	a := MustNew(cfg)

	cells := a.Cells()
	for _, c := range [][2]int{
		{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 2},
		{3, 5}, {4, 5}, {5, 4}, {5, 5},
	} {
		cells[c[0]*8+c[1]] = uint8(Cooperate)
	}

	idx := func(y, x int) int { return y*8 + x }
	a.computeFitness()
	require.Equal(t, 16.0, a.fitness[idx(2, 2)], "cooperator candidate at the tied maximum")
	require.Equal(t, 16.0, a.fitness[idx(4, 4)], "defector candidate at the tied maximum")
	require.Equal(t, Cooperate, Strategy(cells[idx(2, 2)]))
	require.Equal(t, Defect, Strategy(cells[idx(4, 4)]))
	for _, c := range [][2]int{{2, 3}, {2, 4}, {3, 2}, {3, 3}, {3, 4}, {4, 2}, {4, 3}} {
		require.Less(t, a.fitness[idx(c[0], c[1])], 16.0,
			"candidate (%d,%d) must stay below the tied maximum", c[0], c[1])
	}

	a.Step()

	require.Equal(t, Cooperate, a.Strategies()[idx(3, 3)],
		"a tied maximum must resolve to the first candidate in the fixed scan order")
}

func TestCooperatorFraction(t *testing.T) {
	a := MustNew(testConfig(10, GamePrisoners, InitSplit))
	require.InDelta(t, 0.5, a.CooperatorFraction(), 1e-12)
}

func TestBestTakesOverUsesOldStrategies(t *testing.T) {
	// A defector facing a cooperative block wins locally this generation,
	// but its victims must copy its *old* strategy from the snapshot, never
	// a partially updated grid.
	cfg := testConfig(9, GamePrisoners, InitRandom)
	cfg.Params.CoopDensity = 1
	a := MustNew(cfg)
	a.Cells()[a.cur.Index(4, 4)] = uint8(Defect)

	a.Step()

	// The lone defector earned 8T = 24.8, beating every cooperator's
	// maximum of 8R = 24, so its whole Moore neighborhood defects.
	grid := a.Strategies()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			require.Equal(t, Defect, grid[(4+dy)*9+(4+dx)], "offset (%d,%d)", dy, dx)
		}
	}
	require.Equal(t, Cooperate, grid[1*9+1], "cells outside the defector's reach keep cooperating")
}
