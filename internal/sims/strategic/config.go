package strategic

import (
	"errors"
	"fmt"
	"strconv"
)

// Game selects the payoff table used for neighbor interactions.
type Game string

const (
	// GamePrisoners is the weak Prisoner's Dilemma regime (T barely above R),
	// which supports stable cooperative clusters instead of defection takeover.
	GamePrisoners Game = "pd"
	// GameHawkDove is the resource-conflict regime with V < C.
	GameHawkDove Game = "hawkdove"
	// GameStagHunt is the coordination regime with Stag > Hare >= BothHare > Sucker.
	GameStagHunt Game = "staghunt"
)

// Init selects how the starting grid is populated.
type Init string

const (
	// InitRandom sets each cell independently to cooperate with the
	// configured density.
	InitRandom Init = "random"
	// InitSplit cooperates on the left half of the grid and defects on the right.
	InitSplit Init = "split"
	// InitInvader cooperates everywhere except a centered defector block.
	InitInvader Init = "invader"
	// InitClusters defects everywhere except four circular cooperator patches.
	InitClusters Init = "clusters"
)

// Construction failures. Both kinds surface before any stepping happens;
// a validly constructed automaton cannot fail afterwards.
var (
	ErrUnknownGame  = errors.New("unknown game variant")
	ErrUnknownInit  = errors.New("unknown initial condition")
	ErrInvalidParam = errors.New("invalid parameter")
)

// PrisonersPayoffs holds the four Prisoner's Dilemma terms, T > R > P > S.
type PrisonersPayoffs struct {
	R float64 // mutual cooperation
	T float64 // temptation against a cooperator
	P float64 // mutual defection
	S float64 // sucker's payoff
}

// HawkDovePayoffs holds the two Hawk-Dove scalars, V < C. The 2x2 table is
// derived: dove/dove V/2, hawk/dove V, dove/hawk 0, hawk/hawk (V-C)/2.
type HawkDovePayoffs struct {
	V float64 // value of the resource
	C float64 // cost of conflict
}

// StagHuntPayoffs holds the four Stag Hunt terms.
type StagHuntPayoffs struct {
	Stag     float64 // mutual cooperation
	Hare     float64 // defector against a cooperator
	Sucker   float64 // cooperator against a defector
	BothHare float64 // mutual defection
}

// Params holds the game selection and its tunable payoff terms.
type Params struct {
	Game Game
	Init Init

	// CoopDensity is the cooperator probability for InitRandom, in [0, 1].
	CoopDensity float64
	// InvaderSize is the side length of the defector block for InitInvader.
	InvaderSize int

	Prisoners PrisonersPayoffs
	HawkDove  HawkDovePayoffs
	StagHunt  StagHuntPayoffs
}

// Config controls the strategic automaton dimensions and starting state.
type Config struct {
	// Size is the side length N of the square toroidal grid.
	Size int

	Seed int64

	Params Params
}

// DefaultConfig returns the calibrated configuration: weak PD on a 150x150
// grid seeded with a 50% random cooperator mix.
func DefaultConfig() Config {
	return Config{
		Size: 150,
		Seed: 1337,
		Params: Params{
			Game:        GamePrisoners,
			Init:        InitRandom,
			CoopDensity: 0.5,
			InvaderSize: 5,
			Prisoners:   PrisonersPayoffs{R: 3, T: 3.1, P: 1, S: 0},
			HawkDove:    HawkDovePayoffs{V: 3.5, C: 4.5},
			StagHunt:    StagHuntPayoffs{Stag: 4, Hare: 2.5, Sucker: 0, BothHare: 1.5},
		},
	}
}

// clustersMinSize is the smallest grid the clusters condition accepts; below
// this the four scaled radius-8 patches collapse into each other.
const clustersMinSize = 32

func (c Config) validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: grid size %d must be positive", ErrInvalidParam, c.Size)
	}
	switch c.Params.Game {
	case GamePrisoners, GameHawkDove, GameStagHunt:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGame, c.Params.Game)
	}
	switch c.Params.Init {
	case InitRandom:
		if d := c.Params.CoopDensity; d < 0 || d > 1 {
			return fmt.Errorf("%w: density %v outside [0, 1]", ErrInvalidParam, d)
		}
	case InitInvader:
		if c.Params.InvaderSize < 1 {
			return fmt.Errorf("%w: invader size %d must be positive", ErrInvalidParam, c.Params.InvaderSize)
		}
	case InitClusters:
		if c.Size < clustersMinSize {
			return fmt.Errorf("%w: clusters condition needs size >= %d, got %d",
				ErrInvalidParam, clustersMinSize, c.Size)
		}
	case InitSplit:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownInit, c.Params.Init)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unrecognized parameter names are rejected; value validation is
// deferred to New.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	for key, v := range cfg {
		switch key {
		case "n":
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return c, fmt.Errorf("%w: n=%q", ErrInvalidParam, v)
			}
			c.Size = parsed
		case "seed":
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return c, fmt.Errorf("%w: seed=%q", ErrInvalidParam, v)
			}
			c.Seed = parsed
		case "game":
			c.Params.Game = Game(v)
		case "init":
			c.Params.Init = Init(v)
		case "density":
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return c, fmt.Errorf("%w: density=%q", ErrInvalidParam, v)
			}
			c.Params.CoopDensity = parsed
		case "invader_size":
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return c, fmt.Errorf("%w: invader_size=%q", ErrInvalidParam, v)
			}
			c.Params.InvaderSize = parsed
		default:
			return c, fmt.Errorf("%w: unrecognized option %q", ErrInvalidParam, key)
		}
	}
	return c, nil
}
