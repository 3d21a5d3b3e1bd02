package strategic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mudk-ux/emergence-lab/internal/core"
)

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["strategic"]
	require.True(t, ok, "strategic sim must self-register")

	sim := factory(map[string]string{"n": "10", "init": "split"})
	require.Equal(t, "strategic", sim.Name())
	require.Equal(t, core.Size{W: 10, H: 10}, sim.Size())
	require.Equal(t, uint8(Cooperate), sim.Cells()[0])
	require.Equal(t, uint8(Defect), sim.Cells()[9])
}

func TestRegisteredFactoryFallsBackOnBadConfig(t *testing.T) {
	factory := core.Sims()["strategic"]
	sim := factory(map[string]string{"game": "nonsense"})
	require.Equal(t, core.Size{W: 150, H: 150}, sim.Size(), "invalid registry config falls back to defaults")
}
