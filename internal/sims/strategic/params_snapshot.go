package strategic

import (
	"strconv"

	"github.com/mudk-ux/emergence-lab/internal/core"
)

// Parameters describes the full construction surface for inspection. The
// automaton has no runtime tunables; payoffs are fixed after construction.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	p := a.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("n", "Grid size", a.cfg.Size),
				int64Param("seed", "Seed", a.cfg.Seed),
			},
		},
		{
			Name: "Setup",
			Params: []core.Parameter{
				stringParam("game", "Game variant", string(p.Game)),
				stringParam("init", "Initial condition", string(p.Init)),
				floatParam("density", "Cooperator density", p.CoopDensity),
				intParam("invader_size", "Invader block size", p.InvaderSize),
			},
		},
	}

	switch p.Game {
	case GameHawkDove:
		groups = append(groups, core.ParameterGroup{
			Name: "Hawk-Dove payoffs",
			Params: []core.Parameter{
				floatParam("v", "Resource value V", p.HawkDove.V),
				floatParam("c", "Conflict cost C", p.HawkDove.C),
			},
		})
	case GameStagHunt:
		groups = append(groups, core.ParameterGroup{
			Name: "Stag Hunt payoffs",
			Params: []core.Parameter{
				floatParam("stag", "Stag", p.StagHunt.Stag),
				floatParam("hare", "Hare", p.StagHunt.Hare),
				floatParam("sucker", "Sucker", p.StagHunt.Sucker),
				floatParam("both_hare", "Both hare", p.StagHunt.BothHare),
			},
		})
	default:
		groups = append(groups, core.ParameterGroup{
			Name: "Prisoner's Dilemma payoffs",
			Params: []core.Parameter{
				floatParam("r", "Reward R", p.Prisoners.R),
				floatParam("t", "Temptation T", p.Prisoners.T),
				floatParam("p", "Punishment P", p.Prisoners.P),
				floatParam("s", "Sucker S", p.Prisoners.S),
			},
		})
	}

	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
