package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mudk-ux/emergence-lab/internal/anim"
	"github.com/mudk-ux/emergence-lab/internal/presets"
	"github.com/mudk-ux/emergence-lab/internal/sims/strategic"
)

var (
	flagOutDir      string
	flagPresetsFile string
)

// progressEvery controls how often frame progress is logged.
const progressEvery = 25

var renderCmd = &cobra.Command{
	Use:   "render [preset ...]",
	Short: "Render preset scenarios as animated GIFs",
	Long: `Render runs one or more preset scenarios and writes each as an animated
GIF. With no arguments all presets are rendered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := loadPresets()
		if err != nil {
			return err
		}

		selected := list
		if len(args) > 0 {
			selected = selected[:0:0]
			for _, name := range args {
				p, ok := presets.Find(list, name)
				if !ok {
					return fmt.Errorf("unknown preset %q", name)
				}
				selected = append(selected, p)
			}
		}

		for _, p := range selected {
			if err := renderPreset(p); err != nil {
				return err
			}
		}
		return nil
	},
}

func loadPresets() ([]presets.Preset, error) {
	if flagPresetsFile != "" {
		return presets.Load(flagPresetsFile)
	}
	return presets.Defaults()
}

func renderPreset(p presets.Preset) error {
	a, err := strategic.New(p.Config())
	if err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}

	size := a.Size()
	rec := anim.NewRecorder(size.W, size.H, p.Scale, p.FPS, a.Palette())

	log.Info().Str("preset", p.Name).Str("title", p.Title).Int("frames", p.Frames).Msg("rendering")
	for frame := 1; frame <= p.Frames; frame++ {
		a.Step()
		rec.Capture(a.Cells())
		if frame%progressEvery == 0 {
			log.Debug().Str("preset", p.Name).Int("frame", frame).
				Float64("coop_frac", a.CooperatorFraction()).Msg("progress")
		}
	}
	rec.Pause(p.PauseFrames)

	path := filepath.Join(flagOutDir, p.Output)
	if err := rec.Save(path); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	log.Info().Str("preset", p.Name).Str("path", path).
		Int("frames", rec.FrameCount()).Msg("saved")
	return nil
}

func init() {
	renderCmd.Flags().StringVarP(&flagOutDir, "out", "o", "visualizations", "output directory for GIFs")
	renderCmd.Flags().StringVar(&flagPresetsFile, "presets", "", "YAML file replacing the built-in presets")
	rootCmd.AddCommand(renderCmd)
}
