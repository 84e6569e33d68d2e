package config

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// maxSuggestDistance bounds how far a typo may be from a preset name
// before no suggestion is offered.
const maxSuggestDistance = 2

// ParsePreset resolves a preset name. An empty name means "use the config
// as loaded". Unknown names produce an error with the closest match.
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}

	if suggestion, ok := closestPreset(name); ok {
		return "", fmt.Errorf("config: unknown difficulty %q (did you mean %q?)", name, suggestion)
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want one of easy, normal, hard)", name)
}

func closestPreset(name string) (DifficultyPreset, bool) {
	best := DifficultyPreset("")
	bestDist := maxSuggestDistance + 1
	for _, p := range Presets {
		if d := levenshtein.ComputeDistance(name, string(p)); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, best != ""
}

// ApplyPreset modifies the config's speed curve and spacing for a preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Runner.Speed *= 0.8
		cfg.Runner.MaxSpeed *= 0.8
		cfg.Runner.Acceleration *= 0.5
		cfg.Runner.GapCoefficient *= 1.25
	case DifficultyHard:
		cfg.Runner.Speed *= 1.25
		cfg.Runner.MaxSpeed *= 1.1
		cfg.Runner.Acceleration *= 2
		cfg.Runner.GapCoefficient *= 0.8
	}
}
