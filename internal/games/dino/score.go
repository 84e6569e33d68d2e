package dino

import (
	"math"
	"strconv"
	"strings"

	"github.com/allanrg4/runner/internal/config"
)

// ScoreTracker converts distance into displayed score digits, runs the
// achievement flash and keeps the high score.
type ScoreTracker struct {
	cfg *config.ScoreConfig

	digits    []int
	highScore []int // nil until a high score is set
	maxScore  int
	paint     bool

	achievement     bool
	lastAchievement int // Unit value of the most recent achievement
	flashTimer      float64
	flashIterations int
}

// NewScoreTracker creates a tracker showing all zeros.
func NewScoreTracker(cfg *config.ScoreConfig) *ScoreTracker {
	s := &ScoreTracker{
		cfg:      cfg,
		maxScore: int(math.Pow10(cfg.MaxDistanceUnits)) - 1,
	}
	s.Reset()
	return s
}

// ToScoreUnits converts a pixel distance to score units.
func (s *ScoreTracker) ToScoreUnits(distance float64) int {
	if distance <= 0 {
		return 0
	}
	return int(math.Round(distance * s.cfg.Coefficient))
}

// MaxScore returns the largest value the digits can display.
func (s *ScoreTracker) MaxScore() int {
	return s.maxScore
}

// Update refreshes the digits for distance and advances the flash.
// It returns true on the frame an achievement is reached.
func (s *ScoreTracker) Update(deltaTime, distance float64) bool {
	s.paint = true

	if s.achievement {
		s.flashTimer += deltaTime
		if s.flashTimer < s.cfg.FlashDuration {
			s.paint = false
		} else if s.flashTimer > s.cfg.FlashDuration*2 {
			s.flashTimer = 0
			s.flashIterations++
			if s.flashIterations >= s.cfg.FlashIterations {
				s.achievement = false
				s.flashIterations = 0
			}
		}
		return false
	}

	units := s.ToScoreUnits(distance)
	s.digits = s.format(units)

	if units > 0 && units%s.cfg.AchievementDistance == 0 && units != s.lastAchievement {
		s.lastAchievement = units
		if s.cfg.FlashIterations > 0 {
			s.achievement = true
			s.flashTimer = 0
			s.flashIterations = 0
		}
		return true
	}
	return false
}

// format returns the last MaxDistanceUnits digits of the zero-padded value.
func (s *ScoreTracker) format(units int) []int {
	n := s.cfg.MaxDistanceUnits
	str := strings.Repeat("0", n) + strconv.Itoa(units)
	str = str[len(str)-n:]

	out := make([]int, n)
	for i := range n {
		out[i] = int(str[i] - '0')
	}
	return out
}

// Digits returns a copy of the current score digits.
func (s *ScoreTracker) Digits() []int {
	return append([]int(nil), s.digits...)
}

// Visible reports whether the digits are painted this frame. They are
// hidden during the off phase of the achievement flash.
func (s *ScoreTracker) Visible() bool {
	return s.paint
}

// Achievement reports whether the achievement flash is running.
func (s *ScoreTracker) Achievement() bool {
	return s.achievement
}

// FlashIterations returns the number of completed flash cycles.
func (s *ScoreTracker) FlashIterations() int {
	return s.flashIterations
}

// ClearAchievement stops any running flash.
func (s *ScoreTracker) ClearAchievement() {
	s.achievement = false
	s.flashTimer = 0
	s.flashIterations = 0
	s.paint = true
}

// SetHighScore stores the high score digits for a pixel distance.
func (s *ScoreTracker) SetHighScore(distance float64) {
	s.highScore = s.format(s.ToScoreUnits(distance))
}

// HighScoreDigits returns a copy of the high score digits, or nil if none
// has been set.
func (s *ScoreTracker) HighScoreDigits() []int {
	if s.highScore == nil {
		return nil
	}
	return append([]int(nil), s.highScore...)
}

// Reset zeroes the current score. The high score is kept.
func (s *ScoreTracker) Reset() {
	s.digits = s.format(0)
	s.paint = true
	s.lastAchievement = 0
	s.ClearAchievement()
}
