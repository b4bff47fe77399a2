// Package matching ranks profiles for a viewer and decides mutual matches.
package matching

import (
	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/geo"
)

// Tier awards Bonus when a measured value is below (or, for counts, at
// least) Threshold.
type Tier struct {
	Threshold float64
	Bonus     int
}

type Config struct {
	Min  int
	Max  int
	Base int

	// Distance tiers in km, ascending; first tier with distance < Threshold wins.
	Proximity []Tier
	// Awarded when the viewer position is unknown but the profile names a place.
	LocationOnlyBonus int

	// Age tiers in days, ascending; first tier with days <= Threshold wins.
	Recency []Tier

	// Comment tiers, descending; first tier with comments >= Threshold wins.
	Engagement []Tier

	ImageBonus   int
	BioBonus     int
	MinBioLength int
	AgeBonus     int

	// Jitter is drawn uniformly from [0, MaxJitter].
	MaxJitter int
}

// DefaultConfig is the canonical scoring configuration, bounded to [55, 99].
func DefaultConfig() Config {
	return Config{
		Min:  55,
		Max:  99,
		Base: 50,
		Proximity: []Tier{
			{Threshold: 10, Bonus: 25},
			{Threshold: 25, Bonus: 18},
			{Threshold: 40, Bonus: 12},
			{Threshold: 60, Bonus: 9},
			{Threshold: 100, Bonus: 6},
		},
		LocationOnlyBonus: 5,
		Recency: []Tier{
			{Threshold: 3, Bonus: 12},
			{Threshold: 7, Bonus: 9},
			{Threshold: 14, Bonus: 6},
			{Threshold: 30, Bonus: 3},
		},
		Engagement: []Tier{
			{Threshold: 10, Bonus: 8},
			{Threshold: 5, Bonus: 5},
			{Threshold: 1, Bonus: 2},
		},
		ImageBonus:   3,
		BioBonus:     3,
		MinBioLength: 40,
		AgeBonus:     2,
		MaxJitter:    5,
	}
}

// Breakdown shows how each term contributed to a score.
type Breakdown struct {
	Base         int     `json:"base"`
	Proximity    int     `json:"proximity"`
	Recency      int     `json:"recency"`
	Engagement   int     `json:"engagement"`
	Completeness int     `json:"completeness"`
	Jitter       int     `json:"jitter"`
	DistanceKm   float64 `json:"distance_km"`
	Final        int     `json:"final"`
}

// Deterministic is the sum of all terms except jitter, before clamping.
func (b Breakdown) Deterministic() int {
	return b.Base + b.Proximity + b.Recency + b.Engagement + b.Completeness
}

type Scorer struct {
	cfg Config
	rnd Source
}

func NewScorer(cfg Config, rnd Source) *Scorer {
	if rnd == nil {
		rnd = DefaultSource()
	}
	return &Scorer{cfg: cfg, rnd: rnd}
}

func (s *Scorer) Config() Config {
	return s.cfg
}

// Score returns the clamped score of p for a viewer at the given position,
// which may be nil.
func (s *Scorer) Score(p *domain.Profile, viewer *geo.Point) int {
	return s.Explain(p, viewer).Final
}

// Explain computes the score with its per-term breakdown.
func (s *Scorer) Explain(p *domain.Profile, viewer *geo.Point) Breakdown {
	b := s.Terms(p, viewer)
	b.Jitter = s.jitter()
	b.Final = s.Clamp(b.Deterministic() + b.Jitter)
	return b
}

// Terms computes the deterministic terms only. Final holds their clamped sum.
func (s *Scorer) Terms(p *domain.Profile, viewer *geo.Point) Breakdown {
	b := Breakdown{Base: s.cfg.Base, DistanceKm: geo.FarDistanceKm}
	if p == nil {
		b.Final = s.Clamp(b.Deterministic())
		return b
	}

	b.DistanceKm = geo.Distance(viewer, p.Coordinates)
	b.Proximity = s.proximity(p, viewer, b.DistanceKm)
	b.Recency = s.recency(p.DaysSincePublication)
	b.Engagement = s.engagement(p.CommentCount)
	b.Completeness = s.completeness(p)
	b.Final = s.Clamp(b.Deterministic())
	return b
}

func (s *Scorer) Clamp(score int) int {
	if score < s.cfg.Min {
		return s.cfg.Min
	}
	if score > s.cfg.Max {
		return s.cfg.Max
	}
	return score
}

func (s *Scorer) proximity(p *domain.Profile, viewer *geo.Point, distance float64) int {
	if viewer != nil && viewer.Known() && p.Coordinates.Known() {
		for _, t := range s.cfg.Proximity {
			if distance < t.Threshold {
				return t.Bonus
			}
		}
		return 0
	}
	if (viewer == nil || !viewer.Known()) && p.Location != "" && p.Location != geo.DefaultRegion {
		return s.cfg.LocationOnlyBonus
	}
	return 0
}

func (s *Scorer) recency(days int) int {
	for _, t := range s.cfg.Recency {
		if float64(days) <= t.Threshold {
			return t.Bonus
		}
	}
	return 0
}

func (s *Scorer) engagement(comments int) int {
	for _, t := range s.cfg.Engagement {
		if float64(comments) >= t.Threshold {
			return t.Bonus
		}
	}
	return 0
}

func (s *Scorer) completeness(p *domain.Profile) int {
	bonus := 0
	if p.HasImage() {
		bonus += s.cfg.ImageBonus
	}
	if len([]rune(p.Bio)) > s.cfg.MinBioLength {
		bonus += s.cfg.BioBonus
	}
	if p.Age != nil {
		bonus += s.cfg.AgeBonus
	}
	return bonus
}

func (s *Scorer) jitter() int {
	if s.cfg.MaxJitter <= 0 {
		return 0
	}
	return s.rnd.IntN(s.cfg.MaxJitter + 1)
}
