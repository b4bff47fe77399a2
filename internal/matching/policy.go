package matching

import "fmt"

const (
	PolicyScaled = "scaled"
	PolicyFlat   = "flat"

	// DefaultFlatProbability is the fixed match chance used by the flat policy.
	DefaultFlatProbability = 0.4
	scaledDivisor          = 200.0
)

// MatchPolicy decides whether a like on a profile with the given score
// turns into a mutual match.
type MatchPolicy interface {
	Probability(score int) float64
	IsMatch(score int) bool
}

// ScaledPolicy matches with probability score/200.
type ScaledPolicy struct {
	rnd Source
}

func NewScaledPolicy(rnd Source) *ScaledPolicy {
	if rnd == nil {
		rnd = DefaultSource()
	}
	return &ScaledPolicy{rnd: rnd}
}

func (p *ScaledPolicy) Probability(score int) float64 {
	return clampProbability(float64(score) / scaledDivisor)
}

func (p *ScaledPolicy) IsMatch(score int) bool {
	return p.rnd.Float64() < p.Probability(score)
}

// FlatPolicy matches with a fixed probability, ignoring the score.
type FlatPolicy struct {
	probability float64
	rnd         Source
}

func NewFlatPolicy(probability float64, rnd Source) *FlatPolicy {
	if rnd == nil {
		rnd = DefaultSource()
	}
	return &FlatPolicy{probability: clampProbability(probability), rnd: rnd}
}

func (p *FlatPolicy) Probability(int) float64 {
	return p.probability
}

func (p *FlatPolicy) IsMatch(score int) bool {
	return p.rnd.Float64() < p.Probability(score)
}

// NewPolicy builds the policy named by MATCH_POLICY.
func NewPolicy(name string, rnd Source) (MatchPolicy, error) {
	switch name {
	case "", PolicyScaled:
		return NewScaledPolicy(rnd), nil
	case PolicyFlat:
		return NewFlatPolicy(DefaultFlatProbability, rnd), nil
	default:
		return nil, fmt.Errorf("unknown match policy %q", name)
	}
}

func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
