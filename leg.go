package wizard

import "math"

// A Leg is one side (long or short) of the portfolio: an ordered list of
// tickers and a weight vector of equal length. A leg with no tickers is
// inert and contributes nothing to the strategy.
type Leg struct {
	tickers []string
	weights []float64
}

// NewLeg builds a leg from tickers and optional raw weights.
//
// When weights is nil, the allocation defaults to equal weight 1/n. When
// provided, the vector must match the ticker list in length and is divided
// by its own sum, so callers may pass unnormalized weights. A zero-sum
// weight vector is rejected.
func NewLeg(tickers []string, weights []float64) (Leg, error) {
	if len(tickers) == 0 {
		return Leg{}, nil
	}
	if weights == nil {
		weights = make([]float64, len(tickers))
		for i := range weights {
			weights[i] = 1 / float64(len(tickers))
		}
		return Leg{tickers: tickers, weights: weights}, nil
	}
	if len(weights) != len(tickers) {
		return Leg{}, configf("weights must be the same length as tickers: got %d weights for %d tickers", len(weights), len(tickers))
	}
	normalized, err := normalizeWeights(weights)
	if err != nil {
		return Leg{}, err
	}
	return Leg{tickers: tickers, weights: normalized}, nil
}

// normalizeWeights divides a weight vector by its own sum so it sums to 1.
func normalizeWeights(weights []float64) ([]float64, error) {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		return nil, ConfigError("weights sum to zero, cannot normalize")
	}
	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / sum
	}
	// Sanity invariant, not an input requirement: the normalized vector
	// sums to 1 within floating tolerance.
	var check float64
	for _, w := range normalized {
		check += w
	}
	if math.Abs(check-1) > 1e-9 {
		return nil, configf("normalized weights sum to %v, want 1", check)
	}
	return normalized, nil
}

// Empty reports whether the leg holds no tickers.
func (l Leg) Empty() bool { return len(l.tickers) == 0 }

// Tickers returns the leg's ticker list.
func (l Leg) Tickers() []string { return l.tickers }

// Weights returns the leg's normalized weight vector.
func (l Leg) Weights() []float64 { return l.weights }
