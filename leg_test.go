package wizard

import (
	"errors"
	"math"
	"testing"
)

func TestNewLegEqualWeights(t *testing.T) {
	leg, err := NewLeg([]string{"AAPL", "MSFT", "GOOG", "AMZN"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range leg.Weights() {
		if w != 0.25 {
			t.Errorf("equal weight = %v, want 0.25", w)
		}
	}
}

func TestNewLegNormalizes(t *testing.T) {
	leg, err := NewLeg([]string{"AAPL", "MSFT"}, []float64{3, 1})
	if err != nil {
		t.Fatal(err)
	}
	weights := leg.Weights()
	if weights[0] != 0.75 || weights[1] != 0.25 {
		t.Errorf("normalized weights = %v, want [0.75 0.25]", weights)
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("weights sum = %v, want 1", sum)
	}
}

func TestNewLegNegativeWeights(t *testing.T) {
	// Negative entries are allowed as long as the sum is not zero.
	leg, err := NewLeg([]string{"AAPL", "MSFT"}, []float64{2, -1})
	if err != nil {
		t.Fatal(err)
	}
	weights := leg.Weights()
	if weights[0] != 2 || weights[1] != -1 {
		t.Errorf("normalized weights = %v, want [2 -1]", weights)
	}
}

func TestNewLegErrors(t *testing.T) {
	if _, err := NewLeg([]string{"AAPL"}, []float64{1, 2}); err == nil {
		t.Error("length mismatch: want error, got nil")
	}
	_, err := NewLeg([]string{"AAPL", "MSFT"}, []float64{1, -1})
	var cfg ConfigError
	if !errors.As(err, &cfg) {
		t.Errorf("zero-sum weights: want ConfigError, got %v", err)
	}
}

func TestNewLegEmpty(t *testing.T) {
	leg, err := NewLeg(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !leg.Empty() {
		t.Error("leg with no tickers should be empty")
	}
}
