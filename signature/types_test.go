package signature

import (
	"errors"
	"testing"
)

func TestFromCounts(t *testing.T) {
	sig, err := FromCounts(3, 0, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.Dimensions() != 3 {
		t.Fatalf("expected dimensions 3, got %d", sig.Dimensions())
	}
	for i := 0; i < 3; i++ {
		if sig.G(i) != SignPositive {
			t.Errorf("expected axis %d positive, got %v", i, sig.G(i))
		}
	}
	if sig.IsDegenerate() {
		t.Errorf("Euclidean signature must not be degenerate")
	}
}

func TestFromCountsSTA(t *testing.T) {
	sig, err := FromCounts(1, 3, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.G(0) != SignPositive {
		t.Errorf("expected time axis positive, got %v", sig.G(0))
	}
	for i := 1; i < 4; i++ {
		if sig.G(i) != SignNegative {
			t.Errorf("expected space axis %d negative, got %v", i, sig.G(i))
		}
	}
}

func TestFromCountsPGA(t *testing.T) {
	sig, err := FromCounts(3, 0, 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sig.IsDegenerate() {
		t.Errorf("expected PGA signature to be degenerate")
	}
	if sig.G(3) != SignNull {
		t.Errorf("expected null axis at index 3, got %v", sig.G(3))
	}
}

func TestFromCountsTooLarge(t *testing.T) {
	_, err := FromCounts(5, 4, 0, true)
	if !errors.Is(err, ErrSignatureTooLarge) {
		t.Fatalf("expected ErrSignatureTooLarge, got %v", err)
	}
}

func TestFromMasksOverlap(t *testing.T) {
	_, err := FromMasks(0b011, 0b010, 0, true)
	if !errors.Is(err, ErrMaskOverlap) {
		t.Fatalf("expected ErrMaskOverlap, got %v", err)
	}
}

func TestFromMasksDisjointOrdering(t *testing.T) {
	// time axis last: space (0,1,2) positive, time (3) negative.
	sig, err := FromMasks(0b0111, 0b1000, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.Dimensions() != 4 {
		t.Fatalf("expected dimensions 4, got %d", sig.Dimensions())
	}
	if sig.G(3) != SignNegative {
		t.Errorf("expected axis 3 negative, got %v", sig.G(3))
	}
}

func TestFromMetricRoundTrip(t *testing.T) {
	var m Metric
	m[0], m[1], m[2] = SignPositive, SignNegative, SignNull
	sig, err := FromMetric(m, 3, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.P() != 1 || sig.Q() != 1 || sig.R() != 1 {
		t.Fatalf("expected (1,1,1), got (%d,%d,%d)", sig.P(), sig.Q(), sig.R())
	}
}

func TestFromMetricAxisCountOutOfRange(t *testing.T) {
	var m Metric
	_, err := FromMetric(m, NMax+1, true)
	if !errors.Is(err, ErrAxisCountOutOfRange) {
		t.Fatalf("expected ErrAxisCountOutOfRange, got %v", err)
	}
}
