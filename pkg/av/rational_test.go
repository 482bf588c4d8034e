package av

import "testing"

func TestRational_Rescale(t *testing.T) {
	// 90kHz to millisecond clock.
	if got := NewRational(1, 90000).Rescale(90000, NewRational(1, 1000)); got != 1000 {
		t.Errorf("Rescale(90000) = %d, want 1000", got)
	}
	// identity.
	if got := NewRational(1, 48000).Rescale(960, NewRational(1, 48000)); got != 960 {
		t.Errorf("Rescale(960) = %d, want 960", got)
	}
}

func TestRational_Float(t *testing.T) {
	if got := NewRational(1, 4).Float(); got != 0.25 {
		t.Errorf("Float() = %f, want 0.25", got)
	}
	if got := (Rational{}).Float(); got != 0 {
		t.Errorf("Float() = %f, want 0", got)
	}
}

func TestRational_IsZero(t *testing.T) {
	if !(Rational{}).IsZero() {
		t.Errorf("zero value should be zero")
	}
	if NewRational(1, 25).IsZero() {
		t.Errorf("1/25 should not be zero")
	}
}
