package srs

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		confidence int
		want       float64
	}{
		{"middle ratings", 3, 3, 3},
		{"easiest most confident", 1, 5, 5},
		{"hardest least confident", 5, 1, 1},
		{"hard but confident", 5, 5, 3},
		{"easy but unsure", 1, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.difficulty, tt.confidence); got != tt.want {
				t.Errorf("Score(%d, %d) = %v, want %v", tt.difficulty, tt.confidence, got, tt.want)
			}
		})
	}
}

func TestScoreAlwaysPositiveGrowth(t *testing.T) {
	// Every valid rating pair must grow the level: score/5 > 0.
	for d := 1; d <= 5; d++ {
		for c := 1; c <= 5; c++ {
			score := Score(d, c)
			if score < 1 || score > 5 {
				t.Errorf("Score(%d, %d) = %v, outside [1,5]", d, c, score)
			}
		}
	}
}

func TestRatingValidate(t *testing.T) {
	if err := (Rating{Difficulty: 3, Confidence: 4}).Validate(); err != nil {
		t.Errorf("valid rating rejected: %v", err)
	}
	if err := (Rating{Difficulty: 0, Confidence: 4}).Validate(); err == nil {
		t.Error("difficulty 0 accepted")
	}
	if err := (Rating{Difficulty: 3, Confidence: 6}).Validate(); err == nil {
		t.Error("confidence 6 accepted")
	}
}
