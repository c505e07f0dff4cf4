package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestCalculateReliabilityScoreNeutral(t *testing.T) {
	score := calculateReliabilityScore(ScoreInput{})
	assert.Equal(t, float64(50), score)
}

func TestCalculateReliabilityScoreFormula(t *testing.T) {
	tests := []struct {
		name     string
		input    ScoreInput
		expected float64
	}{
		{
			name: "seller rating above neutral",
			input: ScoreInput{
				SellerRating: floatPtr(4),
			},
			expected: 60,
		},
		{
			name: "buyer rating below neutral",
			input: ScoreInput{
				BuyerRating: floatPtr(1),
			},
			expected: 40,
		},
		{
			name: "completion rate capped at 20",
			input: ScoreInput{
				CompletionRate: 100,
			},
			expected: 70,
		},
		{
			name: "response rate capped at 10",
			input: ScoreInput{
				ResponseRate: 100,
			},
			expected: 60,
		},
		{
			name: "slow responder penalty",
			input: ScoreInput{
				AvgResponseTimeMinutes: intPtr(70),
			},
			expected: 40,
		},
		{
			name: "penalty boundary not applied at exactly 60",
			input: ScoreInput{
				AvgResponseTimeMinutes: intPtr(60),
			},
			expected: 50,
		},
		{
			name: "everything maxed clamps to 100",
			input: ScoreInput{
				SellerRating:   floatPtr(5),
				BuyerRating:    floatPtr(5),
				CompletionRate: 100,
				ResponseRate:   100,
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calculateReliabilityScore(tt.input))
		})
	}
}

func TestCalculateReliabilityScoreAlwaysClamped(t *testing.T) {
	ratings := []*float64{nil, floatPtr(1), floatPtr(5)}
	avgs := []*int{nil, intPtr(0), intPtr(100000)}
	rates := []float64{0, 50, 100}

	for _, seller := range ratings {
		for _, buyer := range ratings {
			for _, avg := range avgs {
				for _, completion := range rates {
					for _, respRate := range rates {
						score := calculateReliabilityScore(ScoreInput{
							SellerRating:           seller,
							BuyerRating:            buyer,
							CompletionRate:         completion,
							ResponseRate:           respRate,
							AvgResponseTimeMinutes: avg,
						})
						assert.GreaterOrEqual(t, score, float64(0))
						assert.LessOrEqual(t, score, float64(100))
					}
				}
			}
		}
	}
}

func TestCalculateBadgesTrustedSeller(t *testing.T) {
	tests := []struct {
		name     string
		input    ScoreInput
		expected bool
	}{
		{"meets both thresholds", ScoreInput{TotalSales: 10, SellerRating: floatPtr(4.5)}, true},
		{"too few sales", ScoreInput{TotalSales: 9, SellerRating: floatPtr(5)}, false},
		{"rating too low", ScoreInput{TotalSales: 20, SellerRating: floatPtr(4.4)}, false},
		{"no seller rating", ScoreInput{TotalSales: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trusted, _, _ := calculateBadges(tt.input)
			assert.Equal(t, tt.expected, trusted)
		})
	}
}

func TestCalculateBadgesFastResponder(t *testing.T) {
	_, fast, _ := calculateBadges(ScoreInput{
		AvgResponseTimeMinutes: intPtr(25),
		ResponseRate:           90,
	})
	assert.True(t, fast)

	_, fast, _ = calculateBadges(ScoreInput{
		AvgResponseTimeMinutes: intPtr(30),
		ResponseRate:           90,
	})
	assert.False(t, fast)

	_, fast, _ = calculateBadges(ScoreInput{
		AvgResponseTimeMinutes: intPtr(25),
		ResponseRate:           79,
	})
	assert.False(t, fast)

	_, fast, _ = calculateBadges(ScoreInput{ResponseRate: 100})
	assert.False(t, fast)
}

func TestCalculateBadgesTopRated(t *testing.T) {
	_, _, top := calculateBadges(ScoreInput{SellerRating: floatPtr(4.8)})
	assert.True(t, top)

	_, _, top = calculateBadges(ScoreInput{BuyerRating: floatPtr(4.9)})
	assert.True(t, top)

	_, _, top = calculateBadges(ScoreInput{
		SellerRating: floatPtr(4.7),
		BuyerRating:  floatPtr(4.7),
	})
	assert.False(t, top)

	_, _, top = calculateBadges(ScoreInput{})
	assert.False(t, top)
}
