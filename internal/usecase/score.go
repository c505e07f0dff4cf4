package usecase

import (
	"math"
)

const (
	neutralScore = 50

	trustedSellerMinSales  = 10
	trustedSellerMinRating = 4.5
	fastResponderMaxAvg    = 30
	fastResponderMinRate   = 80
	topRatedMinRating      = 4.8
	slowResponseThreshold  = 60
)

// ScoreInput adalah gabungan metrik yang menentukan skor dan badge.
type ScoreInput struct {
	SellerRating           *float64
	BuyerRating            *float64
	TotalSales             int
	CompletionRate         float64
	ResponseRate           float64
	AvgResponseTimeMinutes *int
}

// calculateReliabilityScore menurunkan skor 0-100 dari metrik.
// Mulai dari prior netral 50, digeser oleh rating, rasio penyelesaian,
// dan perilaku respons, lalu dijepit ke [0, 100].
func calculateReliabilityScore(in ScoreInput) float64 {
	score := float64(neutralScore)

	if in.SellerRating != nil {
		score += (*in.SellerRating - 3) * 10
	}
	if in.BuyerRating != nil {
		score += (*in.BuyerRating - 3) * 5
	}

	score += math.Min(in.CompletionRate/2, 20)
	score += math.Min(in.ResponseRate/5, 10)

	if in.AvgResponseTimeMinutes != nil && *in.AvgResponseTimeMinutes > slowResponseThreshold {
		score -= 10
	}

	return math.Max(0, math.Min(100, score))
}

// calculateBadges mengevaluasi ketiga badge langsung dari metrik,
// bukan dari skor.
func calculateBadges(in ScoreInput) (trustedSeller, fastResponder, topRated bool) {
	trustedSeller = in.TotalSales >= trustedSellerMinSales &&
		in.SellerRating != nil && *in.SellerRating >= trustedSellerMinRating

	fastResponder = in.AvgResponseTimeMinutes != nil &&
		*in.AvgResponseTimeMinutes < fastResponderMaxAvg &&
		in.ResponseRate >= fastResponderMinRate

	topRated = (in.SellerRating != nil && *in.SellerRating >= topRatedMinRating) ||
		(in.BuyerRating != nil && *in.BuyerRating >= topRatedMinRating)

	return trustedSeller, fastResponder, topRated
}
