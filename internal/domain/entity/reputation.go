package entity

import "time"

// Reputation adalah catatan reputasi turunan per user. Satu dokumen per
// user, selalu ditulis ulang utuh oleh perhitungan ulang.
type Reputation struct {
	UserID string `json:"user_id" firestore:"userId"`

	SellerRating   *float64 `json:"seller_rating,omitempty" firestore:"sellerRating,omitempty"`
	TotalSales     int      `json:"total_sales" firestore:"totalSales"`
	SalesVolume    float64  `json:"sales_volume" firestore:"salesVolume"`
	BuyerRating    *float64 `json:"buyer_rating,omitempty" firestore:"buyerRating,omitempty"`
	TotalPurchases int      `json:"total_purchases" firestore:"totalPurchases"`
	CompletionRate float64  `json:"completion_rate" firestore:"completionRate"`

	AvgResponseTimeMinutes *int    `json:"avg_response_time_minutes,omitempty" firestore:"avgResponseTimeMinutes,omitempty"`
	ResponseRate           float64 `json:"response_rate" firestore:"responseRate"`

	ReliabilityScore float64 `json:"reliability_score" firestore:"reliabilityScore"`

	// Badge turunan; selalu fungsi murni dari metrik di atas.
	TrustedSeller bool `json:"trusted_seller" firestore:"trustedSeller"`
	FastResponder bool `json:"fast_responder" firestore:"fastResponder"`
	TopRated      bool `json:"top_rated" firestore:"topRated"`

	LastCalculatedAt time.Time `json:"last_calculated_at" firestore:"lastCalculatedAt"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}

// NewDefaultReputation membuat record netral untuk user yang belum
// pernah dihitung.
func NewDefaultReputation(userID string) *Reputation {
	now := time.Now()
	return &Reputation{
		UserID:           userID,
		ReliabilityScore: 50,
		LastCalculatedAt: now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// RecomputeRun adalah jejak audit satu kali proses batch.
type RecomputeRun struct {
	ID         string       `json:"id" firestore:"id"`
	Processed  int          `json:"processed" firestore:"processed"`
	Failed     []FailedUser `json:"failed,omitempty" firestore:"failed,omitempty"`
	StartedAt  time.Time    `json:"started_at" firestore:"startedAt"`
	FinishedAt time.Time    `json:"finished_at" firestore:"finishedAt"`
}

type FailedUser struct {
	UserID string `json:"user_id" firestore:"userId"`
	Reason string `json:"reason" firestore:"reason"`
}
