package entity

import (
	"time"
)

const (
	TransactionTypeOrder   = "order"
	TransactionTypeBooking = "booking"

	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

type Transaction struct {
	ID       string  `json:"id" firestore:"id"`
	Type     string  `json:"type" firestore:"type"` // "order" atau "booking"
	BuyerID  string  `json:"buyer_id" firestore:"buyerId"`
	SellerID string  `json:"seller_id" firestore:"sellerId"`
	Amount   float64 `json:"amount" firestore:"amount"`
	Status   string  `json:"status" firestore:"status"` // payment_pending, processing, completed, disputed, refunded, cancelled

	Reviews []Review `json:"reviews,omitempty" firestore:"reviews,omitempty"`

	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" firestore:"updatedAt"`
	CompletedAt *time.Time `json:"completed_at,omitempty" firestore:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" firestore:"cancelledAt,omitempty"`
}

// Review adalah ulasan yang melekat pada transaksi yang sudah selesai
type Review struct {
	ReviewerID string    `json:"reviewer_id" firestore:"reviewerId"`
	Rating     int       `json:"rating" firestore:"rating"` // 1-5
	Content    string    `json:"content,omitempty" firestore:"content,omitempty"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
