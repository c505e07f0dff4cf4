package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lokapasar/internal/domain/entity"
)

func completedTx(txType string, amount float64, ratings ...int) *entity.Transaction {
	tx := &entity.Transaction{
		Type:   txType,
		Amount: amount,
		Status: entity.TransactionStatusCompleted,
	}
	for _, rating := range ratings {
		tx.Reviews = append(tx.Reviews, entity.Review{Rating: rating})
	}
	return tx
}

func TestAggregateTransactionMetricsSellerSide(t *testing.T) {
	sellerTxs := []*entity.Transaction{
		completedTx(entity.TransactionTypeOrder, 100, 5),
		completedTx(entity.TransactionTypeOrder, 150, 4),
		completedTx(entity.TransactionTypeBooking, 50, 5),
	}

	metrics := aggregateTransactionMetrics(sellerTxs, nil, nil)

	assert.Equal(t, 3, metrics.TotalSales)
	assert.Equal(t, float64(300), metrics.SalesVolume)
	if assert.NotNil(t, metrics.SellerRating) {
		assert.InDelta(t, 4.6667, *metrics.SellerRating, 0.001)
	}
	assert.Equal(t, 0, metrics.TotalPurchases)
	assert.Nil(t, metrics.BuyerRating)
}

func TestAggregateTransactionMetricsBuyerSideIndependent(t *testing.T) {
	sellerTxs := []*entity.Transaction{
		completedTx(entity.TransactionTypeOrder, 100, 5),
	}
	buyerTxs := []*entity.Transaction{
		completedTx(entity.TransactionTypeOrder, 80, 3),
		completedTx(entity.TransactionTypeBooking, 40),
	}

	metrics := aggregateTransactionMetrics(sellerTxs, buyerTxs, nil)

	assert.Equal(t, 2, metrics.TotalPurchases)
	if assert.NotNil(t, metrics.BuyerRating) {
		assert.Equal(t, float64(3), *metrics.BuyerRating)
	}
	if assert.NotNil(t, metrics.SellerRating) {
		assert.Equal(t, float64(5), *metrics.SellerRating)
	}
}

func TestAggregateTransactionMetricsNoReviews(t *testing.T) {
	sellerTxs := []*entity.Transaction{
		completedTx(entity.TransactionTypeOrder, 100),
	}

	metrics := aggregateTransactionMetrics(sellerTxs, nil, nil)

	assert.Equal(t, 1, metrics.TotalSales)
	assert.Nil(t, metrics.SellerRating)
	assert.Nil(t, metrics.BuyerRating)
}

func TestAggregateTransactionMetricsCompletionRate(t *testing.T) {
	orders := []*entity.Transaction{
		{Type: entity.TransactionTypeOrder, Status: entity.TransactionStatusCompleted},
		{Type: entity.TransactionTypeOrder, Status: entity.TransactionStatusCancelled},
		{Type: entity.TransactionTypeOrder, Status: "payment_pending"},
		{Type: entity.TransactionTypeOrder, Status: entity.TransactionStatusCompleted},
	}

	metrics := aggregateTransactionMetrics(nil, nil, orders)

	assert.Equal(t, float64(75), metrics.CompletionRate)
}

func TestAggregateTransactionMetricsEmpty(t *testing.T) {
	metrics := aggregateTransactionMetrics(nil, nil, nil)

	assert.Equal(t, 0, metrics.TotalSales)
	assert.Equal(t, float64(0), metrics.SalesVolume)
	assert.Nil(t, metrics.SellerRating)
	assert.Nil(t, metrics.BuyerRating)
	assert.Equal(t, 0, metrics.TotalPurchases)
	assert.Equal(t, float64(0), metrics.CompletionRate)
}

func TestMeanReviewRatingAlwaysInRange(t *testing.T) {
	txs := []*entity.Transaction{
		completedTx(entity.TransactionTypeOrder, 10, 1, 5, 1, 5, 3),
		completedTx(entity.TransactionTypeBooking, 10, 2, 4),
	}

	mean := meanReviewRating(txs)
	if assert.NotNil(t, mean) {
		assert.GreaterOrEqual(t, *mean, float64(1))
		assert.LessOrEqual(t, *mean, float64(5))
	}

	assert.Nil(t, meanReviewRating(nil))
}
