package usecase

import (
	"lokapasar/internal/domain/entity"
)

// TransactionMetrics adalah hasil agregasi transaksi untuk satu user.
type TransactionMetrics struct {
	SellerRating   *float64
	TotalSales     int
	SalesVolume    float64
	BuyerRating    *float64
	TotalPurchases int
	CompletionRate float64
}

// aggregateTransactionMetrics menghitung metrik penjualan dan pembelian
// dari fakta transaksi. sellerTxs dan buyerTxs berisi transaksi completed
// (order dan booking); orders berisi semua transaksi bertipe order di mana
// user terlibat, apa pun statusnya. Rasio penyelesaian sengaja hanya
// dihitung dari order, mengikuti perilaku produk yang ada.
func aggregateTransactionMetrics(sellerTxs, buyerTxs, orders []*entity.Transaction) TransactionMetrics {
	metrics := TransactionMetrics{}

	metrics.TotalSales = len(sellerTxs)
	for _, tx := range sellerTxs {
		metrics.SalesVolume += tx.Amount
	}
	metrics.SellerRating = meanReviewRating(sellerTxs)

	metrics.TotalPurchases = len(buyerTxs)
	metrics.BuyerRating = meanReviewRating(buyerTxs)

	totalOrders := len(orders)
	cancelledOrders := 0
	for _, tx := range orders {
		if tx.Status == entity.TransactionStatusCancelled {
			cancelledOrders++
		}
	}
	if totalOrders > 0 {
		metrics.CompletionRate = float64(totalOrders-cancelledOrders) / float64(totalOrders) * 100
	}

	return metrics
}

// meanReviewRating merata-ratakan semua rating yang melekat pada
// kumpulan transaksi, atau nil jika tidak ada review sama sekali.
func meanReviewRating(txs []*entity.Transaction) *float64 {
	sum := 0
	count := 0
	for _, tx := range txs {
		for _, review := range tx.Reviews {
			sum += review.Rating
			count++
		}
	}

	if count == 0 {
		return nil
	}

	mean := float64(sum) / float64(count)
	return &mean
}
