package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

// TransactionFilter adalah predikat terstruktur untuk query transaksi.
// Field kosong berarti tidak difilter.
type TransactionFilter struct {
	BuyerID  string
	SellerID string
	Types    []string
	Statuses []string
}

type TransactionRepository interface {
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
}
