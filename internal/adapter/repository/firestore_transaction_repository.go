package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

type firestoreTransactionRepository struct {
	client *firestore.Client
}

func NewFirestoreTransactionRepository(client *firestore.Client) repository.TransactionRepository {
	return &firestoreTransactionRepository{
		client: client,
	}
}

func (r *firestoreTransactionRepository) List(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.client.Collection("transactions").Query

	if filter.BuyerID != "" {
		query = query.Where("buyerId", "==", filter.BuyerID)
	}
	if filter.SellerID != "" {
		query = query.Where("sellerId", "==", filter.SellerID)
	}

	// Firestore hanya mengizinkan satu operator "in" per query, jadi
	// filter satu elemen diturunkan ke "==".
	if len(filter.Types) == 1 {
		query = query.Where("type", "==", filter.Types[0])
	} else if len(filter.Types) > 1 {
		query = query.Where("type", "in", filter.Types)
	}

	if len(filter.Statuses) == 1 {
		query = query.Where("status", "==", filter.Statuses[0])
	} else if len(filter.Statuses) > 1 {
		query = query.Where("status", "in", filter.Statuses)
	}

	iter := query.Documents(ctx)
	var transactions []*entity.Transaction

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate transactions", err)
		}

		var transaction entity.Transaction
		if err := doc.DataTo(&transaction); err != nil {
			return nil, errors.Internal("Failed to parse transaction data", err)
		}
		transactions = append(transactions, &transaction)
	}

	return transactions, nil
}
