package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/uuid"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

type firestoreReputationRepository struct {
	client *firestore.Client
}

func NewFirestoreReputationRepository(client *firestore.Client) repository.ReputationRepository {
	return &firestoreReputationRepository{
		client: client,
	}
}

// GetOrCreate membaca record reputasi user, membuat record netral dalam
// satu transaksi Firestore jika belum ada.
func (r *firestoreReputationRepository) GetOrCreate(ctx context.Context, userID string) (*entity.Reputation, error) {
	ref := r.client.Collection("reputations").Doc(userID)

	var reputation entity.Reputation
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
			reputation = *entity.NewDefaultReputation(userID)
			return tx.Set(ref, &reputation)
		}
		return doc.DataTo(&reputation)
	})
	if err != nil {
		return nil, errors.Internal("Failed to get or create reputation", err)
	}

	return &reputation, nil
}

// Upsert menulis ulang seluruh record, bukan merge per field.
func (r *firestoreReputationRepository) Upsert(ctx context.Context, rep *entity.Reputation) error {
	rep.UpdatedAt = time.Now()

	_, err := r.client.Collection("reputations").Doc(rep.UserID).Set(ctx, rep)
	if err != nil {
		return errors.Internal("Failed to upsert reputation", err)
	}

	return nil
}

func (r *firestoreReputationRepository) ListTopRated(ctx context.Context, limit int) ([]*entity.Reputation, error) {
	query := r.client.Collection("reputations").
		Where("topRated", "==", true).
		OrderBy("reliabilityScore", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	return r.listReputations(ctx, query)
}

func (r *firestoreReputationRepository) ListTrustedSellers(ctx context.Context, limit int) ([]*entity.Reputation, error) {
	query := r.client.Collection("reputations").
		Where("trustedSeller", "==", true).
		OrderBy("totalSales", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	return r.listReputations(ctx, query)
}

func (r *firestoreReputationRepository) listReputations(ctx context.Context, query firestore.Query) ([]*entity.Reputation, error) {
	iter := query.Documents(ctx)
	var reputations []*entity.Reputation

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reputations", err)
		}

		var reputation entity.Reputation
		if err := doc.DataTo(&reputation); err != nil {
			return nil, errors.Internal("Failed to parse reputation data", err)
		}
		reputations = append(reputations, &reputation)
	}

	return reputations, nil
}

func (r *firestoreReputationRepository) CreateRecomputeRun(ctx context.Context, run *entity.RecomputeRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	_, err := r.client.Collection("reputation_recompute_runs").Doc(run.ID).Set(ctx, run)
	if err != nil {
		return errors.Internal("Failed to create recompute run", err)
	}

	return nil
}
