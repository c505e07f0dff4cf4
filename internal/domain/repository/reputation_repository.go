package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

type ReputationRepository interface {
	// GetOrCreate returns the stored record, creating a neutral one in
	// the same atomic operation if the user has none yet.
	GetOrCreate(ctx context.Context, userID string) (*entity.Reputation, error)
	// Upsert replaces the whole record for rep.UserID.
	Upsert(ctx context.Context, rep *entity.Reputation) error

	ListTopRated(ctx context.Context, limit int) ([]*entity.Reputation, error)
	ListTrustedSellers(ctx context.Context, limit int) ([]*entity.Reputation, error)

	CreateRecomputeRun(ctx context.Context, run *entity.RecomputeRun) error
}
