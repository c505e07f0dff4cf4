package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

type ChatRepository interface {
	ListByParticipant(ctx context.Context, userID string) ([]*entity.Chat, error)
	// ListMessages returns up to limit messages ordered ascending by
	// send time.
	ListMessages(ctx context.Context, chatID string, limit int) ([]*entity.Message, error)
}
