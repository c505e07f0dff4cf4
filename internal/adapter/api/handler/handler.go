package handler

import (
	"lokapasar/internal/usecase"
)

var (
	reputationHandler *ReputationHandler
)

func Setup(
	reputationUseCase *usecase.ReputationUseCase,
	leaderboardDefaultLimit int,
) {
	reputationHandler = NewReputationHandler(reputationUseCase, leaderboardDefaultLimit)
}

func GetReputationHandler() *ReputationHandler {
	return reputationHandler
}
