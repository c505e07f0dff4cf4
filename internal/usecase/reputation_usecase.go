package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/logger"
)

// eligibleStatuses menentukan siapa yang ikut batch recompute. Akun
// suspended tetap dihitung supaya riwayat reputasinya tidak hilang
// hanya karena aksesnya dibatasi.
var eligibleStatuses = []string{"active", "suspended"}

type ReputationUseCase struct {
	reputationRepo  repository.ReputationRepository
	transactionRepo repository.TransactionRepository
	chatRepo        repository.ChatRepository
	userRepo        repository.UserRepository
	workers         int
}

func NewReputationUseCase(
	reputationRepo repository.ReputationRepository,
	transactionRepo repository.TransactionRepository,
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	workers int,
) *ReputationUseCase {
	if workers <= 0 {
		workers = 1
	}
	return &ReputationUseCase{
		reputationRepo:  reputationRepo,
		transactionRepo: transactionRepo,
		chatRepo:        chatRepo,
		userRepo:        userRepo,
		workers:         workers,
	}
}

// GetReputation mengembalikan record tersimpan, membuat record netral
// jika user belum pernah dihitung.
func (uc *ReputationUseCase) GetReputation(ctx context.Context, userID string) (*entity.Reputation, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return uc.reputationRepo.GetOrCreate(ctx, userID)
}

// CalculateReputation menjalankan pipeline lengkap untuk satu user:
// agregasi transaksi, estimasi respons, skor, lalu tulis ulang utuh.
func (uc *ReputationUseCase) CalculateReputation(ctx context.Context, userID string) (*entity.Reputation, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	prior, err := uc.reputationRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	txMetrics, err := uc.aggregateTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	respMetrics, err := uc.estimateResponses(ctx, userID)
	if err != nil {
		return nil, err
	}

	input := ScoreInput{
		SellerRating:           txMetrics.SellerRating,
		BuyerRating:            txMetrics.BuyerRating,
		TotalSales:             txMetrics.TotalSales,
		CompletionRate:         txMetrics.CompletionRate,
		ResponseRate:           respMetrics.ResponseRate,
		AvgResponseTimeMinutes: respMetrics.AvgResponseTimeMinutes,
	}

	trustedSeller, fastResponder, topRated := calculateBadges(input)

	now := time.Now()
	rep := &entity.Reputation{
		UserID:                 userID,
		SellerRating:           txMetrics.SellerRating,
		TotalSales:             txMetrics.TotalSales,
		SalesVolume:            txMetrics.SalesVolume,
		BuyerRating:            txMetrics.BuyerRating,
		TotalPurchases:         txMetrics.TotalPurchases,
		CompletionRate:         txMetrics.CompletionRate,
		AvgResponseTimeMinutes: respMetrics.AvgResponseTimeMinutes,
		ResponseRate:           respMetrics.ResponseRate,
		ReliabilityScore:       calculateReliabilityScore(input),
		TrustedSeller:          trustedSeller,
		FastResponder:          fastResponder,
		TopRated:               topRated,
		LastCalculatedAt:       now,
		CreatedAt:              prior.CreatedAt,
		UpdatedAt:              now,
	}

	if err := uc.reputationRepo.Upsert(ctx, rep); err != nil {
		return nil, err
	}

	return rep, nil
}

func (uc *ReputationUseCase) aggregateTransactions(ctx context.Context, userID string) (TransactionMetrics, error) {
	completedTypes := []string{entity.TransactionTypeOrder, entity.TransactionTypeBooking}
	completedStatuses := []string{entity.TransactionStatusCompleted}

	sellerTxs, err := uc.transactionRepo.List(ctx, repository.TransactionFilter{
		SellerID: userID,
		Types:    completedTypes,
		Statuses: completedStatuses,
	})
	if err != nil {
		return TransactionMetrics{}, err
	}

	buyerTxs, err := uc.transactionRepo.List(ctx, repository.TransactionFilter{
		BuyerID:  userID,
		Types:    completedTypes,
		Statuses: completedStatuses,
	})
	if err != nil {
		return TransactionMetrics{}, err
	}

	// Penyebut rasio penyelesaian hanya dari order, bukan booking.
	orderType := []string{entity.TransactionTypeOrder}

	buyerOrders, err := uc.transactionRepo.List(ctx, repository.TransactionFilter{
		BuyerID: userID,
		Types:   orderType,
	})
	if err != nil {
		return TransactionMetrics{}, err
	}

	sellerOrders, err := uc.transactionRepo.List(ctx, repository.TransactionFilter{
		SellerID: userID,
		Types:    orderType,
	})
	if err != nil {
		return TransactionMetrics{}, err
	}

	orders := make([]*entity.Transaction, 0, len(buyerOrders)+len(sellerOrders))
	seen := make(map[string]bool, len(buyerOrders)+len(sellerOrders))
	for _, tx := range append(buyerOrders, sellerOrders...) {
		if seen[tx.ID] {
			continue
		}
		seen[tx.ID] = true
		orders = append(orders, tx)
	}

	return aggregateTransactionMetrics(sellerTxs, buyerTxs, orders), nil
}

func (uc *ReputationUseCase) estimateResponses(ctx context.Context, userID string) (ResponseMetrics, error) {
	chats, err := uc.chatRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return ResponseMetrics{}, err
	}

	threads := make([]ThreadMessages, 0, len(chats))
	for _, chat := range chats {
		messages, err := uc.chatRepo.ListMessages(ctx, chat.ID, messagePrefixLimit)
		if err != nil {
			return ResponseMetrics{}, err
		}
		threads = append(threads, ThreadMessages{Chat: chat, Messages: messages})
	}

	return estimateResponseMetrics(userID, threads), nil
}

// RecomputeSummary merangkum satu batch: berapa user berhasil diproses
// dan siapa saja yang gagal beserta alasannya.
type RecomputeSummary struct {
	Processed int                 `json:"processed"`
	Failed    []entity.FailedUser `json:"failed,omitempty"`
}

// RecomputeAll menghitung ulang reputasi semua user yang eligible.
// Kegagalan satu user dicatat dan tidak menghentikan batch.
func (uc *ReputationUseCase) RecomputeAll(ctx context.Context) (*RecomputeSummary, error) {
	users, err := uc.userRepo.ListByStatus(ctx, eligibleStatuses)
	if err != nil {
		return nil, err
	}

	startedAt := time.Now()

	var (
		p  = pool.New().WithMaxGoroutines(uc.workers)
		mu sync.Mutex

		processed int
		failed    []entity.FailedUser
	)

	for _, user := range users {
		if ctx.Err() != nil {
			break
		}

		user := user
		p.Go(func() {
			_, err := uc.CalculateReputation(ctx, user.ID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Warn("Reputation recompute failed for user %s: %v", user.ID, err)
				failed = append(failed, entity.FailedUser{UserID: user.ID, Reason: err.Error()})
				return
			}
			processed++
		})
	}

	p.Wait()

	run := &entity.RecomputeRun{
		ID:         uuid.New().String(),
		Processed:  processed,
		Failed:     failed,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}
	if err := uc.reputationRepo.CreateRecomputeRun(ctx, run); err != nil {
		// Jejak audit bersifat best-effort.
		logger.Warn("Failed to record recompute run: %v", err)
	}

	logger.Info("Reputation recompute done: %d processed, %d failed", processed, len(failed))

	return &RecomputeSummary{Processed: processed, Failed: failed}, nil
}

// LeaderboardEntry menggabungkan record reputasi dengan field tampilan
// minimal dari user.
type LeaderboardEntry struct {
	*entity.Reputation
	Username  string `json:"username,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// TopRatedUsers mengembalikan user ber-badge topRated, terurut skor
// menurun.
func (uc *ReputationUseCase) TopRatedUsers(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	reps, err := uc.reputationRepo.ListTopRated(ctx, limit)
	if err != nil {
		return nil, err
	}

	return uc.joinDisplayFields(ctx, reps), nil
}

// TrustedSellers mengembalikan user ber-badge trustedSeller, terurut
// jumlah penjualan menurun.
func (uc *ReputationUseCase) TrustedSellers(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	reps, err := uc.reputationRepo.ListTrustedSellers(ctx, limit)
	if err != nil {
		return nil, err
	}

	return uc.joinDisplayFields(ctx, reps), nil
}

func (uc *ReputationUseCase) joinDisplayFields(ctx context.Context, reps []*entity.Reputation) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(reps))
	for _, rep := range reps {
		entry := LeaderboardEntry{Reputation: rep}

		user, err := uc.userRepo.GetByID(ctx, rep.UserID)
		if err != nil {
			logger.Warn("Failed to load display fields for user %s: %v", rep.UserID, err)
		} else {
			entry.Username = user.Username
			entry.AvatarURL = user.AvatarURL
		}

		entries = append(entries, entry)
	}

	return entries
}
