package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ressKim-io/idea-arena/internal/concurrency"
	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
	"github.com/ressKim-io/idea-arena/internal/domain/service"
	"github.com/ressKim-io/idea-arena/internal/infrastructure/metrics"
)

// Outcome is one completed battle as seen by the leaderboard
type Outcome struct {
	PlayerID int64
	Username string
	Won      bool
	// Score is the challenger's battle total
	Score int
}

// LeaderboardUsecase defines the interface for leaderboard aggregation
type LeaderboardUsecase interface {
	// RecordOutcome folds exactly one completed battle into the player's entry
	RecordOutcome(ctx context.Context, outcome Outcome) error
	// GetRankedView returns ranked entries for the period, flagging username's entry
	GetRankedView(ctx context.Context, period entity.Period, username string) ([]*entity.RankedEntry, error)
	// Rebuild recomputes one player's entry from their completed battles
	Rebuild(ctx context.Context, playerID int64) (*entity.LeaderboardEntry, error)
	// Reconcile rebuilds every entry that disagrees with the battle history
	// and returns how many were repaired
	Reconcile(ctx context.Context) (int, error)
}

type leaderboardUsecase struct {
	leaderboardRepo repository.LeaderboardRepository
	battleRepo      repository.BattleRepository
	playerRepo      repository.PlayerRepository
	cache           service.LeaderboardCache
	locks           *concurrency.LockManager
	logger          *zap.Logger
	now             func() time.Time

	// generation counts invalidations; a view read before the latest one
	// is not written back to the cache
	cacheMu    sync.Mutex
	generation uint64
}

// NewLeaderboardUsecase creates a new leaderboard usecase. cache may be nil.
func NewLeaderboardUsecase(
	leaderboardRepo repository.LeaderboardRepository,
	battleRepo repository.BattleRepository,
	playerRepo repository.PlayerRepository,
	cache service.LeaderboardCache,
	locks *concurrency.LockManager,
	logger *zap.Logger,
) LeaderboardUsecase {
	return &leaderboardUsecase{
		leaderboardRepo: leaderboardRepo,
		battleRepo:      battleRepo,
		playerRepo:      playerRepo,
		cache:           cache,
		locks:           locks,
		logger:          logger,
		now:             time.Now,
	}
}

func (u *leaderboardUsecase) RecordOutcome(ctx context.Context, outcome Outcome) error {
	unlock := u.locks.Lock(concurrency.PlayerKey(outcome.PlayerID))
	defer unlock()

	entry, err := u.leaderboardRepo.GetByPlayerID(ctx, outcome.PlayerID)
	if err != nil {
		return fmt.Errorf("get leaderboard entry: %w", err)
	}

	if entry == nil {
		entry = entity.NewLeaderboardEntry(outcome.PlayerID, outcome.Username)
		entry.Record(outcome.Won, outcome.Score)
		if err := u.leaderboardRepo.Create(ctx, entry); err != nil {
			return fmt.Errorf("create leaderboard entry: %w", err)
		}
	} else {
		if outcome.Username != "" {
			entry.Username = outcome.Username
		}
		entry.Record(outcome.Won, outcome.Score)
		if err := u.leaderboardRepo.Update(ctx, entry); err != nil {
			return fmt.Errorf("update leaderboard entry: %w", err)
		}
	}

	u.invalidate(ctx)
	return nil
}

func (u *leaderboardUsecase) GetRankedView(ctx context.Context, period entity.Period, username string) ([]*entity.RankedEntry, error) {
	var (
		entries []*entity.LeaderboardEntry
		err     error
	)
	if period == entity.PeriodAllTime {
		entries, err = u.allTimeEntries(ctx)
	} else {
		entries, err = u.windowedEntries(ctx, period.Since(u.now()))
	}
	if err != nil {
		return nil, err
	}

	ranked := make([]*entity.RankedEntry, len(entries))
	for i, e := range entries {
		ranked[i] = &entity.RankedEntry{
			Rank:          i + 1,
			PlayerID:      e.PlayerID,
			Username:      e.Username,
			TotalBattles:  e.TotalBattles,
			Wins:          e.Wins,
			WinRate:       e.WinRate,
			AvgScore:      e.AvgScore,
			IsCurrentUser: username != "" && e.Username == username,
		}
	}
	return ranked, nil
}

func (u *leaderboardUsecase) allTimeEntries(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	if u.cache != nil {
		entries, ok, err := u.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.LeaderboardCache.WithLabelValues("error").Inc()
			u.logger.Warn("Leaderboard cache read failed", zap.Error(err))
		case ok:
			metrics.LeaderboardCache.WithLabelValues("hit").Inc()
			return entries, nil
		default:
			metrics.LeaderboardCache.WithLabelValues("miss").Inc()
		}
	}

	gen := u.cacheGeneration()
	entries, err := u.leaderboardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard entries: %w", err)
	}
	sortEntries(entries)

	u.storeView(ctx, gen, entries)
	return entries, nil
}

func (u *leaderboardUsecase) cacheGeneration() uint64 {
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()
	return u.generation
}

// storeView caches entries unless an invalidation happened since gen was read
func (u *leaderboardUsecase) storeView(ctx context.Context, gen uint64, entries []*entity.LeaderboardEntry) {
	if u.cache == nil {
		return
	}

	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()
	if gen != u.generation {
		metrics.LeaderboardCache.WithLabelValues("stale").Inc()
		return
	}
	if err := u.cache.Set(ctx, entries); err != nil {
		u.logger.Warn("Leaderboard cache write failed", zap.Error(err))
	}
}

// windowedEntries replays the battles completed since the window start
func (u *leaderboardUsecase) windowedEntries(ctx context.Context, since time.Time) ([]*entity.LeaderboardEntry, error) {
	battles, err := u.battleRepo.ListCompletedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list completed battles: %w", err)
	}

	byPlayer := replay(battles)
	if len(byPlayer) == 0 {
		return []*entity.LeaderboardEntry{}, nil
	}

	ids := make([]int64, 0, len(byPlayer))
	for id := range byPlayer {
		ids = append(ids, id)
	}
	players, err := u.playerRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	for _, p := range players {
		if e, ok := byPlayer[p.ID]; ok {
			e.Username = p.Username
		}
	}

	entries := make([]*entity.LeaderboardEntry, 0, len(byPlayer))
	for _, e := range byPlayer {
		entries = append(entries, e)
	}
	sortEntries(entries)
	return entries, nil
}

func (u *leaderboardUsecase) Rebuild(ctx context.Context, playerID int64) (*entity.LeaderboardEntry, error) {
	// A battle completing under the history lock is either not yet listed
	// below or already recorded in the entry
	unlockHistory := u.locks.Lock(concurrency.HistoryKey(playerID))
	defer unlockHistory()
	unlock := u.locks.Lock(concurrency.PlayerKey(playerID))
	defer unlock()

	player, err := u.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	battles, err := u.battleRepo.ListCompletedByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list completed battles: %w", err)
	}

	rebuilt := entity.NewLeaderboardEntry(playerID, player.Username)
	if e, ok := replay(battles)[playerID]; ok {
		rebuilt = e
		rebuilt.Username = player.Username
	}

	existing, err := u.leaderboardRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard entry: %w", err)
	}

	switch {
	case existing == nil && rebuilt.TotalBattles == 0:
		return nil, nil
	case existing == nil:
		err = u.leaderboardRepo.Create(ctx, rebuilt)
	default:
		rebuilt.ID = existing.ID
		err = u.leaderboardRepo.Update(ctx, rebuilt)
	}
	if err != nil {
		return nil, fmt.Errorf("save rebuilt entry: %w", err)
	}

	u.invalidate(ctx)
	return rebuilt, nil
}

func (u *leaderboardUsecase) Reconcile(ctx context.Context) (int, error) {
	battles, err := u.battleRepo.ListCompletedSince(ctx, time.Time{})
	if err != nil {
		return 0, fmt.Errorf("list completed battles: %w", err)
	}
	expected := replay(battles)

	stored, err := u.leaderboardRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list leaderboard entries: %w", err)
	}

	candidates := make(map[int64]struct{}, len(expected))
	for _, e := range stored {
		want, ok := expected[e.PlayerID]
		if !ok {
			want = entity.NewLeaderboardEntry(e.PlayerID, e.Username)
		}
		if !sameTotals(e, want) {
			candidates[e.PlayerID] = struct{}{}
		}
		delete(expected, e.PlayerID)
	}
	for id := range expected {
		candidates[id] = struct{}{}
	}

	repaired := 0
	for id := range candidates {
		if _, err := u.Rebuild(ctx, id); err != nil {
			if errors.Is(err, ErrPlayerNotFound) {
				u.logger.Warn("Skipping leaderboard entry without player", zap.Int64("player_id", id))
				continue
			}
			return repaired, err
		}
		repaired++
	}

	if repaired > 0 {
		u.logger.Info("Leaderboard reconciled", zap.Int("repaired", repaired))
	}
	return repaired, nil
}

func (u *leaderboardUsecase) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}

	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()
	u.generation++
	if err := u.cache.Invalidate(ctx); err != nil {
		u.logger.Warn("Leaderboard cache invalidation failed", zap.Error(err))
	}
}

// replay folds completed battles into fresh entries keyed by player id
func replay(battles []*entity.Battle) map[int64]*entity.LeaderboardEntry {
	entries := make(map[int64]*entity.LeaderboardEntry)
	for _, b := range battles {
		if !b.Completed || b.ChallengerWon == nil || b.ChallengerScore == nil {
			continue
		}
		e, ok := entries[b.PlayerID]
		if !ok {
			e = entity.NewLeaderboardEntry(b.PlayerID, "")
			entries[b.PlayerID] = e
		}
		e.Record(*b.ChallengerWon, *b.ChallengerScore)
	}
	return entries
}

func sameTotals(a, b *entity.LeaderboardEntry) bool {
	return a.TotalBattles == b.TotalBattles && a.Wins == b.Wins && a.ScoreSum == b.ScoreSum
}

// sortEntries orders by average score, then wins, then player id
func sortEntries(entries []*entity.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.AvgScore != b.AvgScore {
			return a.AvgScore > b.AvgScore
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.PlayerID < b.PlayerID
	})
}
