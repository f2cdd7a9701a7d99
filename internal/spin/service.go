package spin

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"mealslot/internal/catalog"
	"mealslot/internal/history"
	"mealslot/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrValidation marks a malformed request, rejected before any
// computation.
var ErrValidation = errors.New("invalid request")

const maxReels = 6

type Service struct {
	catalog catalog.Repository
	history history.Repository
}

func NewService(catalogRepo catalog.Repository, historyRepo history.Repository) *Service {
	return &Service{catalog: catalogRepo, history: historyRepo}
}

// Spin runs one weighted spin for the requested categories. The
// catalog is read once per category before any drawing starts, so the
// whole computation is a pure function of the snapshot, the request
// and the seed.
func (s *Service) Spin(ctx context.Context, req Request) (*Result, error) {
	return s.spin(ctx, "", req)
}

// SpinForRoom is Spin with the party room code attached to the audit
// entry.
func (s *Service) SpinForRoom(ctx context.Context, roomCode string, req Request) (*Result, error) {
	return s.spin(ctx, roomCode, req)
}

func (s *Service) spin(ctx context.Context, roomCode string, req Request) (*Result, error) {
	if len(req.Categories) == 0 || len(req.Categories) > maxReels {
		return nil, fmt.Errorf("%w: need 1..%d categories", ErrValidation, maxReels)
	}

	var pu PowerUps
	if req.PowerUps != nil {
		pu = req.PowerUps.clamped()
	}
	var cons Constraints
	if req.Constraints != nil {
		cons = *req.Constraints
	}

	seed := req.Seed
	if seed == "" {
		// spins are only reproducible when the caller pins the seed
		seed = fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Int63())
	}

	reels := make([]Reel, 0, len(req.Categories))
	for _, cat := range req.Categories {
		full, err := s.catalog.GetByCategory(ctx, cat)
		if err != nil {
			return nil, fmt.Errorf("catalog lookup for %q: %w", cat, err)
		}
		reels = append(reels, Reel{
			Category: cat,
			Pool:     FilterCandidates(cat, full, cons),
			Full:     full,
		})
	}

	locks := make(map[int]string)
	for _, l := range req.Locked {
		if l.Index < 0 || l.Index >= len(reels) {
			continue
		}
		locks[l.Index] = l.ItemID
	}

	rr, err := SpinReels(reels, locks, pu, NewRNG(seed))
	if err != nil {
		return nil, err
	}

	res := &Result{Debug: Debug{Seed: seed}}
	for i, r := range rr {
		res.Result = append(res.Result, r.Pick)
		res.Debug.Candidates = append(res.Debug.Candidates, r.Candidates)
		res.Debug.Scores = append(res.Debug.Scores, r.Scores)
		if r.Fallback {
			res.Debug.Fallbacks = append(res.Debug.Fallbacks, i)
		}
	}

	s.record(ctx, roomCode, req.Categories, seed, res.Result)
	return res, nil
}

// record writes the audit entry. Best-effort by design: the spin
// result is returned to the caller even when the write fails.
func (s *Service) record(ctx context.Context, roomCode string, categories []string, seed string, result []string) {
	if s.history == nil {
		return
	}
	rec := &history.Record{
		ID:         uuid.New().String(),
		RoomCode:   roomCode,
		Seed:       seed,
		Categories: categories,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.history.Save(ctx, rec); err != nil {
		logger.Warn("spin history write failed (non-fatal)",
			zap.String("seed", seed),
			zap.Error(err))
	}
}

// Recent returns the latest audit entries.
func (s *Service) Recent(ctx context.Context, limit int) ([]*history.Record, error) {
	if s.history == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.history.ListRecent(ctx, limit)
}
