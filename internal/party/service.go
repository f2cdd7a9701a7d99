package party

import (
	"context"
	"fmt"
	"time"

	"mealslot/internal/logger"
	"mealslot/internal/spin"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

// Broadcaster is the realtime collaborator. Fire-and-forget: a failed
// or missing broadcast never fails the operation that triggered it.
type Broadcaster interface {
	Publish(roomCode, event string, payload any)
	CloseRoom(roomCode string)
}

// Event names sent over the broadcast channel.
const (
	EventSessionState   = "session_state"
	EventMemberJoined   = "member_joined"
	EventMemberLeft     = "member_left"
	EventSpinResult     = "spin_result"
	EventSessionEnd     = "session_end"
	EventSessionExpired = "session_expired"
)

// codeAlphabet omits easily-confused characters (I, L, O, 0, 1).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	codeLength       = 6
	codeAllocRetries = 5
	defaultTTL       = 2 * time.Hour
	sweepInterval    = time.Minute
)

type Service struct {
	registry   *Registry
	spins      *spin.Service
	rt         Broadcaster
	ttl        time.Duration
	categories []string
	now        func() time.Time
}

func NewService(registry *Registry, spins *spin.Service, rt Broadcaster) *Service {
	return &Service{
		registry:   registry,
		spins:      spins,
		rt:         rt,
		ttl:        defaultTTL,
		categories: []string{"meat", "veg", "staple", "soup"},
		now:        time.Now,
	}
}

// --------------------------------------------------
// Create room (creator becomes host)
// --------------------------------------------------
func (s *Service) Create(nickname string) (code string, memberID string, err error) {
	if nickname == "" {
		nickname = "Guest"
	}

	host := &Member{ID: uuid.New().String(), Nickname: nickname}

	for i := 0; i < codeAllocRetries; i++ {
		c, err := gonanoid.Generate(codeAlphabet, codeLength)
		if err != nil {
			return "", "", fmt.Errorf("generate room code: %w", err)
		}

		room := &Room{
			Code:      c,
			HostID:    host.ID,
			members:   []*Member{host},
			PowerUps:  spin.PowerUps{Healthy: 0.5, Cheap: 0.5, T30: 0.5},
			State:     map[string]any{},
			ExpiresAt: s.now().Add(s.ttl),
		}
		if s.registry.PutIfAbsent(room) {
			logger.Info("room created",
				zap.String("code", c),
				zap.String("host", host.ID))
			return c, host.ID, nil
		}
	}
	return "", "", ErrCodeExhausted
}

// --------------------------------------------------
// Join room
// --------------------------------------------------
func (s *Service) Join(code, nickname string) (string, error) {
	room := s.registry.Get(code)
	if room == nil {
		return "", ErrNotFound
	}
	if nickname == "" {
		nickname = "Guest"
	}

	member := &Member{ID: uuid.New().String(), Nickname: nickname}

	room.mu.Lock()
	if room.Closed {
		room.mu.Unlock()
		return "", ErrNotFound
	}
	room.members = append(room.members, member)
	room.recomputeMerged()
	room.ExpiresAt = s.now().Add(s.ttl)
	view := room.snapshot()
	room.mu.Unlock()

	s.publish(code, EventMemberJoined, member)
	s.publish(code, EventSessionState, view)
	return member.ID, nil
}

// --------------------------------------------------
// Room state snapshot
// --------------------------------------------------
func (s *Service) State(code string) (*StateView, error) {
	room := s.registry.Get(code)
	if room == nil {
		return nil, ErrNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.Closed {
		return nil, ErrNotFound
	}
	return room.snapshot(), nil
}

// --------------------------------------------------
// Member constraint updates
// --------------------------------------------------
func (s *Service) UpdateConstraints(code, memberID string, cons spin.Constraints) error {
	room := s.registry.Get(code)
	if room == nil {
		return ErrNotFound
	}

	room.mu.Lock()
	if room.Closed {
		room.mu.Unlock()
		return ErrNotFound
	}
	m := room.member(memberID)
	if m == nil {
		room.mu.Unlock()
		return ErrMemberNotFound
	}
	m.Constraints = cons
	room.recomputeMerged()
	room.ExpiresAt = s.now().Add(s.ttl)
	view := room.snapshot()
	room.mu.Unlock()

	s.publish(code, EventSessionState, view)
	return nil
}

// --------------------------------------------------
// Room power-ups (any member may adjust)
// --------------------------------------------------
func (s *Service) UpdatePowerUps(code, memberID string, pu spin.PowerUps) error {
	room := s.registry.Get(code)
	if room == nil {
		return ErrNotFound
	}

	room.mu.Lock()
	if room.Closed {
		room.mu.Unlock()
		return ErrNotFound
	}
	if room.member(memberID) == nil {
		room.mu.Unlock()
		return ErrMemberNotFound
	}
	room.PowerUps = pu
	room.ExpiresAt = s.now().Add(s.ttl)
	view := room.snapshot()
	room.mu.Unlock()

	s.publish(code, EventSessionState, view)
	return nil
}

// --------------------------------------------------
// Group spin (host only)
// --------------------------------------------------
func (s *Service) HostSpin(ctx context.Context, code, memberID, seed string) (*spin.Result, error) {
	room := s.registry.Get(code)
	if room == nil {
		return nil, ErrNotFound
	}

	room.mu.Lock()
	if room.Closed {
		room.mu.Unlock()
		return nil, ErrNotFound
	}
	if room.HostID != memberID {
		room.mu.Unlock()
		return nil, ErrHostOnly
	}
	merged := room.Merged
	pu := room.PowerUps
	room.ExpiresAt = s.now().Add(s.ttl)
	room.mu.Unlock()

	res, err := s.spins.SpinForRoom(ctx, code, spin.Request{
		Categories:  s.categories,
		PowerUps:    &pu,
		Constraints: &merged,
		Seed:        seed,
	})
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	room.State["lastResult"] = res.Result
	room.State["lastSeed"] = res.Debug.Seed
	view := room.snapshot()
	room.mu.Unlock()

	s.publish(code, EventSpinResult, map[string]any{"result": res.Result, "seed": res.Debug.Seed})
	s.publish(code, EventSessionState, view)
	return res, nil
}

// --------------------------------------------------
// Heartbeat / TTL
// --------------------------------------------------
func (s *Service) Heartbeat(code string) error {
	room := s.registry.Get(code)
	if room == nil {
		return ErrNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.Closed {
		return ErrNotFound
	}
	room.ExpiresAt = s.now().Add(s.ttl)
	return nil
}

// --------------------------------------------------
// Leave / disconnect
// --------------------------------------------------

// Leave removes a member. The host leaving terminates the room for
// everyone.
func (s *Service) Leave(code, memberID string) error {
	room := s.registry.Get(code)
	if room == nil {
		return ErrNotFound
	}

	room.mu.Lock()
	if room.Closed {
		room.mu.Unlock()
		return ErrNotFound
	}
	wasHost := room.HostID == memberID
	removed := room.removeMember(memberID)
	if !removed {
		room.mu.Unlock()
		return ErrMemberNotFound
	}
	if wasHost {
		room.Closed = true
		room.mu.Unlock()

		s.registry.Delete(code)
		s.publish(code, EventSessionEnd, map[string]any{"message": "Host left; session closed"})
		s.closeRoom(code)
		logger.Info("room closed by host departure", zap.String("code", code))
		return nil
	}
	room.recomputeMerged()
	view := room.snapshot()
	room.mu.Unlock()

	s.publish(code, EventMemberLeft, map[string]any{"id": memberID})
	s.publish(code, EventSessionState, view)
	return nil
}

// Disconnect mirrors Leave but tolerates unknown members, for use by
// the websocket hub when a connection drops.
func (s *Service) Disconnect(code, memberID string) {
	if err := s.Leave(code, memberID); err != nil {
		logger.Debug("disconnect for unknown room/member",
			zap.String("code", code),
			zap.String("member", memberID))
	}
}

// --------------------------------------------------
// TTL sweep
// --------------------------------------------------

// StartSweeper closes expired rooms on a fixed interval until ctx is
// done. The TTL is advisory: expiry happens at sweep granularity.
func (s *Service) StartSweeper(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

func (s *Service) Sweep() {
	for _, room := range s.registry.Expire(s.now()) {
		s.publish(room.Code, EventSessionExpired, map[string]any{"message": "Session expired"})
		s.closeRoom(room.Code)
		logger.Info("room expired", zap.String("code", room.Code))
	}
}

func (s *Service) publish(code, event string, payload any) {
	if s.rt == nil {
		return
	}
	s.rt.Publish(code, event, payload)
}

func (s *Service) closeRoom(code string) {
	if s.rt == nil {
		return
	}
	s.rt.CloseRoom(code)
}
