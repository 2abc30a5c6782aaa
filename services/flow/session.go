package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"podio/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrSessionNotFound reports an unknown or expired flow session.
var ErrSessionNotFound = errors.New("flow session not found or expired")

// Session aggregates the per-flow stores of one registration session. Each
// store is persisted under its own Redis key, so resetting one never
// touches the others.
type Session struct {
	ID      string
	EventID int

	Registration *RegistrationState
	Group        *GroupState
	Spectator    *SpectatorState
	Payment      *PaymentState
	Type         *TypeState
}

// SessionRepo persists flow sessions in Redis. Writes refresh the session
// TTL; a session disappears as a whole once its keys expire.
type SessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepo builds a repo over the given Redis client.
func NewSessionRepo(client *redis.Client, ttl time.Duration) *SessionRepo {
	return &SessionRepo{client: client, ttl: ttl}
}

func (r *SessionRepo) key(sessionID, store string) string {
	return fmt.Sprintf("%s:%s", sessionID, store)
}

// Create opens a fresh session for an event and persists its empty stores.
func (r *SessionRepo) Create(ctx context.Context, eventID int) (*Session, error) {
	s := &Session{
		ID:           uuid.New().String(),
		EventID:      eventID,
		Registration: NewRegistrationState(),
		Group:        NewGroupState(),
		Spectator:    NewSpectatorState(),
		Payment:      NewPaymentState(),
		Type:         NewTypeState(),
	}
	if err := r.SaveAll(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Load rebuilds a session from its Redis keys. The registration store is
// the session's anchor: if it is gone the session is gone. Other stores
// missing their key come back as fresh defaults, mirroring how the client
// kept independent storage entries.
func (r *SessionRepo) Load(ctx context.Context, sessionID string, eventID int) (*Session, error) {
	s := &Session{
		ID:           sessionID,
		EventID:      eventID,
		Registration: NewRegistrationState(),
		Group:        NewGroupState(),
		Spectator:    NewSpectatorState(),
		Payment:      NewPaymentState(),
		Type:         NewTypeState(),
	}

	data, err := r.client.Get(ctx, r.key(sessionID, utils.RegistrationStorageKey)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if err := json.Unmarshal([]byte(data), s.Registration); err != nil {
		return nil, fmt.Errorf("failed to parse registration state: %w", err)
	}

	if err := r.loadStore(ctx, sessionID, utils.GroupStorageKey, s.Group); err != nil {
		return nil, err
	}
	if err := r.loadStore(ctx, sessionID, utils.SpectatorStorageKey, s.Spectator); err != nil {
		return nil, err
	}
	if err := r.loadStore(ctx, sessionID, utils.PaymentStorageKey, s.Payment); err != nil {
		return nil, err
	}
	if err := r.loadStore(ctx, sessionID, utils.TypeStorageKey, s.Type); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SessionRepo) loadStore(ctx context.Context, sessionID, store string, target interface{}) error {
	data, err := r.client.Get(ctx, r.key(sessionID, store)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", store, err)
	}
	if err := json.Unmarshal([]byte(data), target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", store, err)
	}
	return nil
}

func (r *SessionRepo) saveStore(ctx context.Context, sessionID, store string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", store, err)
	}
	if err := r.client.Set(ctx, r.key(sessionID, store), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist %s: %w", store, err)
	}
	return nil
}

// SaveRegistration persists the individual store, step progress included.
func (r *SessionRepo) SaveRegistration(ctx context.Context, s *Session) error {
	return r.saveStore(ctx, s.ID, utils.RegistrationStorageKey, s.Registration)
}

// SaveGroup persists the group store.
func (r *SessionRepo) SaveGroup(ctx context.Context, s *Session) error {
	return r.saveStore(ctx, s.ID, utils.GroupStorageKey, s.Group)
}

// SaveSpectator persists the spectator store.
func (r *SessionRepo) SaveSpectator(ctx context.Context, s *Session) error {
	return r.saveStore(ctx, s.ID, utils.SpectatorStorageKey, s.Spectator)
}

// SavePayment persists the payment store.
func (r *SessionRepo) SavePayment(ctx context.Context, s *Session) error {
	return r.saveStore(ctx, s.ID, utils.PaymentStorageKey, s.Payment)
}

// SaveType persists the registration-type store.
func (r *SessionRepo) SaveType(ctx context.Context, s *Session) error {
	return r.saveStore(ctx, s.ID, utils.TypeStorageKey, s.Type)
}

// SaveAll persists every store of the session.
func (r *SessionRepo) SaveAll(ctx context.Context, s *Session) error {
	if err := r.SaveRegistration(ctx, s); err != nil {
		return err
	}
	if err := r.SaveGroup(ctx, s); err != nil {
		return err
	}
	if err := r.SaveSpectator(ctx, s); err != nil {
		return err
	}
	if err := r.SavePayment(ctx, s); err != nil {
		return err
	}
	return r.SaveType(ctx, s)
}

// ResetAll returns every store to its defaults and persists them. Called
// after a confirmed successful submission or a user restart.
func (r *SessionRepo) ResetAll(ctx context.Context, s *Session) error {
	s.Registration.Reset()
	s.Group.Reset()
	s.Spectator.Reset()
	s.Payment.Reset()
	s.Type.Reset()
	return r.SaveAll(ctx, s)
}

// submitLockTTL caps how long a submission may hold the in-flight lock.
const submitLockTTL = 30 * time.Second

// AcquireSubmitLock claims the session's single in-flight submission slot.
func (r *SessionRepo) AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	return r.client.SetNX(ctx, r.key(sessionID, "submit-lock"), "1", submitLockTTL).Result()
}

// ReleaseSubmitLock frees the submission slot.
func (r *SessionRepo) ReleaseSubmitLock(ctx context.Context, sessionID string) {
	r.client.Del(ctx, r.key(sessionID, "submit-lock"))
}
