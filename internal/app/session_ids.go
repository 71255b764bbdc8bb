package app

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SessionKeyPrefix is the storage key under which a client's chat id lives.
const SessionKeyPrefix = "protalk_chat_id"

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// IdentityStore persists session identifiers (in-process map, Redis, ...).
type IdentityStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	// SetIfAbsent stores value unless key exists and returns the value that won.
	SetIfAbsent(ctx context.Context, key, value string) (string, error)
}

// SessionIDs hands out the chat identifier attached to every AI request.
// Identifiers are pseudo-random, created on first use and never rotated.
type SessionIDs struct {
	store  IdentityStore
	logger *zap.Logger

	mu        sync.Mutex
	rnd       *rand.Rand
	fallbacks map[string]string
}

func NewSessionIDs(store IdentityStore, logger *zap.Logger) *SessionIDs {
	return &SessionIDs{
		store:     store,
		logger:    logger,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		fallbacks: make(map[string]string),
	}
}

// Identifier returns the chat id for clientID. It never fails: when the store
// is unavailable a temp_ identifier is kept in memory for the client instead.
func (s *SessionIDs) Identifier(ctx context.Context, clientID string) string {
	key := SessionKeyPrefix + ":" + clientID

	id, ok, err := s.store.Get(ctx, key)
	if err == nil && ok && id != "" {
		return id
	}
	if err == nil {
		id, err = s.store.SetIfAbsent(ctx, key, "user_"+s.suffix())
		if err == nil {
			return id
		}
	}

	s.logger.Warn("identity store unavailable, using in-memory session id", zap.Error(err))
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.fallbacks[clientID]; ok {
		return id
	}
	id = "temp_" + s.suffixLocked()
	s.fallbacks[clientID] = id
	return id
}

func (s *SessionIDs) suffix() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suffixLocked()
}

func (s *SessionIDs) suffixLocked() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = suffixAlphabet[s.rnd.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
