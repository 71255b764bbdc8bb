package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
)

type mapStore struct {
	mu     sync.Mutex
	values map[string]string
}

func (s *mapStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *mapStore) SetIfAbsent(_ context.Context, key, value string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	s.values[key] = value
	return value, nil
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}

func (brokenStore) SetIfAbsent(context.Context, string, string) (string, error) {
	return "", errors.New("storage disabled")
}

func TestIdentifierIsStable(t *testing.T) {
	store := &mapStore{values: map[string]string{}}
	ids := NewSessionIDs(store, zap.NewNop())
	ctx := context.Background()

	first := ids.Identifier(ctx, "browser-1")
	second := ids.Identifier(ctx, "browser-1")
	if first != second {
		t.Fatalf("expected stable id, got %q and %q", first, second)
	}
	if !strings.HasPrefix(first, "user_") || len(first) != len("user_")+9 {
		t.Fatalf("unexpected id format %q", first)
	}
	if stored := store.values[SessionKeyPrefix+":browser-1"]; stored != first {
		t.Fatalf("expected id persisted, got %q", stored)
	}

	other := ids.Identifier(ctx, "browser-2")
	if other == first {
		t.Fatalf("expected distinct ids per client")
	}
}

func TestIdentifierReusesPersistedValue(t *testing.T) {
	store := &mapStore{values: map[string]string{SessionKeyPrefix + ":c": "user_existing"}}
	ids := NewSessionIDs(store, zap.NewNop())
	if got := ids.Identifier(context.Background(), "c"); got != "user_existing" {
		t.Fatalf("expected persisted id, got %q", got)
	}
}

func TestIdentifierFallsBackWhenStorageUnavailable(t *testing.T) {
	ids := NewSessionIDs(brokenStore{}, zap.NewNop())
	ctx := context.Background()

	first := ids.Identifier(ctx, "c")
	if !strings.HasPrefix(first, "temp_") {
		t.Fatalf("expected temp_ fallback, got %q", first)
	}
	if again := ids.Identifier(ctx, "c"); again != first {
		t.Fatalf("expected fallback reused, got %q and %q", first, again)
	}
}
