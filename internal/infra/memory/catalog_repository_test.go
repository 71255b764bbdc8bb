package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"feedback-coach/internal/content"
	"feedback-coach/internal/domain"
)

func TestCatalogRepositoryCaches(t *testing.T) {
	loader := &countingLoader{CatalogLoader: NewStaticCatalogLoader(content.Builtin())}
	repo := NewCatalogRepository(loader, time.Minute)

	first, err := repo.GetCatalog(context.Background(), content.DefaultCatalogID)
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if len(first.Quiz) == 0 {
		t.Fatalf("expected quiz items")
	}
	if _, err := repo.GetCatalog(context.Background(), content.DefaultCatalogID); err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.count() != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.count())
	}
}

func TestCatalogRepositoryExpires(t *testing.T) {
	loader := &countingLoader{CatalogLoader: NewStaticCatalogLoader(content.Builtin())}
	repo := NewCatalogRepository(loader, time.Minute)
	now := time.Now()
	repo.clock = func() time.Time { return now }

	if _, err := repo.GetCatalog(context.Background(), content.DefaultCatalogID); err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := repo.GetCatalog(context.Background(), content.DefaultCatalogID); err != nil {
		t.Fatalf("get catalog after expiry: %v", err)
	}
	if loader.count() != 2 {
		t.Fatalf("expected reload after ttl, loader calls %d", loader.count())
	}
}

func TestCatalogRepositoryNotFound(t *testing.T) {
	repo := NewCatalogRepository(NewStaticCatalogLoader(), time.Minute)
	if _, err := repo.GetCatalog(context.Background(), "missing"); !errors.Is(err, domain.ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
}

func TestIdentityStoreFirstWriteWins(t *testing.T) {
	store := NewIdentityStore()
	ctx := context.Background()

	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatalf("expected empty store")
	}
	first, _ := store.SetIfAbsent(ctx, "k", "user_a")
	second, _ := store.SetIfAbsent(ctx, "k", "user_b")
	if first != "user_a" || second != "user_a" {
		t.Fatalf("expected first write to win, got %q %q", first, second)
	}
	if id, ok, _ := store.Get(ctx, "k"); !ok || id != "user_a" {
		t.Fatalf("unexpected stored id %q", id)
	}
}

type countingLoader struct {
	CatalogLoader
	mu    sync.Mutex
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()
	return l.CatalogLoader.LoadCatalog(ctx, catalogID)
}

func (l *countingLoader) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}
