package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"feedback-coach/internal/content"
	"feedback-coach/internal/domain"
	"feedback-coach/internal/infra/memory"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func TestCatalogRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)
	loader := &countingLoader{CatalogLoader: memory.NewStaticCatalogLoader(content.Builtin())}
	repo := NewCatalogRepository(client, loader, time.Minute, zap.NewNop())

	first, err := repo.GetCatalog(context.Background(), content.DefaultCatalogID)
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists("catalog:" + content.DefaultCatalogID) {
		t.Fatalf("expected catalog key to be set")
	}
	if ttl := mr.TTL("catalog:" + content.DefaultCatalogID); ttl < time.Minute || ttl > 66*time.Second {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	// Second call should hit cache, loader not incremented.
	second, err := repo.GetCatalog(context.Background(), content.DefaultCatalogID)
	if err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("cached catalog differs (-loaded +cached):\n%s", diff)
	}
}

func TestCatalogRepositoryReloadsCorruptEntry(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	if err := mr.Set("catalog:"+content.DefaultCatalogID, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	loader := &countingLoader{CatalogLoader: memory.NewStaticCatalogLoader(content.Builtin())}
	repo := NewCatalogRepository(newClient(mr), loader, time.Minute, zap.NewNop())

	if _, err := repo.GetCatalog(context.Background(), content.DefaultCatalogID); err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader fallback, got %d", loader.calls)
	}
}

func TestCatalogRepositoryMissing(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	repo := NewCatalogRepository(newClient(mr), memory.NewStaticCatalogLoader(), time.Minute, zap.NewNop())
	if _, err := repo.GetCatalog(context.Background(), "nope"); !errors.Is(err, domain.ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
	if mr.Exists("catalog:nope") {
		t.Fatalf("missing catalog must not be cached")
	}
}

type countingLoader struct {
	CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx, catalogID)
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
