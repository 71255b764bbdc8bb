package postgres

import (
	"context"
	"fmt"
	"time"

	"feedback-coach/internal/domain"
	"github.com/uptrace/bun"
)

type catalogRow struct {
	bun.BaseModel `bun:"table:catalogs"`

	ID        string         `bun:"id,pk"`
	Data      domain.Catalog `bun:"data,type:jsonb"`
	UpdatedAt time.Time      `bun:"updated_at,notnull"`
}

// CatalogWriter stores catalogs for the loader to serve.
type CatalogWriter struct {
	db *bun.DB
}

func NewCatalogWriter(db *bun.DB) *CatalogWriter {
	return &CatalogWriter{db: db}
}

// Upsert inserts the catalog or replaces the stored content for its id.
func (w *CatalogWriter) Upsert(ctx context.Context, catalog domain.Catalog) error {
	row := &catalogRow{ID: catalog.ID, Data: catalog, UpdatedAt: time.Now().UTC()}
	_, err := w.db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert catalog %q: %w", catalog.ID, err)
	}
	return nil
}
