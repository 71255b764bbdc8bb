package app

import (
	"context"

	"feedback-coach/internal/domain"
	"go.uber.org/zap"
)

// CatalogRepository loads catalog content (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
}

// CoachService opens client workspaces and serves catalog content.
type CoachService struct {
	catalogs  CatalogRepository
	catalogID string
	ids       *SessionIDs
	gateway   Gateway
	toReply   ReplyFunc
	logger    *zap.Logger
}

func NewCoachService(catalogs CatalogRepository, catalogID string, ids *SessionIDs, gateway Gateway, toReply ReplyFunc, logger *zap.Logger) *CoachService {
	return &CoachService{
		catalogs:  catalogs,
		catalogID: catalogID,
		ids:       ids,
		gateway:   gateway,
		toReply:   toReply,
		logger:    logger,
	}
}

// Catalog returns the active catalog.
func (s *CoachService) Catalog(ctx context.Context) (domain.Catalog, error) {
	return s.catalogs.GetCatalog(ctx, s.catalogID)
}

// Open resolves the client's session id once and builds a fresh workspace.
func (s *CoachService) Open(ctx context.Context, clientID string) (*Workspace, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	sessionID := s.ids.Identifier(ctx, clientID)
	s.logger.Debug("workspace opened", zap.String("catalog", catalog.ID), zap.Int("questions", len(catalog.Quiz)))
	return NewWorkspace(sessionID, catalog, s.gateway, s.toReply), nil
}
