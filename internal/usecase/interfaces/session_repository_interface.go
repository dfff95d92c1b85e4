package interfaces

import (
	"context"

	"disena_service/internal/domain/entities"
)

// ISessionRepository abstracts persistence for DesignSession.
//
// Conventions shared by implementations:
//   - GetByID returns a zero-ID session (no error) when not found
//   - Update replaces the whole session document
type ISessionRepository interface {
	Create(ctx context.Context, s entities.DesignSession) (entities.DesignSession, error)
	GetByID(ctx context.Context, id string) (entities.DesignSession, error)
	Update(ctx context.Context, s entities.DesignSession) (entities.DesignSession, error)
}
