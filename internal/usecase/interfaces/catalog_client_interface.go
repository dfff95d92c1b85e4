package interfaces

import (
	"context"

	"disena_service/internal/domain/entities"
)

// ICatalogClient abstracts the external catalog service. The loader
// fetches the three collections (categories, services, config
// key/values) once per session and fails atomically: a partial
// snapshot is never returned.
//
// Retry policy belongs to the HTTP layer behind this interface, not to
// the callers.
type ICatalogClient interface {
	Load(ctx context.Context) (entities.CatalogSnapshot, error)
}
