package ports

import (
	"context"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
)

// AssetSource loads document resources (canvas definitions, fonts) by
// reference. Implemented by the filesystem and HTTP asset adapters.
type AssetSource interface {
	// Fetch returns the raw bytes of ref.
	// Returns domain.ErrNotFound if the asset does not exist.
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// DocumentRenderer turns a composition into document bytes.
type DocumentRenderer interface {
	// Render draws the canvas static print and every placement.
	// A nil font selects the renderer's built-in face; placements are
	// identical either way. Identical inputs yield identical bytes.
	Render(ctx context.Context, canvas layout.Canvas, font *layout.Font, comp layout.Composition) ([]byte, error)

	// ContentType is the media type of rendered documents.
	ContentType() string
}
