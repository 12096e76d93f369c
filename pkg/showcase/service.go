package showcase

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists showcase content. Implementations must order list
// results by reverse creation order (most recent first). A limit <= 0 means
// no limit.
type Repository interface {
	CreateContent(ctx context.Context, content *Content) error
	GetContent(ctx context.Context, id uuid.UUID) (*Content, error)
	ListContent(ctx context.Context, filter ListFilter, offset, limit int) ([]*Content, error)
	CountContent(ctx context.Context, filter ListFilter) (int, error)
	UpdateContent(ctx context.Context, id uuid.UUID, req UpdateContentRequest) (*Content, error)
	DeleteContent(ctx context.Context, id uuid.UUID) error
}

// Service defines the content operations of the showcase platform.
type Service interface {
	// CreateContent persists a new record with stars zeroed and owner taken
	// from the submitting identity, never from the payload.
	CreateContent(ctx context.Context, owner Identity, req CreateContentRequest) (*Content, error)

	// GetContent returns the full record, raw body included.
	GetContent(ctx context.Context, id uuid.UUID) (*Content, error)

	// ListContent returns one page plus the total page count. Page numbers
	// start at 1; ErrInvalidPage is returned before any store query for
	// anything lower.
	ListContent(ctx context.Context, req ListContentRequest) ([]*Content, int, error)

	// ListAllContent returns every matching record, same ordering as
	// ListContent, unpaginated.
	ListAllContent(ctx context.Context, filter ListFilter) ([]*Content, error)

	// UpdateContent replaces only the supplied fields and returns the
	// post-update record.
	UpdateContent(ctx context.Context, id uuid.UUID, req UpdateContentRequest) (*Content, error)

	// DeleteContent removes the record. Deleting an absent id reports
	// ErrContentNotFound.
	DeleteContent(ctx context.Context, id uuid.UUID) error

	// StarContent records an endorsement by the given identity, at most once
	// per identity. UnstarContent withdraws it. Both keep stars equal to the
	// size of the starredBy set.
	StarContent(ctx context.Context, id uuid.UUID, by Identity) (*Content, error)
	UnstarContent(ctx context.Context, id uuid.UUID, by Identity) (*Content, error)
}
