package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openshowcase/showcase/pkg/showcase"
)

// Repository implements showcase.Repository using in-memory storage.
type Repository struct {
	mu       sync.RWMutex
	contents map[uuid.UUID]*showcase.Content
	order    []uuid.UUID // creation order, oldest first
}

// New creates a new in-memory repository
func New() showcase.Repository {
	return &Repository{
		contents: make(map[uuid.UUID]*showcase.Content),
	}
}

func (r *Repository) CreateContent(ctx context.Context, content *showcase.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contents[content.ID] = copyContent(content)
	r.order = append(r.order, content.ID)
	return nil
}

func (r *Repository) GetContent(ctx context.Context, id uuid.UUID) (*showcase.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	content, exists := r.contents[id]
	if !exists {
		return nil, showcase.ErrContentNotFound
	}
	return copyContent(content), nil
}

func (r *Repository) ListContent(ctx context.Context, filter showcase.ListFilter, offset, limit int) ([]*showcase.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*showcase.Content{}
	skipped := 0
	// Walk newest first.
	for i := len(r.order) - 1; i >= 0; i-- {
		content, exists := r.contents[r.order[i]]
		if !exists || !filter.Matches(content) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		result = append(result, copyContent(content))
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *Repository) CountContent(ctx context.Context, filter showcase.ListFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, content := range r.contents {
		if filter.Matches(content) {
			count++
		}
	}
	return count, nil
}

func (r *Repository) UpdateContent(ctx context.Context, id uuid.UUID, req showcase.UpdateContentRequest) (*showcase.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	content, exists := r.contents[id]
	if !exists {
		return nil, showcase.ErrContentNotFound
	}

	applyUpdate(content, req)
	content.UpdatedAt = time.Now().UTC()
	return copyContent(content), nil
}

func (r *Repository) DeleteContent(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.contents[id]; !exists {
		return showcase.ErrContentNotFound
	}

	delete(r.contents, id)
	for i, ordered := range r.order {
		if ordered == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func applyUpdate(content *showcase.Content, req showcase.UpdateContentRequest) {
	if req.Title != nil {
		content.Title = *req.Title
	}
	if req.Body != nil {
		content.Body = *req.Body
	}
	if req.TaggedContest != nil {
		content.TaggedContest = *req.TaggedContest
	}
	if req.TaggedContestID != nil {
		content.TaggedContestID = *req.TaggedContestID
	}
	if req.VideoURL != nil {
		content.VideoURL = *req.VideoURL
	}
	if req.Github != nil {
		content.Github = *req.Github
	}
	if req.Team != nil {
		content.Team = *req.Team
	}
	if req.Status != nil {
		content.Status = *req.Status
	}
	if req.PrizedPlace != nil {
		content.PrizedPlace = *req.PrizedPlace
	}
	if req.Stars != nil {
		content.Stars = *req.Stars
	}
	if req.StarredBy != nil {
		starred := make([]uuid.UUID, len(req.StarredBy))
		copy(starred, req.StarredBy)
		content.StarredBy = starred
	}
	if len(req.Extra) > 0 {
		if content.Extra == nil {
			content.Extra = make(map[string]any, len(req.Extra))
		}
		for k, v := range req.Extra {
			content.Extra[k] = v
		}
	}
}

// copyContent returns a deep enough copy to keep callers from mutating the
// stored record through shared slices or maps.
func copyContent(content *showcase.Content) *showcase.Content {
	contentCopy := *content
	contentCopy.StarredBy = make([]uuid.UUID, len(content.StarredBy))
	copy(contentCopy.StarredBy, content.StarredBy)
	if content.Extra != nil {
		extra := make(map[string]any, len(content.Extra))
		for k, v := range content.Extra {
			extra[k] = v
		}
		contentCopy.Extra = extra
	}
	return &contentCopy
}
