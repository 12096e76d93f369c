package showcase

import "github.com/google/uuid"

// CreateContentRequest carries a validated create payload. Stars, StarredBy
// and Owner are server-assigned at creation and deliberately absent here.
type CreateContentRequest struct {
	Title           string
	Body            string
	TaggedContest   string
	TaggedContestID string
	VideoURL        string
	Github          string
	Team            string
	Status          string
	Extra           map[string]any
}

// UpdateContentRequest carries a partial update. Nil fields are left
// untouched; a nil StarredBy leaves the set unchanged.
type UpdateContentRequest struct {
	Title           *string
	Body            *string
	TaggedContest   *string
	TaggedContestID *string
	VideoURL        *string
	Github          *string
	Team            *string
	Status          *string
	PrizedPlace     *string
	Stars           *int
	StarredBy       []uuid.UUID
	Extra           map[string]any
}

// IsEmpty reports whether the request carries no field at all.
func (r UpdateContentRequest) IsEmpty() bool {
	return r.Title == nil && r.Body == nil && r.TaggedContest == nil &&
		r.TaggedContestID == nil && r.VideoURL == nil && r.Github == nil &&
		r.Team == nil && r.Status == nil && r.PrizedPlace == nil &&
		r.Stars == nil && r.StarredBy == nil && len(r.Extra) == 0
}

// ListContentRequest selects one page of content, most recent first.
type ListContentRequest struct {
	Page            int
	TaggedContestID string
}

// ListFilter narrows list and count queries. The zero value matches all.
type ListFilter struct {
	TaggedContestID string
}

// Matches reports whether content satisfies the filter.
func (f ListFilter) Matches(c *Content) bool {
	return f.TaggedContestID == "" || c.TaggedContestID == f.TaggedContestID
}
