package showcase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Identity role constants.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity is the authenticated principal attached to a request before the
// content handlers run. How it is resolved (sessions, JWT) is outside this
// package; handlers only consume it.
type Identity struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
	Role string    `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Content represents a single submitted work in the contest showcase.
//
// Extra carries payload keys the operation schemas do not declare. They are
// persisted untouched and merged back to the top level when the record is
// marshaled, so clients see the same document shape they submitted.
type Content struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Body            string         `json:"body"`
	TaggedContest   string         `json:"taggedContest,omitempty"`
	TaggedContestID string         `json:"taggedContestID,omitempty"`
	VideoURL        string         `json:"videoURL,omitempty"`
	Github          string         `json:"github,omitempty"`
	Team            string         `json:"team"`
	Status          string         `json:"status"`
	PrizedPlace     string         `json:"prizedPlace,omitempty"`
	Stars           int            `json:"stars"`
	StarredBy       []uuid.UUID    `json:"starredBy"`
	Owner           Identity       `json:"owner"`
	Extra           map[string]any `json:"-"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// HasStarred reports whether id is already recorded in StarredBy.
func (c *Content) HasStarred(id uuid.UUID) bool {
	for _, starred := range c.StarredBy {
		if starred == id {
			return true
		}
	}
	return false
}

// MarshalJSON merges Extra keys into the top-level document. Declared fields
// always win over an extra key of the same name.
func (c Content) MarshalJSON() ([]byte, error) {
	type alias Content
	base, err := json.Marshal(alias(c))
	if err != nil {
		return nil, err
	}
	if len(c.Extra) == 0 {
		return base, nil
	}

	doc := make(map[string]any, len(c.Extra)+16)
	if err := json.Unmarshal(base, &doc); err != nil {
		return nil, err
	}
	for k, v := range c.Extra {
		if _, declared := doc[k]; !declared {
			doc[k] = v
		}
	}
	return json.Marshal(doc)
}
