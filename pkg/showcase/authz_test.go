package showcase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	content := &Content{Owner: Identity{ID: ownerID, Role: RoleUser}}

	assert.True(t, CanMutate(Identity{ID: otherID, Role: RoleAdmin}, content),
		"admins may mutate anything")
	assert.True(t, CanMutate(Identity{ID: ownerID, Role: RoleUser}, content),
		"owners may mutate their own content")
	assert.False(t, CanMutate(Identity{ID: otherID, Role: RoleUser}, content),
		"other users may not mutate")
}
