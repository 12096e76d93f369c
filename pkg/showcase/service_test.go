package showcase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshowcase/showcase/pkg/showcase"
	"github.com/openshowcase/showcase/pkg/showcase/repo/memory"
)

func newTestService(t *testing.T, options ...showcase.Option) showcase.Service {
	t.Helper()
	options = append([]showcase.Option{showcase.WithRepository(memory.New())}, options...)
	svc, err := showcase.New(options...)
	require.NoError(t, err)
	return svc
}

func testOwner() showcase.Identity {
	return showcase.Identity{ID: uuid.New(), Name: "alice", Role: showcase.RoleUser}
}

func createRequest(title string) showcase.CreateContentRequest {
	return showcase.CreateContentRequest{
		Title:  title,
		Body:   "<p>body</p>",
		Team:   "Team Rocket",
		Status: "submitted",
	}
}

func TestNewRequiresRepository(t *testing.T) {
	_, err := showcase.New()
	assert.Error(t, err)
}

func TestCreateContent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	owner := testOwner()

	req := createRequest("Weather Station")
	req.Extra = map[string]any{"repository": "https://example.org/repo"}

	content, err := svc.CreateContent(ctx, owner, req)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, content.ID)
	assert.Equal(t, "Weather Station", content.Title)
	assert.Equal(t, owner, content.Owner)
	assert.Equal(t, 0, content.Stars)
	require.NotNil(t, content.StarredBy)
	assert.Empty(t, content.StarredBy)
	assert.Equal(t, "https://example.org/repo", content.Extra["repository"])
	assert.False(t, content.CreatedAt.IsZero())
	assert.Equal(t, content.CreatedAt, content.UpdatedAt)

	got, err := svc.GetContent(ctx, content.ID)
	require.NoError(t, err)
	assert.Equal(t, content.ID, got.ID)
	assert.Equal(t, owner, got.Owner)
}

func TestGetContentNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetContent(context.Background(), uuid.New())
	assert.ErrorIs(t, err, showcase.ErrContentNotFound)
}

func TestListContentPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	owner := testOwner()

	for i := 0; i < 25; i++ {
		_, err := svc.CreateContent(ctx, owner, createRequest(fmt.Sprintf("entry %02d", i)))
		require.NoError(t, err)
	}

	page1, lastPage, err := svc.ListContent(ctx, showcase.ListContentRequest{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, lastPage)
	require.Len(t, page1, 12)
	// Newest first.
	assert.Equal(t, "entry 24", page1[0].Title)
	assert.Equal(t, "entry 13", page1[11].Title)

	page3, lastPage, err := svc.ListContent(ctx, showcase.ListContentRequest{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, lastPage)
	require.Len(t, page3, 1)
	assert.Equal(t, "entry 00", page3[0].Title)

	empty, lastPage, err := svc.ListContent(ctx, showcase.ListContentRequest{Page: 4})
	require.NoError(t, err)
	assert.Equal(t, 3, lastPage)
	assert.Empty(t, empty)
}

// countingRepository records repository activity so tests can assert the
// service rejects bad input before touching the store.
type countingRepository struct {
	showcase.Repository
	calls int
}

func (r *countingRepository) ListContent(ctx context.Context, filter showcase.ListFilter, offset, limit int) ([]*showcase.Content, error) {
	r.calls++
	return r.Repository.ListContent(ctx, filter, offset, limit)
}

func (r *countingRepository) CountContent(ctx context.Context, filter showcase.ListFilter) (int, error) {
	r.calls++
	return r.Repository.CountContent(ctx, filter)
}

func TestListContentInvalidPage(t *testing.T) {
	repo := &countingRepository{Repository: memory.New()}
	svc, err := showcase.New(showcase.WithRepository(repo))
	require.NoError(t, err)

	for _, page := range []int{0, -1} {
		_, _, err := svc.ListContent(context.Background(), showcase.ListContentRequest{Page: page})
		assert.ErrorIs(t, err, showcase.ErrInvalidPage)
	}
	assert.Zero(t, repo.calls, "invalid pages must not reach the repository")
}

func TestListContentFilterByContest(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	owner := testOwner()

	tagged := createRequest("tagged entry")
	tagged.TaggedContestID = "spring-2026"
	_, err := svc.CreateContent(ctx, owner, tagged)
	require.NoError(t, err)
	_, err = svc.CreateContent(ctx, owner, createRequest("untagged entry"))
	require.NoError(t, err)

	contents, lastPage, err := svc.ListContent(ctx, showcase.ListContentRequest{Page: 1, TaggedContestID: "spring-2026"})
	require.NoError(t, err)
	assert.Equal(t, 1, lastPage)
	require.Len(t, contents, 1)
	assert.Equal(t, "tagged entry", contents[0].Title)
}

func TestListAllContent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	owner := testOwner()

	for i := 0; i < 15; i++ {
		_, err := svc.CreateContent(ctx, owner, createRequest(fmt.Sprintf("entry %02d", i)))
		require.NoError(t, err)
	}

	contents, err := svc.ListAllContent(ctx, showcase.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, contents, 15)
}

func TestUpdateContentPartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	content, err := svc.CreateContent(ctx, testOwner(), createRequest("original"))
	require.NoError(t, err)

	place := "1st"
	updated, err := svc.UpdateContent(ctx, content.ID, showcase.UpdateContentRequest{PrizedPlace: &place})
	require.NoError(t, err)

	assert.Equal(t, "1st", updated.PrizedPlace)
	assert.Equal(t, "original", updated.Title)
	assert.Equal(t, "Team Rocket", updated.Team)
	assert.Equal(t, content.Owner, updated.Owner)
}

func TestUpdateContentNotFound(t *testing.T) {
	svc := newTestService(t)

	title := "ghost"
	_, err := svc.UpdateContent(context.Background(), uuid.New(), showcase.UpdateContentRequest{Title: &title})
	assert.ErrorIs(t, err, showcase.ErrContentNotFound)
}

func TestDeleteContent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	content, err := svc.CreateContent(ctx, testOwner(), createRequest("short lived"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContent(ctx, content.ID))

	_, err = svc.GetContent(ctx, content.ID)
	assert.ErrorIs(t, err, showcase.ErrContentNotFound)

	err = svc.DeleteContent(ctx, content.ID)
	assert.ErrorIs(t, err, showcase.ErrContentNotFound)
}

func TestStarContent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	content, err := svc.CreateContent(ctx, testOwner(), createRequest("starrable"))
	require.NoError(t, err)

	voter := showcase.Identity{ID: uuid.New(), Name: "bob", Role: showcase.RoleUser}

	starred, err := svc.StarContent(ctx, content.ID, voter)
	require.NoError(t, err)
	assert.Equal(t, 1, starred.Stars)
	assert.True(t, starred.HasStarred(voter.ID))

	// Starring again is a no-op.
	again, err := svc.StarContent(ctx, content.ID, voter)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Stars)
	assert.Len(t, again.StarredBy, 1)

	second := showcase.Identity{ID: uuid.New(), Name: "carol", Role: showcase.RoleUser}
	both, err := svc.StarContent(ctx, content.ID, second)
	require.NoError(t, err)
	assert.Equal(t, 2, both.Stars)

	unstarred, err := svc.UnstarContent(ctx, content.ID, voter)
	require.NoError(t, err)
	assert.Equal(t, 1, unstarred.Stars)
	assert.False(t, unstarred.HasStarred(voter.ID))
	assert.True(t, unstarred.HasStarred(second.ID))

	// Unstarring without a prior star is a no-op.
	still, err := svc.UnstarContent(ctx, content.ID, voter)
	require.NoError(t, err)
	assert.Equal(t, 1, still.Stars)
}

func TestStarContentNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.StarContent(context.Background(), uuid.New(), testOwner())
	assert.ErrorIs(t, err, showcase.ErrContentNotFound)
}
