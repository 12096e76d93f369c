package showcase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultPageSize is the number of records per list page.
const DefaultPageSize = 12

// service implements the Service interface
type service struct {
	repository Repository
	pageSize   int
	now        func() time.Time
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithPageSize overrides the list page size.
func WithPageSize(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		pageSize: DefaultPageSize,
		now:      time.Now,
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}

func (s *service) CreateContent(ctx context.Context, owner Identity, req CreateContentRequest) (*Content, error) {
	now := s.now().UTC()
	content := &Content{
		ID:              uuid.New(),
		Title:           req.Title,
		Body:            req.Body,
		TaggedContest:   req.TaggedContest,
		TaggedContestID: req.TaggedContestID,
		VideoURL:        req.VideoURL,
		Github:          req.Github,
		Team:            req.Team,
		Status:          req.Status,
		Stars:           0,
		StarredBy:       []uuid.UUID{},
		Owner:           owner,
		Extra:           req.Extra,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repository.CreateContent(ctx, content); err != nil {
		return nil, &ContentError{ContentID: content.ID, Op: "create", Err: err}
	}

	return content, nil
}

func (s *service) GetContent(ctx context.Context, id uuid.UUID) (*Content, error) {
	return s.repository.GetContent(ctx, id)
}

func (s *service) ListContent(ctx context.Context, req ListContentRequest) ([]*Content, int, error) {
	if req.Page < 1 {
		return nil, 0, ErrInvalidPage
	}

	filter := ListFilter{TaggedContestID: req.TaggedContestID}
	offset := (req.Page - 1) * s.pageSize

	contents, err := s.repository.ListContent(ctx, filter, offset, s.pageSize)
	if err != nil {
		return nil, 0, &ContentError{Op: "list", Err: err}
	}

	total, err := s.repository.CountContent(ctx, filter)
	if err != nil {
		return nil, 0, &ContentError{Op: "count", Err: err}
	}

	lastPage := (total + s.pageSize - 1) / s.pageSize
	return contents, lastPage, nil
}

func (s *service) ListAllContent(ctx context.Context, filter ListFilter) ([]*Content, error) {
	contents, err := s.repository.ListContent(ctx, filter, 0, 0)
	if err != nil {
		return nil, &ContentError{Op: "list_all", Err: err}
	}
	return contents, nil
}

func (s *service) UpdateContent(ctx context.Context, id uuid.UUID, req UpdateContentRequest) (*Content, error) {
	content, err := s.repository.UpdateContent(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return nil, err
		}
		return nil, &ContentError{ContentID: id, Op: "update", Err: err}
	}
	return content, nil
}

func (s *service) DeleteContent(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.DeleteContent(ctx, id); err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return err
		}
		return &ContentError{ContentID: id, Op: "delete", Err: err}
	}
	return nil
}

// StarContent is a read-modify-write: concurrent toggles on the same record
// can lose an update. Known gap, left open.
func (s *service) StarContent(ctx context.Context, id uuid.UUID, by Identity) (*Content, error) {
	content, err := s.repository.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}
	if content.HasStarred(by.ID) {
		return content, nil
	}

	starred := make([]uuid.UUID, 0, len(content.StarredBy)+1)
	starred = append(starred, content.StarredBy...)
	starred = append(starred, by.ID)
	return s.setStars(ctx, id, starred)
}

func (s *service) UnstarContent(ctx context.Context, id uuid.UUID, by Identity) (*Content, error) {
	content, err := s.repository.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}
	if !content.HasStarred(by.ID) {
		return content, nil
	}

	starred := make([]uuid.UUID, 0, len(content.StarredBy))
	for _, starrer := range content.StarredBy {
		if starrer != by.ID {
			starred = append(starred, starrer)
		}
	}
	return s.setStars(ctx, id, starred)
}

func (s *service) setStars(ctx context.Context, id uuid.UUID, starred []uuid.UUID) (*Content, error) {
	stars := len(starred)
	content, err := s.repository.UpdateContent(ctx, id, UpdateContentRequest{
		Stars:     &stars,
		StarredBy: starred,
	})
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return nil, err
		}
		return nil, &ContentError{ContentID: id, Op: "star", Err: err}
	}
	return content, nil
}
