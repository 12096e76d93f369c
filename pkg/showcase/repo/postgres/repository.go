package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openshowcase/showcase/pkg/showcase"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements showcase.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) showcase.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) showcase.Repository {
	return &Repository{db: pool}
}

const contentColumns = `id, title, body, tagged_contest, tagged_contest_id, video_url, github,
	       team, status, prized_place, stars, starred_by,
	       owner_id, owner_name, owner_role, attrs, created_at, updated_at`

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("content already exists")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}
	return fmt.Errorf("database error in %s: %w", operation, err)
}

func (r *Repository) CreateContent(ctx context.Context, content *showcase.Content) error {
	query := `
		INSERT INTO content (
			id, title, body, tagged_contest, tagged_contest_id, video_url, github,
			team, status, prized_place, stars, starred_by,
			owner_id, owner_name, owner_role, attrs, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.Exec(ctx, query,
		content.ID, content.Title, content.Body, content.TaggedContest,
		content.TaggedContestID, content.VideoURL, content.Github,
		content.Team, content.Status, content.PrizedPlace,
		content.Stars, content.StarredBy,
		content.Owner.ID, content.Owner.Name, content.Owner.Role,
		content.Extra, content.CreatedAt, content.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create content", err)
	}

	return nil
}

func (r *Repository) GetContent(ctx context.Context, id uuid.UUID) (*showcase.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM content WHERE id = $1`

	content, err := scanContent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, showcase.ErrContentNotFound
		}
		return nil, r.handlePostgresError("get content", err)
	}
	return content, nil
}

func (r *Repository) ListContent(ctx context.Context, filter showcase.ListFilter, offset, limit int) ([]*showcase.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM content`

	var args []interface{}
	if filter.TaggedContestID != "" {
		args = append(args, filter.TaggedContestID)
		query += ` WHERE tagged_contest_id = $1`
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.handlePostgresError("list content", err)
	}
	defer rows.Close()

	contents := []*showcase.Content{}
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}
	if err := rows.Err(); err != nil {
		return nil, r.handlePostgresError("list content", err)
	}

	return contents, nil
}

func (r *Repository) CountContent(ctx context.Context, filter showcase.ListFilter) (int, error) {
	query := `SELECT count(*) FROM content`
	var args []interface{}
	if filter.TaggedContestID != "" {
		args = append(args, filter.TaggedContestID)
		query += ` WHERE tagged_contest_id = $1`
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, r.handlePostgresError("count content", err)
	}
	return count, nil
}

func (r *Repository) UpdateContent(ctx context.Context, id uuid.UUID, req showcase.UpdateContentRequest) (*showcase.Content, error) {
	var set []string
	var args []interface{}
	add := func(fragment string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf(fragment, len(args)))
	}

	if req.Title != nil {
		add("title = $%d", *req.Title)
	}
	if req.Body != nil {
		add("body = $%d", *req.Body)
	}
	if req.TaggedContest != nil {
		add("tagged_contest = $%d", *req.TaggedContest)
	}
	if req.TaggedContestID != nil {
		add("tagged_contest_id = $%d", *req.TaggedContestID)
	}
	if req.VideoURL != nil {
		add("video_url = $%d", *req.VideoURL)
	}
	if req.Github != nil {
		add("github = $%d", *req.Github)
	}
	if req.Team != nil {
		add("team = $%d", *req.Team)
	}
	if req.Status != nil {
		add("status = $%d", *req.Status)
	}
	if req.PrizedPlace != nil {
		add("prized_place = $%d", *req.PrizedPlace)
	}
	if req.Stars != nil {
		add("stars = $%d", *req.Stars)
	}
	if req.StarredBy != nil {
		add("starred_by = $%d", req.StarredBy)
	}
	if len(req.Extra) > 0 {
		// Unknown fields merge over existing ones, matching document-store
		// partial updates.
		add("attrs = attrs || $%d", req.Extra)
	}
	add("updated_at = $%d", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE content SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), contentColumns)

	content, err := scanContent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, showcase.ErrContentNotFound
		}
		return nil, r.handlePostgresError("update content", err)
	}
	return content, nil
}

func (r *Repository) DeleteContent(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete content", err)
	}
	if tag.RowsAffected() == 0 {
		return showcase.ErrContentNotFound
	}
	return nil
}

func scanContent(row pgx.Row) (*showcase.Content, error) {
	var content showcase.Content
	err := row.Scan(
		&content.ID, &content.Title, &content.Body, &content.TaggedContest,
		&content.TaggedContestID, &content.VideoURL, &content.Github,
		&content.Team, &content.Status, &content.PrizedPlace,
		&content.Stars, &content.StarredBy,
		&content.Owner.ID, &content.Owner.Name, &content.Owner.Role,
		&content.Extra, &content.CreatedAt, &content.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if content.StarredBy == nil {
		content.StarredBy = []uuid.UUID{}
	}
	return &content, nil
}
