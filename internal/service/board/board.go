// Package board manages operator-authored notices.
package board

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hongik-triple/acnelog_backend/internal/repo"
	entboard "github.com/hongik-triple/acnelog_backend/internal/repo/board"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateRequest struct {
	Title   string
	Content string
	Pinned  bool
}

type UpdateRequest struct {
	Title   *string
	Content *string
	Pinned  *bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, page, perPage int) (*PaginatedResult[*repo.Board], error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Board, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Board, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Board, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &service{db: db}
}

func (s *service) List(ctx context.Context, page, perPage int) (*PaginatedResult[*repo.Board], error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Board.Query().
		Where(entboard.DeletedAtIsNil())

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count notices: %w", err)
	}

	notices, err := q.
		Order(entboard.ByPinned(sql.OrderDesc()), entboard.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}

	totalPages := (total + perPage - 1) / perPage
	return &PaginatedResult[*repo.Board]{
		Data:       notices,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*repo.Board, error) {
	n, err := s.db.Board.Query().
		Where(entboard.ID(id), entboard.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get notice: %w", err)
	}
	return n, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*repo.Board, error) {
	n, err := s.db.Board.Create().
		SetTitle(req.Title).
		SetContent(req.Content).
		SetPinned(req.Pinned).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notice: %w", err)
	}
	return n, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Board, error) {
	u := s.db.Board.UpdateOneID(id)
	if req.Title != nil {
		u = u.SetTitle(*req.Title)
	}
	if req.Content != nil {
		u = u.SetContent(*req.Content)
	}
	if req.Pinned != nil {
		u = u.SetPinned(*req.Pinned)
	}

	n, err := u.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update notice: %w", err)
	}
	return n, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.db.Board.UpdateOneID(id).
		SetDeletedAt(time.Now()).
		Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete notice: %w", err)
	}
	return nil
}
