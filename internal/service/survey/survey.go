// Package survey orchestrates the questionnaire path: validate, score,
// classify, persist, and keep the owner's stored skin type current.
package survey

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hongik-triple/acnelog_backend/internal/repo"
	entdiag "github.com/hongik-triple/acnelog_backend/internal/repo/diagnosis"
	"github.com/hongik-triple/acnelog_backend/internal/skin"
)

const (
	listDateLayout   = "2006.01.02"
	detailDateLayout = "2006-01-02 15:04"
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

type RegisterRequest struct {
	MemberID *uuid.UUID // nil for anonymous submissions
	Answers  skin.AnswerSet
}

// Result is the immediate answer to a questionnaire submission.
type Result struct {
	ID             uuid.UUID      `json:"id"`
	SkinType       skin.Entry     `json:"skin_type"`
	TotalScore     int            `json:"total_score"`
	CategoryScores map[string]int `json:"category_scores"`
	Recommendation string         `json:"recommendation"`
	CreatedAt      string         `json:"created_at"`
}

// Summary is one row of the survey history listing.
type Summary struct {
	ID         uuid.UUID `json:"id"`
	SkinType   string    `json:"skin_type"`
	Name       string    `json:"name"`
	TotalScore int       `json:"total_score"`
	CreatedAt  string    `json:"created_at"`
}

// Detail re-hydrates one past survey with its per-question scores.
type Detail struct {
	ID             uuid.UUID      `json:"id"`
	SkinType       skin.Entry     `json:"skin_type"`
	Scores         map[string]int `json:"scores"`
	CategoryScores map[string]int `json:"category_scores"`
	TotalScore     int            `json:"total_score"`
	Recommendation string         `json:"recommendation"`
	CreatedAt      string         `json:"created_at"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Questions(ctx context.Context) []skin.Question
	Register(ctx context.Context, req RegisterRequest) (*Result, error)
	ListOwn(ctx context.Context, requester uuid.UUID, page, perPage int) (*PaginatedResult[Summary], error)
	GetDetail(ctx context.Context, id, requester uuid.UUID) (*Detail, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db  *repo.Client
	log *slog.Logger
}

func New(db *repo.Client, log *slog.Logger) Service {
	return &service{db: db, log: log}
}

func (s *service) Questions(ctx context.Context) []skin.Question {
	return skin.Questions()
}

// Register runs the scoring engine and persists the outcome. Validation
// failures abort before anything is written. The record and the owner's
// skin-type attribute are committed atomically.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*Result, error) {
	body, err := skin.Score(req.Answers)
	if err != nil {
		return nil, err
	}

	typ := skin.Classify(body)
	total := skin.TotalScore(body)
	entry, err := skin.Lookup(typ)
	if err != nil {
		return nil, err
	}
	recommendation, err := skin.RecommendationText(typ)
	if err != nil {
		return nil, err
	}

	categoryScores := make(map[string]int, len(body.CategoryScores))
	for c, v := range body.CategoryScores {
		categoryScores[string(c)] = v
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin survey tx: %w", err)
	}

	create := tx.Diagnosis.Create().
		SetSource(entdiag.SourceSurvey).
		SetSkinType(typ.String()).
		SetScores(body.Scores).
		SetCategoryScores(categoryScores).
		SetTotalScore(total).
		SetIsPublic(true)
	if req.MemberID != nil {
		create = create.SetMemberID(*req.MemberID)
	}

	rec, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("save survey: %w", err)
	}

	// Last write wins on the member's stored skin type.
	if req.MemberID != nil {
		if err := tx.Member.UpdateOneID(*req.MemberID).
			SetSkinType(typ.String()).
			SetUpdatedAt(time.Now()).
			Exec(ctx); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("update member skin type: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit survey tx: %w", err)
	}

	return &Result{
		ID:             rec.ID,
		SkinType:       entry,
		TotalScore:     total,
		CategoryScores: categoryScores,
		Recommendation: recommendation,
		CreatedAt:      rec.CreatedAt.Format(detailDateLayout),
	}, nil
}

func (s *service) ListOwn(ctx context.Context, requester uuid.UUID, page, perPage int) (*PaginatedResult[Summary], error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Diagnosis.Query().
		Where(
			entdiag.MemberID(requester),
			entdiag.SourceEQ(entdiag.SourceSurvey),
			entdiag.DeletedAtIsNil(),
		)

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count surveys: %w", err)
	}

	recs, err := q.
		Order(entdiag.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}

	summaries := make([]Summary, 0, len(recs))
	for _, rec := range recs {
		name := rec.SkinType
		if typ, err := skin.Parse(rec.SkinType); err == nil {
			if entry, err := skin.Lookup(typ); err == nil {
				name = entry.KoreanName
			}
		}
		totalScore := 0
		if rec.TotalScore != nil {
			totalScore = *rec.TotalScore
		}
		summaries = append(summaries, Summary{
			ID:         rec.ID,
			SkinType:   rec.SkinType,
			Name:       name,
			TotalScore: totalScore,
			CreatedAt:  rec.CreatedAt.Format(listDateLayout),
		})
	}

	totalPages := (total + perPage - 1) / perPage
	return &PaginatedResult[Summary]{
		Data:       summaries,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

func (s *service) GetDetail(ctx context.Context, id, requester uuid.UUID) (*Detail, error) {
	rec, err := s.db.Diagnosis.Query().
		Where(
			entdiag.ID(id),
			entdiag.SourceEQ(entdiag.SourceSurvey),
			entdiag.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get survey: %w", err)
	}

	if rec.MemberID == nil || *rec.MemberID != requester {
		return nil, ErrUnauthorized
	}

	typ, err := skin.Parse(rec.SkinType)
	if err != nil {
		return nil, err
	}
	entry, err := skin.Lookup(typ)
	if err != nil {
		return nil, err
	}
	recommendation, err := skin.RecommendationText(typ)
	if err != nil {
		return nil, err
	}

	totalScore := 0
	if rec.TotalScore != nil {
		totalScore = *rec.TotalScore
	}

	return &Detail{
		ID:             rec.ID,
		SkinType:       entry,
		Scores:         rec.Scores,
		CategoryScores: rec.CategoryScores,
		TotalScore:     totalScore,
		Recommendation: recommendation,
		CreatedAt:      rec.CreatedAt.Format(detailDateLayout),
	}, nil
}
