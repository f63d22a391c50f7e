// Package diagnosis orchestrates the image diagnosis pipeline and owns
// every read and mutation of diagnosis records, for both image-sourced
// and survey-sourced entries.
package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hongik-triple/acnelog_backend/internal/repo"
	entdiag "github.com/hongik-triple/acnelog_backend/internal/repo/diagnosis"
	entmember "github.com/hongik-triple/acnelog_backend/internal/repo/member"
	"github.com/hongik-triple/acnelog_backend/internal/skin"
	"github.com/hongik-triple/acnelog_backend/pkg/inference"
	"github.com/hongik-triple/acnelog_backend/pkg/naver"
	"github.com/hongik-triple/acnelog_backend/pkg/youtube"
)

const (
	listDateLayout   = "2006.01.02"
	detailDateLayout = "2006-01-02 15:04"

	mainPageCacheKey = "diagnosis:mainpage"
	mainPageCacheTTL = time.Minute

	enrichmentLimit = 3
)

// ---------------------------------------------------------------------------
// Adapters
// ---------------------------------------------------------------------------

// Predictor classifies an acne image. *inference.Client satisfies it.
type Predictor interface {
	Predict(ctx context.Context, filename string, image []byte) (*inference.Prediction, error)
}

// VideoSearcher finds care videos. *youtube.Client satisfies it.
type VideoSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]youtube.Video, error)
}

// ProductSearcher finds care products. *naver.Client satisfies it.
type ProductSearcher interface {
	Search(ctx context.Context, query string, display int) ([]naver.Product, error)
}

// ImageStore persists the submitted image. *s3.Client satisfies it.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	PresignDownload(ctx context.Context, key string) (string, error)
}

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

type DiagnoseRequest struct {
	MemberID    *uuid.UUID // nil for anonymous submissions
	Filename    string
	ContentType string
	Image       []byte
}

// Result is the immediate answer to an image submission.
type Result struct {
	ID         uuid.UUID       `json:"id"`
	SkinType   skin.Entry      `json:"skin_type"`
	Confidence float64         `json:"confidence"`
	ImageURL   string          `json:"image_url"`
	CreatedAt  string          `json:"created_at"`
	Videos     []youtube.Video `json:"videos"`
	Products   []naver.Product `json:"products"`
}

// Summary is one row of a diagnosis listing.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	Source    string    `json:"source"`
	SkinType  string    `json:"skin_type"`
	Name      string    `json:"name"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt string    `json:"created_at"`
}

// Detail is the full view of one record.
type Detail struct {
	ID             uuid.UUID       `json:"id"`
	Source         string          `json:"source"`
	SkinType       skin.Entry      `json:"skin_type"`
	Confidence     *float64        `json:"confidence,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	Scores         map[string]int  `json:"scores,omitempty"`
	CategoryScores map[string]int  `json:"category_scores,omitempty"`
	TotalScore     *int            `json:"total_score,omitempty"`
	Recommendation string          `json:"recommendation,omitempty"`
	Videos         []youtube.Video `json:"videos"`
	Products       []naver.Product `json:"products"`
	OwnerName      string          `json:"owner_name,omitempty"`
	OwnerSkinType  string          `json:"owner_skin_type,omitempty"`
	IsPublic       bool            `json:"is_public"`
	CreatedAt      string          `json:"created_at"`
}

type ListRequest struct {
	Filter  string // "ALL" or a classification code, case-insensitive
	Page    int
	PerPage int
}

// TypeCount is the number of public records carrying one classification.
type TypeCount struct {
	SkinType   string `json:"skin_type"`
	KoreanName string `json:"korean_name"`
	Count      int    `json:"count"`
}

// MainPageDigest is the landing page payload.
type MainPageDigest struct {
	Recent []Summary   `json:"recent"`
	Counts []TypeCount `json:"counts"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Diagnose(ctx context.Context, req DiagnoseRequest) (*Result, error)
	GetDetail(ctx context.Context, id uuid.UUID, requester *uuid.UUID) (*Detail, error)
	ListPublic(ctx context.Context, req ListRequest) (*PaginatedResult[Summary], error)
	ListOwn(ctx context.Context, requester *uuid.UUID, req ListRequest) (*PaginatedResult[Summary], error)
	SetVisibility(ctx context.Context, id uuid.UUID, requester uuid.UUID, public bool) (*Detail, error)
	MainPage(ctx context.Context) (*MainPageDigest, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db        *repo.Client
	rdb       *goredis.Client
	store     ImageStore
	predictor Predictor
	videos    VideoSearcher
	products  ProductSearcher
	log       *slog.Logger
}

func New(
	db *repo.Client,
	rdb *goredis.Client,
	store ImageStore,
	predictor Predictor,
	videos VideoSearcher,
	products ProductSearcher,
	log *slog.Logger,
) Service {
	return &service{
		db:        db,
		rdb:       rdb,
		store:     store,
		predictor: predictor,
		videos:    videos,
		products:  products,
		log:       log,
	}
}

func (s *service) Diagnose(ctx context.Context, req DiagnoseRequest) (*Result, error) {
	if len(req.Image) == 0 {
		return nil, ErrEmptyImage
	}

	key := imageKey(req.Filename)
	if err := s.store.Upload(ctx, key, req.ContentType, bytes.NewReader(req.Image), int64(len(req.Image))); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	pred, err := s.predictor.Predict(ctx, req.Filename, req.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInferenceUnavailable, err)
	}

	typ, err := skin.FromInferenceLabel(pred.Label)
	if err != nil {
		return nil, err
	}
	entry, err := skin.Lookup(typ)
	if err != nil {
		return nil, err
	}

	videos, products := s.enrich(ctx, entry)

	create := s.db.Diagnosis.Create().
		SetSource(entdiag.SourceImage).
		SetSkinType(typ.String()).
		SetImageKey(key).
		SetConfidence(pred.Confidence).
		SetVideoData(toMaps(videos)).
		SetProductData(toMaps(products)).
		SetIsPublic(true)
	if req.MemberID != nil {
		create = create.SetMemberID(*req.MemberID)
	}

	rec, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save diagnosis: %w", err)
	}

	s.invalidateMainPage(ctx)

	imageURL, err := s.store.PresignDownload(ctx, key)
	if err != nil {
		s.log.Warn("presign diagnosis image failed", "key", key, "error", err)
	}

	return &Result{
		ID:         rec.ID,
		SkinType:   entry,
		Confidence: pred.Confidence,
		ImageURL:   imageURL,
		CreatedAt:  rec.CreatedAt.Format(detailDateLayout),
		Videos:     videos,
		Products:   products,
	}, nil
}

// enrich runs the two recommendation searches concurrently. Each side is
// independently best-effort: a failure degrades to an empty list and never
// aborts the diagnosis.
func (s *service) enrich(ctx context.Context, entry skin.Entry) ([]youtube.Video, []naver.Product) {
	query := entry.KoreanName + " 여드름"

	var (
		wg       sync.WaitGroup
		videos   []youtube.Video
		products []naver.Product
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		v, err := s.videos.Search(ctx, query, enrichmentLimit)
		if err != nil {
			s.log.Warn("video enrichment failed", "query", query, "error", err)
			return
		}
		videos = v
	}()
	go func() {
		defer wg.Done()
		p, err := s.products.Search(ctx, query, enrichmentLimit)
		if err != nil {
			s.log.Warn("product enrichment failed", "query", query, "error", err)
			return
		}
		products = p
	}()
	wg.Wait()

	if videos == nil {
		videos = []youtube.Video{}
	}
	if products == nil {
		products = []naver.Product{}
	}
	return videos, products
}

func (s *service) GetDetail(ctx context.Context, id uuid.UUID, requester *uuid.UUID) (*Detail, error) {
	rec, err := s.db.Diagnosis.Query().
		Where(entdiag.ID(id), entdiag.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get diagnosis: %w", err)
	}

	if !visibleTo(rec, requester) {
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

	detail := &Detail{
		ID:        rec.ID,
		Source:    string(rec.Source),
		SkinType:  entry,
		IsPublic:  rec.IsPublic,
		CreatedAt: rec.CreatedAt.Format(detailDateLayout),
		Videos:    []youtube.Video{},
		Products:  []naver.Product{},
	}

	if err := fromMaps(rec.VideoData, &detail.Videos); err != nil {
		s.log.Warn("decode video snapshot failed", "id", rec.ID, "error", err)
	}
	if err := fromMaps(rec.ProductData, &detail.Products); err != nil {
		s.log.Warn("decode product snapshot failed", "id", rec.ID, "error", err)
	}

	switch rec.Source {
	case entdiag.SourceImage:
		detail.Confidence = rec.Confidence
		if rec.ImageKey != nil {
			url, err := s.store.PresignDownload(ctx, *rec.ImageKey)
			if err != nil {
				s.log.Warn("presign diagnosis image failed", "key", *rec.ImageKey, "error", err)
			}
			detail.ImageURL = url
		}
	case entdiag.SourceSurvey:
		detail.Scores = rec.Scores
		detail.CategoryScores = rec.CategoryScores
		detail.TotalScore = rec.TotalScore
		if text, err := skin.RecommendationText(typ); err == nil {
			detail.Recommendation = text
		}
	}

	if rec.MemberID != nil {
		owner, err := s.db.Member.Query().
			Where(entmember.ID(*rec.MemberID)).
			Only(ctx)
		if err == nil {
			detail.OwnerName = owner.Name
			if owner.SkinType != nil {
				detail.OwnerSkinType = *owner.SkinType
			}
		} else if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("get diagnosis owner: %w", err)
		}
	}

	return detail, nil
}

func (s *service) ListPublic(ctx context.Context, req ListRequest) (*PaginatedResult[Summary], error) {
	filter, err := parseFilter(req.Filter)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, []predicateFn{publicOnly}, filter, req)
}

func (s *service) ListOwn(ctx context.Context, requester *uuid.UUID, req ListRequest) (*PaginatedResult[Summary], error) {
	if requester == nil {
		return nil, ErrMissingOwner
	}
	filter, err := parseFilter(req.Filter)
	if err != nil {
		return nil, err
	}
	owner := *requester
	return s.list(ctx, []predicateFn{func(q *repo.DiagnosisQuery) *repo.DiagnosisQuery {
		return q.Where(entdiag.MemberID(owner))
	}}, filter, req)
}

type predicateFn func(*repo.DiagnosisQuery) *repo.DiagnosisQuery

func publicOnly(q *repo.DiagnosisQuery) *repo.DiagnosisQuery {
	return q.Where(entdiag.IsPublic(true))
}

func (s *service) list(ctx context.Context, preds []predicateFn, filter *skin.Type, req ListRequest) (*PaginatedResult[Summary], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Diagnosis.Query().
		Where(entdiag.DeletedAtIsNil())
	for _, p := range preds {
		q = p(q)
	}
	if filter != nil {
		q = q.Where(entdiag.SkinType(filter.String()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count diagnoses: %w", err)
	}

	recs, err := q.
		Order(entdiag.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diagnoses: %w", err)
	}

	summaries := make([]Summary, 0, len(recs))
	for _, rec := range recs {
		summaries = append(summaries, toSummary(rec))
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[Summary]{
		Data:       summaries,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

// SetVisibility is the only mutation on an existing record. It answers
// with the updated detail so the caller sees the record as it now reads.
func (s *service) SetVisibility(ctx context.Context, id uuid.UUID, requester uuid.UUID, public bool) (*Detail, error) {
	rec, err := s.db.Diagnosis.Query().
		Where(entdiag.ID(id), entdiag.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get diagnosis: %w", err)
	}

	if !ownedBy(rec, requester) {
		return nil, ErrUnauthorized
	}

	if err := s.db.Diagnosis.UpdateOneID(id).
		SetIsPublic(public).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("update visibility: %w", err)
	}

	s.invalidateMainPage(ctx)
	return s.GetDetail(ctx, id, &requester)
}

func (s *service) MainPage(ctx context.Context) (*MainPageDigest, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, mainPageCacheKey).Bytes(); err == nil {
			var cached MainPageDigest
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	recent, err := s.db.Diagnosis.Query().
		Where(entdiag.IsPublic(true), entdiag.DeletedAtIsNil()).
		Order(entdiag.ByCreatedAt(sql.OrderDesc())).
		Limit(3).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent diagnoses: %w", err)
	}

	var rows []struct {
		SkinType string `json:"skin_type"`
		Count    int    `json:"count"`
	}
	err = s.db.Diagnosis.Query().
		Where(entdiag.IsPublic(true), entdiag.DeletedAtIsNil()).
		GroupBy(entdiag.FieldSkinType).
		Aggregate(repo.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count by classification: %w", err)
	}

	byType := make(map[string]int, len(rows))
	for _, r := range rows {
		byType[r.SkinType] = r.Count
	}

	digest := &MainPageDigest{
		Recent: make([]Summary, 0, len(recent)),
		Counts: make([]TypeCount, 0),
	}
	for _, rec := range recent {
		digest.Recent = append(digest.Recent, toSummary(rec))
	}
	// Every taxonomy entry appears, zero or not.
	for _, typ := range skin.Types() {
		entry, _ := skin.Lookup(typ)
		digest.Counts = append(digest.Counts, TypeCount{
			SkinType:   typ.String(),
			KoreanName: entry.KoreanName,
			Count:      byType[typ.String()],
		})
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(digest); err == nil {
			if err := s.rdb.Set(ctx, mainPageCacheKey, raw, mainPageCacheTTL).Err(); err != nil {
				s.log.Warn("cache main page failed", "error", err)
			}
		}
	}

	return digest, nil
}

// ---------------------------------------------------------------------------
// Ownership predicates
// ---------------------------------------------------------------------------

// visibleTo: public records are visible to anyone, private records only to
// their owner. Anonymous records have no owner.
func visibleTo(rec *repo.Diagnosis, requester *uuid.UUID) bool {
	if rec.IsPublic {
		return true
	}
	return requester != nil && ownedBy(rec, *requester)
}

// ownedBy: the requester is the record's owner.
func ownedBy(rec *repo.Diagnosis, requester uuid.UUID) bool {
	return rec.MemberID != nil && *rec.MemberID == requester
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func parseFilter(raw string) (*skin.Type, error) {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if token == "" || token == "ALL" {
		return nil, nil
	}
	typ, err := skin.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClassification, raw)
	}
	return &typ, nil
}

func toSummary(rec *repo.Diagnosis) Summary {
	name := rec.SkinType
	if typ, err := skin.Parse(rec.SkinType); err == nil {
		if entry, err := skin.Lookup(typ); err == nil {
			name = entry.KoreanName
		}
	}
	return Summary{
		ID:        rec.ID,
		Source:    string(rec.Source),
		SkinType:  rec.SkinType,
		Name:      name,
		IsPublic:  rec.IsPublic,
		CreatedAt: rec.CreatedAt.Format(listDateLayout),
	}
}

func imageKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	return "diagnosis/" + uuid.NewString() + ext
}

func (s *service) invalidateMainPage(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, mainPageCacheKey).Err(); err != nil {
		s.log.Warn("invalidate main page cache failed", "error", err)
	}
}

// toMaps converts a typed enrichment slice to the generic JSON shape the
// record stores.
func toMaps(v any) []map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return []map[string]any{}
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return []map[string]any{}
	}
	if out == nil {
		out = []map[string]any{}
	}
	return out
}

func fromMaps(in []map[string]any, out any) error {
	if len(in) == 0 {
		return nil
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
