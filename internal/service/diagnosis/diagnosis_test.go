package diagnosis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hongik-triple/acnelog_backend/internal/repo"
	entdiag "github.com/hongik-triple/acnelog_backend/internal/repo/diagnosis"
	"github.com/hongik-triple/acnelog_backend/internal/repo/enttest"
	entmember "github.com/hongik-triple/acnelog_backend/internal/repo/member"
	"github.com/hongik-triple/acnelog_backend/internal/skin"
	"github.com/hongik-triple/acnelog_backend/pkg/inference"
	"github.com/hongik-triple/acnelog_backend/pkg/naver"
	"github.com/hongik-triple/acnelog_backend/pkg/youtube"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubStore struct {
	uploads  int
	presigns int
	err      error
}

func (s *stubStore) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	s.uploads++
	return s.err
}

func (s *stubStore) PresignDownload(ctx context.Context, key string) (string, error) {
	s.presigns++
	return "https://cdn.example.com/" + key, nil
}

type stubPredictor struct {
	calls      int
	label      string
	confidence float64
	err        error
}

func (p *stubPredictor) Predict(ctx context.Context, filename string, image []byte) (*inference.Prediction, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &inference.Prediction{Label: p.label, Confidence: p.confidence}, nil
}

type stubVideos struct {
	videos []youtube.Video
	err    error
}

func (v *stubVideos) Search(ctx context.Context, query string, maxResults int) ([]youtube.Video, error) {
	return v.videos, v.err
}

type stubProducts struct {
	products []naver.Product
	err      error
}

func (p *stubProducts) Search(ctx context.Context, query string, display int) ([]naver.Product, error) {
	return p.products, p.err
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

type fixture struct {
	svc       Service
	db        *repo.Client
	store     *stubStore
	predictor *stubPredictor
	videos    *stubVideos
	products  *stubProducts
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		db:    db,
		store: &stubStore{},
		predictor: &stubPredictor{
			label:      "Pustules",
			confidence: 0.91,
		},
		videos: &stubVideos{videos: []youtube.Video{
			{VideoID: "v1", Title: "화농성 여드름 관리", URL: "https://www.youtube.com/watch?v=v1"},
		}},
		products: &stubProducts{products: []naver.Product{
			{ProductID: "p1", Name: "티트리 세럼", Price: 15000},
		}},
	}
	f.svc = New(db, nil, f.store, f.predictor, f.videos, f.products, slog.Default())
	return f
}

func (f *fixture) member(t *testing.T, email string) uuid.UUID {
	t.Helper()
	m, err := f.db.Member.Create().
		SetName("tester").
		SetEmail(email).
		SetProvider(entmember.ProviderKakao).
		SetProviderID("kakao-" + email).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	return m.ID
}

func (f *fixture) record(t *testing.T, owner *uuid.UUID, typ skin.Type, public bool) uuid.UUID {
	t.Helper()
	create := f.db.Diagnosis.Create().
		SetSource(entdiag.SourceImage).
		SetSkinType(typ.String()).
		SetImageKey("diagnosis/fixture.jpg").
		SetConfidence(0.8).
		SetIsPublic(public)
	if owner != nil {
		create = create.SetMemberID(*owner)
	}
	rec, err := create.Save(context.Background())
	if err != nil {
		t.Fatalf("create diagnosis: %v", err)
	}
	return rec.ID
}

func (f *fixture) count(t *testing.T) int {
	t.Helper()
	n, err := f.db.Diagnosis.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count diagnoses: %v", err)
	}
	return n
}

// ---------------------------------------------------------------------------
// Diagnose
// ---------------------------------------------------------------------------

func TestDiagnose_EmptyImage(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Diagnose(context.Background(), DiagnoseRequest{
		Filename: "face.jpg",
		Image:    nil,
	})
	if !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}

	// Nothing downstream may run on an empty payload.
	if f.store.uploads != 0 {
		t.Errorf("store was invoked %d times", f.store.uploads)
	}
	if f.predictor.calls != 0 {
		t.Errorf("predictor was invoked %d times", f.predictor.calls)
	}
	if f.count(t) != 0 {
		t.Error("a record was persisted")
	}
}

func TestDiagnose_Persists(t *testing.T) {
	f := newFixture(t)
	owner := f.member(t, "owner@example.com")

	res, err := f.svc.Diagnose(context.Background(), DiagnoseRequest{
		MemberID:    &owner,
		Filename:    "face.jpg",
		ContentType: "image/jpeg",
		Image:       []byte("not-really-a-jpeg"),
	})
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}

	if res.SkinType.Code != skin.TypePustules {
		t.Errorf("classification = %s, want PUSTULES", res.SkinType.Code)
	}
	if res.Confidence != 0.91 {
		t.Errorf("confidence = %v, want 0.91", res.Confidence)
	}
	if res.ImageURL == "" {
		t.Error("missing presigned image URL")
	}
	if len(res.Videos) != 1 || len(res.Products) != 1 {
		t.Errorf("enrichment lists = %d videos, %d products", len(res.Videos), len(res.Products))
	}

	rec, err := f.db.Diagnosis.Get(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	if rec.SkinType != "PUSTULES" {
		t.Errorf("stored skin_type = %q", rec.SkinType)
	}
	if !rec.IsPublic {
		t.Error("new records must default to public")
	}
	if rec.MemberID == nil || *rec.MemberID != owner {
		t.Error("owner not stored")
	}
	if len(rec.VideoData) != 1 || len(rec.ProductData) != 1 {
		t.Error("enrichment snapshot not stored")
	}
}

func TestDiagnose_InferenceFailure(t *testing.T) {
	f := newFixture(t)
	f.predictor.err = errors.New("connection refused")

	_, err := f.svc.Diagnose(context.Background(), DiagnoseRequest{
		Filename: "face.jpg",
		Image:    []byte("img"),
	})
	if !errors.Is(err, ErrInferenceUnavailable) {
		t.Fatalf("expected ErrInferenceUnavailable, got %v", err)
	}
	if f.count(t) != 0 {
		t.Error("record persisted despite inference failure")
	}
}

func TestDiagnose_UnknownLabel(t *testing.T) {
	f := newFixture(t)
	f.predictor.label = "Nodules"

	_, err := f.svc.Diagnose(context.Background(), DiagnoseRequest{
		Filename: "face.jpg",
		Image:    []byte("img"),
	})
	if !errors.Is(err, skin.ErrUnknownClassification) {
		t.Fatalf("expected ErrUnknownClassification, got %v", err)
	}
	if f.count(t) != 0 {
		t.Error("record persisted despite unknown label")
	}
}

func TestDiagnose_EnrichmentDegrades(t *testing.T) {
	f := newFixture(t)
	f.videos.err = errors.New("quota exceeded")
	f.products.err = errors.New("timeout")

	res, err := f.svc.Diagnose(context.Background(), DiagnoseRequest{
		Filename: "face.jpg",
		Image:    []byte("img"),
	})
	if err != nil {
		t.Fatalf("enrichment failure must not abort the diagnosis: %v", err)
	}
	if len(res.Videos) != 0 || len(res.Products) != 0 {
		t.Errorf("expected empty enrichment lists, got %d/%d", len(res.Videos), len(res.Products))
	}
	if f.count(t) != 1 {
		t.Error("record was not persisted")
	}
}

// ---------------------------------------------------------------------------
// GetDetail / authorization
// ---------------------------------------------------------------------------

func TestGetDetail_Authorization(t *testing.T) {
	f := newFixture(t)
	owner := f.member(t, "owner@example.com")
	stranger := f.member(t, "stranger@example.com")

	private := f.record(t, &owner, skin.TypeComedones, false)
	public := f.record(t, &owner, skin.TypePapules, true)

	tests := []struct {
		name      string
		id        uuid.UUID
		requester *uuid.UUID
		wantErr   error
	}{
		{"private anonymous", private, nil, ErrUnauthorized},
		{"private stranger", private, &stranger, ErrUnauthorized},
		{"private owner", private, &owner, nil},
		{"public anonymous", public, nil, nil},
		{"public stranger", public, &stranger, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.GetDetail(context.Background(), tt.id, tt.requester)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetDetail = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetDetail_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetDetail(context.Background(), uuid.New(), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDetail_OwnerMetadata(t *testing.T) {
	f := newFixture(t)
	owner := f.member(t, "owner@example.com")
	if err := f.db.Member.UpdateOneID(owner).SetSkinType("OILY").Exec(context.Background()); err != nil {
		t.Fatalf("set member skin type: %v", err)
	}
	id := f.record(t, &owner, skin.TypePustules, true)

	d, err := f.svc.GetDetail(context.Background(), id, nil)
	if err != nil {
		t.Fatalf("GetDetail failed: %v", err)
	}
	if d.OwnerName != "tester" {
		t.Errorf("owner name = %q", d.OwnerName)
	}
	if d.OwnerSkinType != "OILY" {
		t.Errorf("owner skin type = %q", d.OwnerSkinType)
	}
	if d.SkinType.KoreanName != "화농성" {
		t.Errorf("korean name = %q", d.SkinType.KoreanName)
	}
}

func TestGetDetail_OwnerRowMissing(t *testing.T) {
	// A record can outlive its owner row. The read must still succeed,
	// just without owner metadata. Foreign keys stay off here so the
	// orphaned reference can be seeded.
	db := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	t.Cleanup(func() { db.Close() })
	svc := New(db, nil, &stubStore{}, &stubPredictor{}, &stubVideos{}, &stubProducts{}, slog.Default())

	ghost := uuid.New()
	rec, err := db.Diagnosis.Create().
		SetSource(entdiag.SourceImage).
		SetSkinType(skin.TypePapules.String()).
		SetImageKey("diagnosis/orphan.jpg").
		SetConfidence(0.5).
		SetIsPublic(true).
		SetMemberID(ghost).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create diagnosis: %v", err)
	}

	d, err := svc.GetDetail(context.Background(), rec.ID, nil)
	if err != nil {
		t.Fatalf("GetDetail failed: %v", err)
	}
	if d.OwnerName != "" || d.OwnerSkinType != "" {
		t.Errorf("owner metadata = %q/%q, want empty", d.OwnerName, d.OwnerSkinType)
	}
}

// ---------------------------------------------------------------------------
// Visibility
// ---------------------------------------------------------------------------

func TestSetVisibility(t *testing.T) {
	f := newFixture(t)
	owner := f.member(t, "owner@example.com")
	stranger := f.member(t, "stranger@example.com")
	id := f.record(t, &owner, skin.TypeComedones, true)

	if _, err := f.svc.SetVisibility(context.Background(), id, stranger, false); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("stranger flip: expected ErrUnauthorized, got %v", err)
	}

	hidden, err := f.svc.SetVisibility(context.Background(), id, owner, false)
	if err != nil {
		t.Fatalf("owner flip failed: %v", err)
	}
	if hidden.ID != id {
		t.Errorf("returned detail id = %s, want %s", hidden.ID, id)
	}
	if hidden.IsPublic {
		t.Error("returned detail must already reflect the hidden state")
	}

	// The record is now invisible to everyone but the owner.
	if _, err := f.svc.GetDetail(context.Background(), id, &stranger); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("stranger read after hide: expected ErrUnauthorized, got %v", err)
	}
	if _, err := f.svc.GetDetail(context.Background(), id, &owner); err != nil {
		t.Errorf("owner read after hide failed: %v", err)
	}

	shown, err := f.svc.SetVisibility(context.Background(), id, owner, true)
	if err != nil {
		t.Fatalf("owner unhide failed: %v", err)
	}
	if !shown.IsPublic {
		t.Error("returned detail must already reflect the public state")
	}
	if shown.OwnerName != "tester" {
		t.Errorf("returned detail owner = %q", shown.OwnerName)
	}
	if _, err := f.svc.GetDetail(context.Background(), id, nil); err != nil {
		t.Errorf("anonymous read after unhide failed: %v", err)
	}
}

func TestSetVisibility_AnonymousRecordHasNoOwner(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "member@example.com")
	id := f.record(t, nil, skin.TypeComedones, true)

	if _, err := f.svc.SetVisibility(context.Background(), id, member, false); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSetVisibility_NotFound(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "member@example.com")
	if _, err := f.svc.SetVisibility(context.Background(), uuid.New(), member, false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Listings
// ---------------------------------------------------------------------------

func TestListPublic_Filter(t *testing.T) {
	f := newFixture(t)
	owner := f.member(t, "owner@example.com")

	f.record(t, &owner, skin.TypePustules, true)
	f.record(t, &owner, skin.TypePustules, true)
	f.record(t, &owner, skin.TypeComedones, true)
	f.record(t, &owner, skin.TypePustules, false) // private, never listed

	tests := []struct {
		filter string
		want   int
	}{
		{"ALL", 3},
		{"all", 3},
		{"", 3},
		{"PUSTULES", 2},
		{"pustules", 2},
		{" Comedones ", 1},
		{"FOLLICULITIS", 0},
	}

	for _, tt := range tests {
		t.Run("filter "+tt.filter, func(t *testing.T) {
			page, err := f.svc.ListPublic(context.Background(), ListRequest{Filter: tt.filter})
			if err != nil {
				t.Fatalf("ListPublic failed: %v", err)
			}
			if page.Total != tt.want {
				t.Errorf("total = %d, want %d", page.Total, tt.want)
			}
		})
	}
}

func TestListPublic_InvalidFilter(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ListPublic(context.Background(), ListRequest{Filter: "BOGUS"})
	if !errors.Is(err, ErrInvalidClassification) {
		t.Fatalf("expected ErrInvalidClassification, got %v", err)
	}
}

func TestListOwn(t *testing.T) {
	f := newFixture(t)
	owner := f.member(t, "owner@example.com")
	other := f.member(t, "other@example.com")

	f.record(t, &owner, skin.TypePustules, true)
	f.record(t, &owner, skin.TypeComedones, false) // own listing includes private
	f.record(t, &other, skin.TypePustules, true)

	page, err := f.svc.ListOwn(context.Background(), &owner, ListRequest{})
	if err != nil {
		t.Fatalf("ListOwn failed: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("total = %d, want 2", page.Total)
	}
}

func TestListOwn_MissingOwner(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ListOwn(context.Background(), nil, ListRequest{})
	if !errors.Is(err, ErrMissingOwner) {
		t.Fatalf("expected ErrMissingOwner, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Main page
// ---------------------------------------------------------------------------

func TestMainPage(t *testing.T) {
	f := newFixture(t)
	owner := f.member(t, "owner@example.com")

	for i := 0; i < 5; i++ {
		f.record(t, &owner, skin.TypePustules, true)
	}
	f.record(t, &owner, skin.TypeComedones, true)
	f.record(t, &owner, skin.TypePapules, false) // private, excluded

	digest, err := f.svc.MainPage(context.Background())
	if err != nil {
		t.Fatalf("MainPage failed: %v", err)
	}

	if len(digest.Recent) != 3 {
		t.Errorf("recent = %d entries, want 3", len(digest.Recent))
	}
	if len(digest.Counts) != len(skin.Types()) {
		t.Errorf("counts cover %d types, want %d", len(digest.Counts), len(skin.Types()))
	}

	byType := make(map[string]int)
	for _, c := range digest.Counts {
		byType[c.SkinType] = c.Count
	}
	if byType["PUSTULES"] != 5 {
		t.Errorf("PUSTULES count = %d, want 5", byType["PUSTULES"])
	}
	if byType["COMEDONES"] != 1 {
		t.Errorf("COMEDONES count = %d, want 1", byType["COMEDONES"])
	}
	if byType["PAPULES"] != 0 {
		t.Errorf("PAPULES count = %d, want 0 (private excluded)", byType["PAPULES"])
	}
	if byType["NORMAL"] != 0 {
		t.Errorf("NORMAL count = %d, want 0", byType["NORMAL"])
	}
}
