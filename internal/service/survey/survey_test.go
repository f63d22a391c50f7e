package survey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hongik-triple/acnelog_backend/internal/repo"
	"github.com/hongik-triple/acnelog_backend/internal/repo/enttest"
	entmember "github.com/hongik-triple/acnelog_backend/internal/repo/member"
	"github.com/hongik-triple/acnelog_backend/internal/skin"
)

func newClient(t *testing.T) *repo.Client {
	t.Helper()
	db := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { db.Close() })
	return db
}

func newMember(t *testing.T, db *repo.Client) uuid.UUID {
	t.Helper()
	m, err := db.Member.Create().
		SetName("tester").
		SetEmail("tester@example.com").
		SetProvider(entmember.ProviderGoogle).
		SetProviderID("google-1").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	return m.ID
}

func answers(v any) skin.AnswerSet {
	out := make(skin.AnswerSet)
	for _, q := range skin.Questions() {
		out[q.ID] = v
	}
	return out
}

func TestQuestions(t *testing.T) {
	svc := New(newClient(t), slog.Default())

	qs := svc.Questions(context.Background())
	if len(qs) != 12 {
		t.Fatalf("catalog has %d questions, want 12", len(qs))
	}
	for i, q := range qs {
		if q.Order != i+1 {
			t.Errorf("question %s at position %d has order %d", q.ID, i, q.Order)
		}
	}
}

func TestRegister_EmptyInput(t *testing.T) {
	db := newClient(t)
	svc := New(db, slog.Default())

	// An empty answer set is just the first missing answer in catalog order.
	_, err := svc.Register(context.Background(), RegisterRequest{Answers: skin.AnswerSet{}})
	if !errors.Is(err, skin.ErrMissingRequiredAnswer) {
		t.Fatalf("expected ErrMissingRequiredAnswer, got %v", err)
	}
	var verr *skin.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %T", err)
	}
	if verr.QuestionID != "Q001" {
		t.Errorf("violation reported for %s, want Q001", verr.QuestionID)
	}
}

func TestRegister_ValidationAbortsBeforePersist(t *testing.T) {
	db := newClient(t)
	svc := New(db, slog.Default())

	tests := []struct {
		name    string
		mutate  func(skin.AnswerSet)
		wantErr error
	}{
		{
			name:    "missing required answer",
			mutate:  func(a skin.AnswerSet) { delete(a, "Q001") },
			wantErr: skin.ErrMissingRequiredAnswer,
		},
		{
			name:    "score out of range",
			mutate:  func(a skin.AnswerSet) { a["Q005"] = 99 },
			wantErr: skin.ErrScoreOutOfRange,
		},
		{
			name:    "non numeric score",
			mutate:  func(a skin.AnswerSet) { a["Q007"] = "sometimes" },
			wantErr: skin.ErrInvalidScoreFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := answers(3)
			tt.mutate(a)

			_, err := svc.Register(context.Background(), RegisterRequest{Answers: a})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	n, err := db.Diagnosis.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("%d records persisted despite validation failures", n)
	}
}

func TestRegister_AllMinimumAnswers(t *testing.T) {
	db := newClient(t)
	svc := New(db, slog.Default())
	owner := newMember(t, db)

	res, err := svc.Register(context.Background(), RegisterRequest{
		MemberID: &owner,
		Answers:  answers(1),
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if res.TotalScore != 12 {
		t.Errorf("total score = %d, want 12", res.TotalScore)
	}
	if res.SkinType.Code != skin.TypeDry {
		t.Errorf("classification = %s, want DRY", res.SkinType.Code)
	}
	if res.Recommendation == "" {
		t.Error("missing recommendation text")
	}
	for c, v := range res.CategoryScores {
		if v != 2 {
			t.Errorf("category %s aggregate = %d, want 2", c, v)
		}
	}

	// Record round-trips through storage.
	rec, err := db.Diagnosis.Get(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	if rec.SkinType != "DRY" {
		t.Errorf("stored skin_type = %q", rec.SkinType)
	}
	if rec.TotalScore == nil || *rec.TotalScore != 12 {
		t.Error("stored total score mismatch")
	}
	if len(rec.Scores) != 12 {
		t.Errorf("stored %d per-question scores, want 12", len(rec.Scores))
	}
	if !rec.IsPublic {
		t.Error("new records must default to public")
	}

	// The owner's stored skin type follows the latest survey.
	m, err := db.Member.Get(context.Background(), owner)
	if err != nil {
		t.Fatalf("load member: %v", err)
	}
	if m.SkinType == nil || *m.SkinType != "DRY" {
		t.Errorf("member skin type = %v, want DRY", m.SkinType)
	}
}

func TestRegister_SkinTypeLastWriteWins(t *testing.T) {
	db := newClient(t)
	svc := New(db, slog.Default())
	owner := newMember(t, db)

	if _, err := svc.Register(context.Background(), RegisterRequest{MemberID: &owner, Answers: answers(1)}); err != nil {
		t.Fatalf("first survey: %v", err)
	}

	// Strong oiliness, low dryness: rule 1 fires.
	a := answers(3)
	a["Q007"] = 5
	a["Q008"] = 4
	a["Q009"] = 1
	a["Q010"] = 1
	if _, err := svc.Register(context.Background(), RegisterRequest{MemberID: &owner, Answers: a}); err != nil {
		t.Fatalf("second survey: %v", err)
	}

	m, err := db.Member.Get(context.Background(), owner)
	if err != nil {
		t.Fatalf("load member: %v", err)
	}
	if m.SkinType == nil || *m.SkinType != "OILY" {
		t.Errorf("member skin type = %v, want OILY after second survey", m.SkinType)
	}
}

func TestRegister_Anonymous(t *testing.T) {
	db := newClient(t)
	svc := New(db, slog.Default())

	res, err := svc.Register(context.Background(), RegisterRequest{Answers: answers(3)})
	if err != nil {
		t.Fatalf("anonymous survey failed: %v", err)
	}

	rec, err := db.Diagnosis.Get(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	if rec.MemberID != nil {
		t.Error("anonymous record must have no owner")
	}
}

func TestListOwn_And_GetDetail(t *testing.T) {
	db := newClient(t)
	svc := New(db, slog.Default())
	owner := newMember(t, db)

	first, err := svc.Register(context.Background(), RegisterRequest{MemberID: &owner, Answers: answers(1)})
	if err != nil {
		t.Fatalf("first survey: %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterRequest{MemberID: &owner, Answers: answers(5)}); err != nil {
		t.Fatalf("second survey: %v", err)
	}

	page, err := svc.ListOwn(context.Background(), owner, 1, 20)
	if err != nil {
		t.Fatalf("ListOwn failed: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("total = %d, want 2", page.Total)
	}

	detail, err := svc.GetDetail(context.Background(), first.ID, owner)
	if err != nil {
		t.Fatalf("GetDetail failed: %v", err)
	}
	if detail.TotalScore != 12 {
		t.Errorf("detail total = %d, want 12", detail.TotalScore)
	}
	if len(detail.Scores) != 12 {
		t.Errorf("detail has %d scores, want 12", len(detail.Scores))
	}

	// Survey history is private to its owner.
	other, err := db.Member.Create().
		SetName("other").
		SetEmail("other@example.com").
		SetProvider(entmember.ProviderKakao).
		SetProviderID("kakao-2").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create other member: %v", err)
	}
	if _, err := svc.GetDetail(context.Background(), first.ID, other.ID); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}

	if _, err := svc.GetDetail(context.Background(), uuid.New(), owner); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
