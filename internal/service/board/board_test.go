package board

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hongik-triple/acnelog_backend/internal/repo"
	"github.com/hongik-triple/acnelog_backend/internal/repo/enttest"
)

func newClient(t *testing.T) *repo.Client {
	t.Helper()
	db := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndGet(t *testing.T) {
	svc := New(newClient(t))

	n, err := svc.Create(context.Background(), CreateRequest{
		Title:   "점검 안내",
		Content: "금요일 새벽 점검이 있습니다.",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.GetByID(context.Background(), n.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "점검 안내" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Pinned {
		t.Error("pinned must default to false")
	}
}

func TestList_PinnedFirst(t *testing.T) {
	svc := New(newClient(t))
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRequest{Title: "old", Content: "c"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Title: "new", Content: "c"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	pinned, err := svc.Create(ctx, CreateRequest{Title: "pinned", Content: "c", Pinned: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	page, err := svc.List(ctx, 1, 20)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("total = %d, want 3", page.Total)
	}
	if page.Data[0].ID != pinned.ID {
		t.Error("pinned notices must sort first")
	}
}

func TestUpdate(t *testing.T) {
	svc := New(newClient(t))
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateRequest{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "수정된 제목"
	pin := true
	got, err := svc.Update(ctx, n.ID, UpdateRequest{Title: &title, Pinned: &pin})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Title != "수정된 제목" || !got.Pinned {
		t.Errorf("update not applied: %+v", got)
	}
	if got.Content != "c" {
		t.Error("untouched fields must survive a partial update")
	}
}

func TestDelete_SoftHidesNotice(t *testing.T) {
	svc := New(newClient(t))
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateRequest{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, n.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := svc.GetByID(ctx, n.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	page, err := svc.List(ctx, 1, 20)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 0 {
		t.Errorf("deleted notices must not be listed, total = %d", page.Total)
	}
}

func TestNotFound(t *testing.T) {
	svc := New(newClient(t))
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, uuid.New(), UpdateRequest{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}
