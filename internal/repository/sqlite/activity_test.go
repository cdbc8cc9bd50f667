package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yunxiao-dev/teachboard/internal/domain"
)

func testActivity(day int) *domain.Activity {
	start := time.Date(2026, 1, day, 9, 0, 0, 0, time.UTC)
	return &domain.Activity{
		Title:       "人工智能基础入门",
		Speaker:     "张教授",
		Location:    "教学楼A座301室",
		Description: "入门课程",
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
	}
}

func TestActivityRepository_CreateAssignsID(t *testing.T) {
	db := setupDB(t)
	repo := db.Activities()
	ctx := context.Background()

	a := testActivity(15)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if a.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
		t.Error("Create() did not set timestamps")
	}

	b := testActivity(16)
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if a.ID == b.ID {
		t.Error("Create() assigned duplicate IDs")
	}
}

func TestActivityRepository_GetByID(t *testing.T) {
	db := setupDB(t)
	repo := db.Activities()
	ctx := context.Background()

	a := testActivity(15)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != a.Title || got.Speaker != a.Speaker || got.Location != a.Location {
		t.Errorf("GetByID() = %+v, want fields of %+v", got, a)
	}
	if !got.StartTime.Equal(a.StartTime) || !got.EndTime.Equal(a.EndTime) {
		t.Errorf("GetByID() times = %v..%v, want %v..%v", got.StartTime, got.EndTime, a.StartTime, a.EndTime)
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID() missing error = %v, want ErrNotFound", err)
	}
}

func TestActivityRepository_ListOrdersByStartTime(t *testing.T) {
	db := setupDB(t)
	repo := db.Activities()
	ctx := context.Background()

	for _, day := range []int{20, 15, 18} {
		if err := repo.Create(ctx, testActivity(day)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List() len = %d, want 3", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].StartTime.Before(list[i-1].StartTime) {
			t.Errorf("List() not ordered by start time: %v before %v", list[i].StartTime, list[i-1].StartTime)
		}
	}
}

func TestActivityRepository_Update(t *testing.T) {
	db := setupDB(t)
	repo := db.Activities()
	ctx := context.Background()

	a := testActivity(15)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	a.Title = "机器学习实战工作坊"
	a.Speaker = "李博士"
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "机器学习实战工作坊" || got.Speaker != "李博士" {
		t.Errorf("Update() not persisted: %+v", got)
	}

	missing := testActivity(16)
	missing.ID = "01ARZ3NDEKTSV4RRFFQ69G5FAV"
	if err := repo.Update(ctx, missing); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() missing error = %v, want ErrNotFound", err)
	}
}

func TestActivityRepository_Delete(t *testing.T) {
	db := setupDB(t)
	repo := db.Activities()
	ctx := context.Background()

	a := testActivity(15)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(ctx, a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}
