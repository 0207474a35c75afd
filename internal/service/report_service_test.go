package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/model"
)

func reportReq(task string, start time.Time) *dto.CreateReportRequest {
	return &dto.CreateReportRequest{
		TaskType:    task,
		Title:       "weekly sync prep",
		Description: "prepared slides",
		StartTime:   start,
		StopTime:    start.Add(time.Hour),
	}
}

func TestCreateReportDefaultsAndValidation(t *testing.T) {
	f := newRepoFixture()
	u := seedActiveUser(f, "card1")
	svc := NewReportService(f.repo, zap.NewNop())

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	report, err := svc.Create(context.Background(), u.ID, reportReq(model.TaskLearning, start))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if report.Priority != model.PriorityNone || report.Status != model.StatusNone {
		t.Errorf("defaults not applied: priority=%q status=%q", report.Priority, report.Status)
	}

	if _, err := svc.Create(context.Background(), u.ID, reportReq("gardening", start)); !errors.Is(err, ErrBadTaskType) {
		t.Fatalf("expected ErrBadTaskType, got %v", err)
	}
	if _, err := svc.Create(context.Background(), 999, reportReq(model.TaskLearning, start)); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateReportOwnership(t *testing.T) {
	f := newRepoFixture()
	owner := seedActiveUser(f, "card1")
	other := seedActiveUser(f, "card2")
	svc := NewReportService(f.repo, zap.NewNop())

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	report, err := svc.Create(context.Background(), owner.ID, reportReq(model.TaskProject, start))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newTitle := "revised title"

	// A stranger cannot touch it.
	if _, err := svc.Update(context.Background(), report.ID, &dto.UpdateReportRequest{Title: &newTitle}, other.ID, model.RoleStudent); !errors.Is(err, ErrNoPermission) {
		t.Fatalf("expected ErrNoPermission, got %v", err)
	}

	// The owner can.
	got, err := svc.Update(context.Background(), report.ID, &dto.UpdateReportRequest{Title: &newTitle}, owner.ID, model.RoleStudent)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if got.Title != newTitle {
		t.Errorf("title = %q, want %q", got.Title, newTitle)
	}
	if got.Description != "prepared slides" {
		t.Errorf("untouched field changed: %q", got.Description)
	}

	// So can an admin.
	status := model.StatusClosed
	got, err = svc.Update(context.Background(), report.ID, &dto.UpdateReportRequest{Status: &status}, other.ID, model.RoleAdmin)
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if got.Status != model.StatusClosed {
		t.Errorf("status = %q", got.Status)
	}
}

func TestListReportsByDate(t *testing.T) {
	f := newRepoFixture()
	u := seedActiveUser(f, "card1")
	svc := NewReportService(f.repo, zap.NewNop())

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	if _, err := svc.Create(context.Background(), u.ID, reportReq(model.TaskLearning, day)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), u.ID, reportReq(model.TaskLearning, day.AddDate(0, 0, 1))); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.ListByOwnerAndDate(context.Background(), u.ID, "2026-03-10")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d reports, want 1", len(got))
	}

	if _, err := svc.ListByOwnerAndDate(context.Background(), u.ID, "10-03-2026"); !errors.Is(err, ErrBadDate) {
		t.Fatalf("expected ErrBadDate, got %v", err)
	}
}

func TestReportsByDiscord(t *testing.T) {
	f := newRepoFixture()
	u := seedActiveUser(f, "card1")
	handle := "arjun#1234"
	f.users.users[u.ID].DiscordUsername = &handle
	svc := NewReportService(f.repo, zap.NewNop())

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	if _, err := svc.CreateByDiscord(context.Background(), handle, reportReq(model.TaskOthers, start)); err != nil {
		t.Fatalf("create by discord: %v", err)
	}

	got, err := svc.ListByDiscord(context.Background(), handle)
	if err != nil {
		t.Fatalf("list by discord: %v", err)
	}
	if len(got) != 1 || got[0].OwnerID != u.ID {
		t.Fatalf("reports not attributed to the handle's owner: %+v", got)
	}

	if _, err := svc.ListByDiscord(context.Background(), "ghost#0000"); !errors.Is(err, ErrDiscordNotFound) {
		t.Fatalf("expected ErrDiscordNotFound, got %v", err)
	}
	if _, err := svc.CreateByDiscord(context.Background(), "ghost#0000", reportReq(model.TaskOthers, start)); !errors.Is(err, ErrDiscordNotFound) {
		t.Fatalf("expected ErrDiscordNotFound, got %v", err)
	}
}
