package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/model"
	"github.com/kgex/bigbbe/internal/repository"
)

func TestUpdateRFID(t *testing.T) {
	f := newRepoFixture()
	a := seedActiveUser(f, "cardA")
	b := seedActiveUser(f, "cardB")
	svc := NewUserService(f.repo, zap.NewNop())

	// Binding a fresh key works.
	got, err := svc.UpdateRFID(context.Background(), &dto.UpdateRFIDRequest{Email: a.Email, RFIDKey: "cardNew"})
	if err != nil {
		t.Fatalf("update rfid: %v", err)
	}
	if got.RFIDKey == nil || *got.RFIDKey != "cardNew" {
		t.Fatalf("rfid = %v", got.RFIDKey)
	}

	// A key held by someone else is rejected.
	if _, err := svc.UpdateRFID(context.Background(), &dto.UpdateRFIDRequest{Email: a.Email, RFIDKey: "cardB"}); !errors.Is(err, ErrRFIDTaken) {
		t.Fatalf("expected ErrRFIDTaken, got %v", err)
	}

	// Re-binding your own key is a no-op success.
	if _, err := svc.UpdateRFID(context.Background(), &dto.UpdateRFIDRequest{Email: b.Email, RFIDKey: "cardB"}); err != nil {
		t.Fatalf("rebind own key: %v", err)
	}

	// Unknown email.
	if _, err := svc.UpdateRFID(context.Background(), &dto.UpdateRFIDRequest{Email: "ghost@kgkite.ac.in", RFIDKey: "x"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateDiscord(t *testing.T) {
	f := newRepoFixture()
	a := seedActiveUser(f, "cardA")
	b := seedActiveUser(f, "cardB")
	handle := "taken#1234"
	f.users.users[b.ID].DiscordUsername = &handle
	svc := NewUserService(f.repo, zap.NewNop())

	if _, err := svc.UpdateDiscord(context.Background(), a.ID, &dto.UpdateDiscordRequest{DiscordUsername: "taken#1234"}); !errors.Is(err, ErrDiscordTaken) {
		t.Fatalf("expected ErrDiscordTaken, got %v", err)
	}

	got, err := svc.UpdateDiscord(context.Background(), a.ID, &dto.UpdateDiscordRequest{DiscordUsername: "fresh#5678"})
	if err != nil {
		t.Fatalf("update discord: %v", err)
	}
	if got.DiscordUsername == nil || *got.DiscordUsername != "fresh#5678" {
		t.Fatalf("discord = %v", got.DiscordUsername)
	}
}

func TestSearchAllowList(t *testing.T) {
	f := newRepoFixture()
	u := seedActiveUser(f, "cardA")
	f.users.users[u.ID].Dept = "CS"
	svc := NewUserService(f.repo, zap.NewNop())

	got, err := svc.Search(context.Background(), &dto.UserSearchRequest{Field: "dept", Value: "CS"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d users, want 1", len(got))
	}

	if _, err := svc.Search(context.Background(), &dto.UserSearchRequest{Field: "hashed_password", Value: "x"}); !errors.Is(err, repository.ErrBadSearchField) {
		t.Fatalf("expected ErrBadSearchField, got %v", err)
	}
}

func TestListNormalizesPaging(t *testing.T) {
	f := newRepoFixture()
	seedActiveUser(f, "cardA")
	seedActiveUser(f, "cardB")
	svc := NewUserService(f.repo, zap.NewNop())

	got, err := svc.List(context.Background(), &dto.ListRequest{Skip: -5, Limit: 0})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d users, want 2", len(got))
	}

	got, err = svc.List(context.Background(), &dto.ListRequest{Skip: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d users, want 1", len(got))
	}
}

func TestDeleteUser(t *testing.T) {
	f := newRepoFixture()
	u := seedActiveUser(f, "cardA")
	svc := NewUserService(f.repo, zap.NewNop())

	if err := svc.Delete(context.Background(), u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), u.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateGrievance(t *testing.T) {
	f := newRepoFixture()
	u := seedActiveUser(f, "cardA")
	svc := NewUserService(f.repo, zap.NewNop())

	g, err := svc.CreateGrievance(context.Background(), u.ID, &dto.CreateGrievanceRequest{
		Name: "lab access", Description: "denied entry", GrievanceType: model.GrievanceOthers,
	})
	if err != nil {
		t.Fatalf("create grievance: %v", err)
	}
	if g.OwnerID != u.ID {
		t.Errorf("owner = %d, want %d", g.OwnerID, u.ID)
	}

	if _, err := svc.CreateGrievance(context.Background(), u.ID, &dto.CreateGrievanceRequest{
		Name: "x", Description: "y", GrievanceType: "rant",
	}); !errors.Is(err, ErrBadGrievanceType) {
		t.Fatalf("expected ErrBadGrievanceType, got %v", err)
	}

	listed, err := svc.ListGrievances(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("list grievances: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("got %d grievances, want 1", len(listed))
	}
}

func TestCreateItemForUnknownUser(t *testing.T) {
	f := newRepoFixture()
	svc := NewUserService(f.repo, zap.NewNop())

	if _, err := svc.CreateItem(context.Background(), 999, &dto.CreateItemRequest{Title: "mug"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
