package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kgex/bigbbe/internal/dto"
)

func clientReq() *dto.CreateClientRequest {
	return &dto.CreateClientRequest{
		Name:     "Acme Industries",
		POCName:  "Priya",
		POCPhone: "9876501234",
		POCEmail: "priya@acme.example",
	}
}

func TestClientLifecycle(t *testing.T) {
	f := newRepoFixture()
	svc := NewClientService(f.repo, zap.NewNop())

	client, err := svc.CreateClient(context.Background(), 1, clientReq())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	got, err := svc.GetClient(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("get client: %v", err)
	}
	if got.Name != "Acme Industries" {
		t.Errorf("name = %q", got.Name)
	}

	if _, err := svc.DeleteClient(context.Background(), client.ID); err != nil {
		t.Fatalf("delete client: %v", err)
	}
	if _, err := svc.GetClient(context.Background(), client.ID); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestProjectRequiresClient(t *testing.T) {
	f := newRepoFixture()
	svc := NewClientService(f.repo, zap.NewNop())

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	req := &dto.CreateProjectRequest{
		Name: "Website revamp", StartTime: start, StopTime: start.AddDate(0, 3, 0),
	}

	if _, err := svc.CreateProject(context.Background(), 99, req); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}

	client, err := svc.CreateClient(context.Background(), 1, clientReq())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	project, err := svc.CreateProject(context.Background(), client.ID, req)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if project.OwnerID != client.ID {
		t.Errorf("owner = %d, want %d", project.OwnerID, client.ID)
	}

	byClient, err := svc.ListProjects(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(byClient) != 1 {
		t.Fatalf("got %d projects, want 1", len(byClient))
	}

	all, err := svc.ListAllProjects(context.Background())
	if err != nil {
		t.Fatalf("list all projects: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d projects, want 1", len(all))
	}

	if _, err := svc.DeleteProject(context.Background(), project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if _, err := svc.GetProject(context.Background(), project.ID); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
