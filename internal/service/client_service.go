package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/model"
	"github.com/kgex/bigbbe/internal/repository"
)

// ── client module business errors ──

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrProjectNotFound = errors.New("project not found")
)

// ClientService drives client organisations and their projects.
type ClientService interface {
	CreateClient(ctx context.Context, ownerID uint, req *dto.CreateClientRequest) (*model.Client, error)
	GetClient(ctx context.Context, id uint) (*model.Client, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	DeleteClient(ctx context.Context, id uint) (*model.Client, error)
	CreateProject(ctx context.Context, clientID uint, req *dto.CreateProjectRequest) (*model.Project, error)
	GetProject(ctx context.Context, id uint) (*model.Project, error)
	ListProjects(ctx context.Context, clientID uint) ([]model.Project, error)
	ListAllProjects(ctx context.Context) ([]model.Project, error)
	DeleteProject(ctx context.Context, id uint) (*model.Project, error)
}

type clientService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClientService creates the ClientService.
func NewClientService(repo *repository.Repository, logger *zap.Logger) ClientService {
	return &clientService{repo: repo, logger: logger}
}

func (s *clientService) CreateClient(ctx context.Context, ownerID uint, req *dto.CreateClientRequest) (*model.Client, error) {
	client := &model.Client{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		POCName:     req.POCName,
		POCPhone:    req.POCPhone,
		POCEmail:    req.POCEmail,
	}
	if err := s.repo.Client.Create(ctx, client); err != nil {
		s.logger.Error("create client failed", zap.Error(err))
		return nil, err
	}
	return client, nil
}

func (s *clientService) GetClient(ctx context.Context, id uint) (*model.Client, error) {
	client, err := s.repo.Client.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]model.Client, error) {
	return s.repo.Client.List(ctx)
}

func (s *clientService) DeleteClient(ctx context.Context, id uint) (*model.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Client.Delete(ctx, id); err != nil {
		s.logger.Error("delete client failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return client, nil
}

func (s *clientService) CreateProject(ctx context.Context, clientID uint, req *dto.CreateProjectRequest) (*model.Project, error) {
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	project := &model.Project{
		OwnerID:       clientID,
		Name:          req.Name,
		Description:   req.Description,
		StartTime:     req.StartTime,
		StopTime:      req.StopTime,
		ProjectStatus: req.ProjectStatus,
		Domain:        req.Domain,
	}
	if err := s.repo.Project.Create(ctx, project); err != nil {
		s.logger.Error("create project failed", zap.Uint("client_id", clientID), zap.Error(err))
		return nil, err
	}
	return project, nil
}

func (s *clientService) GetProject(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *clientService) ListProjects(ctx context.Context, clientID uint) ([]model.Project, error) {
	return s.repo.Project.ListByClient(ctx, clientID)
}

func (s *clientService) ListAllProjects(ctx context.Context) ([]model.Project, error) {
	return s.repo.Project.ListAll(ctx)
}

func (s *clientService) DeleteProject(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Project.Delete(ctx, id); err != nil {
		s.logger.Error("delete project failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return project, nil
}
