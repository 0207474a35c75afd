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

// ── user module business errors ──

var (
	ErrRFIDTaken        = errors.New("rfid key already bound to another account")
	ErrDiscordTaken     = errors.New("discord username already bound to another account")
	ErrBadGrievanceType = errors.New("unknown grievance type")
)

// UserService drives member accounts, the RFID directory, items and
// grievances.
type UserService interface {
	List(ctx context.Context, req *dto.ListRequest) ([]model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	Delete(ctx context.Context, id uint) error
	UpdateRFID(ctx context.Context, req *dto.UpdateRFIDRequest) (*model.User, error)
	UpdateDiscord(ctx context.Context, userID uint, req *dto.UpdateDiscordRequest) (*model.User, error)
	Search(ctx context.Context, req *dto.UserSearchRequest) ([]model.User, error)
	CreateItem(ctx context.Context, ownerID uint, req *dto.CreateItemRequest) (*model.Item, error)
	ListItems(ctx context.Context, req *dto.ListRequest) ([]model.Item, error)
	CreateGrievance(ctx context.Context, ownerID uint, req *dto.CreateGrievanceRequest) (*model.Grievance, error)
	ListGrievances(ctx context.Context, ownerID uint) ([]model.Grievance, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) List(ctx context.Context, req *dto.ListRequest) ([]model.User, error) {
	req.Normalize()
	return s.repo.User.List(ctx, req.Skip, req.Limit)
}

func (s *userService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.logger.Error("delete user failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("user deleted", zap.Uint("id", id))
	return nil
}

// ────────────────────── UpdateRFID ──────────────────────

// UpdateRFID binds an RFID card to the account with the given email. A key
// already bound to a different account is rejected.
func (s *userService) UpdateRFID(ctx context.Context, req *dto.UpdateRFIDRequest) (*model.User, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if holder, err := s.repo.User.GetByRFIDKey(ctx, req.RFIDKey); err == nil {
		if holder.ID != user.ID {
			return nil, ErrRFIDTaken
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key := req.RFIDKey
	user.RFIDKey = &key
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("bind rfid failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ────────────────────── UpdateDiscord ──────────────────────

func (s *userService) UpdateDiscord(ctx context.Context, userID uint, req *dto.UpdateDiscordRequest) (*model.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if holder, err := s.repo.User.GetByDiscordUsername(ctx, req.DiscordUsername); err == nil {
		if holder.ID != user.ID {
			return nil, ErrDiscordTaken
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := req.DiscordUsername
	user.DiscordUsername = &name
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("bind discord failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Search runs the admin directory lookup on one allow-listed column.
func (s *userService) Search(ctx context.Context, req *dto.UserSearchRequest) ([]model.User, error) {
	return s.repo.User.ListByField(ctx, req.Field, req.Value)
}

// ────────────────────── items & grievances ──────────────────────

func (s *userService) CreateItem(ctx context.Context, ownerID uint, req *dto.CreateItemRequest) (*model.Item, error) {
	if _, err := s.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	item := &model.Item{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
	}
	if err := s.repo.Item.Create(ctx, item); err != nil {
		s.logger.Error("create item failed", zap.Uint("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (s *userService) ListItems(ctx context.Context, req *dto.ListRequest) ([]model.Item, error) {
	req.Normalize()
	return s.repo.Item.List(ctx, req.Skip, req.Limit)
}

func (s *userService) CreateGrievance(ctx context.Context, ownerID uint, req *dto.CreateGrievanceRequest) (*model.Grievance, error) {
	if _, err := s.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if !model.ValidGrievanceType(req.GrievanceType) {
		return nil, ErrBadGrievanceType
	}
	g := &model.Grievance{
		OwnerID:       ownerID,
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		GrievanceType: req.GrievanceType,
	}
	if err := s.repo.Grievance.Create(ctx, g); err != nil {
		s.logger.Error("create grievance failed", zap.Uint("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return g, nil
}

func (s *userService) ListGrievances(ctx context.Context, ownerID uint) ([]model.Grievance, error) {
	return s.repo.Grievance.ListByOwner(ctx, ownerID)
}
