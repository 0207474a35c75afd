package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/model"
)

// UserRepository is the users data-access interface.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByPhone(ctx context.Context, phone string) (*model.User, error)
	GetByRegisterNum(ctx context.Context, regNum string) (*model.User, error)
	GetByRFIDKey(ctx context.Context, rfidKey string) (*model.User, error)
	GetByDiscordUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, offset, limit int) ([]model.User, error)
	ListByField(ctx context.Context, field, value string) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
}

// directoryColumns are the columns the admin RFID directory may search by.
var directoryColumns = map[string]bool{
	"email":        true,
	"phone_no":     true,
	"register_num": true,
	"stay":         true,
	"college":      true,
	"dept":         true,
	"join_year":    true,
	"grad_year":    true,
}

// ErrBadSearchField rejects directory lookups on non allow-listed columns.
var ErrBadSearchField = fmt.Errorf("search field not allowed")

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates the GORM-backed UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("phone_no = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByRegisterNum(ctx context.Context, regNum string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("register_num = ?", regNum).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByRFIDKey(ctx context.Context, rfidKey string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("rfid_key = ?", rfidKey).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByDiscordUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("discord_username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *userRepo) ListByField(ctx context.Context, field, value string) ([]model.User, error) {
	if !directoryColumns[field] {
		return nil, ErrBadSearchField
	}
	var users []model.User
	err := r.db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", field), value).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) Delete(ctx context.Context, id uint) error {
	// FK cascades take the user's attendance, reports and grievances along.
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
