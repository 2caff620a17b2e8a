package service

import (
	"context"
	"errors"
	"fmt"

	"wholesale-portal/internal/auth"
	"wholesale-portal/internal/dto"
	"wholesale-portal/internal/model"
	"wholesale-portal/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is assigned to accounts created by an admin; the user is
// expected to change it on first login.
const DefaultPassword = "000000"

type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*dto.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserProfile, error)
	ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) error
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserProfile, error)
	ListUsers(ctx context.Context) ([]*dto.UserProfile, error)
	DeleteUser(ctx context.Context, callerID, userID uint) error
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID uint) (*dto.UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}
	return profileFromUser(user), nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	err := s.userRepo.Update(ctx, &model.User{
		ID:      userID,
		Name:    req.Name,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user %d: %w", userID, err)
	}

	return s.GetProfile(ctx, userID)
}

func (s *userServiceImpl) ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user %d: %w", userID, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserProfile, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
		Company:  req.Company,
		Role:     auth.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return profileFromUser(user), nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserProfile, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	profiles := make([]*dto.UserProfile, len(users))
	for i, u := range users {
		profiles[i] = profileFromUser(u)
	}
	return profiles, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, callerID, userID uint) error {
	if callerID == userID {
		return ErrSelfDelete
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user %d: %w", userID, err)
	}
	return nil
}

func profileFromUser(user *model.User) *dto.UserProfile {
	return &dto.UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		Company:   user.Company,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
