package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/adapters/persistence/repositories"
	"insureportal/internal/core/domain"

	"gorm.io/gorm"
)

// User management errors
var (
	ErrCannotDeleteSelf = errors.New("you cannot delete your own account")
	ErrInvalidRole      = errors.New("invalid role")
)

// UserService handles profile and admin user management
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileInput carries the self-service profile fields. Pointer
// fields distinguish "not sent" from "set to empty"; everything outside
// this allow-list (role, password, email) is ignored by design of the
// endpoint surface.
type UpdateProfileInput struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	ProfileImageURL *string `json:"profileImageUrl"`
	ThemePreference *string `json:"themePreference"`
}

// AdminUpdateUserInput carries the admin-editable fields, which extend
// the profile allow-list with role.
type AdminUpdateUserInput struct {
	UpdateProfileInput
	Role *string `json:"role"`
}

// List returns a page of users plus the total count
func (s *UserService) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	return s.userRepo.List(ctx, offset, limit)
}

// GetByID gets a user by ID
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the allow-listed profile fields to the actor's
// own account.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfileInput(user, input)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AdminUpdate applies the admin allow-list, including role changes, to
// any account.
func (s *UserService) AdminUpdate(ctx context.Context, userID uint, input *AdminUpdateUserInput) (*models.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*input.Role))
		if role != string(domain.RoleUser) && role != string(domain.RoleAdmin) {
			return nil, ErrInvalidRole
		}
		user.Role = role
	}
	applyProfileInput(user, &input.UpdateProfileInput)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User %d updated by admin", user.ID)
	return user, nil
}

// Delete soft-deletes a user. An admin cannot delete their own account,
// which keeps at least the acting admin alive.
func (s *UserService) Delete(ctx context.Context, actor domain.Actor, userID uint) error {
	if actor.ID == userID {
		return ErrCannotDeleteSelf
	}

	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	log.Printf("✅ User %d deleted by admin %d", userID, actor.ID)
	return nil
}

func applyProfileInput(user *models.User, input *UpdateProfileInput) {
	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		user.Address = strings.TrimSpace(*input.Address)
	}
	if input.ProfileImageURL != nil {
		user.ProfileImageURL = strings.TrimSpace(*input.ProfileImageURL)
	}
	if input.ThemePreference != nil {
		user.ThemePreference = strings.TrimSpace(*input.ThemePreference)
	}
}
