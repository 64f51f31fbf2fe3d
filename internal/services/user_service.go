// internal/services/user_service.go
package services

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/productfindr/backend/internal/apperrors"
	"github.com/productfindr/backend/internal/config"
	"github.com/productfindr/backend/internal/models"
	"github.com/productfindr/backend/internal/store"
	"github.com/productfindr/backend/internal/utils"
)

// UserService is the profile directory collaborating with the showcase. It
// enforces uniqueness on email (and username) and issues the tokens that fix
// the actor identity at the outermost boundary.
type UserService struct {
	store *store.Store
	cfg   *config.Config
}

type RegisterUserRequest struct {
	Username  string   `json:"username" validate:"required,username"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,strong_password"`
	Bio       string   `json:"bio"`
	Interests []string `json:"interests,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Username  string   `json:"username,omitempty" validate:"omitempty,username"`
	Email     string   `json:"email,omitempty" validate:"omitempty,email"`
	Bio       string   `json:"bio,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

func NewUserService(st *store.Store, cfg *config.Config) *UserService {
	return &UserService{store: st, cfg: cfg}
}

// Register creates a profile and returns it with a signed access token.
func (s *UserService) Register(req *RegisterUserRequest) (models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	email := strings.ToLower(req.Email)
	var user models.User
	err = s.store.Update(func(tx *store.Tx) error {
		if _, taken := tx.NameIndex[req.Username]; taken {
			return apperrors.Conflict("User already exists")
		}
		if _, taken := tx.EmailIndex[email]; taken {
			return apperrors.Conflict("Email already used")
		}
		u := &models.User{
			ID:           uuid.NewString(),
			Username:     req.Username,
			Email:        email,
			Bio:          req.Bio,
			Interests:    append([]string(nil), req.Interests...),
			PasswordHash: string(hash),
			CreatedAt:    tx.Now,
			UpdatedAt:    tx.Now,
		}
		tx.Users[u.ID] = u
		tx.EmailIndex[email] = u.ID
		tx.NameIndex[u.Username] = u.ID
		user = snapshotUser(u)
		return nil
	})
	if err != nil {
		return models.User{}, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Username, s.cfg.JWT.AccessTokenTTL)
	return user, token, err
}

// Login checks credentials and issues a fresh access token.
func (s *UserService) Login(req *LoginRequest) (models.User, string, error) {
	email := strings.ToLower(req.Email)
	var user models.User
	var hash string
	err := s.store.View(func(tx *store.Tx) error {
		id, ok := tx.EmailIndex[email]
		if !ok {
			return apperrors.NotFound("User does not exist")
		}
		u := tx.Users[id]
		user = snapshotUser(u)
		hash = u.PasswordHash
		return nil
	})
	if err != nil {
		return models.User{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return models.User{}, "", apperrors.Forbidden("Invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID, user.Username, s.cfg.JWT.AccessTokenTTL)
	return user, token, err
}

func (s *UserService) Get(id string) (models.User, error) {
	var user models.User
	err := s.store.View(func(tx *store.Tx) error {
		u, ok := tx.Users[id]
		if !ok {
			return apperrors.NotFound("User does not exist")
		}
		user = snapshotUser(u)
		return nil
	})
	return user, err
}

// UpdateProfile lets the actor change their own record. Uniqueness on email
// and username is re-checked when either changes.
func (s *UserService) UpdateProfile(actorID string, req *UpdateProfileRequest) (models.User, error) {
	var user models.User
	err := s.store.Update(func(tx *store.Tx) error {
		u, ok := tx.Users[actorID]
		if !ok {
			return apperrors.NotFound("User does not exist")
		}

		newEmail := strings.ToLower(req.Email)
		if newEmail != "" && newEmail != u.Email {
			if _, taken := tx.EmailIndex[newEmail]; taken {
				return apperrors.Conflict("Email already used")
			}
		}
		if req.Username != "" && req.Username != u.Username {
			if _, taken := tx.NameIndex[req.Username]; taken {
				return apperrors.Conflict("User already exists")
			}
		}

		if newEmail != "" && newEmail != u.Email {
			delete(tx.EmailIndex, u.Email)
			tx.EmailIndex[newEmail] = u.ID
			u.Email = newEmail
		}
		if req.Username != "" && req.Username != u.Username {
			delete(tx.NameIndex, u.Username)
			tx.NameIndex[req.Username] = u.ID
			u.Username = req.Username
		}
		if req.Bio != "" {
			u.Bio = req.Bio
		}
		if req.Interests != nil {
			u.Interests = append([]string(nil), req.Interests...)
		}
		u.UpdatedAt = tx.Now
		user = snapshotUser(u)
		return nil
	})
	return user, err
}

func snapshotUser(u *models.User) models.User {
	cp := *u
	cp.Interests = append([]string(nil), u.Interests...)
	return cp
}
