package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"news-cms/cmd/api/auth"
	"news-cms/cmd/api/dto"
	"news-cms/cmd/internal/logger"
	"news-cms/models"
	"news-cms/repositories"
)

// dummyHash is compared against when the login name does not resolve, so
// that unknown and known usernames take roughly the same time to reject.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type AuthService struct {
	users *repositories.UserRepository
	jwt   *auth.JWTManager
}

func NewAuthService(users *repositories.UserRepository, jwt *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Login verifies the credentials against active admin users and returns a
// signed access token. All failure paths collapse into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, login, password string) (*dto.LoginResponse, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := s.users.FindActiveByLogin(ctx, login)
	if err != nil {
		if err == repositories.ErrNotFound {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Sign(user.ID.Hex(), user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login already succeeded; a stale last_login is not worth a 500.
		logger.Log.Warnf("update last_login for %s: %v", user.Username, err)
	}

	return &dto.LoginResponse{Token: token, User: dto.NewAdminUserDTO(*user)}, nil
}

// ListUsers returns every admin account, hashes stripped.
func (s *AuthService) ListUsers(ctx context.Context) ([]dto.AdminUserDTO, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminUserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewAdminUserDTO(u))
	}
	return out, nil
}

// ParseAccessToken is used by the auth middleware.
func (s *AuthService) ParseAccessToken(token string) (auth.Claims, error) {
	return s.jwt.Parse(token)
}

// CurrentUser resolves the user referenced by a token's subject claim.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.AdminUser, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, userID)
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
