package services

import (
	"strings"
	"time"

	"github.com/ChPurna2003/CravingConnect/entity"
	"github.com/ChPurna2003/CravingConnect/pkg/apperr"
	"github.com/ChPurna2003/CravingConnect/repository"
	"github.com/ChPurna2003/CravingConnect/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles login/register. Hashing is bcrypt, tokens are HS256.
type AuthService struct {
	Repo      *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, JWTSecret: secret, JWTTTL: ttl}
}

// Login verifies credentials and issues a token. Lookup and password failures
// are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.Repo.FindByUsername(username)
	if err != nil {
		return "", nil, apperr.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := utils.GenerateToken(user, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register creates a plain customer account. Roles and countries are assigned
// only at seed time, never through the API.
func (s *AuthService) Register(username, password string) (*entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	count, err := s.Repo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.BadRequest("username already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Role:     entity.RoleCustomer,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
