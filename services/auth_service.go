package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/repository"
	"github.com/asliq/akilli-garson/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles staff PIN login against the local store.
type AuthService struct {
	waiterRepo *repository.WaiterRepository
	jwtSecret  string
	jwtTTL     time.Duration
}

func NewAuthService(repo *repository.WaiterRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{waiterRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Login checks the staff code and PIN and issues a JWT. Failures are
// deliberately indistinguishable between unknown code and wrong PIN.
func (s *AuthService) Login(code, pin string) (string, *entity.Waiter, error) {
	code = strings.TrimSpace(code)
	w, err := s.waiterRepo.FindByCode(code)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(w.PinHash), []byte(pin)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(w.ID, w.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, w, nil
}

// Me resolves the authenticated waiter from its token id.
func (s *AuthService) Me(id uint) (*entity.Waiter, error) {
	return s.waiterRepo.FindByID(id)
}

func (s *AuthService) ListWaiters() ([]entity.Waiter, error) {
	return s.waiterRepo.List()
}
