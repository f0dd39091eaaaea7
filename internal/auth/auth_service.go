package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-workforce/internal/auth/errors"
	"go-workforce/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	GetMe(ctx context.Context, employeeID string) (AuthResponse, error)
}

type service struct {
	employeeRepo employee.Repository
}

func NewService(employeeRepo employee.Repository) Service {
	return &service{employeeRepo: employeeRepo}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	empl, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Not-found and lookup errors both come back as bad credentials so
		// the response never reveals which emails exist.
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	if !empl.IsActive {
		return TokenResponse{}, autherrors.ErrInactiveEmployee
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.PasswordHash), []byte(req.Password)); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	return s.issueTokens(empl)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	empl, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	if !empl.IsActive {
		return TokenResponse{}, autherrors.ErrInactiveEmployee
	}

	return s.issueTokens(empl)
}

func (s *service) GetMe(ctx context.Context, employeeID string) (AuthResponse, error) {
	empl, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	return AuthResponse{
		EmployeeID: empl.ID.String(),
		Name:       empl.Name,
		Email:      empl.Email,
	}, nil
}

func (s *service) issueTokens(empl *employee.Employee) (TokenResponse, error) {
	accessToken, err := generateToken(empl.ID.String(), accessTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}

	refreshToken, err := generateToken(empl.ID.String(), refreshTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Employee: AuthResponse{
			EmployeeID: empl.ID.String(),
			Name:       empl.Name,
			Email:      empl.Email,
		},
	}, nil
}

func generateToken(employeeID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"employee_id": employeeID,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
