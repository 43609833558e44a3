package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"missing-person-tracker/internal/config"
	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/repository"
	"missing-person-tracker/internal/service/email"
)

const bcryptCost = 10

type Service interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.AuthResult, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResult, error)
	IssueToken(user *domain.User) (string, error)
	ValidateToken(token string) (*Claims, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Claims is the signed payload. It is trusted as-is for the token lifetime;
// there is no revocation.
type Claims struct {
	UserID  uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
	jwt.RegisteredClaims
}

type service struct {
	userRepo     repository.UserRepository
	emailService email.Service
	cfg          *config.Config
	now          func() time.Time
}

func NewService(userRepo repository.UserRepository, emailService email.Service, cfg *config.Config) Service {
	return &service{
		userRepo:     userRepo,
		emailService: emailService,
		cfg:          cfg,
		now:          time.Now,
	}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *service) Register(ctx context.Context, input domain.CreateUserInput) (*domain.AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		FullName:     strings.TrimSpace(input.FullName),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.emailService.SendWelcomeEmail(context.Background(), user.Email, user.FullName); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Warn("failed to send welcome email")
		}
	}()

	return &domain.AuthResult{User: user, Token: token}, nil
}

func (s *service) Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !CheckPassword(user.PasswordHash, input.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{User: user, Token: token}, nil
}

func (s *service) IssueToken(user *domain.User) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

func (s *service) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
