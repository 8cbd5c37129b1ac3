package usecase

import (
	"context"
	"errors"

	"gifboard/internal/data/entity"
	"gifboard/internal/data/repository"
	"gifboard/internal/dto/request"
	"gifboard/internal/dto/response"
	"gifboard/pkg/token"
	"gifboard/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	issuer   token.Issuer
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, issuer token.Issuer, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		issuer:   issuer,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if err := validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Username must be free
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, conflict("User already exists")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	// 4. Save user, a concurrent registration may still win the race
	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("User already exists")
		}
		return nil, err
	}

	// 5. Log the new user in
	signed, err := s.issuer.Issue(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, err
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &response.AuthResponse{Token: signed, UserID: user.ID}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	// unknown user and wrong password look the same to the caller
	if user == nil {
		s.log.Warn("Login for unknown user", zap.String("username", req.Username))
		return nil, unauthorized("Invalid credentials")
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, unauthorized("Invalid credentials")
	}

	signed, err := s.issuer.Issue(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, err
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &response.AuthResponse{Token: signed, UserID: user.ID}, nil
}
