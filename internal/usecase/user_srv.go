package usecase

import (
	"context"
	"errors"

	"gifboard/internal/data/entity"
	"gifboard/internal/data/repository"
	"gifboard/internal/dto/request"
	"gifboard/internal/dto/response"
	"gifboard/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	List(ctx context.Context) ([]response.UserResponse, error)
	Get(ctx context.Context, id int64) (*response.UserResponse, error)

	// Update and Delete only act on the caller's own account.
	Update(ctx context.Context, id, callerID int64, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, id, callerID int64) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		us.log.Warn("Create user validation failed", zap.Error(err))
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
	}
	if err := us.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Username already exists")
		}
		return nil, err
	}

	us.log.Info("User created", zap.Int64("user_id", user.ID), zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) List(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.UserResponse, len(users))
	for i, user := range users {
		resp[i] = response.UserToResponse(user)
	}

	return resp, nil
}

func (us *userService) Get(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) Update(ctx context.Context, id, callerID int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if id != callerID {
		us.log.Warn("Attempt to update another account",
			zap.Int64("user_id", id),
			zap.Int64("caller_id", callerID),
		)
		return nil, forbidden("You can only modify your own account")
	}

	if req.Username == nil && req.Password == nil {
		return nil, badRequest("Nothing to update")
	}
	if err := validate(req); err != nil {
		us.log.Warn("Update user validation failed", zap.Error(err))
		return nil, err
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			us.log.Error("Failed to hash password", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = hashedPassword
	}

	if err := us.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, conflict("Username already exists")
		case errors.Is(err, repository.ErrNoRecord):
			return nil, notFound("User not found")
		}
		return nil, err
	}

	us.log.Info("User updated", zap.Int64("user_id", user.ID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) Delete(ctx context.Context, id, callerID int64) error {
	if id != callerID {
		us.log.Warn("Attempt to delete another account",
			zap.Int64("user_id", id),
			zap.Int64("caller_id", callerID),
		)
		return forbidden("You can only delete your own account")
	}

	deleted, err := us.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("User not found")
	}

	us.log.Info("User deleted", zap.Int64("user_id", id))
	return nil
}
