package response

import (
	"time"

	"gifboard/internal/data/entity"
)

type AuthResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
