package response

import (
	"time"

	"gifboard/internal/data/entity"
)

type CommentAuthor struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type CommentResponse struct {
	ID        int64          `json:"id"`
	GifID     string         `json:"gifId"`
	Text      string         `json:"text"`
	UserID    *int64         `json:"userId"`
	User      *CommentAuthor `json:"user"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func CommentToResponse(comment *entity.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        comment.ID,
		GifID:     comment.GifID,
		Text:      comment.Text,
		UserID:    comment.UserID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}

	if comment.UserID != nil {
		author := &CommentAuthor{ID: *comment.UserID}
		if comment.Username != nil {
			author.Username = *comment.Username
		}
		resp.User = author
	}

	return resp
}
