package response

import (
	"time"

	"gifboard/internal/data/entity"
)

type RatingResponse struct {
	ID        int64     `json:"id"`
	GifID     string    `json:"gifId"`
	Value     int       `json:"value"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RatingStatsResponse struct {
	GifID   string  `json:"gifId"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID,
		GifID:     rating.GifID,
		Value:     rating.Value,
		UserID:    rating.UserID,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

func RatingStatsToResponse(stats *entity.RatingStats) RatingStatsResponse {
	return RatingStatsResponse{
		GifID:   stats.GifID,
		Average: stats.Average,
		Count:   stats.Count,
	}
}
