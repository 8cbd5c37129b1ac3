package entity

const (
	MinRating = 1
	MaxRating = 5
)

type Rating struct {
	Base
	GifID  string `db:"gif_id"`
	Value  int    `db:"value"` // 1-5
	UserID int64  `db:"user_id"`
}

// RatingStats aggregates the ratings of one GIF.
type RatingStats struct {
	GifID   string  `db:"gif_id"`
	Average float64 `db:"average"`
	Count   int64   `db:"count"`
}
