package request

// Value is a pointer so a missing field is told apart from zero.
type UpsertRatingRequest struct {
	GifID string `json:"gifId" validate:"required,notblank,max=128"`
	Value *int   `json:"value" validate:"required,min=1,max=5"`
}

type UpdateRatingRequest struct {
	Value *int `json:"value" validate:"required,min=1,max=5"`
}

type ListRatingsRequest struct {
	GifID  string
	GifIDs []string
	UserID *int64
}
