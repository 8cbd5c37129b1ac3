package request

type CreateCommentRequest struct {
	GifID string `json:"gifId" validate:"required,notblank,max=128"`
	Text  string `json:"text" validate:"required,notblank,max=2000"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,notblank,max=2000"`
}

// ListCommentsRequest carries either one GIF id or a batch.
type ListCommentsRequest struct {
	GifID  string
	GifIDs []string
}
