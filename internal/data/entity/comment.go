package entity

type Comment struct {
	Base
	GifID  string `db:"gif_id"`
	Text   string `db:"text"`
	UserID *int64 `db:"user_id"` // nil once the author account is gone

	// Username is joined from users, empty for orphaned comments.
	Username *string `db:"username"`
}

// OwnedBy reports whether userID authored the comment.
func (c *Comment) OwnedBy(userID int64) bool {
	return c.UserID != nil && *c.UserID == userID
}
