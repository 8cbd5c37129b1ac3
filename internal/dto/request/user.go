package request

// CreateUserRequest is the legacy account creation body.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,notblank,max=50"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// UpdateUserRequest changes whichever fields are present.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,notblank,max=50"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,maxbytes=72"`
}
