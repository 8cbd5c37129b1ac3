package request

type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=50"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
