package request

// SearchRequest is built from the query string, json tags name the params.
type SearchRequest struct {
	Query  string `json:"q" validate:"required,notblank,max=200"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
