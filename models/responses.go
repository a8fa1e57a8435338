package models

// ContextResponse is the body of a successful GET /getContext/{user_id}.
// Data holds the JSON projection of the stored document as a string.
type ContextResponse struct {
	Data string `json:"data"`
}

// MessageResponse is a plain acknowledgement, e.g. {"message": "Updated"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx HTTP response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
