package response

// ErrorDetail is the error envelope for all failure responses.
// The shape is kept wire-compatible with the original API consumers.
type ErrorDetail struct {
	Detail string `json:"detail"` // Human-readable failure message
}
