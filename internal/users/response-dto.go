package users

// LoginResponse is the wire shape of GET /login_user.
type LoginResponse struct {
	UserID int64 `json:"user_id"`
}
