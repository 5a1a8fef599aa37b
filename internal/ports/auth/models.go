package auth

// Claims representa la identidad del request.
// UserID es el id de users.User.
type Claims struct {
	UserID   string
	Username string
}
