package schema

// CreateUser is the payload for user registration.
type CreateUser struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// User is the identity returned after token verification. The password
// hash never crosses the API boundary.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Token is an issued bearer token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
