package auth

type RegisterRequest struct {
	Email     string `json:"email" binding:"required" validate:"required,email,max=254"`
	Password  string `json:"password" binding:"required" validate:"required,password_policy"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}
