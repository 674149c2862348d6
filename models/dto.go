package models

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreatePDFRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required"`
	Link        string `json:"link" binding:"required,url"`
	Author      string `json:"author" binding:"required,max=100"`
	Institution string `json:"institution" binding:"required,max=100"`
	Topic       string `json:"topic"`
}

// EditPDFRequest carries a partial update: empty fields are left
// untouched rather than cleared.
type EditPDFRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Author      string `json:"author"`
	Institution string `json:"institution"`
	Topic       string `json:"topic"`
}
