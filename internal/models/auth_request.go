package models

// RegisterRequest represents the sign-up form
type RegisterRequest struct {
	Username  string `form:"username" json:"username" binding:"required,max=150,username"`
	Email     string `form:"email" json:"email" binding:"required,email"`
	Password1 string `form:"password1" json:"password1" binding:"required,min=8,notnumeric"`
	Password2 string `form:"password2" json:"password2" binding:"required,eqfield=Password1"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// PasswordChangeRequest represents the password form on the profile page
type PasswordChangeRequest struct {
	OldPassword  string `form:"old_password" json:"old_password" binding:"required"`
	NewPassword1 string `form:"new_password1" json:"new_password1" binding:"required,min=8,notnumeric"`
	NewPassword2 string `form:"new_password2" json:"new_password2" binding:"required,eqfield=NewPassword1"`
}
