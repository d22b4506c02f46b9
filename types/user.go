package types

import "time"

// SecurityQuestions is the preset list offered at registration. A custom
// question is also accepted.
var SecurityQuestions = []string{
	"您的第一所國小是？",
	"您母親的娘家在哪裡？",
	"您最喜歡的食物是？",
	"您的第一隻寵物名字是？",
	"您最喜歡的歌手是？",
}

// User is a registered account. Password and security-answer hashes never
// leave the server.
type User struct {
	Username           string    `json:"username"`
	PasswordHash       string    `json:"-"`
	SecurityQuestion   string    `json:"-"`
	SecurityAnswerHash string    `json:"-"`
	CreatedAt          time.Time `json:"createdAt"`
}

// RegisterRequest is the request body for creating an account.
type RegisterRequest struct {
	Username         string `json:"username" binding:"required"`
	Password         string `json:"password" binding:"required"`
	SecurityQuestion string `json:"securityQuestion" binding:"required"`
	SecurityAnswer   string `json:"securityAnswer" binding:"required"`
}

// LoginRequest is the request body for signing in.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest is the request body for changing a password with
// the old password as proof.
type ChangePasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPasswordRequest is the request body for the forgot-password flow:
// the security answer stands in for the old password.
type ResetPasswordRequest struct {
	Username       string `json:"username" binding:"required"`
	SecurityAnswer string `json:"securityAnswer" binding:"required"`
	NewPassword    string `json:"newPassword" binding:"required"`
}

// AuthResponse is returned on successful login or registration.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
