package shared

type SignUpRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse is returned by both signup and login.
type SessionResponse struct {
	Token string `json:"token"`
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
	// NewUsername is included only when the user is changing their handle.
	NewUsername string `json:"newUsername,omitempty"`
}

// UpdateProfileResponse may carry a refreshed token when the username changed,
// since the username is baked into the JWT.
type UpdateProfileResponse struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Private bool   `json:"private"`
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Private bool   `json:"private"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}
