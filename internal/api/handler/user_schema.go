package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	// Named "username" for OAuth2 form compatibility, but matched against
	// the stored email.
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Username string `json:"username"  validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=6,max=128"`
	FullName string `json:"full_name" validate:"omitempty,max=255"`
	IsActive *bool  `json:"is_active"`
	RoleID   *int64 `json:"role_id"`
}

type updateUserRequest struct {
	Username *string `json:"username"  validate:"omitempty,max=100"`
	Email    *string `json:"email"     validate:"omitempty,email,max=255"`
	Password *string `json:"password"  validate:"omitempty,min=6,max=128"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	IsActive *bool   `json:"is_active"`
	RoleID   *int64  `json:"role_id"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	IsActive bool   `json:"is_active"`
	RoleID   *int64 `json:"role_id,omitempty"`
}

type roleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}
