package model

// AdminLoginRequest carries the admin credential pair. Fields are not
// validated: anything but the configured pair is simply rejected.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginResponse confirms an admin session.
type AdminLoginResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"is_admin"`
	Token   string `json:"token,omitempty"`
}
