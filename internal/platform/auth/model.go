package auth

import "time"

// Account is the credential document at accounts/{email}.
type Account struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile is the user document at users/{userId}. Theme rides along so the
// preference follows the user across devices.
type Profile struct {
	Email       string     `json:"email"`
	DisplayName *string    `json:"displayName,omitempty"`
	Theme       string     `json:"theme,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}
