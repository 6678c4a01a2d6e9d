package models

import "time"

// Status is the aggregate membership status derived from the approval ledger.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// User is a portal member account. Status starts at pending and is mutated
// only by the approval workflow; IsApproved is derived from Status and the
// two are always written together.
type User struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Gender     string    `json:"gender"`
	StateCode  string    `json:"state_code"`
	UserCode   string    `json:"user_code"`
	Phone      string    `json:"phone,omitempty"`
	City       string    `json:"city,omitempty"`
	Occupation string    `json:"occupation,omitempty"`
	Education  string    `json:"education,omitempty"`
	About      string    `json:"about,omitempty"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	Status     Status    `json:"status"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for creating a pending user.
type RegisterRequest struct {
	Name       string `json:"name" binding:"required" validate:"required"`
	Email      string `json:"email"`
	Gender     string `json:"gender" binding:"required" validate:"required"`
	StateCode  string `json:"stateCode" binding:"required" validate:"required"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	Occupation string `json:"occupation"`
	Education  string `json:"education"`
	About      string `json:"about"`
	PhotoURL   string `json:"photoUrl"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Phone      *string `json:"phone"`
	City       *string `json:"city"`
	Occupation *string `json:"occupation"`
	Education  *string `json:"education"`
	About      *string `json:"about"`
	PhotoURL   *string `json:"photoUrl"`
}

// UserResponse is the API shape for a single user.
type UserResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Gender       string    `json:"gender"`
	StateCode    string    `json:"state_code"`
	UserCode     string    `json:"user_code"`
	Status       Status    `json:"status"`
	IsApproved   bool      `json:"is_approved"`
	Completeness int       `json:"completeness"`
	CreatedAt    time.Time `json:"created_at"`
}

// PendingUser is one row of the admin review queue: the user plus the
// decision counts accumulated so far.
type PendingUser struct {
	User          User `json:"user"`
	ApprovedCount int  `json:"approved_count"`
	RejectedCount int  `json:"rejected_count"`
}

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
