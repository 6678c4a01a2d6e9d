package models

import "time"

// Interest is a one-directional expression of matrimonial interest. When
// the reverse row exists the pair is mutual and both rows carry Matched.
type Interest struct {
	FromUserID int64     `json:"from_user_id"`
	ToUserID   int64     `json:"to_user_id"`
	Matched    bool      `json:"matched"`
	CreatedAt  time.Time `json:"created_at"`
}

// ExpressRequest is the payload for expressing interest in a profile.
type ExpressRequest struct {
	FromUserID int64 `json:"fromUserId" binding:"required"`
	ToUserID   int64 `json:"toUserId" binding:"required"`
}

// ExpressResponse reports whether the interest completed a mutual match.
type ExpressResponse struct {
	Success bool   `json:"success"`
	Mutual  bool   `json:"mutual"`
	Message string `json:"message"`
}

// InterestList groups a user's sent and received interests.
type InterestList struct {
	Sent     []Interest `json:"sent"`
	Received []Interest `json:"received"`
}

// ErrorResponse is the plain error envelope returned by the HTTP layer.
type ErrorResponse struct {
	Error string `json:"error"`
}
