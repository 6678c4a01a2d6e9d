package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DecisionStatus is a single admin's verdict on one user.
type DecisionStatus string

const (
	DecisionApproved DecisionStatus = "approved"
	DecisionRejected DecisionStatus = "rejected"
)

// Decision is one row of the approval ledger. At most one row exists per
// (user, admin) pair; a later verdict from the same admin overwrites the
// earlier row, it never appends.
type Decision struct {
	UserID    int64          `json:"user_id"`
	AdminID   int64          `json:"admin_id"`
	Status    DecisionStatus `json:"status"`
	AdminName string         `json:"admin_name"`
	Reason    string         `json:"reason,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// RepeatPolicy names the asymmetric overwrite rule: an admin who has
// already decided cannot approve again through the approve endpoint, but
// may always overwrite their decision with a rejection. Kept as an explicit
// type so the asymmetry reads as policy, not accident.
type RepeatPolicy struct {
	BlockOnApprove    bool
	OverwriteOnReject bool
}

// DefaultRepeatPolicy is the portal's registration review rule.
var DefaultRepeatPolicy = RepeatPolicy{BlockOnApprove: true, OverwriteOnReject: true}

// AdminID accepts both JSON numbers and numeric strings, since admin panel
// clients send the id either way.
type AdminID int64

func (id *AdminID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid admin id %q", s)
	}
	*id = AdminID(v)
	return nil
}

func (id AdminID) Int64() int64 { return int64(id) }

// ApproveRequest is the approve endpoint body. The acting admin's identity
// is injected by the caller; authentication happens at the route gate.
type ApproveRequest struct {
	AdminID   AdminID `json:"adminId" binding:"required"`
	AdminName string  `json:"adminName" binding:"required"`
}

// RejectRequest is the reject endpoint body.
type RejectRequest struct {
	AdminID   AdminID `json:"adminId" binding:"required"`
	AdminName string  `json:"adminName" binding:"required"`
	Reason    string  `json:"reason" binding:"required"`
}

// DecisionResponse is the business outcome envelope. Duplicate decisions
// and other ordinary outcomes are reported here with Success=false, never
// as HTTP errors.
type DecisionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the plain error envelope returned by the HTTP layer.
type ErrorResponse struct {
	Error string `json:"error"`
}
