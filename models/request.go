package models

import "time"

type RequestStatus string

const (
	RequestStatusPending          RequestStatus = "Pending"
	RequestStatusInProgress       RequestStatus = "InProgress"
	RequestStatusQuoteSent        RequestStatus = "QuoteSent"
	RequestStatusPaymentConfirmed RequestStatus = "PaymentConfirmed"
	RequestStatusCompleted        RequestStatus = "Completed"
	RequestStatusRejected         RequestStatus = "Rejected"
)

// ValidStatus reports whether s is one of the workflow statuses.
// The transition graph itself is not checked: any status may be set from any
// status.
func ValidStatus(s RequestStatus) bool {
	switch s {
	case RequestStatusPending, RequestStatusInProgress, RequestStatusQuoteSent,
		RequestStatusPaymentConfirmed, RequestStatusCompleted, RequestStatusRejected:
		return true
	}
	return false
}

// Request is a customer's label-design job. Exactly one owner; the user FK
// is restrict-on-delete so removing an account never drops its requests.
type Request struct {
	ID              string        `gorm:"primaryKey;size:36" json:"id"`
	Description     string        `gorm:"size:5000;not null" json:"description"`
	Status          RequestStatus `gorm:"type:request_status;default:'Pending';not null" json:"status"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       *time.Time    `json:"updated_at"`
	UpdatedByUserID *string       `gorm:"size:36" json:"updated_by_user_id"`
	UserID          string        `gorm:"size:36;not null" json:"user_id"`
	User            User          `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user"`
}

const MaxDescriptionLength = 5000
