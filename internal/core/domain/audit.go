package domain

import "time"

// AuditAction names the mutation recorded by an audit entry.
type AuditAction string

const (
	ActionCreate        AuditAction = "create"
	ActionUpdate        AuditAction = "update"
	ActionDelete        AuditAction = "delete"
	ActionChangeStatus  AuditAction = "changeStatus"
	ActionAlterPassword AuditAction = "alterPassword"
)

// UserAdminLog records a mutation of a user_admin row. OldValue and
// NewValue hold the JSON-encoded entity before and after the change;
// UserID is the acting administrator. Entries are insert-only.
type UserAdminLog struct {
	ID        int64       `json:"id"`
	SubjectID int64       `json:"user_admin_id"`
	Action    AuditAction `json:"action"`
	OldValue  string      `json:"old_value"`
	NewValue  string      `json:"new_value"`
	Date      time.Time   `json:"date"`
	UserID    int64       `json:"user_id"`
}

type CompanyLog struct {
	ID        int64       `json:"id"`
	SubjectID int64       `json:"company_id"`
	Action    AuditAction `json:"action"`
	OldValue  string      `json:"old_value"`
	NewValue  string      `json:"new_value"`
	Date      time.Time   `json:"date"`
	UserID    int64       `json:"user_id"`
}

type CategoryLog struct {
	ID        int64       `json:"id"`
	SubjectID int64       `json:"category_id"`
	Action    AuditAction `json:"action"`
	OldValue  string      `json:"old_value"`
	NewValue  string      `json:"new_value"`
	Date      time.Time   `json:"date"`
	UserID    int64       `json:"user_id"`
}

// AssociationLog records the creation or removal of a company/category
// link. The link is the whole payload, so no old/new snapshots are kept.
type AssociationLog struct {
	ID         int64       `json:"id"`
	CompanyID  int64       `json:"company_id"`
	CategoryID int64       `json:"category_id"`
	Action     AuditAction `json:"action"`
	Date       time.Time   `json:"date"`
	UserID     int64       `json:"user_id"`
}
