package models

import "time"

// AuditTrail is an append-only record of a state-changing action. Entries are
// only ever inserted; nothing in the codebase updates or deletes them.
type AuditTrail struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	ActionMessage string    `gorm:"type:varchar(500);not null" json:"action_message"`
	PerformedBy   string    `gorm:"type:varchar(100);not null;index" json:"performed_by"`
	DateTriggered time.Time `gorm:"not null" json:"date_triggered"`
}
