package models

import "time"

// Document is a file uploaded for an employee, stored as a blob in the
// database alongside its metadata.
type Document struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	FileName   string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileType   string    `gorm:"type:varchar(100);not null" json:"file_type"`
	Data       []byte    `json:"-"`
	EmployeeID uint64    `gorm:"not null;index" json:"employee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
