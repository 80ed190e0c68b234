package models

import "time"

// ProfileImage holds an employee's avatar. A placeholder row with empty
// metadata is created together with the employee; uploading replaces it.
type ProfileImage struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	FileName   string    `gorm:"type:varchar(255)" json:"file_name"`
	FileType   string    `gorm:"type:varchar(100)" json:"file_type"`
	Data       []byte    `json:"-"`
	EmployeeID uint64    `gorm:"not null;uniqueIndex" json:"employee_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
