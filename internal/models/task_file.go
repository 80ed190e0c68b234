package models

import "time"

type TaskFile struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	FileName   string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileType   string    `gorm:"type:varchar(100);not null" json:"file_type"`
	FileSize   int64     `gorm:"not null" json:"file_size"`
	Data       []byte    `json:"-"`
	UploadedBy string    `gorm:"type:varchar(100);not null" json:"uploaded_by"`
	TaskID     uint64    `gorm:"not null;index" json:"task_id"`
	CreatedAt  time.Time `json:"created_at"`
}
