package models

import "time"

// TaskPost is a feed entry on a task. Comments hang off posts and are removed
// with them.
type TaskPost struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"type:varchar(100);not null" json:"author"`
	TaskID    uint64    `gorm:"not null;index" json:"task_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Comments []TaskComment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}
