package models

import "time"

type Employee struct {
	ID         uint64     `gorm:"primarykey" json:"id"`
	FirstName  string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName   string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Email      string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone      string     `gorm:"type:varchar(50)" json:"phone"`
	Department string     `gorm:"type:varchar(100)" json:"department"`
	Position   string     `gorm:"type:varchar(100)" json:"position"`
	HireDate   *time.Time `json:"hire_date"`
	Salary     float64    `json:"salary"`
	Notes      string     `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`

	// Relations. The account shares the employee's lifecycle: it is created
	// and deleted together with its owner and is never reassigned.
	AccountID *uint64  `json:"-"`
	Account   *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

// FullName returns the display name used in audit messages.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
