package domain

import "time"

// Employee is a staff account that records leads through the funnel.
type Employee struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Name         string    `gorm:"column:name" json:"name"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

// Session is the explicit per-request session context resolved from
// the bearer token. Established on login, cleared when the token
// expires or the client discards it.
type Session struct {
	EmployeeID string
	Email      string
}
