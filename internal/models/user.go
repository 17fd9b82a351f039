// Package models contains the domain models and the API response envelope.
package models

// User is a registered account. Users are created by sign-up and never
// updated or removed.
type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TableName pins the table name used by the schema.
func (User) TableName() string {
	return "users"
}
