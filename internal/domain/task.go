package domain

import "time"

// Task Model
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`                       // Primary key
	Content     string     `gorm:"not null" json:"content"`                    // Task description
	UserID      uint       `gorm:"not null;index" json:"user_id"`              // Foreign key to the owning User, immutable after creation
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"` // Completion flag
	DateCreated time.Time  `gorm:"autoCreateTime" json:"date_created"`         // Set once at creation
	Priority    string     `gorm:"default:Medium" json:"priority"`             // Free text, defaults to Medium
	DueDate     *time.Time `json:"due_date"`                                   // Optional due date, nil when unset
}
