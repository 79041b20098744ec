package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                                   // Primary key
	Username string `gorm:"unique;not null" json:"username"`                        // Unique username, matched case-sensitively
	Password string `gorm:"not null" json:"-"`                                      // Bcrypt hash, never serialized
	Tasks    []Task `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-many relationship with Task
}
