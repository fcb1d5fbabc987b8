package entities

import "time"

// PestDetection is an append-only log row, one per detect call.
type PestDetection struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	ImagePath       string    `json:"image_path"`
	PestName        string    `json:"pest_name"`
	ConfidenceScore float64   `json:"confidence_score"`
	Recommendations string    `json:"recommendations"` // newline-joined
	CreatedAt       time.Time `json:"created_at"`
}
