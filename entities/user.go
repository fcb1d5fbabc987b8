package entities

import "time"

type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Email             string    `gorm:"uniqueIndex;size:255;not null" json:"email"` // lowercase, trimmed
	Mobile            string    `json:"mobile"`
	Password          string    `gorm:"not null" json:"-"` // bcrypt hash
	PreferredLanguage string    `gorm:"default:en" json:"preferred_language"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

// PublicUser is what the profile endpoint returns.
type PublicUser struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Mobile            string `json:"mobile"`
	PreferredLanguage string `json:"preferred_language"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Mobile:            u.Mobile,
		PreferredLanguage: u.PreferredLanguage,
	}
}
