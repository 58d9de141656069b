package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultAvatarColor is used when a profile carries no color token.
const DefaultAvatarColor = "#0A4D4A"

// AvatarPalette holds the color tokens assigned to new accounts.
var AvatarPalette = []string{
	"#0F7268", // teal
	"#D9704C", // coral
	"#DDAA22", // gold
	"#3366CC", // blue
	"#9040BF", // purple
	"#CC3366", // pink
	"#339966", // green
}

type Profile struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	AvatarColor  string    `json:"avatar_color"`
	AvatarLetter string    `json:"avatar_letter"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName concatenates first and last name, falling back to "Unknown"
// when both are empty.
func (p *Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return "Unknown"
	}
	return name
}

// Color returns the avatar color token or the default fallback.
func (p *Profile) Color() string {
	if p.AvatarColor == "" {
		return DefaultAvatarColor
	}
	return p.AvatarColor
}

type TutorProfile struct {
	ID                     uuid.UUID `json:"id"`
	UserID                 uuid.UUID `json:"user_id"`
	Bio                    string    `json:"bio"`
	Subject                string    `json:"subject"`
	StandardQualifications []string  `json:"standard_qualifications"`
	CustomQualifications   []string  `json:"custom_qualifications"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}
