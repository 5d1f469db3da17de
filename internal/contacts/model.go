package contacts

import (
	"regexp"
	"time"
)

const dobLayout = "2006-01-02"

// Karyakarta is a party worker on the representative's contact list.
type Karyakarta struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	WhatsApp  string `json:"whatsapp"`
	DOB       string `json:"dob"` // YYYY-MM-DD
	Photo     string `json:"photo"`
	CreatedAt string `json:"created_at"`
}

// Politician is the account holder who sends the greetings.
type Politician struct {
	Name            string `json:"name" yaml:"name"`
	Email           string `json:"email" yaml:"email"`
	Position        string `json:"position" yaml:"position"`
	Photo           string `json:"photo" yaml:"photo"`
	DefaultLanguage string `json:"default_language" yaml:"default_language"`
}

// Birthday parses DOB.
func (k Karyakarta) Birthday() (time.Time, error) {
	return time.Parse(dobLayout, k.DOB)
}

var whitespace = regexp.MustCompile(`\s+`)

// BannerFilename is the suggested download name for k's banner.
func (k Karyakarta) BannerFilename() string {
	return "birthday-" + whitespace.ReplaceAllString(k.Name, "-") + ".png"
}
