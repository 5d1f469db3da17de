package banner

import (
	"errors"
	"fmt"
)

type TemplateID string

const (
	ModernGradient    TemplateID = "modern-gradient"
	PoliticalBranding TemplateID = "political-branding"
	MinimalPremium    TemplateID = "minimal-premium"
	Festive           TemplateID = "festive"
)

// TemplateIDs lists every template in display order.
var TemplateIDs = []TemplateID{ModernGradient, PoliticalBranding, MinimalPremium, Festive}

type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Marathi Language = "mr"
)

var Languages = []Language{English, Hindi, Marathi}

var (
	ErrUnknownTemplate     = errors.New("unknown banner template")
	ErrUnsupportedLanguage = errors.New("unsupported banner language")
	ErrRender              = errors.New("banner render failed")
)

// Request is everything a template needs to draw one banner. The subject is
// the person having the birthday; the presenter is the sender.
type Request struct {
	Template TemplateID `json:"template"`
	Language Language   `json:"language"`

	SubjectName  string `json:"subject_name"`
	SubjectPhoto string `json:"subject_photo"`

	PresenterName  string `json:"presenter_name"`
	PresenterTitle string `json:"presenter_title"`
	PresenterPhoto string `json:"presenter_photo"`

	// Optional locale-specific forms of the names. When set they are drawn
	// instead of SubjectName/PresenterName.
	TranslatedSubjectName   string `json:"translated_subject_name,omitempty"`
	TranslatedPresenterName string `json:"translated_presenter_name,omitempty"`
}

// Validate reports a request whose template or language is outside the
// supported sets.
func (r Request) Validate() error {
	if !r.Template.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, r.Template)
	}
	if !r.Language.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, r.Language)
	}
	return nil
}

func (r Request) SubjectDisplayName() string {
	if r.TranslatedSubjectName != "" {
		return r.TranslatedSubjectName
	}
	return r.SubjectName
}

func (r Request) PresenterDisplayName() string {
	if r.TranslatedPresenterName != "" {
		return r.TranslatedPresenterName
	}
	return r.PresenterName
}

func (t TemplateID) Valid() bool {
	for _, id := range TemplateIDs {
		if t == id {
			return true
		}
	}
	return false
}

func (l Language) Valid() bool {
	_, ok := birthdayMessages[l]
	return ok
}
