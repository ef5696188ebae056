package models

// ProfessionalsProfile is the umbrella record tying the five sections
// together. Sections are saved through their own endpoints and attached
// here by link calls; a nil slot means "not linked yet".
type ProfessionalsProfile struct {
	ProfessionalsProfileID int                  `json:"professionalsProfileId"`
	ProfessionalsID        int                  `json:"professionalsId"`
	BasicInfo              *BasicInfo           `json:"basicInfo,omitempty"`
	StyleProfile           *StyleProfile        `json:"styleProfile,omitempty"`
	EducationBackground    *EducationBackground `json:"educationBackground,omitempty"`
	Preferences            *Preferences         `json:"preferences,omitempty"`
	Showcase               *Showcase            `json:"showcase,omitempty"`
}
