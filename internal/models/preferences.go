package models

// Preferences captures work preferences: desired roles, languages and
// willingness flags used by agency search.
type Preferences struct {
	PreferencesID          int                        `json:"preferencesId,omitempty"`
	JobRoles               []JobRoleRef               `json:"jobRoles,omitempty" validate:"required,min=1,dive,idref"`
	CommunicationLanguages []CommunicationLanguageRef `json:"communicationLanguages,omitempty" validate:"omitempty,dive,idref"`
	WillingToTravel        bool                       `json:"willingToTravel,omitempty"`
	WillingToRelocate      bool                       `json:"willingToRelocate,omitempty"`
	ExpectedSalary         float64                    `json:"expectedSalary,omitempty" validate:"omitempty,gte=0"`
	AvailableFrom          string                     `json:"availableFrom,omitempty" validate:"omitempty,dateymd"` // YYYY-MM-DD
}
