package models

// BasicInfo is the first profile section: identity, contact and location.
type BasicInfo struct {
	BasicInfoID     int               `json:"basicInfoId,omitempty"`
	FullName        string            `json:"fullName" validate:"required"`
	Email           string            `json:"email" validate:"required,email"`
	PhoneNo         string            `json:"phoneNo" validate:"required,phone10"`
	DateOfBirth     string            `json:"dateOfBirth" validate:"required,dateymd"` // YYYY-MM-DD
	ProfileHeadline string            `json:"profileHeadline" validate:"required"`
	About           string            `json:"about,omitempty"`
	Gender          *GenderRef        `json:"gender,omitempty" validate:"omitempty,idref"`
	Category        *CategoryRef      `json:"category" validate:"required,idref"`
	State           *StateRef         `json:"state" validate:"required,idref"`
	City            *CityRef          `json:"city" validate:"required,idref"`
	MaritalStatus   *MaritalStatusRef `json:"maritalStatus" validate:"required,idref"`
	ProfileImageURL string            `json:"profileImageUrl,omitempty"`
}
