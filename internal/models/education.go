package models

// EducationBackground is one education entry attached to a profile.
type EducationBackground struct {
	EducationBackgroundID int                      `json:"educationBackgroundId,omitempty"`
	AcademyName           *AcademyNameRef          `json:"academyName,omitempty" validate:"required,idref"`
	HighestQualification  *HighestQualificationRef `json:"highestQualification,omitempty" validate:"required,idref"`
	PassoutYear           *PassoutYearRef          `json:"passoutYear,omitempty" validate:"required,idref"`
	FieldOfStudy          string                   `json:"fieldOfStudy,omitempty"`
	Grade                 string                   `json:"grade,omitempty"`
}
