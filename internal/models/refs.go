package models

// Nested id-reference payload shapes. The backend expects every lookup
// selection as a one-field object, e.g. {"category": {"categoryId": 3}}.

type GenderRef struct {
	GenderID int `json:"genderId"`
}

type CategoryRef struct {
	CategoryID int `json:"categoryId"`
}

type StateRef struct {
	StateID int `json:"stateId"`
}

type CityRef struct {
	CityID int `json:"cityId"`
}

type MaritalStatusRef struct {
	MaritalStatusID int `json:"maritalStatusId"`
}

type BodyTypeRef struct {
	BodyTypeID int `json:"bodyTypeId"`
}

type EyeColorRef struct {
	EyeColorID int `json:"eyeColorId"`
}

type HairColorRef struct {
	HairColorID int `json:"hairColorId"`
}

type SkinToneRef struct {
	SkinToneID int `json:"skinToneId"`
}

type ShoeSizeRef struct {
	ShoeSizeID int `json:"shoeSizeId"`
}

type JobRoleRef struct {
	JobRoleID int `json:"jobRoleId"`
}

type AcademyNameRef struct {
	AcademyNameID int `json:"academyNameId"`
}

type HighestQualificationRef struct {
	HighestQualificationID int `json:"highestQualificationId"`
}

type PassoutYearRef struct {
	PassoutYearID int `json:"passoutYearId"`
}

type CommunicationLanguageRef struct {
	CommunicationLanguageID int `json:"communicationLanguageId"`
}
