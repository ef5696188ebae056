package models

// StyleProfile holds the physical and style attributes of a professional.
// Height is centimeters, weight kilograms, measurements inches.
type StyleProfile struct {
	StyleProfileID  int          `json:"styleProfileId,omitempty"`
	ProfessionalsID int          `json:"professionalsId,omitempty"`
	Height          float64      `json:"height,omitempty" validate:"omitempty,gte=50,lte=250"`
	Weight          float64      `json:"weight,omitempty" validate:"omitempty,gte=20,lte=300"`
	Chest           float64      `json:"chest,omitempty" validate:"omitempty,gte=10,lte=100"`
	Waist           float64      `json:"waist,omitempty" validate:"omitempty,gte=10,lte=100"`
	Hips            float64      `json:"hips,omitempty" validate:"omitempty,gte=10,lte=100"`
	BodyType        *BodyTypeRef `json:"bodyType,omitempty" validate:"omitempty,idref"`
	EyeColor        *EyeColorRef `json:"eyeColor,omitempty" validate:"omitempty,idref"`
	HairColor       *HairColorRef `json:"hairColor,omitempty" validate:"omitempty,idref"`
	SkinTone        *SkinToneRef `json:"skinTone,omitempty" validate:"omitempty,idref"`
	ShoeSize        *ShoeSizeRef `json:"shoeSize,omitempty" validate:"omitempty,idref"`
	TattooVisible   bool         `json:"tattooVisible,omitempty"`
	PiercingVisible bool         `json:"piercingVisible,omitempty"`
}
