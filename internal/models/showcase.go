package models

// ShowcaseMedia is a single portfolio item inside a showcase.
type ShowcaseMedia struct {
	Title     string `json:"title" validate:"required"`
	URL       string `json:"url" validate:"required,url"`
	MediaType string `json:"mediaType" validate:"required,oneof=image video"` // image or video
}

// Showcase is the portfolio section of a profile.
type Showcase struct {
	ShowcaseID  int             `json:"showcaseId,omitempty"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Media       []ShowcaseMedia `json:"media,omitempty" validate:"required,min=1,dive"`
}
