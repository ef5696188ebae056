package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bookmystars_client/internal/api"
	"bookmystars_client/internal/models"
	"bookmystars_client/internal/validator"
	"bookmystars_client/pkg/apperrors"
)

// StyleProfileService handles the physical/style section. This endpoint
// family speaks the profile envelope (1000 on success).
type StyleProfileService interface {
	Format(raw map[string]interface{}) *models.StyleProfile
	Validate(profile *models.StyleProfile) *ValidationResult
	SaveOrUpdate(ctx context.Context, profile *models.StyleProfile) (*models.StyleProfile, error)
	GetByProfessionalsID(ctx context.Context, professionalsID int) (*models.StyleProfile, error)
	Delete(ctx context.Context, id int) error
}

type StyleProfileServiceImpl struct {
	client   *api.Client
	validate *validator.Validator
}

func NewStyleProfileService(client *api.Client, validate *validator.Validator) StyleProfileService {
	return &StyleProfileServiceImpl{
		client:   client,
		validate: validate,
	}
}

func (s *StyleProfileServiceImpl) Format(raw map[string]interface{}) *models.StyleProfile {
	profile := &models.StyleProfile{
		StyleProfileID:  toID(raw["styleProfileId"]),
		ProfessionalsID: toID(raw["professionalsId"]),
		Height:          formFloat(raw, "height"),
		Weight:          formFloat(raw, "weight"),
		Chest:           formFloat(raw, "chest"),
		Waist:           formFloat(raw, "waist"),
		Hips:            formFloat(raw, "hips"),
		TattooVisible:   formBool(raw, "tattooVisible"),
		PiercingVisible: formBool(raw, "piercingVisible"),
	}
	if id := formRef(raw, "bodyType", "bodyTypeId"); id > 0 {
		profile.BodyType = &models.BodyTypeRef{BodyTypeID: id}
	}
	if id := formRef(raw, "eyeColor", "eyeColorId"); id > 0 {
		profile.EyeColor = &models.EyeColorRef{EyeColorID: id}
	}
	if id := formRef(raw, "hairColor", "hairColorId"); id > 0 {
		profile.HairColor = &models.HairColorRef{HairColorID: id}
	}
	if id := formRef(raw, "skinTone", "skinToneId"); id > 0 {
		profile.SkinTone = &models.SkinToneRef{SkinToneID: id}
	}
	if id := formRef(raw, "shoeSize", "shoeSizeId"); id > 0 {
		profile.ShoeSize = &models.ShoeSizeRef{ShoeSizeID: id}
	}
	return profile
}

func (s *StyleProfileServiceImpl) Validate(profile *models.StyleProfile) *ValidationResult {
	err := s.validate.Validate(profile)
	if err == nil {
		return validResult()
	}
	if verr, ok := err.(*validator.ValidationError); ok {
		return &ValidationResult{IsValid: false, Errors: verr.Messages()}
	}
	return &ValidationResult{IsValid: false, Errors: []string{err.Error()}}
}

func (s *StyleProfileServiceImpl) SaveOrUpdate(ctx context.Context, profile *models.StyleProfile) (*models.StyleProfile, error) {
	data, err := callProfile(ctx, s.client, http.MethodPost, "/style-profile/v1/save-or-update", profile, "styleProfile")
	if err != nil {
		return nil, err
	}

	saved := *profile
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	if saved.StyleProfileID == 0 {
		saved.StyleProfileID = api.ExtractID(data, "styleProfileId", "id")
	}
	return &saved, nil
}

func (s *StyleProfileServiceImpl) GetByProfessionalsID(ctx context.Context, professionalsID int) (*models.StyleProfile, error) {
	path := fmt.Sprintf("/style-profile/v1/get-by-professionals-id/%d", professionalsID)
	data, err := callProfile(ctx, s.client, http.MethodGet, path, nil, "styleProfile")
	if err != nil {
		return nil, err
	}
	var profile models.StyleProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &profile, nil
}

func (s *StyleProfileServiceImpl) Delete(ctx context.Context, id int) error {
	_, err := callProfile(ctx, s.client, http.MethodDelete, fmt.Sprintf("/style-profile/v1/%d", id), nil, "styleProfile")
	return err
}
