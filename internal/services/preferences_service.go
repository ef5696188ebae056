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

// PreferencesService handles the work-preferences section.
type PreferencesService interface {
	Format(raw map[string]interface{}) *models.Preferences
	Validate(prefs *models.Preferences) *ValidationResult
	SaveOrUpdate(ctx context.Context, prefs *models.Preferences) (*models.Preferences, error)
	GetByID(ctx context.Context, id int) (*models.Preferences, error)
	Delete(ctx context.Context, id int) error
}

type PreferencesServiceImpl struct {
	client   *api.Client
	validate *validator.Validator
}

func NewPreferencesService(client *api.Client, validate *validator.Validator) PreferencesService {
	return &PreferencesServiceImpl{
		client:   client,
		validate: validate,
	}
}

func (s *PreferencesServiceImpl) Format(raw map[string]interface{}) *models.Preferences {
	prefs := &models.Preferences{
		PreferencesID:     toID(raw["preferencesId"]),
		WillingToTravel:   formBool(raw, "willingToTravel"),
		WillingToRelocate: formBool(raw, "willingToRelocate"),
		ExpectedSalary:    formFloat(raw, "expectedSalary"),
		AvailableFrom:     formString(raw, "availableFrom"),
	}
	for _, id := range formRefList(raw, "jobRoles", "jobRoleId") {
		prefs.JobRoles = append(prefs.JobRoles, models.JobRoleRef{JobRoleID: id})
	}
	for _, id := range formRefList(raw, "communicationLanguages", "communicationLanguageId") {
		prefs.CommunicationLanguages = append(prefs.CommunicationLanguages, models.CommunicationLanguageRef{CommunicationLanguageID: id})
	}
	return prefs
}

func (s *PreferencesServiceImpl) Validate(prefs *models.Preferences) *ValidationResult {
	err := s.validate.Validate(prefs)
	if err == nil {
		return validResult()
	}
	if verr, ok := err.(*validator.ValidationError); ok {
		return &ValidationResult{IsValid: false, Errors: verr.Messages()}
	}
	return &ValidationResult{IsValid: false, Errors: []string{err.Error()}}
}

func (s *PreferencesServiceImpl) SaveOrUpdate(ctx context.Context, prefs *models.Preferences) (*models.Preferences, error) {
	data, err := callStandard(ctx, s.client, http.MethodPost, "/preferences/v1/save-or-update", prefs, "preferences")
	if err != nil {
		return nil, err
	}

	saved := *prefs
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	if saved.PreferencesID == 0 {
		saved.PreferencesID = api.ExtractID(data, "preferencesId", "id")
	}
	return &saved, nil
}

func (s *PreferencesServiceImpl) GetByID(ctx context.Context, id int) (*models.Preferences, error) {
	data, err := callStandard(ctx, s.client, http.MethodGet, fmt.Sprintf("/preferences/v1/%d", id), nil, "preferences")
	if err != nil {
		return nil, err
	}
	var prefs models.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &prefs, nil
}

func (s *PreferencesServiceImpl) Delete(ctx context.Context, id int) error {
	_, err := callStandard(ctx, s.client, http.MethodDelete, fmt.Sprintf("/preferences/v1/%d", id), nil, "preferences")
	return err
}
