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

// ShowcaseService handles the portfolio section.
type ShowcaseService interface {
	Format(raw map[string]interface{}) *models.Showcase
	Validate(showcase *models.Showcase) *ValidationResult
	SaveOrUpdate(ctx context.Context, showcase *models.Showcase) (*models.Showcase, error)
	GetByID(ctx context.Context, id int) (*models.Showcase, error)
	Delete(ctx context.Context, id int) error
}

type ShowcaseServiceImpl struct {
	client   *api.Client
	validate *validator.Validator
}

func NewShowcaseService(client *api.Client, validate *validator.Validator) ShowcaseService {
	return &ShowcaseServiceImpl{
		client:   client,
		validate: validate,
	}
}

func (s *ShowcaseServiceImpl) Format(raw map[string]interface{}) *models.Showcase {
	showcase := &models.Showcase{
		ShowcaseID:  toID(raw["showcaseId"]),
		Title:       formString(raw, "title"),
		Description: formString(raw, "description"),
	}
	list, ok := raw["media"].([]interface{})
	if !ok {
		return showcase
	}
	for _, item := range list {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		showcase.Media = append(showcase.Media, models.ShowcaseMedia{
			Title:     formString(entry, "title"),
			URL:       formString(entry, "url"),
			MediaType: formString(entry, "mediaType"),
		})
	}
	return showcase
}

func (s *ShowcaseServiceImpl) Validate(showcase *models.Showcase) *ValidationResult {
	err := s.validate.Validate(showcase)
	if err == nil {
		return validResult()
	}
	if verr, ok := err.(*validator.ValidationError); ok {
		return &ValidationResult{IsValid: false, Errors: verr.Messages()}
	}
	return &ValidationResult{IsValid: false, Errors: []string{err.Error()}}
}

func (s *ShowcaseServiceImpl) SaveOrUpdate(ctx context.Context, showcase *models.Showcase) (*models.Showcase, error) {
	data, err := callStandard(ctx, s.client, http.MethodPost, "/showcase/v1/save-or-update", showcase, "showcase")
	if err != nil {
		return nil, err
	}

	saved := *showcase
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	if saved.ShowcaseID == 0 {
		saved.ShowcaseID = api.ExtractID(data, "showcaseId", "id")
	}
	return &saved, nil
}

func (s *ShowcaseServiceImpl) GetByID(ctx context.Context, id int) (*models.Showcase, error) {
	data, err := callStandard(ctx, s.client, http.MethodGet, fmt.Sprintf("/showcase/v1/%d", id), nil, "showcase")
	if err != nil {
		return nil, err
	}
	var showcase models.Showcase
	if err := json.Unmarshal(data, &showcase); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &showcase, nil
}

func (s *ShowcaseServiceImpl) Delete(ctx context.Context, id int) error {
	_, err := callStandard(ctx, s.client, http.MethodDelete, fmt.Sprintf("/showcase/v1/%d", id), nil, "showcase")
	return err
}
