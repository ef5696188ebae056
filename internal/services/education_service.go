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

// EducationService handles the education-background section.
type EducationService interface {
	Format(raw map[string]interface{}) *models.EducationBackground
	Validate(edu *models.EducationBackground) *ValidationResult
	Create(ctx context.Context, edu *models.EducationBackground) (*models.EducationBackground, error)
	Update(ctx context.Context, edu *models.EducationBackground) (*models.EducationBackground, error)
	SaveOrUpdate(ctx context.Context, edu *models.EducationBackground) (*models.EducationBackground, error)
	GetByID(ctx context.Context, id int) (*models.EducationBackground, error)
	Delete(ctx context.Context, id int) error
}

type EducationServiceImpl struct {
	client   *api.Client
	validate *validator.Validator
}

func NewEducationService(client *api.Client, validate *validator.Validator) EducationService {
	return &EducationServiceImpl{
		client:   client,
		validate: validate,
	}
}

func (s *EducationServiceImpl) Format(raw map[string]interface{}) *models.EducationBackground {
	edu := &models.EducationBackground{
		EducationBackgroundID: toID(raw["educationBackgroundId"]),
		FieldOfStudy:          formString(raw, "fieldOfStudy"),
		Grade:                 formString(raw, "grade"),
	}
	if id := formRef(raw, "academyName", "academyNameId"); id > 0 {
		edu.AcademyName = &models.AcademyNameRef{AcademyNameID: id}
	}
	if id := formRef(raw, "highestQualification", "highestQualificationId"); id > 0 {
		edu.HighestQualification = &models.HighestQualificationRef{HighestQualificationID: id}
	}
	if id := formRef(raw, "passoutYear", "passoutYearId"); id > 0 {
		edu.PassoutYear = &models.PassoutYearRef{PassoutYearID: id}
	}
	return edu
}

func (s *EducationServiceImpl) Validate(edu *models.EducationBackground) *ValidationResult {
	err := s.validate.Validate(edu)
	if err == nil {
		return validResult()
	}
	if verr, ok := err.(*validator.ValidationError); ok {
		return &ValidationResult{IsValid: false, Errors: verr.Messages()}
	}
	return &ValidationResult{IsValid: false, Errors: []string{err.Error()}}
}

func (s *EducationServiceImpl) Create(ctx context.Context, edu *models.EducationBackground) (*models.EducationBackground, error) {
	return s.save(ctx, http.MethodPost, "/education-background/v1/create", edu)
}

func (s *EducationServiceImpl) Update(ctx context.Context, edu *models.EducationBackground) (*models.EducationBackground, error) {
	return s.save(ctx, http.MethodPut, "/education-background/v1/update", edu)
}

func (s *EducationServiceImpl) SaveOrUpdate(ctx context.Context, edu *models.EducationBackground) (*models.EducationBackground, error) {
	return s.save(ctx, http.MethodPost, "/education-background/v1/save-or-update", edu)
}

func (s *EducationServiceImpl) save(ctx context.Context, method, path string, edu *models.EducationBackground) (*models.EducationBackground, error) {
	data, err := callStandard(ctx, s.client, method, path, edu, "educationBackground")
	if err != nil {
		return nil, err
	}

	saved := *edu
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	if saved.EducationBackgroundID == 0 {
		saved.EducationBackgroundID = api.ExtractID(data, "educationBackgroundId", "id")
	}
	return &saved, nil
}

func (s *EducationServiceImpl) GetByID(ctx context.Context, id int) (*models.EducationBackground, error) {
	data, err := callStandard(ctx, s.client, http.MethodGet, fmt.Sprintf("/education-background/v1/%d", id), nil, "educationBackground")
	if err != nil {
		return nil, err
	}
	var edu models.EducationBackground
	if err := json.Unmarshal(data, &edu); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &edu, nil
}

func (s *EducationServiceImpl) Delete(ctx context.Context, id int) error {
	_, err := callStandard(ctx, s.client, http.MethodDelete, fmt.Sprintf("/education-background/v1/%d", id), nil, "educationBackground")
	return err
}
