package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bookmystars_client/internal/api"
	"bookmystars_client/internal/models"
	"bookmystars_client/internal/validator"
	"bookmystars_client/pkg/apperrors"
)

// BasicInfoService handles the first profile section: format the flat form
// payload into the API's nested shape, validate it locally, then persist.
type BasicInfoService interface {
	Format(raw map[string]interface{}) *models.BasicInfo
	Validate(info *models.BasicInfo) *ValidationResult
	SaveOrUpdate(ctx context.Context, info *models.BasicInfo) (*models.BasicInfo, error)
	GetByID(ctx context.Context, id int) (*models.BasicInfo, error)
	GetByEmail(ctx context.Context, email string) (*models.BasicInfo, error)
	Delete(ctx context.Context, id int) error
	UploadProfileImage(ctx context.Context, basicInfoID int, filename string, file io.Reader) (string, error)
}

type BasicInfoServiceImpl struct {
	client   *api.Client
	validate *validator.Validator
}

func NewBasicInfoService(client *api.Client, validate *validator.Validator) BasicInfoService {
	return &BasicInfoServiceImpl{
		client:   client,
		validate: validate,
	}
}

// Format normalizes a flat form payload: strings trimmed, email lower-cased,
// lookup selections lifted into nested {xId: N} refs. Idempotent —
// formatting an already-formatted payload yields the same shape.
func (s *BasicInfoServiceImpl) Format(raw map[string]interface{}) *models.BasicInfo {
	info := &models.BasicInfo{
		BasicInfoID:     toID(raw["basicInfoId"]),
		FullName:        formString(raw, "fullName"),
		Email:           strings.ToLower(formString(raw, "email")),
		PhoneNo:         formString(raw, "phoneNo"),
		DateOfBirth:     formString(raw, "dateOfBirth"),
		ProfileHeadline: formString(raw, "profileHeadline"),
		About:           formString(raw, "about"),
		ProfileImageURL: formString(raw, "profileImageUrl"),
	}
	if id := formRef(raw, "gender", "genderId"); id > 0 {
		info.Gender = &models.GenderRef{GenderID: id}
	}
	if id := formRef(raw, "category", "categoryId"); id > 0 {
		info.Category = &models.CategoryRef{CategoryID: id}
	}
	if id := formRef(raw, "state", "stateId"); id > 0 {
		info.State = &models.StateRef{StateID: id}
	}
	if id := formRef(raw, "city", "cityId"); id > 0 {
		info.City = &models.CityRef{CityID: id}
	}
	if id := formRef(raw, "maritalStatus", "maritalStatusId"); id > 0 {
		info.MaritalStatus = &models.MaritalStatusRef{MaritalStatusID: id}
	}
	return info
}

func (s *BasicInfoServiceImpl) Validate(info *models.BasicInfo) *ValidationResult {
	err := s.validate.Validate(info)
	if err == nil {
		return validResult()
	}
	if verr, ok := err.(*validator.ValidationError); ok {
		return &ValidationResult{IsValid: false, Errors: verr.Messages()}
	}
	return &ValidationResult{IsValid: false, Errors: []string{err.Error()}}
}

func (s *BasicInfoServiceImpl) SaveOrUpdate(ctx context.Context, info *models.BasicInfo) (*models.BasicInfo, error) {
	data, err := callStandard(ctx, s.client, http.MethodPost, "/basic-info/v1/save-or-update", info, "basicInfo")
	if err != nil {
		return nil, err
	}

	saved := *info
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	if saved.BasicInfoID == 0 {
		saved.BasicInfoID = api.ExtractID(data, "basicInfoId", "id")
	}
	return &saved, nil
}

func (s *BasicInfoServiceImpl) GetByID(ctx context.Context, id int) (*models.BasicInfo, error) {
	data, err := callStandard(ctx, s.client, http.MethodGet, fmt.Sprintf("/basic-info/v1/%d", id), nil, "basicInfo")
	if err != nil {
		return nil, err
	}
	var info models.BasicInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &info, nil
}

func (s *BasicInfoServiceImpl) GetByEmail(ctx context.Context, email string) (*models.BasicInfo, error) {
	path := "/basic-info/v1/email/" + strings.ToLower(strings.TrimSpace(email))
	data, err := callStandard(ctx, s.client, http.MethodGet, path, nil, "basicInfo")
	if err != nil {
		return nil, err
	}
	var info models.BasicInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &info, nil
}

func (s *BasicInfoServiceImpl) Delete(ctx context.Context, id int) error {
	_, err := callStandard(ctx, s.client, http.MethodDelete, fmt.Sprintf("/basic-info/v1/%d", id), nil, "basicInfo")
	return err
}

// UploadProfileImage posts the image as multipart form data and returns the
// stored image URL.
func (s *BasicInfoServiceImpl) UploadProfileImage(ctx context.Context, basicInfoID int, filename string, file io.Reader) (string, error) {
	extra := map[string]string{"basicInfoId": fmt.Sprintf("%d", basicInfoID)}
	resp, err := s.client.Upload(ctx, "/basic-info/v1/upload-profile-image", "file", filename, file, extra)
	if err != nil {
		return "", err
	}
	env, err := api.DecodeEnvelope(resp)
	if err != nil {
		return "", err
	}
	if !env.OK() {
		return "", apperrors.ServerError("basicInfo", api.TruncateMessage(env.ErrorMessage(), 250), resp.StatusCode)
	}

	var payload struct {
		ProfileImageURL string `json:"profileImageUrl"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return "", apperrors.DecodeError(err)
	}
	return payload.ProfileImageURL, nil
}
