package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"bookmystars_client/internal/api"
	"bookmystars_client/internal/models"
	"bookmystars_client/pkg/apperrors"
)

// ProfileService manages the umbrella professionals-profile record and the
// link calls that attach section records to it. This endpoint family speaks
// the profile envelope (1000 on success).
type ProfileService interface {
	Create(ctx context.Context, professionalsID int) (int, error)
	SaveOrUpdate(ctx context.Context, professionalsID int) (int, error)
	GetByProfessionalsID(ctx context.Context, professionalsID int) (*models.ProfessionalsProfile, error)
	LinkBasicInfo(ctx context.Context, profileID, basicInfoID int) error
	LinkStyleProfile(ctx context.Context, profileID, styleProfileID int) error
	LinkEducationBackground(ctx context.Context, profileID, educationBackgroundID int) error
	LinkPreferences(ctx context.Context, profileID, preferencesID int) error
	LinkShowcase(ctx context.Context, profileID, showcaseID int) error
}

type ProfileServiceImpl struct {
	client *api.Client
}

func NewProfileService(client *api.Client) ProfileService {
	return &ProfileServiceImpl{client: client}
}

func (s *ProfileServiceImpl) Create(ctx context.Context, professionalsID int) (int, error) {
	return s.createOrUpdate(ctx, "/professionals-profile/v1/create", professionalsID)
}

func (s *ProfileServiceImpl) SaveOrUpdate(ctx context.Context, professionalsID int) (int, error) {
	return s.createOrUpdate(ctx, "/professionals-profile/v1/save-or-update", professionalsID)
}

func (s *ProfileServiceImpl) createOrUpdate(ctx context.Context, path string, professionalsID int) (int, error) {
	body := map[string]int{"professionalsId": professionalsID}
	data, err := callProfile(ctx, s.client, http.MethodPost, path, body, "professionalsProfile")
	if err != nil {
		return 0, err
	}
	id := api.ExtractID(data, "professionalsProfileId", "id")
	if id <= 0 {
		return 0, apperrors.ErrNoProfileID
	}
	return id, nil
}

func (s *ProfileServiceImpl) GetByProfessionalsID(ctx context.Context, professionalsID int) (*models.ProfessionalsProfile, error) {
	path := fmt.Sprintf("/professionals-profile/v1/get-by-professionals-id/%d", professionalsID)
	data, err := callProfile(ctx, s.client, http.MethodGet, path, nil, "professionalsProfile")
	if err != nil {
		return nil, err
	}
	var profile models.ProfessionalsProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &profile, nil
}

func (s *ProfileServiceImpl) LinkBasicInfo(ctx context.Context, profileID, basicInfoID int) error {
	return s.link(ctx, "link-basic-info", "basicInfoId", profileID, basicInfoID)
}

func (s *ProfileServiceImpl) LinkStyleProfile(ctx context.Context, profileID, styleProfileID int) error {
	return s.link(ctx, "link-style-profile", "styleProfileId", profileID, styleProfileID)
}

func (s *ProfileServiceImpl) LinkEducationBackground(ctx context.Context, profileID, educationBackgroundID int) error {
	return s.link(ctx, "link-education-background", "educationBackgroundId", profileID, educationBackgroundID)
}

func (s *ProfileServiceImpl) LinkPreferences(ctx context.Context, profileID, preferencesID int) error {
	return s.link(ctx, "link-preferences", "preferencesId", profileID, preferencesID)
}

func (s *ProfileServiceImpl) LinkShowcase(ctx context.Context, profileID, showcaseID int) error {
	return s.link(ctx, "link-showcase", "showcaseId", profileID, showcaseID)
}

// link sets the section foreign key on the umbrella record. Ids travel as
// query parameters, matching the backend contract.
func (s *ProfileServiceImpl) link(ctx context.Context, endpoint, idParam string, profileID, sectionID int) error {
	path := "/professionals-profile/v1/" + endpoint + api.Query(
		"professionalsProfileId", strconv.Itoa(profileID),
		idParam, strconv.Itoa(sectionID),
	)
	_, err := callProfile(ctx, s.client, http.MethodPost, path, nil, "professionalsProfile")
	return err
}
