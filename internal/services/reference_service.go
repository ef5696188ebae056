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

// ReferenceResource names one lookup table on the backend. Every lookup
// type exposes the same CRUD surface, so one client serves them all.
type ReferenceResource struct {
	Path string // URL segment, e.g. "body-type"
	Name string // display name, e.g. "Body Type"
}

var (
	Genders                = ReferenceResource{Path: "gender", Name: "Gender"}
	BodyTypes              = ReferenceResource{Path: "body-type", Name: "Body Type"}
	EyeColors              = ReferenceResource{Path: "eye-color", Name: "Eye Color"}
	HairColors             = ReferenceResource{Path: "hair-color", Name: "Hair Color"}
	SkinTones              = ReferenceResource{Path: "skin-tone", Name: "Skin Tone"}
	ShoeSizes              = ReferenceResource{Path: "shoe-size", Name: "Shoe Size"}
	Categories             = ReferenceResource{Path: "category", Name: "Category"}
	Cities                 = ReferenceResource{Path: "city", Name: "City"}
	States                 = ReferenceResource{Path: "state", Name: "State"}
	MaritalStatuses        = ReferenceResource{Path: "marital-status", Name: "Marital Status"}
	Roles                  = ReferenceResource{Path: "role", Name: "Role"}
	JobRoles               = ReferenceResource{Path: "job-role", Name: "Job Role"}
	AcademyNames           = ReferenceResource{Path: "academy-name", Name: "Academy Name"}
	HighestQualifications  = ReferenceResource{Path: "highest-qualification", Name: "Highest Qualification"}
	PassoutYears           = ReferenceResource{Path: "passout-year", Name: "Passout Year"}
	CommunicationLanguages = ReferenceResource{Path: "communication-language", Name: "Communication Language"}
)

// AllReferenceResources lists every lookup table, in select-input order.
var AllReferenceResources = []ReferenceResource{
	Genders, BodyTypes, EyeColors, HairColors, SkinTones, ShoeSizes,
	Categories, Cities, States, MaritalStatuses, Roles, JobRoles,
	AcademyNames, HighestQualifications, PassoutYears, CommunicationLanguages,
}

// ResourceByPath resolves a lookup table by its URL segment.
func ResourceByPath(path string) (ReferenceResource, bool) {
	for _, res := range AllReferenceResources {
		if res.Path == path {
			return res, true
		}
	}
	return ReferenceResource{}, false
}

// ReferenceService is the uniform CRUD client for lookup tables. Pure data
// access: callers own all presentation of results and failures.
type ReferenceService interface {
	Create(ctx context.Context, res ReferenceResource, item *models.ReferenceItem) (*models.ReferenceItem, error)
	Update(ctx context.Context, res ReferenceResource, item *models.ReferenceItem) (*models.ReferenceItem, error)
	Delete(ctx context.Context, res ReferenceResource, id int) error
	GetByID(ctx context.Context, res ReferenceResource, id int) (*models.ReferenceItem, error)
	GetAll(ctx context.Context, res ReferenceResource) ([]models.ReferenceItem, error)
	GetActive(ctx context.Context, res ReferenceResource) ([]models.ReferenceItem, error)
	Search(ctx context.Context, res ReferenceResource, name string) ([]models.ReferenceItem, error)
	List(ctx context.Context, res ReferenceResource, pageNumber, pageSize int) (*models.ReferencePage, error)
}

type ReferenceServiceImpl struct {
	client *api.Client
}

func NewReferenceService(client *api.Client) ReferenceService {
	return &ReferenceServiceImpl{client: client}
}

func (s *ReferenceServiceImpl) Create(ctx context.Context, res ReferenceResource, item *models.ReferenceItem) (*models.ReferenceItem, error) {
	return s.save(ctx, http.MethodPost, "/"+res.Path+"/v1/create", res, item)
}

func (s *ReferenceServiceImpl) Update(ctx context.Context, res ReferenceResource, item *models.ReferenceItem) (*models.ReferenceItem, error) {
	return s.save(ctx, http.MethodPut, "/"+res.Path+"/v1/update", res, item)
}

func (s *ReferenceServiceImpl) save(ctx context.Context, method, path string, res ReferenceResource, item *models.ReferenceItem) (*models.ReferenceItem, error) {
	data, err := callStandard(ctx, s.client, method, path, item, res.Path)
	if err != nil {
		return nil, err
	}
	var saved models.ReferenceItem
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &saved, nil
}

func (s *ReferenceServiceImpl) Delete(ctx context.Context, res ReferenceResource, id int) error {
	_, err := callStandard(ctx, s.client, http.MethodDelete, fmt.Sprintf("/%s/v1/%d", res.Path, id), nil, res.Path)
	return err
}

func (s *ReferenceServiceImpl) GetByID(ctx context.Context, res ReferenceResource, id int) (*models.ReferenceItem, error) {
	data, err := callStandard(ctx, s.client, http.MethodGet, fmt.Sprintf("/%s/v1/%d", res.Path, id), nil, res.Path)
	if err != nil {
		return nil, err
	}
	var item models.ReferenceItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &item, nil
}

func (s *ReferenceServiceImpl) GetAll(ctx context.Context, res ReferenceResource) ([]models.ReferenceItem, error) {
	return s.fetchList(ctx, "/"+res.Path+"/v1/all", res)
}

func (s *ReferenceServiceImpl) GetActive(ctx context.Context, res ReferenceResource) ([]models.ReferenceItem, error) {
	return s.fetchList(ctx, "/"+res.Path+"/v1/active", res)
}

func (s *ReferenceServiceImpl) Search(ctx context.Context, res ReferenceResource, name string) ([]models.ReferenceItem, error) {
	return s.fetchList(ctx, "/"+res.Path+"/v1/search"+api.Query("name", name), res)
}

func (s *ReferenceServiceImpl) fetchList(ctx context.Context, path string, res ReferenceResource) ([]models.ReferenceItem, error) {
	data, err := callStandard(ctx, s.client, http.MethodGet, path, nil, res.Path)
	if err != nil {
		return nil, err
	}
	var items []models.ReferenceItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return items, nil
}

func (s *ReferenceServiceImpl) List(ctx context.Context, res ReferenceResource, pageNumber, pageSize int) (*models.ReferencePage, error) {
	path := "/" + res.Path + "/v1/list" + api.Query(
		"pageNumber", strconv.Itoa(pageNumber),
		"pageSize", strconv.Itoa(pageSize),
	)
	data, err := callStandard(ctx, s.client, http.MethodGet, path, nil, res.Path)
	if err != nil {
		return nil, err
	}
	var page models.ReferencePage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &page, nil
}
