package services

import (
	"bookmystars_client/internal/api"
	"bookmystars_client/internal/session"
	"bookmystars_client/internal/validator"
)

// ServiceContainer holds every API service wired to one shared HTTP client.
type ServiceContainer struct {
	Auth         AuthService
	BasicInfo    BasicInfoService
	StyleProfile StyleProfileService
	Education    EducationService
	Preferences  PreferencesService
	Showcase     ShowcaseService
	Profile      ProfileService
	Reference    ReferenceService
}

// NewServiceContainer builds all services over the given client and
// session store.
func NewServiceContainer(client *api.Client, store *session.Store) *ServiceContainer {
	v := validator.New()

	return &ServiceContainer{
		Auth:         NewAuthService(client, store, v),
		BasicInfo:    NewBasicInfoService(client, v),
		StyleProfile: NewStyleProfileService(client, v),
		Education:    NewEducationService(client, v),
		Preferences:  NewPreferencesService(client, v),
		Showcase:     NewShowcaseService(client, v),
		Profile:      NewProfileService(client),
		Reference:    NewReferenceService(client),
	}
}
