// Package profileflow sequences the multi-step profile assembly: resolve or
// create the umbrella professionals profile, then save each section and link
// it to the profile. One Flow instance serves one logged-in session.
package profileflow

import (
	"context"
	"sync"

	"bookmystars_client/internal/logger"
	"bookmystars_client/internal/models"
	"bookmystars_client/internal/services"
	"bookmystars_client/internal/session"
	"bookmystars_client/pkg/apperrors"
)

// ProfileData caches the last saved copy of each section. A nil slot means
// the section has not been saved in this session and was not present on the
// fetched profile.
type ProfileData struct {
	BasicInfo           *models.BasicInfo
	PhysicalDetails     *models.StyleProfile
	EducationBackground *models.EducationBackground
	Preferences         *models.Preferences
	Showcase            *models.Showcase
}

// InitResult is the outcome of Initialize.
type InitResult struct {
	Success   bool
	Deferred  bool // no professionals id yet; profile creation happens lazily on first save
	ProfileID int
	Message   string
}

// SectionResult is the outcome of one section save. Errors carries local
// validation messages (the request never left the client); Error carries a
// terminal failure; Warning reports a failed link call after a successful
// save — the section record exists, only the profile reference is missing.
type SectionResult struct {
	Success bool
	ID      int
	Errors  []string
	Error   string
	Warning string
	Message string
}

// Flow drives the profile assembly sequence. Construct one per session via
// New; the profile-resolution critical section is mutex-guarded so
// concurrent savers agree on a single umbrella profile id.
type Flow struct {
	store    *session.Store
	services *services.ServiceContainer

	mu                    sync.Mutex // guards profile id resolution
	currentProfileID      int
	currentProfessionalID int

	dataMu sync.RWMutex
	data   ProfileData
}

func New(store *session.Store, container *services.ServiceContainer) *Flow {
	return &Flow{
		store:    store,
		services: container,
	}
}

// Initialize reads the session and, when a professionals id is known, tries
// to fetch the existing umbrella profile and prime the section cache. A
// missing professionals id is not an error: profile creation is deferred to
// the first section save so the user can keep moving.
func (f *Flow) Initialize(ctx context.Context) *InitResult {
	professionalsID := f.store.GetProfessionalsID()
	if professionalsID == 0 {
		return &InitResult{
			Success:  true,
			Deferred: true,
			Message:  "No professionals id in session; profile creation deferred to first save",
		}
	}

	f.mu.Lock()
	f.currentProfessionalID = professionalsID
	f.mu.Unlock()

	profile, err := f.services.Profile.GetByProfessionalsID(ctx, professionalsID)
	if err != nil {
		// No existing profile is a normal first-visit state.
		logger.With("professionalsId", professionalsID).Debug("no existing profile fetched", "reason", err.Error())
		return &InitResult{Success: true, Message: "No existing profile; it will be created on first save"}
	}

	f.mu.Lock()
	f.currentProfileID = profile.ProfessionalsProfileID
	f.mu.Unlock()
	f.store.SetProfessionalsProfileID(profile.ProfessionalsProfileID)

	f.dataMu.Lock()
	f.data = ProfileData{
		BasicInfo:           profile.BasicInfo,
		PhysicalDetails:     profile.StyleProfile,
		EducationBackground: profile.EducationBackground,
		Preferences:         profile.Preferences,
		Showcase:            profile.Showcase,
	}
	f.dataMu.Unlock()

	return &InitResult{Success: true, ProfileID: profile.ProfessionalsProfileID}
}

// CreateOrGetProfile returns the umbrella profile id, creating the record on
// first use. The whole check-then-create sequence runs under the mutex, so
// concurrent callers resolve to one id and the backend sees one create.
func (f *Flow) CreateOrGetProfile(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.currentProfileID > 0 {
		return f.currentProfileID, nil
	}
	if id := f.store.GetProfessionalsProfileID(); id > 0 {
		f.currentProfileID = id
		return id, nil
	}

	professionalsID := f.currentProfessionalID
	if professionalsID == 0 {
		professionalsID = f.store.GetProfessionalsID()
	}
	if professionalsID == 0 {
		return 0, apperrors.ErrNoProfessionalsID
	}

	id, err := f.services.Profile.Create(ctx, professionalsID)
	if err != nil || id <= 0 {
		// Some deployments reject create for an existing record; the
		// save-or-update endpoint resolves to the same profile.
		id, err = f.services.Profile.SaveOrUpdate(ctx, professionalsID)
	}
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, apperrors.ErrNoProfileID
	}

	f.currentProfileID = id
	f.currentProfessionalID = professionalsID
	f.store.SetProfessionalsProfileID(id)
	return id, nil
}

// SaveBasicInfo formats, validates, persists and links the basic-info
// section. Validation failure returns without any network call.
func (f *Flow) SaveBasicInfo(ctx context.Context, raw map[string]interface{}) *SectionResult {
	profileID, err := f.CreateOrGetProfile(ctx)
	if err != nil {
		return failResult("basicInfo", err)
	}

	info := f.services.BasicInfo.Format(raw)
	if vr := f.services.BasicInfo.Validate(info); !vr.IsValid {
		return &SectionResult{Success: false, Errors: vr.Errors}
	}

	saved, err := f.services.BasicInfo.SaveOrUpdate(ctx, info)
	if err != nil {
		return failResult("basicInfo", err)
	}
	if saved.BasicInfoID <= 0 {
		return failResult("basicInfo", apperrors.ErrNoProfileID)
	}

	result := &SectionResult{Success: true, ID: saved.BasicInfoID, Message: "Basic info saved"}
	if err := f.services.Profile.LinkBasicInfo(ctx, profileID, saved.BasicInfoID); err != nil {
		result.Warning = linkWarning("basicInfo", err)
	}

	f.dataMu.Lock()
	f.data.BasicInfo = saved
	f.dataMu.Unlock()
	return result
}

// SaveStyleProfile persists and links the physical-details section.
func (f *Flow) SaveStyleProfile(ctx context.Context, raw map[string]interface{}) *SectionResult {
	profileID, err := f.CreateOrGetProfile(ctx)
	if err != nil {
		return failResult("physicalDetails", err)
	}

	profile := f.services.StyleProfile.Format(raw)
	if profile.ProfessionalsID == 0 {
		profile.ProfessionalsID = f.store.GetProfessionalsID()
	}
	if vr := f.services.StyleProfile.Validate(profile); !vr.IsValid {
		return &SectionResult{Success: false, Errors: vr.Errors}
	}

	saved, err := f.services.StyleProfile.SaveOrUpdate(ctx, profile)
	if err != nil {
		return failResult("physicalDetails", err)
	}
	if saved.StyleProfileID <= 0 {
		return failResult("physicalDetails", apperrors.ErrNoProfileID)
	}

	result := &SectionResult{Success: true, ID: saved.StyleProfileID, Message: "Style profile saved"}
	if err := f.services.Profile.LinkStyleProfile(ctx, profileID, saved.StyleProfileID); err != nil {
		result.Warning = linkWarning("physicalDetails", err)
	}

	f.dataMu.Lock()
	f.data.PhysicalDetails = saved
	f.dataMu.Unlock()
	return result
}

// SaveEducation persists and links the education-background section.
func (f *Flow) SaveEducation(ctx context.Context, raw map[string]interface{}) *SectionResult {
	profileID, err := f.CreateOrGetProfile(ctx)
	if err != nil {
		return failResult("educationBackground", err)
	}

	edu := f.services.Education.Format(raw)
	if vr := f.services.Education.Validate(edu); !vr.IsValid {
		return &SectionResult{Success: false, Errors: vr.Errors}
	}

	saved, err := f.services.Education.SaveOrUpdate(ctx, edu)
	if err != nil {
		return failResult("educationBackground", err)
	}
	if saved.EducationBackgroundID <= 0 {
		return failResult("educationBackground", apperrors.ErrNoProfileID)
	}

	result := &SectionResult{Success: true, ID: saved.EducationBackgroundID, Message: "Education background saved"}
	if err := f.services.Profile.LinkEducationBackground(ctx, profileID, saved.EducationBackgroundID); err != nil {
		result.Warning = linkWarning("educationBackground", err)
	}

	f.dataMu.Lock()
	f.data.EducationBackground = saved
	f.dataMu.Unlock()
	return result
}

// SavePreferences persists and links the preferences section.
func (f *Flow) SavePreferences(ctx context.Context, raw map[string]interface{}) *SectionResult {
	profileID, err := f.CreateOrGetProfile(ctx)
	if err != nil {
		return failResult("preferences", err)
	}

	prefs := f.services.Preferences.Format(raw)
	if vr := f.services.Preferences.Validate(prefs); !vr.IsValid {
		return &SectionResult{Success: false, Errors: vr.Errors}
	}

	saved, err := f.services.Preferences.SaveOrUpdate(ctx, prefs)
	if err != nil {
		return failResult("preferences", err)
	}
	if saved.PreferencesID <= 0 {
		return failResult("preferences", apperrors.ErrNoProfileID)
	}

	result := &SectionResult{Success: true, ID: saved.PreferencesID, Message: "Preferences saved"}
	if err := f.services.Profile.LinkPreferences(ctx, profileID, saved.PreferencesID); err != nil {
		result.Warning = linkWarning("preferences", err)
	}

	f.dataMu.Lock()
	f.data.Preferences = saved
	f.dataMu.Unlock()
	return result
}

// SaveShowcase persists and links the showcase section.
func (f *Flow) SaveShowcase(ctx context.Context, raw map[string]interface{}) *SectionResult {
	profileID, err := f.CreateOrGetProfile(ctx)
	if err != nil {
		return failResult("showcase", err)
	}

	showcase := f.services.Showcase.Format(raw)
	if vr := f.services.Showcase.Validate(showcase); !vr.IsValid {
		return &SectionResult{Success: false, Errors: vr.Errors}
	}

	saved, err := f.services.Showcase.SaveOrUpdate(ctx, showcase)
	if err != nil {
		return failResult("showcase", err)
	}
	if saved.ShowcaseID <= 0 {
		return failResult("showcase", apperrors.ErrNoProfileID)
	}

	result := &SectionResult{Success: true, ID: saved.ShowcaseID, Message: "Showcase saved"}
	if err := f.services.Profile.LinkShowcase(ctx, profileID, saved.ShowcaseID); err != nil {
		result.Warning = linkWarning("showcase", err)
	}

	f.dataMu.Lock()
	f.data.Showcase = saved
	f.dataMu.Unlock()
	return result
}

// Data returns a copy of the cached section data.
func (f *Flow) Data() ProfileData {
	f.dataMu.RLock()
	defer f.dataMu.RUnlock()
	return f.data
}

// ProfileID returns the resolved umbrella profile id, 0 when unresolved.
func (f *Flow) ProfileID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentProfileID
}

// CompletionStatus reports which sections hold data, for progress display.
func (f *Flow) CompletionStatus() map[string]bool {
	f.dataMu.RLock()
	defer f.dataMu.RUnlock()
	return map[string]bool{
		"basicInfo":           f.data.BasicInfo != nil,
		"physicalDetails":     f.data.PhysicalDetails != nil,
		"educationBackground": f.data.EducationBackground != nil,
		"preferences":         f.data.Preferences != nil,
		"showcase":            f.data.Showcase != nil,
	}
}

// CompletionPercent is CompletionStatus reduced to a 0-100 number.
func (f *Flow) CompletionPercent() int {
	status := f.CompletionStatus()
	done := 0
	for _, complete := range status {
		if complete {
			done++
		}
	}
	return done * 100 / len(status)
}

func failResult(section string, err error) *SectionResult {
	logger.FlowLog(section, "save", err)
	return &SectionResult{Success: false, Error: err.Error()}
}

// linkWarning logs a failed link call and produces the user-visible
// warning text. The save itself stays successful: the section record is
// persisted and can be re-linked later.
func linkWarning(section string, err error) string {
	warn := apperrors.LinkWarning(section, err)
	logger.WithError(err).Warn("section saved but link failed", "section", section)
	return warn.Message
}
