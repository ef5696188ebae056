// Package helpers hosts the fake BookMyStars backend used by the
// integration tests: an in-memory gin server speaking both envelope
// dialects, with failure injection for the link endpoints.
package helpers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"bookmystars_client/internal/models"
	"bookmystars_client/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const jwtSecret = "test-secret"

type fakeUser struct {
	ProfessionalsID int
	FullName        string
	Email           string
	PhoneNo         string
	Password        string
	OTP             string
	Verified        bool
}

type profileRecord struct {
	ProfileID       int
	ProfessionalsID int
	Links           map[string]int // section id key -> linked id
}

// sectionStore keeps saved section payloads keyed by their assigned id.
type sectionStore struct {
	idKey  string
	nextID int
	items  map[int]gin.H
}

func newSectionStore(idKey string) *sectionStore {
	return &sectionStore{idKey: idKey, nextID: 0, items: map[int]gin.H{}}
}

// FakeBackend is the in-memory server state. All fields are guarded by mu;
// tests may flip FailLinks or CreateDelay to exercise failure paths.
type FakeBackend struct {
	mu sync.Mutex

	users         map[string]*fakeUser
	nextUserID    int
	profiles      map[int]*profileRecord // keyed by professionals id
	nextProfileID int
	sections      map[string]*sectionStore
	reference     map[string][]models.ReferenceItem

	// Failure injection and instrumentation
	FailLinks          bool
	CreateDelay        time.Duration
	CreateProfileCalls int
	LinkCalls          []string
}

// TestServer bundles the fake backend with its httptest server.
type TestServer struct {
	Server  *httptest.Server
	Backend *FakeBackend
}

// NewTestServer starts a fake backend on an ephemeral port.
func NewTestServer() *TestServer {
	gin.SetMode(gin.TestMode)

	b := &FakeBackend{
		users:    map[string]*fakeUser{},
		profiles: map[int]*profileRecord{},
		sections: map[string]*sectionStore{
			"basic-info":           newSectionStore("basicInfoId"),
			"style-profile":        newSectionStore("styleProfileId"),
			"education-background": newSectionStore("educationBackgroundId"),
			"preferences":          newSectionStore("preferencesId"),
			"showcase":             newSectionStore("showcaseId"),
		},
		reference: seedReferenceData(),
	}

	r := gin.New()

	r.POST("/professionals/v1/register", b.register)
	r.POST("/professionals/v1/login", b.login)
	r.POST("/professionals/v1/generateOtp", b.generateOTP)
	r.POST("/professionals/v1/verifyOtp", b.verifyOTP)
	r.PUT("/professionals/v1/resetPassword", b.resetPassword)

	// Each resource family hangs off one catch-all route with manual
	// dispatch: gin's tree rejects static segments next to :id params,
	// and a test double has no need to fight that.
	r.Any("/basic-info/v1/*action", b.sectionDispatch("basic-info", false))
	r.Any("/style-profile/v1/*action", b.sectionDispatch("style-profile", true))
	r.Any("/education-background/v1/*action", b.sectionDispatch("education-background", false))
	r.Any("/preferences/v1/*action", b.sectionDispatch("preferences", false))
	r.Any("/showcase/v1/*action", b.sectionDispatch("showcase", false))
	r.Any("/professionals-profile/v1/*action", b.profileDispatch)

	for _, res := range services.AllReferenceResources {
		r.Any("/"+res.Path+"/v1/*action", b.referenceDispatch(res.Path))
	}

	return &TestServer{
		Server:  httptest.NewServer(r),
		Backend: b,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
}

// URL returns the backend base URL.
func (ts *TestServer) URL() string {
	return ts.Server.URL
}

// --- envelope writers ---

func okStandard(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": 200, "status": "SUCCESS", "data": data})
}

func failStandard(c *gin.Context, httpCode int, msg string) {
	c.JSON(httpCode, gin.H{"code": 400, "status": "FAILED", "error": msg})
}

func okProfile(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": 1000, "status": "SUCCESS", "data": data})
}

func failProfile(c *gin.Context, httpCode int, msg string) {
	c.JSON(httpCode, gin.H{"code": 500, "status": "FAILED", "message": msg})
}

// --- auth endpoints ---

func (b *FakeBackend) register(c *gin.Context) {
	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		PhoneNo  string `json:"phoneNo"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failStandard(c, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	email := strings.ToLower(req.Email)
	if _, exists := b.users[email]; exists {
		failStandard(c, http.StatusConflict, "Email already exists")
		return
	}
	b.nextUserID++
	b.users[email] = &fakeUser{
		ProfessionalsID: b.nextUserID,
		FullName:        req.FullName,
		Email:           email,
		PhoneNo:         req.PhoneNo,
		Password:        req.Password,
	}
	okStandard(c, gin.H{"professionalsId": b.nextUserID, "fullName": req.FullName, "email": email})
}

func (b *FakeBackend) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failStandard(c, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	user, ok := b.users[strings.ToLower(req.Email)]
	if !ok || user.Password != req.Password {
		failStandard(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"professionalsId": user.ProfessionalsID,
		"exp":             time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		failStandard(c, http.StatusInternalServerError, "token signing failed")
		return
	}

	okStandard(c, gin.H{
		"token": signed,
		"user": gin.H{
			"professionalsId": user.ProfessionalsID,
			"fullName":        user.FullName,
			"email":           user.Email,
			"phoneNo":         user.PhoneNo,
		},
	})
}

func (b *FakeBackend) generateOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failStandard(c, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	user, ok := b.users[strings.ToLower(req.Email)]
	if !ok {
		failStandard(c, http.StatusNotFound, "User not found")
		return
	}
	user.OTP = "123456"
	okStandard(c, gin.H{"message": "OTP sent"})
}

func (b *FakeBackend) verifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failStandard(c, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	user, ok := b.users[strings.ToLower(req.Email)]
	if !ok || user.OTP == "" || user.OTP != req.OTP {
		failStandard(c, http.StatusBadRequest, "Invalid OTP")
		return
	}
	user.Verified = true
	okStandard(c, gin.H{"verified": true})
}

func (b *FakeBackend) resetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failStandard(c, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	user, ok := b.users[strings.ToLower(req.Email)]
	if !ok {
		failStandard(c, http.StatusNotFound, "User not found")
		return
	}
	user.Password = req.NewPassword
	okStandard(c, gin.H{"message": "Password updated"})
}

func requireAuth(c *gin.Context) bool {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		failStandard(c, http.StatusUnauthorized, "Authorization header missing or invalid")
		return false
	}
	return true
}

// --- section endpoints ---

func (b *FakeBackend) sectionDispatch(name string, profileFamily bool) gin.HandlerFunc {
	ok := okStandard
	fail := failStandard
	if profileFamily {
		ok = okProfile
		fail = failProfile
	}

	return func(c *gin.Context) {
		action := strings.TrimPrefix(c.Param("action"), "/")

		switch {
		case c.Request.Method == http.MethodPost && action == "save-or-update",
			c.Request.Method == http.MethodPost && action == "create",
			c.Request.Method == http.MethodPut && action == "update":
			if !requireAuth(c) {
				return
			}
			var payload gin.H
			if err := c.ShouldBindJSON(&payload); err != nil {
				fail(c, http.StatusBadRequest, "invalid request body")
				return
			}
			b.mu.Lock()
			store := b.sections[name]
			id := intField(payload, store.idKey)
			if id == 0 {
				store.nextID++
				id = store.nextID
				payload[store.idKey] = id
			}
			store.items[id] = payload
			b.mu.Unlock()
			ok(c, payload)

		case c.Request.Method == http.MethodPost && action == "upload-profile-image":
			if !requireAuth(c) {
				return
			}
			if _, err := c.FormFile("file"); err != nil {
				fail(c, http.StatusBadRequest, "missing file part")
				return
			}
			basicInfoID := c.PostForm("basicInfoId")
			ok(c, gin.H{"profileImageUrl": "/files/profile/" + basicInfoID + ".jpg"})

		case c.Request.Method == http.MethodGet && strings.HasPrefix(action, "email/"):
			email := strings.TrimPrefix(action, "email/")
			b.mu.Lock()
			item := b.findSectionBy(name, "email", email)
			b.mu.Unlock()
			if item == nil {
				fail(c, http.StatusNotFound, "record not found")
				return
			}
			ok(c, item)

		case c.Request.Method == http.MethodGet && strings.HasPrefix(action, "get-by-professionals-id/"):
			pid, _ := strconv.Atoi(strings.TrimPrefix(action, "get-by-professionals-id/"))
			b.mu.Lock()
			item := b.findSectionByID(name, "professionalsId", pid)
			b.mu.Unlock()
			if item == nil {
				fail(c, http.StatusNotFound, "record not found")
				return
			}
			ok(c, item)

		case c.Request.Method == http.MethodGet:
			id, err := strconv.Atoi(action)
			if err != nil {
				fail(c, http.StatusNotFound, "unknown action "+action)
				return
			}
			b.mu.Lock()
			item, found := b.sections[name].items[id]
			b.mu.Unlock()
			if !found {
				fail(c, http.StatusNotFound, "record not found")
				return
			}
			ok(c, item)

		case c.Request.Method == http.MethodDelete:
			id, err := strconv.Atoi(action)
			if err != nil {
				fail(c, http.StatusNotFound, "unknown action "+action)
				return
			}
			b.mu.Lock()
			delete(b.sections[name].items, id)
			b.mu.Unlock()
			ok(c, gin.H{"deleted": true})

		default:
			fail(c, http.StatusNotFound, "unknown action "+action)
		}
	}
}

func (b *FakeBackend) findSectionBy(name, key, value string) gin.H {
	for _, item := range b.sections[name].items {
		if s, ok := item[key].(string); ok && s == value {
			return item
		}
	}
	return nil
}

func (b *FakeBackend) findSectionByID(name, key string, id int) gin.H {
	for _, item := range b.sections[name].items {
		if intField(item, key) == id {
			return item
		}
	}
	return nil
}

// --- professionals-profile endpoints ---

func (b *FakeBackend) profileDispatch(c *gin.Context) {
	action := strings.TrimPrefix(c.Param("action"), "/")

	switch {
	case c.Request.Method == http.MethodPost && (action == "create" || action == "save-or-update"):
		if !requireAuth(c) {
			return
		}
		var req struct {
			ProfessionalsID int `json:"professionalsId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.ProfessionalsID == 0 {
			failProfile(c, http.StatusBadRequest, "professionalsId required")
			return
		}

		b.mu.Lock()
		if action == "create" {
			b.CreateProfileCalls++
		}
		delay := b.CreateDelay
		b.mu.Unlock()
		if delay > 0 {
			time.Sleep(delay)
		}

		b.mu.Lock()
		rec, exists := b.profiles[req.ProfessionalsID]
		if !exists {
			b.nextProfileID++
			rec = &profileRecord{
				ProfileID:       b.nextProfileID,
				ProfessionalsID: req.ProfessionalsID,
				Links:           map[string]int{},
			}
			b.profiles[req.ProfessionalsID] = rec
		}
		b.mu.Unlock()

		okProfile(c, gin.H{"professionalsProfileId": rec.ProfileID, "professionalsId": rec.ProfessionalsID})

	case c.Request.Method == http.MethodGet && strings.HasPrefix(action, "get-by-professionals-id/"):
		pid, _ := strconv.Atoi(strings.TrimPrefix(action, "get-by-professionals-id/"))
		b.mu.Lock()
		rec, exists := b.profiles[pid]
		var data gin.H
		if exists {
			data = gin.H{"professionalsProfileId": rec.ProfileID, "professionalsId": rec.ProfessionalsID}
			for idKey, sectionID := range rec.Links {
				if name, slot := sectionSlot(idKey); name != "" {
					data[slot] = b.sections[name].items[sectionID]
				}
			}
		}
		b.mu.Unlock()
		if !exists {
			failProfile(c, http.StatusNotFound, "Profile not found")
			return
		}
		okProfile(c, data)

	case c.Request.Method == http.MethodPost && strings.HasPrefix(action, "link-"):
		if !requireAuth(c) {
			return
		}
		b.mu.Lock()
		b.LinkCalls = append(b.LinkCalls, action)
		failLinks := b.FailLinks
		b.mu.Unlock()
		if failLinks {
			failProfile(c, http.StatusInternalServerError, "link persistence failed")
			return
		}

		profileID, _ := strconv.Atoi(c.Query("professionalsProfileId"))
		if profileID == 0 {
			failProfile(c, http.StatusBadRequest, "professionalsProfileId required")
			return
		}

		b.mu.Lock()
		var rec *profileRecord
		for _, p := range b.profiles {
			if p.ProfileID == profileID {
				rec = p
				break
			}
		}
		if rec != nil {
			for key, values := range c.Request.URL.Query() {
				if key == "professionalsProfileId" || len(values) == 0 {
					continue
				}
				id, _ := strconv.Atoi(values[0])
				rec.Links[key] = id
			}
		}
		b.mu.Unlock()
		if rec == nil {
			failProfile(c, http.StatusNotFound, "Profile not found")
			return
		}
		okProfile(c, gin.H{"linked": true})

	default:
		failProfile(c, http.StatusNotFound, "unknown action "+action)
	}
}

func sectionSlot(idKey string) (storeName, slot string) {
	switch idKey {
	case "basicInfoId":
		return "basic-info", "basicInfo"
	case "styleProfileId":
		return "style-profile", "styleProfile"
	case "educationBackgroundId":
		return "education-background", "educationBackground"
	case "preferencesId":
		return "preferences", "preferences"
	case "showcaseId":
		return "showcase", "showcase"
	default:
		return "", ""
	}
}

// --- reference-data endpoints ---

func (b *FakeBackend) referenceDispatch(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		action := strings.TrimPrefix(c.Param("action"), "/")

		b.mu.Lock()
		defer b.mu.Unlock()

		items := b.reference[path]

		switch {
		case c.Request.Method == http.MethodPost && action == "create":
			var item models.ReferenceItem
			if err := c.ShouldBindJSON(&item); err != nil {
				failStandard(c, http.StatusBadRequest, "invalid request body")
				return
			}
			item.ID = len(items) + 1
			b.reference[path] = append(items, item)
			okStandard(c, item)

		case c.Request.Method == http.MethodGet && action == "all":
			okStandard(c, items)

		case c.Request.Method == http.MethodGet && action == "active":
			var active []models.ReferenceItem
			for _, item := range items {
				if item.IsActive {
					active = append(active, item)
				}
			}
			okStandard(c, active)

		case c.Request.Method == http.MethodGet && action == "search":
			name := strings.ToLower(c.Query("name"))
			var found []models.ReferenceItem
			for _, item := range items {
				if strings.Contains(strings.ToLower(item.Name), name) {
					found = append(found, item)
				}
			}
			okStandard(c, found)

		case c.Request.Method == http.MethodGet && action == "list":
			page, _ := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
			size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
			start := (page - 1) * size
			end := start + size
			if start > len(items) {
				start = len(items)
			}
			if end > len(items) {
				end = len(items)
			}
			okStandard(c, gin.H{
				"items":      items[start:end],
				"pageNumber": page,
				"pageSize":   size,
				"totalCount": len(items),
			})

		case c.Request.Method == http.MethodGet:
			id, err := strconv.Atoi(action)
			if err != nil {
				failStandard(c, http.StatusNotFound, "unknown action "+action)
				return
			}
			for _, item := range items {
				if item.ID == id {
					okStandard(c, item)
					return
				}
			}
			failStandard(c, http.StatusNotFound, "record not found")

		case c.Request.Method == http.MethodDelete:
			id, _ := strconv.Atoi(action)
			var kept []models.ReferenceItem
			for _, item := range items {
				if item.ID != id {
					kept = append(kept, item)
				}
			}
			b.reference[path] = kept
			okStandard(c, gin.H{"deleted": true})

		default:
			failStandard(c, http.StatusNotFound, "unknown action "+action)
		}
	}
}

func seedReferenceData() map[string][]models.ReferenceItem {
	seed := map[string][]string{
		"gender":                 {"Male", "Female", "Other"},
		"body-type":              {"Slim", "Athletic", "Average", "Heavy"},
		"eye-color":              {"Brown", "Black", "Blue", "Green"},
		"hair-color":             {"Black", "Brown", "Blonde", "Grey"},
		"skin-tone":              {"Fair", "Wheatish", "Dusky", "Dark"},
		"shoe-size":              {"6", "7", "8", "9", "10"},
		"category":               {"Actor", "Model", "Dancer", "Anchor"},
		"city":                   {"Mumbai", "Delhi", "Bengaluru", "Hyderabad", "Chennai", "Pune", "Kolkata"},
		"state":                  {"Maharashtra", "Delhi", "Karnataka", "Telangana"},
		"marital-status":         {"Single", "Married", "Divorced"},
		"role":                   {"Professional", "Agency", "Admin"},
		"job-role":               {"Lead Actor", "Supporting Actor", "Ramp Model", "Print Model"},
		"academy-name":           {"National School of Drama", "FTII", "Whistling Woods"},
		"highest-qualification":  {"High School", "Diploma", "Graduate", "Post Graduate"},
		"passout-year":           {"2020", "2021", "2022", "2023", "2024"},
		"communication-language": {"Hindi", "English", "Tamil", "Telugu", "Marathi"},
	}

	data := make(map[string][]models.ReferenceItem, len(seed))
	for path, names := range seed {
		items := make([]models.ReferenceItem, 0, len(names))
		for i, name := range names {
			items = append(items, models.ReferenceItem{ID: i + 1, Name: name, IsActive: true})
		}
		data[path] = items
	}
	return data
}

func intField(m gin.H, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

// SectionRecord returns the stored payload for a section id, nil when absent.
func (b *FakeBackend) SectionRecord(name string, id int) gin.H {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sections[name].items[id]
}

// ProfileFor returns the umbrella record for a professionals id.
func (b *FakeBackend) ProfileFor(professionalsID int) (profileID int, links map[string]int, found bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := b.profiles[professionalsID]
	if !ok {
		return 0, nil, false
	}
	links = make(map[string]int, len(rec.Links))
	for k, v := range rec.Links {
		links[k] = v
	}
	return rec.ProfileID, links, true
}

// CreateCalls returns how many times the profile create endpoint ran.
func (b *FakeBackend) CreateCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.CreateProfileCalls
}

// SetFailLinks toggles link-endpoint failure injection.
func (b *FakeBackend) SetFailLinks(fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.FailLinks = fail
}

// SetCreateDelay stalls profile creation, widening race windows in tests.
func (b *FakeBackend) SetCreateDelay(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.CreateDelay = d
}
