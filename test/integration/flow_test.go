package integration

import (
	"context"
	"sync"
	"testing"

	"bookmystars_client/internal/profileflow"
	"bookmystars_client/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowInitialize(t *testing.T) {
	t.Run("no session defers profile creation", func(t *testing.T) {
		env := newClientEnv(t)
		flow := profileflow.New(env.store, env.services)

		res := flow.Initialize(context.Background())
		assert.True(t, res.Success)
		assert.True(t, res.Deferred)
		assert.Zero(t, res.ProfileID)
	})

	t.Run("no existing profile is a first-visit state", func(t *testing.T) {
		env := newClientEnv(t)
		env.registerAndLogin(t, "init-fresh@example.com")
		flow := profileflow.New(env.store, env.services)

		res := flow.Initialize(context.Background())
		assert.True(t, res.Success)
		assert.False(t, res.Deferred)
		assert.Zero(t, res.ProfileID)
	})

	t.Run("existing profile primes the section cache", func(t *testing.T) {
		env := newClientEnv(t)
		env.registerAndLogin(t, "init-existing@example.com")
		ctx := context.Background()

		first := profileflow.New(env.store, env.services)
		saved := first.SaveBasicInfo(ctx, validBasicInfoPayload("init-existing@example.com"))
		require.True(t, saved.Success)

		// A fresh flow (new app start) must rediscover the profile.
		second := profileflow.New(env.store, env.services)
		res := second.Initialize(ctx)
		assert.True(t, res.Success)
		assert.Equal(t, first.ProfileID(), res.ProfileID)

		data := second.Data()
		require.NotNil(t, data.BasicInfo)
		assert.Equal(t, "init-existing@example.com", data.BasicInfo.Email)
	})
}

func TestSaveBasicInfoSection(t *testing.T) {
	env := newClientEnv(t)
	env.registerAndLogin(t, "save-basic@example.com")
	flow := profileflow.New(env.store, env.services)
	ctx := context.Background()

	res := flow.SaveBasicInfo(ctx, validBasicInfoPayload("save-basic@example.com"))
	require.True(t, res.Success, "save failed: %s", res.Error)
	assert.Greater(t, res.ID, 0)
	assert.Empty(t, res.Warning)

	t.Run("section cache is updated", func(t *testing.T) {
		data := flow.Data()
		require.NotNil(t, data.BasicInfo)
		assert.Equal(t, res.ID, data.BasicInfo.BasicInfoID)
		assert.Equal(t, "save-basic@example.com", data.BasicInfo.Email)
		assert.Equal(t, 2, data.BasicInfo.Category.CategoryID)
	})

	t.Run("profile id is resolved and persisted", func(t *testing.T) {
		assert.Greater(t, flow.ProfileID(), 0)
		assert.Equal(t, flow.ProfileID(), env.store.GetProfessionalsProfileID())
	})

	t.Run("backend holds the linked record", func(t *testing.T) {
		record := env.ts.Backend.SectionRecord("basic-info", res.ID)
		require.NotNil(t, record)
		assert.Equal(t, "save-basic@example.com", record["email"])

		_, links, found := env.ts.Backend.ProfileFor(env.store.GetProfessionalsID())
		require.True(t, found)
		assert.Equal(t, res.ID, links["basicInfoId"])
	})

	t.Run("validation failure reports every missing field", func(t *testing.T) {
		res := flow.SaveBasicInfo(ctx, map[string]interface{}{
			"email": "not-an-email",
		})
		assert.False(t, res.Success)
		assert.Empty(t, res.Error)
		// fullName, email, phoneNo, dateOfBirth, profileHeadline,
		// category, state, city, maritalStatus
		assert.Len(t, res.Errors, 9)
	})
}

func TestSaveOtherSections(t *testing.T) {
	env := newClientEnv(t)
	env.registerAndLogin(t, "sections@example.com")
	flow := profileflow.New(env.store, env.services)
	ctx := context.Background()

	t.Run("style profile", func(t *testing.T) {
		res := flow.SaveStyleProfile(ctx, map[string]interface{}{
			"height":   float64(172),
			"weight":   float64(58),
			"bodyType": float64(2),
			"eyeColor": map[string]interface{}{"eyeColorId": float64(1)},
		})
		require.True(t, res.Success, "save failed: %s", res.Error)
		assert.Greater(t, res.ID, 0)
		require.NotNil(t, flow.Data().PhysicalDetails)
		assert.Equal(t, float64(172), flow.Data().PhysicalDetails.Height)
	})

	t.Run("style profile out of range", func(t *testing.T) {
		res := flow.SaveStyleProfile(ctx, map[string]interface{}{
			"height": float64(400),
		})
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Errors)
	})

	t.Run("education background", func(t *testing.T) {
		res := flow.SaveEducation(ctx, map[string]interface{}{
			"academyName":          float64(1),
			"highestQualification": float64(3),
			"passoutYear":          float64(4),
			"fieldOfStudy":         "Performing Arts",
		})
		require.True(t, res.Success, "save failed: %s", res.Error)
		assert.Greater(t, res.ID, 0)
		require.NotNil(t, flow.Data().EducationBackground)
	})

	t.Run("preferences", func(t *testing.T) {
		res := flow.SavePreferences(ctx, map[string]interface{}{
			"jobRoles":        []interface{}{float64(1), float64(3)},
			"willingToTravel": true,
		})
		require.True(t, res.Success, "save failed: %s", res.Error)
		require.NotNil(t, flow.Data().Preferences)
		assert.Len(t, flow.Data().Preferences.JobRoles, 2)
	})

	t.Run("preferences need at least one job role", func(t *testing.T) {
		res := flow.SavePreferences(ctx, map[string]interface{}{
			"willingToTravel": true,
		})
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Errors)
	})

	t.Run("showcase", func(t *testing.T) {
		res := flow.SaveShowcase(ctx, map[string]interface{}{
			"title": "Portfolio 2026",
			"media": []interface{}{
				map[string]interface{}{
					"title":     "Editorial shoot",
					"url":       "https://cdn.example.com/shoot1.jpg",
					"mediaType": "image",
				},
			},
		})
		require.True(t, res.Success, "save failed: %s", res.Error)
		require.NotNil(t, flow.Data().Showcase)
	})

	t.Run("completion tracking", func(t *testing.T) {
		status := flow.CompletionStatus()
		assert.False(t, status["basicInfo"])
		assert.True(t, status["physicalDetails"])
		assert.True(t, status["educationBackground"])
		assert.True(t, status["preferences"])
		assert.True(t, status["showcase"])
		assert.Equal(t, 80, flow.CompletionPercent())
	})
}

func TestLinkFailureIsAWarning(t *testing.T) {
	env := newClientEnv(t)
	env.registerAndLogin(t, "link-fail@example.com")
	flow := profileflow.New(env.store, env.services)
	ctx := context.Background()

	// Resolve the profile first so only the link call sees the failure.
	_, err := flow.CreateOrGetProfile(ctx)
	require.NoError(t, err)

	env.ts.Backend.SetFailLinks(true)

	res := flow.SaveBasicInfo(ctx, validBasicInfoPayload("link-fail@example.com"))
	assert.True(t, res.Success)
	assert.Greater(t, res.ID, 0)
	assert.NotEmpty(t, res.Warning)

	// The section record itself was persisted.
	assert.NotNil(t, env.ts.Backend.SectionRecord("basic-info", res.ID))

	// The profile carries no link for it.
	_, links, found := env.ts.Backend.ProfileFor(env.store.GetProfessionalsID())
	require.True(t, found)
	assert.Zero(t, links["basicInfoId"])
}

func TestConcurrentProfileResolution(t *testing.T) {
	env := newClientEnv(t)
	env.registerAndLogin(t, "race@example.com")
	flow := profileflow.New(env.store, env.services)
	ctx := context.Background()

	const workers = 8
	ids := make([]int, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = flow.CreateOrGetProfile(ctx)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
	assert.Equal(t, 1, env.ts.Backend.CreateCalls())
}

func TestCreateProfileWithoutSession(t *testing.T) {
	env := newClientEnv(t)
	flow := profileflow.New(env.store, env.services)

	_, err := flow.CreateOrGetProfile(context.Background())
	require.Error(t, err)
}

func TestFullOnboardingSequence(t *testing.T) {
	env := newClientEnv(t)
	ctx := context.Background()
	svc := env.services

	// Register, verify and log in.
	_, err := svc.Auth.Register(ctx, &services.RegisterRequest{
		FullName: "Jane Kapoor",
		Email:    "jane@x.com",
		PhoneNo:  "9812345670",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Auth.GenerateOTP(ctx, "jane@x.com"))
	require.NoError(t, svc.Auth.VerifyOTP(ctx, "jane@x.com", "123456"))
	_, err = svc.Auth.Login(ctx, "jane@x.com", "secret123")
	require.NoError(t, err)

	// Save basic info with a noisy email: it must be trimmed and
	// lower-cased before it hits the wire.
	flow := profileflow.New(env.store, env.services)
	payload := validBasicInfoPayload("  JANE@X.COM  ")
	res := flow.SaveBasicInfo(ctx, payload)
	require.True(t, res.Success, "save failed: %s", res.Error)

	record := env.ts.Backend.SectionRecord("basic-info", res.ID)
	require.NotNil(t, record)
	assert.Equal(t, "jane@x.com", record["email"])

	profileID, links, found := env.ts.Backend.ProfileFor(env.store.GetProfessionalsID())
	require.True(t, found)
	assert.Equal(t, flow.ProfileID(), profileID)
	assert.Equal(t, res.ID, links["basicInfoId"])

	// The fetched umbrella profile now carries the section.
	fetched, err := svc.Profile.GetByProfessionalsID(ctx, env.store.GetProfessionalsID())
	require.NoError(t, err)
	require.NotNil(t, fetched.BasicInfo)
	assert.Equal(t, "jane@x.com", fetched.BasicInfo.Email)
}
