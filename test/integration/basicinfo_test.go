package integration

import (
	"context"
	"strings"
	"testing"

	"bookmystars_client/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicInfoServiceDirect(t *testing.T) {
	env := newClientEnv(t)
	env.registerAndLogin(t, "direct@example.com")
	ctx := context.Background()
	svc := env.services.BasicInfo

	info := svc.Format(validBasicInfoPayload("direct@example.com"))
	require.True(t, svc.Validate(info).IsValid)

	saved, err := svc.SaveOrUpdate(ctx, info)
	require.NoError(t, err)
	require.Greater(t, saved.BasicInfoID, 0)

	t.Run("get by id", func(t *testing.T) {
		got, err := svc.GetByID(ctx, saved.BasicInfoID)
		require.NoError(t, err)
		assert.Equal(t, "direct@example.com", got.Email)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := svc.GetByEmail(ctx, "  DIRECT@EXAMPLE.COM ")
		require.NoError(t, err)
		assert.Equal(t, saved.BasicInfoID, got.BasicInfoID)
	})

	t.Run("saving again keeps the id", func(t *testing.T) {
		update := *saved
		update.ProfileHeadline = "Updated headline"
		got, err := svc.SaveOrUpdate(ctx, &update)
		require.NoError(t, err)
		assert.Equal(t, saved.BasicInfoID, got.BasicInfoID)
		assert.Equal(t, "Updated headline", got.ProfileHeadline)
	})

	t.Run("upload profile image", func(t *testing.T) {
		url, err := svc.UploadProfileImage(ctx, saved.BasicInfoID, "headshot.jpg",
			strings.NewReader("fake-jpeg-bytes"))
		require.NoError(t, err)
		assert.Contains(t, url, "/files/profile/")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, saved.BasicInfoID))
		_, err := svc.GetByID(ctx, saved.BasicInfoID)
		require.Error(t, err)
	})
}

func TestEducationServiceCreateUpdate(t *testing.T) {
	env := newClientEnv(t)
	env.registerAndLogin(t, "edu@example.com")
	ctx := context.Background()
	svc := env.services.Education

	created, err := svc.Create(ctx, &models.EducationBackground{
		AcademyName:          &models.AcademyNameRef{AcademyNameID: 1},
		HighestQualification: &models.HighestQualificationRef{HighestQualificationID: 3},
		PassoutYear:          &models.PassoutYearRef{PassoutYearID: 4},
		FieldOfStudy:         "Theatre",
	})
	require.NoError(t, err)
	require.Greater(t, created.EducationBackgroundID, 0)

	created.Grade = "A"
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.EducationBackgroundID, updated.EducationBackgroundID)
	assert.Equal(t, "A", updated.Grade)
}
