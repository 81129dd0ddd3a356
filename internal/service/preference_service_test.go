package service

import (
	"context"
	"testing"

	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_Get(t *testing.T) {
	t.Parallel()

	t.Run("creates defaults on first access", func(t *testing.T) {
		t.Parallel()
		repo := noopPrefRepo()
		var created *models.UserPreferences
		repo.createFn = func(_ context.Context, p *models.UserPreferences) error {
			p.ID = 1
			created = p
			return nil
		}
		svc := NewPreferenceService(repo)

		prefs, err := svc.Get(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(7), prefs.UserID)
		assert.Equal(t, models.LevelBeginner, prefs.FitnessLevel)
		assert.Equal(t, 2000, prefs.DailyCalorieGoal)
		assert.True(t, prefs.NotificationsEnabled)
	})

	t.Run("returns existing row untouched", func(t *testing.T) {
		t.Parallel()
		repo := noopPrefRepo()
		repo.getByUserFn = func(context.Context, uint) (*models.UserPreferences, error) {
			return &models.UserPreferences{UserID: 7, FitnessLevel: models.LevelAdvanced, DailyCalorieGoal: 2600}, nil
		}
		repo.createFn = func(context.Context, *models.UserPreferences) error {
			t.Fatal("must not create when a row exists")
			return nil
		}
		svc := NewPreferenceService(repo)

		prefs, err := svc.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, models.LevelAdvanced, prefs.FitnessLevel)
	})

	t.Run("losing the insert race re-reads the winner", func(t *testing.T) {
		t.Parallel()
		repo := noopPrefRepo()
		calls := 0
		repo.getByUserFn = func(context.Context, uint) (*models.UserPreferences, error) {
			calls++
			if calls == 1 {
				return nil, nil
			}
			return &models.UserPreferences{UserID: 7, FitnessLevel: models.LevelIntermediate}, nil
		}
		repo.createFn = func(context.Context, *models.UserPreferences) error {
			return models.NewConflictError("Preferences already exists")
		}
		svc := NewPreferenceService(repo)

		prefs, err := svc.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, models.LevelIntermediate, prefs.FitnessLevel)
	})
}

func TestPreferenceService_Update(t *testing.T) {
	t.Parallel()

	existing := func() *prefRepoStub {
		repo := noopPrefRepo()
		repo.getByUserFn = func(context.Context, uint) (*models.UserPreferences, error) {
			return &models.UserPreferences{
				UserID: 7, FitnessLevel: models.LevelBeginner,
				DailyCalorieGoal: 2000, NotificationsEnabled: true,
			}, nil
		}
		return repo
	}

	t.Run("applies only provided fields", func(t *testing.T) {
		t.Parallel()
		repo := existing()
		var saved *models.UserPreferences
		repo.saveFn = func(_ context.Context, p *models.UserPreferences) error {
			saved = p
			return nil
		}
		svc := NewPreferenceService(repo)

		goal := 1800
		prefs, err := svc.Update(context.Background(), UpdatePreferencesInput{UserID: 7, DailyCalorieGoal: &goal})
		require.NoError(t, err)
		assert.Equal(t, 1800, prefs.DailyCalorieGoal)
		assert.Equal(t, models.LevelBeginner, prefs.FitnessLevel)
		assert.True(t, prefs.NotificationsEnabled)
		require.NotNil(t, saved)
	})

	t.Run("rejects empty update", func(t *testing.T) {
		t.Parallel()
		svc := NewPreferenceService(existing())
		_, err := svc.Update(context.Background(), UpdatePreferencesInput{UserID: 7})
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		t.Parallel()
		svc := NewPreferenceService(existing())

		level := "elite"
		_, err := svc.Update(context.Background(), UpdatePreferencesInput{UserID: 7, FitnessLevel: &level})
		assertCode(t, err, models.CodeValidation)

		goal := 0
		_, err = svc.Update(context.Background(), UpdatePreferencesInput{UserID: 7, DailyCalorieGoal: &goal})
		assertCode(t, err, models.CodeValidation)
	})
}
