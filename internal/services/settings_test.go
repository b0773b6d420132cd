package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LulubuluL/pokedex/internal/common"
	"github.com/LulubuluL/pokedex/internal/models"
	"github.com/LulubuluL/pokedex/internal/repositories/kv"
)

func newSettingsService(t *testing.T) SettingsService {
	t.Helper()
	return NewSettingsService(kv.NewSQLiteRepository(setupDB(t)))
}

func TestTheme_DefaultsToLight(t *testing.T) {
	s := newSettingsService(t)

	theme, err := s.Theme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)
}

func TestSetTheme_RoundTrips(t *testing.T) {
	s := newSettingsService(t)
	ctx := context.Background()

	require.NoError(t, s.SetTheme(ctx, models.ThemeDark))

	theme, err := s.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, theme)
}

func TestSetTheme_RejectsUnknownValues(t *testing.T) {
	s := newSettingsService(t)

	err := s.SetTheme(context.Background(), models.Theme("sepia"))
	require.ErrorIs(t, err, common.ErrInvalidTheme)
}
