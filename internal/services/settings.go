package services

import (
	"context"
	"fmt"

	"github.com/LulubuluL/pokedex/internal/common"
	"github.com/LulubuluL/pokedex/internal/models"
	"github.com/LulubuluL/pokedex/internal/repositories/kv"
)

const themeKey = "theme"

type SettingsService interface {
	// Theme returns the persisted color scheme, light when unset.
	Theme(ctx context.Context) (models.Theme, error)
	SetTheme(ctx context.Context, theme models.Theme) error
}

type settingsService struct {
	store kv.Repository
}

func NewSettingsService(store kv.Repository) SettingsService {
	return &settingsService{store: store}
}

func (s *settingsService) Theme(ctx context.Context) (models.Theme, error) {
	data, err := s.store.Get(ctx, themeKey)
	if err != nil {
		return models.ThemeLight, fmt.Errorf("error reading theme: %w", err)
	}
	if data == nil {
		return models.ThemeLight, nil
	}

	theme := models.Theme(data)
	if !theme.Valid() {
		// unknown persisted value, fall back rather than error
		return models.ThemeLight, nil
	}
	return theme, nil
}

func (s *settingsService) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidTheme, theme)
	}
	if err := s.store.Set(ctx, themeKey, []byte(theme)); err != nil {
		return fmt.Errorf("error saving theme: %w", err)
	}
	return nil
}
