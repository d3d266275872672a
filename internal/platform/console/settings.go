package console

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the console window preferences kept between runs.
type Settings struct {
	Scale int  `yaml:"scale"`
	Muted bool `yaml:"muted"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{Scale: 4}
}

const (
	settingsObject   = "console"
	settingsProperty = "settings"
)

// SettingsStore loads and saves Settings through gdata. A nil manager keeps
// settings in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings Settings
}

// OpenSettings opens the settings for appName. When the platform data
// directory is unavailable the store still works, without persistence, and
// the error is returned alongside it.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewSettingsStore(nil), fmt.Errorf("console: cannot open settings: %w", err)
	}
	s := NewSettingsStore(m)
	return s, s.Load()
}

// NewSettingsStore wraps a gdata manager, which may be nil.
func NewSettingsStore(m *gdata.Manager) *SettingsStore {
	return &SettingsStore{manager: m, settings: DefaultSettings()}
}

// Load reads saved settings. Missing settings keep the defaults.
func (s *SettingsStore) Load() error {
	s.settings = DefaultSettings()
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("console: cannot load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("console: cannot parse settings: %w", err)
	}
	if loaded.Scale < 1 {
		loaded.Scale = DefaultSettings().Scale
	}
	s.settings = loaded
	return nil
}

// Save writes the current settings.
func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("console: cannot encode settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("console: cannot save settings: %w", err)
	}
	return nil
}

// Get returns the current settings.
func (s *SettingsStore) Get() Settings {
	return s.settings
}

// Set replaces the current settings without saving them.
func (s *SettingsStore) Set(v Settings) {
	if v.Scale < 1 {
		v.Scale = 1
	}
	s.settings = v
}
