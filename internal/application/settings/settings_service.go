package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Settings is the free-form application settings document, keyed by
// section name.
type Settings map[string]json.RawMessage

// UpdateResponse confirms a settings write
type UpdateResponse struct {
	Message  string   `json:"message"`
	Settings Settings `json:"settings"`
}

// Service stores the settings document as a JSON file. Reads create
// the file with defaults on first access; writes replace the stored
// sections with the submitted ones, keeping sections the request
// leaves out.
type Service struct {
	path string
	mu   sync.Mutex
}

// NewService creates a settings service backed by the given file path
func NewService(path string) *Service {
	return &Service{path: path}
}

func defaultSettings() Settings {
	return Settings{
		"spreadsheet": json.RawMessage(`{"spreadsheet_id":"","auto_import":false,"import_frequency":"daily"}`),
		"excel":       json.RawMessage(`{"auto_import":false,"import_frequency":"daily","last_import_directory":""}`),
		"notifications": json.RawMessage(
			`{"email_notifications":false,"app_notifications":true,"email_address":""}`),
		"ui":     json.RawMessage(`{"theme":"light","items_per_page":10,"default_sort":"created_at"}`),
		"backup": json.RawMessage(`{"auto_backup":false,"backup_frequency":"weekly","backup_directory":""}`),
	}
}

// Get returns the stored settings, writing the defaults to disk first
// when no settings file exists yet.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update merges the submitted sections over the stored document and
// persists the result.
func (s *Service) Update(ctx context.Context, incoming Settings) (*UpdateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return nil, err
	}
	for section, value := range incoming {
		current[section] = value
	}
	if err := s.write(current); err != nil {
		return nil, err
	}
	return &UpdateResponse{Message: "Settings updated successfully", Settings: current}, nil
}

func (s *Service) load() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		defaults := defaultSettings()
		if err := s.write(defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings file: %w", err)
	}
	return settings, nil
}

func (s *Service) write(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
