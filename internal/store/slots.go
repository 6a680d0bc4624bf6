// Package store is the persistence bridge: named JSON slots on local disk
// plus the debounced writer that snapshots session state into them.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-studio/internal/shared/telemetry"
	"resume-studio/resume/model"
)

// Slot names. Each slot holds one JSON document.
const (
	SlotResumeData = "resumeData"
	SlotTheme      = "customTheme"
)

// SlotStore reads and writes named JSON slots under a base directory.
type SlotStore struct {
	baseDir string
}

// NewSlotStore creates a slot store rooted at baseDir.
func NewSlotStore(baseDir string) *SlotStore {
	return &SlotStore{baseDir: baseDir}
}

func (s *SlotStore) path(name string) (string, error) {
	clean := filepath.Clean(name)
	if clean != name || strings.ContainsAny(name, `/\`) || strings.HasPrefix(clean, ".") {
		return "", fmt.Errorf("invalid slot name %q", name)
	}
	return filepath.Join(s.baseDir, clean+".json"), nil
}

// Write marshals v and replaces the slot's content.
func (s *SlotStore) Write(name string, v any) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", name, err)
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write slot %s: %w", name, err)
	}
	return nil
}

// Read unmarshals the slot's content into v. A missing slot surfaces the
// underlying not-exist error for the caller to treat as "use defaults".
func (s *SlotStore) Read(name string, v any) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse slot %s: %w", name, err)
	}
	return nil
}

// LoadState restores the persisted (ResumeData, CustomTheme) pair. A slot
// that is absent or fails to parse falls back to that value's default; the
// failure is logged and startup continues.
func LoadState(s *SlotStore) (model.ResumeData, model.CustomTheme) {
	data := model.DefaultResumeData()
	if err := s.Read(SlotResumeData, &data); err != nil {
		if !os.IsNotExist(err) {
			telemetry.Error("store.restore_failed", map[string]any{"slot": SlotResumeData, "error": err.Error()})
		}
		data = model.DefaultResumeData()
	}
	data.Normalize()

	theme := model.DefaultTheme()
	if err := s.Read(SlotTheme, &theme); err != nil {
		if !os.IsNotExist(err) {
			telemetry.Error("store.restore_failed", map[string]any{"slot": SlotTheme, "error": err.Error()})
		}
		theme = model.DefaultTheme()
	}
	theme.Normalize()

	return data, theme
}
