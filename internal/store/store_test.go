package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"resume-studio/resume/model"
)

func TestSlotWriteReadRoundTrip(t *testing.T) {
	s := NewSlotStore(t.TempDir())

	data := model.DefaultResumeData()
	data.Summary = "persisted"
	data.WorkExperience = append(data.WorkExperience, model.WorkExperience{
		ID:        "exp-1",
		Company:   "Acme",
		StartDate: model.NewDate(2022, time.January, 1),
	})

	if err := s.Write(SlotResumeData, data); err != nil {
		t.Fatalf("write: %v", err)
	}

	var back model.ResumeData
	if err := s.Read(SlotResumeData, &back); err != nil {
		t.Fatalf("read: %v", err)
	}
	if back.Summary != "persisted" {
		t.Fatalf("unexpected summary %q", back.Summary)
	}
	if got := back.WorkExperience[0].StartDate.Display(); got != "Jan 2022" {
		t.Fatalf("date did not survive the round trip: %q", got)
	}
}

func TestSlotNameTraversalRejected(t *testing.T) {
	s := NewSlotStore(t.TempDir())
	if err := s.Write("../escape", map[string]string{}); err == nil {
		t.Fatalf("traversal slot name must be rejected")
	}
	if err := s.Read("a/b", &struct{}{}); err == nil {
		t.Fatalf("slot names with separators must be rejected")
	}
}

func TestLoadStateFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	s := NewSlotStore(dir)

	// Absent slots: defaults, no error.
	data, theme := LoadState(s)
	if data.Summary != "" || len(data.SectionOrder) != 6 {
		t.Fatalf("expected default resume, got %+v", data)
	}
	if theme != model.DefaultTheme() {
		t.Fatalf("expected default theme, got %+v", theme)
	}

	// Corrupt slots: defaults, startup still succeeds.
	if err := os.WriteFile(filepath.Join(dir, "resumeData.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt slot: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "customTheme.json"), []byte("[]"), 0o644); err != nil {
		t.Fatalf("seed corrupt slot: %v", err)
	}
	data, theme = LoadState(s)
	if len(data.SectionOrder) != 6 {
		t.Fatalf("corrupt resume slot must fall back to default")
	}
	if theme != model.DefaultTheme() {
		t.Fatalf("corrupt theme slot must fall back to default")
	}
}

func TestLoadStateNormalizesPartialSnapshot(t *testing.T) {
	dir := t.TempDir()
	// A snapshot missing optional fields must come back as documented
	// defaults, not nils.
	snapshot := `{"personalInfo":{"fullName":"Ada"},"summary":"hi","sectionOrder":["skills"]}`
	if err := os.WriteFile(filepath.Join(dir, "resumeData.json"), []byte(snapshot), 0o644); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	data, _ := LoadState(NewSlotStore(dir))
	if data.PersonalInfo.FullName != "Ada" || data.Summary != "hi" {
		t.Fatalf("snapshot fields lost: %+v", data)
	}
	if data.WorkExperience == nil || data.Interests == nil {
		t.Fatalf("missing collections must default to empty")
	}
	if len(data.SectionOrder) != 6 || data.SectionOrder[0] != model.SectionSkills {
		t.Fatalf("partial section order must normalize, got %v", data.SectionOrder)
	}
}

func TestSaverDebouncesToOneWrite(t *testing.T) {
	var writes atomic.Int32
	saver := NewSaver(30*time.Millisecond, func() error {
		writes.Add(1)
		return nil
	})

	// A burst of edits inside the window collapses to one write.
	for i := 0; i < 10; i++ {
		saver.Touch()
		time.Sleep(2 * time.Millisecond)
	}
	if got := writes.Load(); got != 0 {
		t.Fatalf("write fired inside the debounce window: %d", got)
	}
	if !saver.Dirty() {
		t.Fatalf("state should be dirty while a write is pending")
	}

	time.Sleep(100 * time.Millisecond)
	if got := writes.Load(); got != 1 {
		t.Fatalf("expected exactly 1 write, got %d", got)
	}
	if saver.Dirty() {
		t.Fatalf("state should be clean after the write")
	}
	if saver.SavedAt().IsZero() {
		t.Fatalf("savedAt should be set after a successful write")
	}
}

func TestSaverPersistsEditMadeDuringWrite(t *testing.T) {
	var state atomic.Int32
	var persisted atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	var block sync.Once

	saver := NewSaver(20*time.Millisecond, func() error {
		snapshot := state.Load()
		block.Do(func() {
			close(entered)
			<-release
		})
		persisted.Store(snapshot)
		return nil
	})

	state.Store(1)
	saver.Touch()

	// An edit lands while the first write is in flight: its snapshot
	// predates the edit, so a follow-up write must pick it up.
	<-entered
	state.Store(2)
	saver.Touch()
	close(release)

	deadline := time.Now().Add(2 * time.Second)
	for persisted.Load() != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("latest state never persisted: persisted=%d, dirty=%v", persisted.Load(), saver.Dirty())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSaverWriteFailureStaysDirty(t *testing.T) {
	saver := NewSaver(time.Hour, func() error {
		return errors.New("disk full")
	})

	saver.Touch()
	saver.Flush()
	if !saver.Dirty() {
		t.Fatalf("failed write must leave the state dirty")
	}
	if !saver.SavedAt().IsZero() {
		t.Fatalf("failed write must not record a save time")
	}
}

func TestSaverFlushWritesPendingState(t *testing.T) {
	var writes atomic.Int32
	saver := NewSaver(time.Hour, func() error {
		writes.Add(1)
		return nil
	})

	saver.Touch()
	saver.Flush()
	if got := writes.Load(); got != 1 {
		t.Fatalf("flush must write pending state, got %d writes", got)
	}

	// Nothing pending: flush is a no-op.
	saver.Flush()
	if got := writes.Load(); got != 1 {
		t.Fatalf("clean flush must not write, got %d writes", got)
	}
}
