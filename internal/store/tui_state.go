package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const tuiStateFileName = "tui_state.json"

// TUIState stores small, user-facing UI state for restoring the last screen
// on relaunch.
//
// Intentionally best effort: callers must tolerate missing/invalid data.
type TUIState struct {
	Version int `json:"version"`

	// View is one of: dashboard|projects|detail|team
	View string `json:"view,omitempty"`

	// SelectedProjectID is used when View == "detail".
	SelectedProjectID int `json:"selectedProjectId,omitempty"`
}

func tuiStatePath(dir string) string {
	return filepath.Join(dir, tuiStateFileName)
}

func LoadTUIState(dir string) (*TUIState, error) {
	if strings.TrimSpace(dir) == "" {
		return &TUIState{Version: 1}, nil
	}
	b, err := os.ReadFile(tuiStatePath(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &TUIState{Version: 1}, nil
		}
		return nil, err
	}
	var st TUIState
	if err := json.Unmarshal(b, &st); err != nil {
		// Best-effort; if corrupted, treat as missing.
		return &TUIState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

func SaveTUIState(dir string, st *TUIState) error {
	if st == nil || strings.TrimSpace(dir) == "" {
		return nil
	}
	if err := ensureDir(dir); err != nil {
		return err
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	path := tuiStatePath(dir)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
