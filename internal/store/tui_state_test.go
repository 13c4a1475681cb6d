package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTUIStateRoundTrip(t *testing.T) {
	dir := t.TempDir()

	st, err := LoadTUIState(dir)
	if err != nil {
		t.Fatalf("LoadTUIState on empty dir: %v", err)
	}
	if st.Version != 1 || st.View != "" {
		t.Fatalf("unexpected default state: %+v", st)
	}

	want := &TUIState{View: "detail", SelectedProjectID: 7}
	if err := SaveTUIState(dir, want); err != nil {
		t.Fatalf("SaveTUIState: %v", err)
	}

	got, err := LoadTUIState(dir)
	if err != nil {
		t.Fatalf("LoadTUIState: %v", err)
	}
	if got.Version != 1 || got.View != "detail" || got.SelectedProjectID != 7 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestTUIStateCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tui_state.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := LoadTUIState(dir)
	if err != nil {
		t.Fatalf("corrupted state should read as defaults, got error: %v", err)
	}
	if st.View != "" || st.SelectedProjectID != 0 {
		t.Fatalf("expected defaults, got %+v", st)
	}
}
