package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadColorsDecodesThemeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	content := "[ui]\nkey = \"#ff0000\"\n\n[text]\ntitle = \"#00ff00\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	colors, err := LoadColors(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if colors.UI.Key != "#ff0000" {
		t.Fatalf("expected overridden key color, got %q", colors.UI.Key)
	}
	if colors.Text.Title != "#00ff00" {
		t.Fatalf("expected overridden title color, got %q", colors.Text.Title)
	}
	if colors.UI.Border != DefaultColors().UI.Border {
		t.Fatalf("expected unset fields to fall back, got %q", colors.UI.Border)
	}
}

func TestLoadColorsMissingFileFallsBack(t *testing.T) {
	colors, err := LoadColors(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatalf("expected error for missing theme file")
	}
	if colors != DefaultColors() {
		t.Fatalf("expected default palette on failure")
	}
}

func TestLoadColorsRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("[ui\nkey="), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	if _, err := LoadColors(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNewStylesUsesPalette(t *testing.T) {
	styles := Default()
	if styles == nil {
		t.Fatalf("expected style set")
	}
	if !styles.Header.GetBold() {
		t.Fatalf("expected bold header style")
	}
}
