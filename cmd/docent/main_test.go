package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docent-dev/docent"
	"github.com/docent-dev/docent/overlay"
)

func TestParseSize(t *testing.T) {
	size, err := parseSize("1024x768")
	if err != nil {
		t.Fatalf("parseSize: %v", err)
	}
	if size != (docent.Size{Width: 1024, Height: 768}) {
		t.Errorf("size = %+v", size)
	}

	for _, bad := range []string{"", "1024", "ax768", "1024xb"} {
		if _, err := parseSize(bad); err == nil {
			t.Errorf("parseSize(%q) should fail", bad)
		}
	}
}

func TestParseRect(t *testing.T) {
	rect, err := parseRect("100, 100, 200, 50")
	if err != nil {
		t.Fatalf("parseRect: %v", err)
	}
	if rect != (docent.Rect{X: 100, Y: 100, Width: 200, Height: 50}) {
		t.Errorf("rect = %+v", rect)
	}

	for _, bad := range []string{"", "1,2,3", "1,2,3,4,5", "a,2,3,4"} {
		if _, err := parseRect(bad); err == nil {
			t.Errorf("parseRect(%q) should fail", bad)
		}
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCutoutCommandMatchesGenerator(t *testing.T) {
	out, err := runCommand(t, "cutout", "--viewport", "1024x768", "--target", "100,100,200,50")
	if err != nil {
		t.Fatalf("cutout: %v", err)
	}

	want := overlay.CutoutPath(
		docent.Size{Width: 1024, Height: 768},
		docent.Rect{X: 100, Y: 100, Width: 200, Height: 50}, 8, 4)
	if got := strings.TrimSpace(out); got != want {
		t.Errorf("cutout output = %q, want %q", got, want)
	}
}

func TestCutoutCommandFullMarkup(t *testing.T) {
	out, err := runCommand(t, "cutout", "--viewport", "1024x768", "--target", "100,100,200,50", "--full")
	if err != nil {
		t.Fatalf("cutout --full: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "<svg") {
		t.Errorf("expected SVG element, got %q", out)
	}
	// Reset for later tests sharing the package-level flag.
	cutoutFull = false
}

func TestCutoutCommandOffscreenTarget(t *testing.T) {
	_, err := runCommand(t, "cutout", "--viewport", "100x100", "--target", "500,500,50,50")
	if err == nil {
		t.Fatal("offscreen target should fail")
	}
}

func TestValidateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.yaml")
	data := "version: 1\ntour:\n  name: Demo\nsteps:\n  - id: a\n    target: \"#a\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := runCommand(t, "validate", path)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "Demo: ok (1 steps)") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "1. a -> #a") {
		t.Errorf("missing step line in %q", out)
	}
}

func TestValidateCommandRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.yaml")
	data := "version: 1\ntour:\n  name: Demo\nsteps:\n  - id: a\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := runCommand(t, "validate", path); err == nil {
		t.Fatal("validate should fail on a step without target")
	}
}
