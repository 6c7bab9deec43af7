package pkg

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "tracekv"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	if strings.TrimSpace(Description) == "" {
		t.Error("Expected Description to be non-empty")
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from the VERSION file next to this test.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := string(buf); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Fatal("Expected Author to have at least one entry")
	}

	expectedName := "ardnew"
	expectedEmail := "andrew@ardnew.com"

	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == expectedName && a.Email == expectedEmail
	}) {
		t.Errorf("Expected Author to contain %q, %q", expectedName, expectedEmail)
	}
}

func TestPrefix_TestBinary(t *testing.T) {
	// go test runs a binary named "<pkg>.test"
	if got := Prefix(); got != Name {
		t.Errorf("Expected Prefix %q for test binary, got %q", Name, got)
	}
}

func TestConfigPath(t *testing.T) {
	got := ConfigPath("config.json")

	if filepath.Base(got) != "config.json" {
		t.Errorf("expected config.json leaf, got %q", got)
	}

	if filepath.Dir(got) != ConfigDir() {
		t.Errorf("expected parent %q, got %q", ConfigDir(), filepath.Dir(got))
	}
}

func TestUserDir_Fallback(t *testing.T) {
	failing := func() (string, error) { return "", os.ErrNotExist }

	got := userDir(failing, ".hidden")
	if got == "" {
		t.Fatal("expected non-empty fallback directory")
	}

	ok := func() (string, error) { return "/base", nil }
	if got := userDir(ok, ".hidden"); got != "/base" {
		t.Errorf("expected /base, got %q", got)
	}
}
