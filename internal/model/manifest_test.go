package model

import (
	"errors"
	"testing"
)

func TestParseManifest_Defaults(t *testing.T) {
	data := []byte(`{"content-link": "https://example.com/pack.zip"}`)

	m, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest() returned error: %v", err)
	}

	if m.Name != DefaultContentName {
		t.Errorf("Expected name to default to %s, got %s", DefaultContentName, m.Name)
	}

	if m.ContentType != DefaultContentType {
		t.Errorf("Expected content-type to default to %s, got %s", DefaultContentType, m.ContentType)
	}

	if m.HasFont() {
		t.Error("Expected HasFont() to be false without font-link")
	}
}

func TestParseManifest_FontTypeDefault(t *testing.T) {
	data := []byte(`{
		"content-link": "https://example.com/pack.zip",
		"font-link": "https://example.com/font.7z"
	}`)

	m, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest() returned error: %v", err)
	}

	if !m.HasFont() {
		t.Error("Expected HasFont() to be true with font-link present")
	}

	if m.FontType != DefaultFontType {
		t.Errorf("Expected font-type to default to %s, got %s", DefaultFontType, m.FontType)
	}
}

func TestParseManifest_FullDocument(t *testing.T) {
	data := []byte(`{
		"name": "LLC-zh-CN",
		"content-link": "https://example.com/LimbusLocalize_v1.2.3.7z",
		"content-type": "7z",
		"font-link": "https://example.com/LLCCN-Font.7z",
		"font-type": "7z",
		"absolutePath": "LimbusLocalize_BIE/LimbusCompany_Data"
	}`)

	m, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest() returned error: %v", err)
	}

	if m.Name != "LLC-zh-CN" {
		t.Errorf("Expected name LLC-zh-CN, got %s", m.Name)
	}
	if m.ContentType != "7z" {
		t.Errorf("Expected content-type 7z, got %s", m.ContentType)
	}
	if m.AbsolutePath != "LimbusLocalize_BIE/LimbusCompany_Data" {
		t.Errorf("Unexpected absolutePath: %s", m.AbsolutePath)
	}
}

func TestParseManifest_MissingContentLink(t *testing.T) {
	data := []byte(`{"name": "LLC-zh-CN"}`)

	_, err := ParseManifest(data)
	if err == nil {
		t.Fatal("Expected error for manifest without content-link")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Expected ParseError, got %T", err)
	}
}

func TestParseManifest_MalformedJSON(t *testing.T) {
	data := []byte(`{"content-link": `)

	_, err := ParseManifest(data)
	if err == nil {
		t.Fatal("Expected error for malformed JSON")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Expected ParseError, got %T", err)
	}
}

func TestInstallManifest_FileNames(t *testing.T) {
	tests := []struct {
		link     string
		fallback string
		expected string
	}{
		{"https://example.com/releases/LimbusLocalize_v1.2.3.7z", FallbackContentFileName, "LimbusLocalize_v1.2.3.7z"},
		{"https://example.com/font.7z?token=abc", FallbackFontFileName, "font.7z"},
		{"https://example.com/", FallbackContentFileName, FallbackContentFileName},
		{"", FallbackFontFileName, FallbackFontFileName},
	}

	for _, test := range tests {
		result := fileNameForURL(test.link, test.fallback)
		if result != test.expected {
			t.Errorf("fileNameForURL(%q) = %q, expected %q", test.link, result, test.expected)
		}
	}
}

func TestInstallManifest_ArtifactFileNames(t *testing.T) {
	m := &InstallManifest{
		ContentLink: "https://example.com/releases/pack.zip",
		FontLink:    "https://example.com/fonts/",
	}

	if name := m.ContentFileName(); name != "pack.zip" {
		t.Errorf("ContentFileName() = %q, expected pack.zip", name)
	}

	if name := m.FontFileName(); name != FallbackFontFileName {
		t.Errorf("FontFileName() = %q, expected fallback %q", name, FallbackFontFileName)
	}
}
