package model

import (
	"encoding/json"
	"errors"
	"net/url"
	"path"
	"strings"
)

// Fallback values applied when the remote manifest omits optional fields
const (
	DefaultContentName = "LLC-zh-CN"
	DefaultContentType = "zip"
	DefaultFontType    = "7z"
)

// Fixed local filenames used when an artifact URL carries no usable base name
const (
	FallbackContentFileName = "LimbusLocalize_latest.7z"
	FallbackFontFileName    = "LLCCN-Font.7z"
)

// InstallManifest describes one published localization release: which
// archives to download and how their content maps into the game tree. It is
// retrieved fresh on every install attempt and never persisted.
type InstallManifest struct {
	Name         string `json:"name"`
	ContentLink  string `json:"content-link"`
	ContentType  string `json:"content-type"`
	FontLink     string `json:"font-link,omitempty"`
	FontType     string `json:"font-type,omitempty"`
	AbsolutePath string `json:"absolutePath,omitempty"`
}

// ParseManifest decodes manifest JSON and applies the documented defaults.
// A body that does not decode, or decodes without a content link, is a
// ParseError; the caller distinguishes this from transport failures.
func ParseManifest(data []byte) (*InstallManifest, error) {
	var m InstallManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Source: "manifest", Err: err}
	}

	if strings.TrimSpace(m.ContentLink) == "" {
		return nil, &ParseError{Source: "manifest", Err: errors.New("missing content-link")}
	}

	if strings.TrimSpace(m.Name) == "" {
		m.Name = DefaultContentName
	}
	if m.ContentType == "" {
		m.ContentType = DefaultContentType
	}
	if m.FontLink != "" && m.FontType == "" {
		m.FontType = DefaultFontType
	}

	return &m, nil
}

// HasFont reports whether this release ships a font archive
func (m *InstallManifest) HasFont() bool {
	return m.FontLink != ""
}

// ContentFileName returns the local filename for the content archive
func (m *InstallManifest) ContentFileName() string {
	return fileNameForURL(m.ContentLink, FallbackContentFileName)
}

// FontFileName returns the local filename for the font archive
func (m *InstallManifest) FontFileName() string {
	return fileNameForURL(m.FontLink, FallbackFontFileName)
}

func fileNameForURL(rawURL, fallback string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return fallback
	}
	return name
}
