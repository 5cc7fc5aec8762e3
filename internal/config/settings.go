package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/logging"
)

// SettingsFileName is the on-disk settings document, kept in the working
// directory next to the executable.
const SettingsFileName = "config.json"

// DefaultFontName is the font bundled with the localization pack. A chosen
// font whose base name equals this sentinel (or an empty choice) means "use
// the bundled default" and disables the font copy step.
const DefaultFontName = "SourceHanSansCN-Normal.otf"

// settingsFile mirrors the JSON document. Key names are a compatibility
// contract with earlier releases and must not change.
type settingsFile struct {
	GamePath       string `json:"game_path"`
	FontPath       string `json:"font_path"`
	UseMirror      bool   `json:"use-mirror"`
	CustomProxyURL string `json:"custom-proxy-url"`
}

// Settings manages application configuration backed by a JSON file in the
// working directory. Every setter persists immediately.
type Settings struct {
	mu     sync.Mutex
	path   string
	data   settingsFile
	logger zerolog.Logger
}

// NewSettings loads settings from dir. A missing or unreadable file is not
// fatal: defaults apply and a warning is logged.
func NewSettings(dir string, logger zerolog.Logger) *Settings {
	s := &Settings{
		path:   filepath.Join(dir, SettingsFileName),
		logger: logging.ComponentLogger(logger, "config"),
	}
	s.load()
	return s
}

func (s *Settings) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("settings unreadable, using defaults")
		}
		return
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("settings corrupt, using defaults")
		s.data = settingsFile{}
	}
}

// save is called with s.mu held
func (s *Settings) save() {
	raw, err := json.MarshalIndent(s.data, "", "    ")
	if err != nil {
		s.logger.Error().Err(err).Msg("settings encode failed")
		return
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("settings write failed")
	}
}

// GetGamePath returns the stored game directory
func (s *Settings) GetGamePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.GamePath
}

// SetGamePath stores the game directory
func (s *Settings) SetGamePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.GamePath = path
	s.save()
}

// GetFontPath returns the chosen font file, empty for the bundled default
func (s *Settings) GetFontPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.FontPath
}

// SetFontPath stores the chosen font file
func (s *Settings) SetFontPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.FontPath = path
	s.save()
}

// GetUseMirror returns whether downloads go through the mirror
func (s *Settings) GetUseMirror() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.UseMirror
}

// SetUseMirror stores the mirror toggle
func (s *Settings) SetUseMirror(useMirror bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.UseMirror = useMirror
	s.save()
}

// GetCustomProxyURL returns the custom proxy base, empty for the built-in
// mirror
func (s *Settings) GetCustomProxyURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.CustomProxyURL
}

// SetCustomProxyURL stores the custom proxy base
func (s *Settings) SetCustomProxyURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.CustomProxyURL = url
	s.save()
}

// UseBundledFont reports whether the font copy step should be skipped
func (s *Settings) UseBundledFont() bool {
	fp := s.GetFontPath()
	return fp == "" || filepath.Base(fp) == DefaultFontName
}
