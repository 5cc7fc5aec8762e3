package platform

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Game tree constants. The layout under the game root is fixed by the game
// itself and shared with every localization release.
const (
	GameExecutableName = "LimbusCompany.exe"
	GameDataDirName    = "LimbusCompany_Data"
	LangDirName        = "Lang"
	FontDirName        = "Font"
	MarkerFileName     = "config.json"
)

// steamDefaultGameDir is the conventional Steam library location probed when
// no game path is stored yet.
const steamDefaultGameDir = `C:\Program Files (x86)\Steam\steamapps\common\Limbus Company`

// ValidateGameDir reports whether dir looks like a Limbus Company
// installation: the directory exists and contains the game executable.
func ValidateGameDir(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, GameExecutableName))
	return err == nil && !info.IsDir()
}

// DetectSteamInstall probes the conventional Steam location and returns it
// when it holds a valid game installation.
func DetectSteamInstall() (string, bool) {
	if ValidateGameDir(steamDefaultGameDir) {
		return steamDefaultGameDir, true
	}
	return "", false
}

// LangRoot returns the language-data directory under the game root
func LangRoot(gamePath string) string {
	return filepath.Join(gamePath, GameDataDirName, LangDirName)
}

// ContentDir returns the install target for a named localization release
func ContentDir(gamePath, name string) string {
	return filepath.Join(LangRoot(gamePath), name)
}

// FontDir returns the font directory inside an installed release
func FontDir(gamePath, name string) string {
	return filepath.Join(ContentDir(gamePath, name), FontDirName)
}

// MarkerPath returns the config marker file recording the active language
func MarkerPath(gamePath string) string {
	return filepath.Join(LangRoot(gamePath), MarkerFileName)
}

// GameRunning reports whether the game process is currently alive. Files
// under the game tree cannot be replaced while it runs. Scan errors are
// returned alongside a false result so callers can decide to proceed.
func GameRunning() (bool, error) {
	procs, err := process.Processes()
	if err != nil {
		return false, err
	}

	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		if strings.EqualFold(name, GameExecutableName) {
			return true, nil
		}
	}
	return false, nil
}
