package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Candidate binary names probed on PATH, in order of preference
var sevenZipCandidates = []string{"7z", "7za", "7zr"}

// Conventional Windows install locations probed when PATH has no 7-Zip
var sevenZipWindowsPaths = []string{
	`C:\Program Files\7-Zip\7z.exe`,
	`C:\Program Files (x86)\7-Zip\7z.exe`,
}

// SevenZipPath locates a 7-Zip compatible decompressor binary
func SevenZipPath() (string, error) {
	for _, name := range sevenZipCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	for _, path := range sevenZipWindowsPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("7-Zip binary not found (tried %s)", strings.Join(sevenZipCandidates, ", "))
}

// OutputTail keeps the last maxLines non-empty lines of tool output. Error
// dialogs carry this tail instead of the full transcript.
func OutputTail(output string, maxLines int) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")

	var kept []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, strings.TrimRight(line, "\r"))
		}
	}

	if len(kept) > maxLines {
		kept = kept[len(kept)-maxLines:]
	}
	return strings.Join(kept, "\n")
}
