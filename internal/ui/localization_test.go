package ui

import "testing"

func TestDetectSystemLanguage(t *testing.T) {
	tests := []struct {
		name       string
		lcAll      string
		lcMessages string
		lang       string
		expected   string
	}{
		{"chinese locale", "zh_CN.UTF-8", "", "", LangZhCN},
		{"english locale", "en_US.UTF-8", "", "", LangEn},
		{"traditional chinese", "", "", "zh_TW", LangZhCN},
		{"first set variable wins", "", "de_DE.UTF-8", "zh_CN.UTF-8", LangEn},
		{"no locale at all", "", "", "", LangZhCN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LC_MESSAGES", tt.lcMessages)
			t.Setenv("LANG", tt.lang)

			got := detectSystemLanguage()
			if got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestGetTextFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage(LangEn)

	if got := l.GetText(KeyInstall); got != "Install" {
		t.Errorf("Expected Install, got %s", got)
	}

	// Unknown keys come back verbatim
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key echoed back, got %s", got)
	}
}

func TestSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage(LangZhCN)
	if got := l.GetCurrentLanguage(); got != LangZhCN {
		t.Errorf("Expected %s, got %s", LangZhCN, got)
	}

	// Unsupported codes leave the current language untouched
	l.SetLanguage("fr")
	if got := l.GetCurrentLanguage(); got != LangZhCN {
		t.Errorf("Expected %s, got %s", LangZhCN, got)
	}

	t.Setenv("LC_ALL", "en_US.UTF-8")
	l.SetLanguage("system")
	if got := l.GetCurrentLanguage(); got != LangEn {
		t.Errorf("Expected %s, got %s", LangEn, got)
	}
}
