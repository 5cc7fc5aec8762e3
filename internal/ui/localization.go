package ui

import (
	"os"
	"strings"
)

// Language codes
const (
	LangZhCN = "zh-CN"
	LangEn   = "en"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyGamePath            = "game_path"
	KeyGamePathPlaceholder = "game_path_placeholder"
	KeyBrowse              = "browse"
	KeyFont                = "font"
	KeyChooseFont          = "choose_font"
	KeyRestoreDefaultFont  = "restore_default_font"
	KeyBundledFont         = "bundled_font"
	KeyUseMirror           = "use_mirror"
	KeyInstall             = "install"
	KeyCancel              = "cancel"
	KeyUninstall           = "uninstall"
	KeySettings            = "settings"
	KeySave                = "save"
	KeyCustomProxy         = "custom_proxy"
	KeyCustomProxyHint     = "custom_proxy_hint"
	KeyLanguage            = "language"
	KeyContentArtifact     = "content_artifact"
	KeyFontArtifact        = "font_artifact"
	KeyPhaseIdle           = "phase_idle"
	KeyPhaseFetchingInfo   = "phase_fetching_info"
	KeyPhaseDownloading    = "phase_downloading"
	KeyPhaseExtracting     = "phase_extracting"
	KeyPhasePostProcessing = "phase_post_processing"
	KeyPhaseCancelling     = "phase_cancelling"
	KeyStatusPending       = "status_pending"
	KeyStatusDownloading   = "status_downloading"
	KeyStatusCompleted     = "status_completed"
	KeyStatusCancelled     = "status_cancelled"
	KeyStatusFailed        = "status_failed"
	KeyInstallComplete     = "install_complete"
	KeyInstallFailed       = "install_failed"
	KeyInstallCancelled    = "install_cancelled"
	KeyUninstallComplete   = "uninstall_complete"
	KeySteamDetectTitle    = "steam_detect_title"
	KeySteamDetectMessage  = "steam_detect_message"
	KeyInfoTitle           = "info_title"
	KeySettingsSaved       = "settings_saved"
)

// NewLocalization creates a new localization manager using the system locale
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: detectSystemLanguage(),
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// detectSystemLanguage inspects the locale environment. Chinese locales map
// to zh-CN, everything else to English; no locale information at all means
// the primary audience default.
func detectSystemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(env)
		if value == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(value), "zh") {
			return LangZhCN
		}
		return LangEn
	}
	return LangZhCN
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = detectSystemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LangEn]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangZhCN: "简体中文",
		LangEn:   "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Simplified Chinese texts
	l.texts[LangZhCN] = map[string]string{
		KeyAppTitle:            "Limbus Company临时本地化工具",
		KeyGamePath:            "游戏目录",
		KeyGamePathPlaceholder: "选择 LimbusCompany.exe 所在目录",
		KeyBrowse:              "浏览",
		KeyFont:                "字体",
		KeyChooseFont:          "选择字体",
		KeyRestoreDefaultFont:  "恢复默认",
		KeyBundledFont:         "内置字体",
		KeyUseMirror:           "使用镜像加速下载",
		KeyInstall:             "安装汉化",
		KeyCancel:              "取消",
		KeyUninstall:           "卸载汉化",
		KeySettings:            "设置",
		KeySave:                "保存",
		KeyCustomProxy:         "自定义代理地址",
		KeyCustomProxyHint:     "留空使用默认镜像",
		KeyLanguage:            "界面语言",
		KeyContentArtifact:     "汉化文本",
		KeyFontArtifact:        "字体文件",
		KeyPhaseIdle:           "就绪",
		KeyPhaseFetchingInfo:   "正在获取安装信息...",
		KeyPhaseDownloading:    "正在下载...",
		KeyPhaseExtracting:     "正在解压...",
		KeyPhasePostProcessing: "正在完成安装...",
		KeyPhaseCancelling:     "正在取消...",
		KeyStatusPending:       "等待中",
		KeyStatusDownloading:   "下载中",
		KeyStatusCompleted:     "完成",
		KeyStatusCancelled:     "已取消",
		KeyStatusFailed:        "失败",
		KeyInstallComplete:     "汉化安装完成",
		KeyInstallFailed:       "汉化安装失败",
		KeyInstallCancelled:    "已取消安装",
		KeyUninstallComplete:   "汉化卸载完成",
		KeySteamDetectTitle:    "检测到游戏",
		KeySteamDetectMessage:  "在默认 Steam 目录找到了 Limbus Company，是否使用该目录？",
		KeyInfoTitle:           "提示",
		KeySettingsSaved:       "设置已保存",
	}

	// English texts
	l.texts[LangEn] = map[string]string{
		KeyAppTitle:            "Limbus Company Temporary Localization Tool",
		KeyGamePath:            "Game Directory",
		KeyGamePathPlaceholder: "Select the directory containing LimbusCompany.exe",
		KeyBrowse:              "Browse",
		KeyFont:                "Font",
		KeyChooseFont:          "Choose Font",
		KeyRestoreDefaultFont:  "Restore Default",
		KeyBundledFont:         "Bundled font",
		KeyUseMirror:           "Use download mirror",
		KeyInstall:             "Install",
		KeyCancel:              "Cancel",
		KeyUninstall:           "Uninstall",
		KeySettings:            "Settings",
		KeySave:                "Save",
		KeyCustomProxy:         "Custom proxy URL",
		KeyCustomProxyHint:     "Leave empty for the default mirror",
		KeyLanguage:            "Language",
		KeyContentArtifact:     "Language pack",
		KeyFontArtifact:        "Font archive",
		KeyPhaseIdle:           "Ready",
		KeyPhaseFetchingInfo:   "Fetching install info...",
		KeyPhaseDownloading:    "Downloading...",
		KeyPhaseExtracting:     "Extracting...",
		KeyPhasePostProcessing: "Finishing up...",
		KeyPhaseCancelling:     "Cancelling...",
		KeyStatusPending:       "Waiting",
		KeyStatusDownloading:   "Downloading",
		KeyStatusCompleted:     "Done",
		KeyStatusCancelled:     "Cancelled",
		KeyStatusFailed:        "Failed",
		KeyInstallComplete:     "Localization installed",
		KeyInstallFailed:       "Installation failed",
		KeyInstallCancelled:    "Installation cancelled",
		KeyUninstallComplete:   "Localization removed",
		KeySteamDetectTitle:    "Game detected",
		KeySteamDetectMessage:  "Limbus Company was found in the default Steam library. Use this directory?",
		KeyInfoTitle:           "Notice",
		KeySettingsSaved:       "Settings saved",
	}
}
