package i18n

import (
	"fmt"
	"os"
	"strings"
)

var lang = "en"

var messages = map[string]map[string]string{
	"en": {
		// Prompt messages
		"prompt.username":       "User: ",
		"prompt.password":       "Password for user %s: ",
		"prompt.password_again": "Re-enter password for user %s: ",
		"prompt.mismatch":       "Passwords do not match",
		"prompt.cancelled":      "Cancelled",

		// Ask command messages
		"ask.no_terminal": "Standard input is not a terminal; reading credentials from piped input",

		// Error messages
		"error.invalid_input": "Invalid input: %s",
	},
}

// T translates a message key with optional format arguments
func T(key string, args ...any) string {
	msg := messages[lang][key]
	if msg == "" {
		msg = messages["en"][key]
	}
	if msg == "" {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang sets the current language
func SetLang(l string) {
	// Normalize language code
	l = strings.ToLower(strings.TrimSpace(l))
	if len(l) > 2 {
		l = l[:2]
	}

	if _, ok := messages[l]; ok {
		lang = l
	}
}

// GetLang returns the current language
func GetLang() string {
	return lang
}

// DetectLang detects the user's preferred language from environment
func DetectLang() string {
	// Check CREDCTL_LANG first
	if l := os.Getenv("CREDCTL_LANG"); l != "" {
		return normalizeLocale(l)
	}

	// Check LC_MESSAGES
	if l := os.Getenv("LC_MESSAGES"); l != "" {
		return normalizeLocale(l)
	}

	// Check LANG
	if l := os.Getenv("LANG"); l != "" {
		return normalizeLocale(l)
	}

	// Check LC_ALL
	if l := os.Getenv("LC_ALL"); l != "" {
		return normalizeLocale(l)
	}

	return "en"
}

// normalizeLocale extracts a 2-letter language code from a locale string
func normalizeLocale(locale string) string {
	// Remove encoding (e.g., "en_US.UTF-8" -> "en_US")
	if idx := strings.Index(locale, "."); idx > 0 {
		locale = locale[:idx]
	}

	// Remove country code (e.g., "en_US" -> "en")
	if idx := strings.Index(locale, "_"); idx > 0 {
		locale = locale[:idx]
	}

	// Normalize to lowercase
	locale = strings.ToLower(locale)

	if len(locale) >= 2 {
		return locale[:2]
	}

	return "en"
}

// Init initializes i18n with the detected or configured language
func Init(configuredLang string) {
	if configuredLang != "" {
		SetLang(configuredLang)
	} else {
		SetLang(DetectLang())
	}
}

// AvailableLanguages returns the list of available languages
func AvailableLanguages() []string {
	langs := make([]string, 0, len(messages))
	for l := range messages {
		langs = append(langs, l)
	}
	return langs
}

// AddMessages adds or updates messages for a language
func AddMessages(langCode string, msgs map[string]string) {
	if messages[langCode] == nil {
		messages[langCode] = make(map[string]string)
	}
	for k, v := range msgs {
		messages[langCode][k] = v
	}
}
