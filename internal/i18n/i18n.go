// Package i18n defines the supported interface languages and education
// levels, and the localized strings shared across commands and screens.
package i18n

// Language is a supported interface language code.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
	French  Language = "fr"
	Spanish Language = "es"
)

// Languages lists all supported language codes.
var Languages = []Language{Arabic, English, French, Spanish}

// Valid reports whether l is a supported language code.
func (l Language) Valid() bool {
	switch l {
	case Arabic, English, French, Spanish:
		return true
	}
	return false
}

// Name returns the language's native display name.
func (l Language) Name() string {
	switch l {
	case Arabic:
		return "العربية"
	case French:
		return "Français"
	case Spanish:
		return "Español"
	default:
		return "English"
	}
}

// RTL reports whether the language is written right to left.
func (l Language) RTL() bool {
	return l == Arabic
}

// EducationLevel is the learner's schooling stage. It scales quiz
// difficulty and grading.
type EducationLevel string

const (
	Primary    EducationLevel = "primary"
	Middle     EducationLevel = "middle"
	High       EducationLevel = "high"
	University EducationLevel = "university"
)

// Levels lists all education levels in ascending order.
var Levels = []EducationLevel{Primary, Middle, High, University}

// Valid reports whether e is a known education level.
func (e EducationLevel) Valid() bool {
	switch e {
	case Primary, Middle, High, University:
		return true
	}
	return false
}

// Text is a string localized to every supported language.
type Text map[Language]string

// In returns the string for l, falling back to English.
func (t Text) In(l Language) string {
	if s, ok := t[l]; ok && s != "" {
		return s
	}
	return t[English]
}
