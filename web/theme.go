package web

// Theme is the visitor's colour scheme, kept in a cookie for the browser
// session rather than in page-global state.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	ThemeCookie = "theme"
	// PrefersColorSchemeHeader is the client hint browsers send when asked.
	PrefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"
)

// ResolveTheme picks the saved choice first, then the browser preference,
// then light.
func ResolveTheme(saved, prefers string) Theme {
	switch Theme(saved) {
	case ThemeLight, ThemeDark:
		return Theme(saved)
	}
	if prefers == "dark" {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// BodyClass is the class added to <body>, empty for light.
func (t Theme) BodyClass() string {
	if t == ThemeDark {
		return "dark-theme"
	}
	return ""
}
