package models

// Theme is the persisted UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme value.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
