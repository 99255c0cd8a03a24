package models

// BackgroundTheme selects the board background rendering.
type BackgroundTheme string

const (
	ThemeNone     BackgroundTheme = "none"
	ThemeGradient BackgroundTheme = "gradient"
	ThemeDots     BackgroundTheme = "dots"
	ThemeCustom   BackgroundTheme = "custom"
)

// Valid reports whether t is a known background theme.
func (t BackgroundTheme) Valid() bool {
	switch t {
	case ThemeNone, ThemeGradient, ThemeDots, ThemeCustom:
		return true
	}
	return false
}

// DefaultColumnTransparency is the transparency applied when a background
// theme is first activated, so the background stays visible behind columns.
const DefaultColumnTransparency = 70

// PipelineSettings is the per-user board configuration singleton.
//
// ColumnTransparency is a percentage: 0 is fully opaque, 100 fully
// transparent. When BackgroundTheme is ThemeCustom, CustomBackgroundURL must
// be set or the theme falls back to ThemeNone.
type PipelineSettings struct {
	CustomStages        []Stage
	BackgroundTheme     BackgroundTheme
	CustomBackgroundURL string
	ColumnTransparency  int
}

// DefaultSettings returns the settings used when nothing is stored yet.
func DefaultSettings() *PipelineSettings {
	return &PipelineSettings{
		BackgroundTheme:    ThemeNone,
		ColumnTransparency: 0,
	}
}

// SettingsPatch is a partial settings update. Nil fields keep their
// previously stored values; Save performs a field-level merge, never a
// full overwrite.
type SettingsPatch struct {
	CustomStages        *[]Stage
	BackgroundTheme     *BackgroundTheme
	CustomBackgroundURL *string
	ColumnTransparency  *int
}
