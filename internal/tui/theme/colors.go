package theme

import (
	"github.com/hireloop/funnel/internal/config/colors"
	"github.com/hireloop/funnel/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Background     string
	ColumnBg       string
	Subtle         string
	Normal         string
	Create         string
	Delete         string
	ColumnBorder   string
	CardBorder     string
	CardBg         string
	SelectedBorder string
	SelectedBg     string
	HoverBorder    string
	Title          string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	Background = scheme.Background
	ColumnBg = scheme.ColumnBackground
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Create = scheme.Create
	Delete = scheme.Delete
	ColumnBorder = scheme.ColumnBorder
	CardBorder = scheme.CardBorder
	CardBg = scheme.CardBackground
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	HoverBorder = scheme.HoverBorder
	Title = scheme.Title
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
}

// stageColorHex maps stage color tags to terminal hex values.
var stageColorHex = map[models.StageColor]string{
	models.ColorSlate:  "#8A8A8A",
	models.ColorBlue:   "#5F87D7",
	models.ColorCyan:   "#5FD7D7",
	models.ColorPurple: "#AF87FF",
	models.ColorYellow: "#D7D75F",
	models.ColorOrange: "#FFAF5F",
	models.ColorGreen:  "#5FD75F",
	models.ColorRed:    "#FF5F5F",
}

// StageColor returns the hex color for a stage's color tag.
func StageColor(tag models.StageColor) string {
	if hex, ok := stageColorHex[tag]; ok {
		return hex
	}
	return Subtle
}

// backgroundThemeHex maps board background themes to a base color rendered
// behind the columns. The custom theme falls back to the scheme background;
// the referenced asset only matters to graphical clients.
var backgroundThemeHex = map[models.BackgroundTheme]string{
	models.ThemeGradient: "#2D2040",
	models.ThemeDots:     "#20282D",
}

// BoardBackground returns the board background color for a theme.
func BoardBackground(t models.BackgroundTheme) string {
	if hex, ok := backgroundThemeHex[t]; ok {
		return hex
	}
	return Background
}
