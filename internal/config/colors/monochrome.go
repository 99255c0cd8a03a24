package colors

// Monochrome returns a grayscale color scheme for minimal terminals
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Background:       "#121212",
		ColumnBackground: "#1C1C1C",

		Create: "#D0D0D0",
		Delete: "#FFFFFF",

		ColumnBorder:   "#6C6C6C",
		CardBorder:     "#444444",
		CardBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#303030",
		HoverBorder:    "#BCBCBC",

		Title:  "#FFFFFF",
		Subtle: "#6C6C6C",
		Normal: "#D0D0D0",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#303030",
		ErrorFg: "#FFFFFF",
		ErrorBg: "#444444",

		StatusBarBg:   "#303030",
		StatusBarText: "#D0D0D0",
	}
}
