package tuiutil

const (
	HighlightKey                = "Highlight"
	HeaderBackgroundKey         = "HeaderBackground"
	HeaderBorderBackgroundKey   = "HeaderBorderBackground"
	HeaderForegroundKey         = "HeaderForeground"
	FooterForegroundColorKey    = "FooterForeground"
	HeaderBottomColorKey        = "HeaderBottom"
	HeaderTopForegroundColorKey = "HeaderTopForeground"
	BorderColorKey              = "BorderColor"
	TextColorKey                = "TextColor"
	ErrorColorKey               = "ErrorColor"
)

var (
	Ascii         = false // render without colours
	SelectedTheme = 0
	ValidThemes   = []string{
		"default",   // 0
		"nord",      // 1
		"solarized", // not accurate but whatever
	}
	ThemesMap = map[int]map[string]string{
		2: {
			HeaderBackgroundKey:         "#268bd2",
			HeaderBorderBackgroundKey:   "#268bd2",
			HeaderBottomColorKey:        "#586e75",
			BorderColorKey:              "#586e75",
			TextColorKey:                "#fdf6e3",
			HeaderForegroundKey:         "#fdf6e3",
			HighlightKey:                "#2aa198",
			FooterForegroundColorKey:    "#d33682",
			HeaderTopForegroundColorKey: "#d33682",
			ErrorColorKey:               "#dc322f",
		},
		1: {
			HeaderBackgroundKey:         "#5e81ac",
			HeaderBorderBackgroundKey:   "#5e81ac",
			HeaderBottomColorKey:        "#5e81ac",
			BorderColorKey:              "#eceff4",
			TextColorKey:                "#eceff4",
			HeaderForegroundKey:         "#eceff4",
			HighlightKey:                "#88c0d0",
			FooterForegroundColorKey:    "#b48ead",
			HeaderTopForegroundColorKey: "#b48ead",
			ErrorColorKey:               "#bf616a",
		},
		0: {
			HeaderBackgroundKey:         "#505050",
			HeaderBorderBackgroundKey:   "#505050",
			HeaderBottomColorKey:        "#FFFFFF",
			BorderColorKey:              "#FFFFFF",
			TextColorKey:                "#FFFFFF",
			HeaderForegroundKey:         "#FFFFFF",
			HighlightKey:                "#A0A0A0",
			FooterForegroundColorKey:    "#C2C2C2",
			HeaderTopForegroundColorKey: "#C2C2C2",
			ErrorColorKey:               "#FF5F5F",
		},
	}
)

// SetTheme selects a theme by name, falling back to default for unknown names
func SetTheme(name string) string {
	for i, v := range ValidThemes {
		if v == name {
			SelectedTheme = i
			return v
		}
	}
	SelectedTheme = 0
	return ValidThemes[0]
}

// NextTheme cycles to the following theme and returns its name
func NextTheme() string {
	SelectedTheme = (SelectedTheme + 1) % len(ValidThemes)
	return ValidThemes[SelectedTheme]
}

func color(key string) string {
	return ThemesMap[SelectedTheme][key]
}

func Highlight() string              { return color(HighlightKey) }
func HeaderBackground() string       { return color(HeaderBackgroundKey) }
func HeaderBorderBackground() string { return color(HeaderBorderBackgroundKey) }
func HeaderForeground() string       { return color(HeaderForegroundKey) }
func FooterForeground() string       { return color(FooterForegroundColorKey) }
func HeaderBottom() string           { return color(HeaderBottomColorKey) }
func HeaderTopForeground() string    { return color(HeaderTopForegroundColorKey) }
func BorderColor() string            { return color(BorderColorKey) }
func TextColor() string              { return color(TextColorKey) }
func ErrorColor() string             { return color(ErrorColorKey) }
