// Package theme holds the colour palettes the CLI tables and the
// terminal browser are styled with.
package theme

type Theme struct {
	Name string

	// semantic
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// task priority
	PriorityUrgent string
	PriorityHigh   string
	PriorityMedium string
	PriorityLow    string

	// task status
	StatusCompleted  string
	StatusInProgress string
	StatusPending    string
	StatusCancelled  string

	// attendance
	Present string
	Late    string
	Leave   string
	Absent  string

	// UI element
	BorderColor string
	SelectedBg  string
	SelectedFg  string
	HeaderBg    string
	HeaderFg    string
	ChipBg      string
	Separator   string
	HelpText    string
}

var themeNames = []string{"default", "dark", "light"}

func predefined() map[string]*Theme {
	return map[string]*Theme{
		"default": DefaultTheme(),
		"dark":    DarkTheme(),
		"light":   LightTheme(),
	}
}

func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		Primary:   "#2E86AB",
		Secondary: "#A3CEF1",
		Success:   "#3BB273",
		Error:     "#E15554",
		Warning:   "#E1BC29",

		TextPrimary:   "#F5F5F5",
		TextSecondary: "#9AA5B1",
		TextMuted:     "#616E7C",

		PriorityUrgent: "#E15554",
		PriorityHigh:   "#F28F3B",
		PriorityMedium: "#2E86AB",
		PriorityLow:    "#9AA5B1",

		StatusCompleted:  "#3BB273",
		StatusInProgress: "#E1BC29",
		StatusPending:    "#9AA5B1",
		StatusCancelled:  "#E15554",

		Present: "#3BB273",
		Late:    "#E1BC29",
		Leave:   "#7768AE",
		Absent:  "#E15554",

		BorderColor: "#2E86AB",
		SelectedBg:  "#2E86AB",
		SelectedFg:  "#F5F5F5",
		HeaderBg:    "#1F2933",
		HeaderFg:    "#A3CEF1",
		ChipBg:      "#323F4B",
		Separator:   "#3E4C59",
		HelpText:    "#7B8794",
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",

		Primary:   "#BB9AF7",
		Secondary: "#7AA2F7",
		Success:   "#9ECE6A",
		Error:     "#F7768E",
		Warning:   "#E0AF68",

		TextPrimary:   "#C0CAF5",
		TextSecondary: "#9AA5CE",
		TextMuted:     "#565F89",

		PriorityUrgent: "#F7768E",
		PriorityHigh:   "#FF9E64",
		PriorityMedium: "#7AA2F7",
		PriorityLow:    "#565F89",

		StatusCompleted:  "#9ECE6A",
		StatusInProgress: "#E0AF68",
		StatusPending:    "#565F89",
		StatusCancelled:  "#F7768E",

		Present: "#9ECE6A",
		Late:    "#E0AF68",
		Leave:   "#BB9AF7",
		Absent:  "#F7768E",

		BorderColor: "#BB9AF7",
		SelectedBg:  "#3D59A1",
		SelectedFg:  "#C0CAF5",
		HeaderBg:    "#1A1B26",
		HeaderFg:    "#BB9AF7",
		ChipBg:      "#24283B",
		Separator:   "#414868",
		HelpText:    "#565F89",
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name: "light",

		Primary:   "#0B5FFF",
		Secondary: "#4C5C96",
		Success:   "#1E7B34",
		Error:     "#C62828",
		Warning:   "#B26A00",

		TextPrimary:   "#1B1F24",
		TextSecondary: "#57606A",
		TextMuted:     "#8C959F",

		PriorityUrgent: "#C62828",
		PriorityHigh:   "#B26A00",
		PriorityMedium: "#0B5FFF",
		PriorityLow:    "#8C959F",

		StatusCompleted:  "#1E7B34",
		StatusInProgress: "#B26A00",
		StatusPending:    "#8C959F",
		StatusCancelled:  "#C62828",

		Present: "#1E7B34",
		Late:    "#B26A00",
		Leave:   "#6639BA",
		Absent:  "#C62828",

		BorderColor: "#0B5FFF",
		SelectedBg:  "#DDF4FF",
		SelectedFg:  "#1B1F24",
		HeaderBg:    "#F6F8FA",
		HeaderFg:    "#0B5FFF",
		ChipBg:      "#EAEEF2",
		Separator:   "#D0D7DE",
		HelpText:    "#57606A",
	}
}
