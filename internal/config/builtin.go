package config

// Default returns the builtin configuration. These mappings are always
// available without a config file; a user file can extend or override them.
func Default() *Config {
	return &Config{
		Activation: Activation{
			Tool: "activate",
			Classes: map[string]string{
				"code":           "code",
				"vscode":         "code",
				"google-chrome":  "chrome",
				"chrome":         "chrome",
				"firefox":        "firefox",
				"terminal":       "terminal",
				"gnome-terminal": "terminal",
				"nautilus":       "nautilus",
			},
			TitleKeywords: []TitleKeyword{
				{Keyword: "visual studio code", Program: "code"},
				{Keyword: "vscode", Program: "code"},
				{Keyword: "chrome", Program: "chrome"},
				{Keyword: "firefox", Program: "firefox"},
				{Keyword: "terminal", Program: "terminal"},
			},
		},
	}
}
