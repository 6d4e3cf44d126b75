package domain

// Settings holds user preferences.
type Settings struct {
	Theme         string `json:"theme" yaml:"theme"`
	Notifications bool   `json:"notifications" yaml:"notifications"`
	DefaultView   string `json:"defaultView" yaml:"defaultView"`
}

// DefaultSettings returns the preferences used when none are stored.
func DefaultSettings() Settings {
	return Settings{
		Theme:         "light",
		Notifications: true,
		DefaultView:   "dashboard",
	}
}

// SettingsPatch describes a partial settings update.
type SettingsPatch struct {
	Theme         *string `json:"theme,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
	DefaultView   *string `json:"defaultView,omitempty"`
}

func (p SettingsPatch) Apply(s Settings) Settings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.DefaultView != nil {
		s.DefaultView = *p.DefaultView
	}
	return s
}
