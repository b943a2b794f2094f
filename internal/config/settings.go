package config

import (
	"fyne.io/fyne/v2"

	"github.com/taskdeck/task-tracker/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDataFile      = "data_file"
	KeyFrameRate     = "frame_rate"
	KeyWindowWidth   = "window_width"
	KeyWindowHeight  = "window_height"
	KeyUserName      = "user_name"
	KeyStartLoggedIn = "start_logged_in"
	KeyLanguage      = "app_language"
)

// Default values
const (
	DefaultFrameRate     = 30
	MinFrameRate         = 10
	MaxFrameRate         = 120
	DefaultWindowWidth   = 1024
	DefaultWindowHeight  = 768
	MinWindowWidth       = 640
	MinWindowHeight      = 480
	DefaultLanguage      = "system"
	DefaultStartLoggedIn = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataFile returns the path of the tasks data file
func (s *Settings) GetDataFile() string {
	path := s.app.Preferences().String(KeyDataFile)
	if path == "" {
		defaultPath, err := platform.DefaultDataFile()
		if err != nil {
			defaultPath = "tasks.yaml"
		}
		s.SetDataFile(defaultPath)
		return defaultPath
	}
	return path
}

// SetDataFile sets the tasks data file path
func (s *Settings) SetDataFile(path string) {
	s.app.Preferences().SetString(KeyDataFile, path)
}

// GetFrameRate returns the configured canvas frame rate
func (s *Settings) GetFrameRate() int {
	value := s.app.Preferences().Int(KeyFrameRate)
	if value <= 0 {
		s.SetFrameRate(DefaultFrameRate)
		return DefaultFrameRate
	}
	return value
}

// SetFrameRate sets the canvas frame rate
func (s *Settings) SetFrameRate(fps int) {
	if fps < MinFrameRate {
		fps = MinFrameRate
	}
	if fps > MaxFrameRate {
		fps = MaxFrameRate
	}
	s.app.Preferences().SetInt(KeyFrameRate, fps)
}

// GetWindowSize returns the configured window size
func (s *Settings) GetWindowSize() (width, height int) {
	width = s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height = s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return width, height
}

// SetWindowSize sets the window size
func (s *Settings) SetWindowSize(width, height int) {
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	s.app.Preferences().SetInt(KeyWindowWidth, width)
	s.app.Preferences().SetInt(KeyWindowHeight, height)
}

// GetUserName returns the remembered sign-in name
func (s *Settings) GetUserName() string {
	return s.app.Preferences().String(KeyUserName)
}

// SetUserName sets the remembered sign-in name
func (s *Settings) SetUserName(name string) {
	s.app.Preferences().SetString(KeyUserName, name)
}

// GetStartLoggedIn returns whether to skip the login screen on launch
func (s *Settings) GetStartLoggedIn() bool {
	return s.app.Preferences().BoolWithFallback(KeyStartLoggedIn, DefaultStartLoggedIn)
}

// SetStartLoggedIn sets whether to skip the login screen on launch
func (s *Settings) SetStartLoggedIn(startLoggedIn bool) {
	s.app.Preferences().SetBool(KeyStartLoggedIn, startLoggedIn)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
