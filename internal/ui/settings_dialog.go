package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdeck/task-tracker/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	dataFileEntry      *widget.Entry
	frameRateEntry     *widget.Entry
	userNameEntry      *widget.Entry
	startLoggedInCheck *widget.Check
	languageSelect     *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Data file selection
	sd.dataFileEntry = widget.NewEntry()
	sd.dataFileEntry.SetPlaceHolder("Path to the YAML data file")

	browseFileBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDataFile)
	dataFileRow := container.NewBorder(nil, nil, nil, browseFileBtn, sd.dataFileEntry)

	// Frame rate
	sd.frameRateEntry = widget.NewEntry()
	sd.frameRateEntry.SetPlaceHolder("10-120")

	// User name used to prefill the sign-in form
	sd.userNameEntry = widget.NewEntry()
	sd.userNameEntry.SetPlaceHolder("admin")

	// Skip the sign-in screen on startup
	sd.startLoggedInCheck = widget.NewCheck(sd.localization.GetText(KeyStartLoggedIn), nil)

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.localization.GetAvailableLanguages()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDataFile)+":"),
		dataFileRow,

		widget.NewLabel(sd.localization.GetText(KeyFrameRate)+":"),
		sd.frameRateEntry,

		widget.NewLabel(sd.localization.GetText(KeyUserName)+":"),
		sd.userNameEntry,

		sd.startLoggedInCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 400))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataFileEntry.SetText(sd.settings.GetDataFile())
	sd.frameRateEntry.SetText(strconv.Itoa(sd.settings.GetFrameRate()))
	sd.userNameEntry.SetText(sd.settings.GetUserName())
	sd.startLoggedInCheck.SetChecked(sd.settings.GetStartLoggedIn())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDataFile handles data file browsing
func (sd *SettingsDialog) onBrowseDataFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.dataFileEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save data file path
	dataFile := sd.dataFileEntry.Text
	if dataFile != "" {
		sd.settings.SetDataFile(dataFile)
	}

	// Validate and save frame rate
	frameRateStr := sd.frameRateEntry.Text
	if frameRateStr != "" {
		if frameRate, err := strconv.Atoi(frameRateStr); err == nil {
			sd.settings.SetFrameRate(frameRate)
		}
	}

	// Save user name
	sd.settings.SetUserName(sd.userNameEntry.Text)

	// Save startup login preference
	sd.settings.SetStartLoggedIn(sd.startLoggedInCheck.Checked)

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
		sd.localization.SetLanguage(sd.languageSelect.Selected)
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
