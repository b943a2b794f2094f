package ui

import (
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdeck/task-tracker/internal/boundary"
	"github.com/taskdeck/task-tracker/internal/config"
	"github.com/taskdeck/task-tracker/internal/model"
	"github.com/taskdeck/task-tracker/internal/platform"
	"github.com/taskdeck/task-tracker/internal/render"
	"github.com/taskdeck/task-tracker/internal/sample"
)

// Toast notification constants
const (
	RootToastWidth    = 300
	RootToastHeight   = 80
	RootToastMargin   = 20
	RootToastAutoHide = 3 * time.Second
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	boundaryApp  *boundary.App
	loader       *sample.Loader
	settings     *config.Settings
	localization *Localization

	surface *Surface
	content *fyne.Container

	// Native sign-in widgets positioned over the composed login form
	usernameEntry *widget.Entry
	passwordEntry *widget.Entry
	signInBtn     *widget.Button
	loginVisible  bool

	// Frame loop
	frameStop chan struct{}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, boundaryApp *boundary.App, loader *sample.Loader) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		boundaryApp:  boundaryApp,
		loader:       loader,
		settings:     settings,
		localization: localization,
	}

	// Verify that the boundary is properly initialized
	log.Printf("RootUI initialized with boundary app: %v", ui.boundaryApp != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// The settings own the data file location
	loader.SetPath(settings.GetDataFile())
	loader.SetLoadedCallback(ui.onDataLoaded)

	if settings.GetStartLoggedIn() {
		boundaryApp.SetLoggedIn(true)
		if name := settings.GetUserName(); name != "" {
			boundaryApp.Store().SetCurrentUser(name)
		}
	}

	ui.setupUI()
	return ui
}

// Start loads the data file and begins the frame loop. Call once, after
// the window content is set and before ShowAndRun.
func (ui *RootUI) Start() {
	ui.loader.LoadAsync()
	ui.startFrameLoop()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create the composed canvas surface
	ui.surface = NewSurface(ui.boundaryApp)

	// Create sign-in entries. They float above the surface and track the
	// login form rects reported by the last composed frame.
	ui.usernameEntry = widget.NewEntry()
	ui.usernameEntry.SetPlaceHolder(ui.localization.GetText(KeyUsername))
	ui.usernameEntry.SetText(ui.settings.GetUserName())
	ui.usernameEntry.OnSubmitted = func(string) {
		ui.onSignIn()
	}

	ui.passwordEntry = widget.NewPasswordEntry()
	ui.passwordEntry.SetPlaceHolder(ui.localization.GetText(KeyPassword))
	ui.passwordEntry.OnSubmitted = func(string) {
		ui.onSignIn()
	}

	ui.signInBtn = widget.NewButton(ui.localization.GetText(KeySignIn), ui.onSignIn)
	ui.signInBtn.Importance = widget.HighImportance

	ui.usernameEntry.Hide()
	ui.passwordEntry.Hide()
	ui.signInBtn.Hide()

	overlay := container.NewWithoutLayout(ui.usernameEntry, ui.passwordEntry, ui.signInBtn)
	ui.content = container.NewStack(ui.surface, overlay)

	ui.window.SetContent(ui.content)
	ui.window.SetOnClosed(ui.stopFrameLoop)

	// UI setup completed
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Reveal data file menu item
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealDataFile), ui.onRevealDataFile)

	// Sign out menu item
	signOutItem := fyne.NewMenuItem(ui.localization.GetText(KeySignOut), ui.onSignOut)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, revealItem, signOutItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update UI elements
	ui.usernameEntry.SetPlaceHolder(ui.localization.GetText(KeyUsername))
	ui.passwordEntry.SetPlaceHolder(ui.localization.GetText(KeyPassword))
	ui.signInBtn.SetText(ui.localization.GetText(KeySignIn))
}

// startFrameLoop starts the ticker goroutine that steps the surface at
// the configured frame rate. A running loop is stopped first, so the
// method doubles as a restart after a frame rate change.
func (ui *RootUI) startFrameLoop() {
	ui.stopFrameLoop()
	stop := make(chan struct{})
	ui.frameStop = stop

	fps := ui.settings.GetFrameRate()
	interval := time.Second / time.Duration(fps)
	log.Printf("Frame loop running at %d fps", fps)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := time.Now()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				dt := float32(now.Sub(last).Seconds())
				last = now

				// Update UI in main thread
				fyne.Do(func() {
					ui.surface.Step(dt)
					ui.syncOverlay()
				})
			}
		}
	}()
}

// stopFrameLoop stops the ticker goroutine if one is running
func (ui *RootUI) stopFrameLoop() {
	if ui.frameStop != nil {
		close(ui.frameStop)
		ui.frameStop = nil
	}
}

// syncOverlay repositions the native sign-in widgets over the login form
// rects of the last composed frame and drains the one-shot create modal
// request. Runs on the main thread right after every surface step.
func (ui *RootUI) syncOverlay() {
	userBox, userOK := ui.boundaryApp.LoginFieldRect(0)
	passBox, passOK := ui.boundaryApp.LoginFieldRect(1)

	present := userOK && passOK && userBox.Width > 0 && passBox.Width > 0
	if present {
		moveOverlay(ui.usernameEntry, userBox)
		moveOverlay(ui.passwordEntry, passBox)

		// The composed sign-in button sits one field pitch below the
		// password field
		btnBox := passBox
		btnBox.Y += LoginFieldH + LoginGap
		moveOverlay(ui.signInBtn, btnBox)

		if !ui.loginVisible {
			ui.usernameEntry.Show()
			ui.passwordEntry.Show()
			ui.signInBtn.Show()
			ui.loginVisible = true
			ui.window.Canvas().Focus(ui.usernameEntry)
		}
	} else if ui.loginVisible {
		ui.usernameEntry.Hide()
		ui.passwordEntry.Hide()
		ui.signInBtn.Hide()
		ui.loginVisible = false
	}

	if ui.boundaryApp.TakeShowCreateModal() {
		ui.showCreateDialog(ui.boundaryApp.TakePendingCreateService())
	}
}

// moveOverlay positions a widget over a composed rect. Show and Hide
// refresh the widget, Move and Resize do not, so only apply changes.
func moveOverlay(obj fyne.CanvasObject, box render.BoundingBox) {
	pos := fyne.NewPos(box.X, box.Y)
	size := fyne.NewSize(box.Width, box.Height)
	if obj.Position() != pos {
		obj.Move(pos)
	}
	if obj.Size() != size {
		obj.Resize(size)
	}
}

// onSignIn handles the sign-in button and Enter in the login entries
func (ui *RootUI) onSignIn() {
	name := strings.TrimSpace(ui.usernameEntry.Text)
	if name != "" {
		ui.boundaryApp.Store().SetCurrentUser(name)
		ui.settings.SetUserName(name)
	}

	ui.boundaryApp.SetLoggedIn(true)
	ui.passwordEntry.SetText("")

	log.Printf("Signed in as %q", ui.boundaryApp.Store().CurrentUser())
}

// onSignOut returns to the sign-in screen
func (ui *RootUI) onSignOut() {
	ui.boundaryApp.SetLoggedIn(false)
}

// Data loading

// onDataLoaded installs a freshly loaded document. Called from the
// loader's goroutine.
func (ui *RootUI) onDataLoaded(doc *sample.Document) {
	// Update UI in main thread
	fyne.Do(func() {
		taskCount, serviceCount := doc.Apply(ui.boundaryApp)
		ui.boundaryApp.SetDataPulse(0)
		log.Printf("Loaded %d tasks and %d services from %s", taskCount, serviceCount, ui.loader.Path())
	})
}

// Create task flow

// showCreateDialog opens the new-task form. serviceIndex preselects the
// service the request originated from, NoSelection leaves it empty.
func (ui *RootUI) showCreateDialog(serviceIndex int) {
	titleEntry := widget.NewEntry()
	titleEntry.SetPlaceHolder(ui.localization.GetText(KeyTitle))

	descEntry := widget.NewMultiLineEntry()
	descEntry.SetPlaceHolder(ui.localization.GetText(KeyDescription))
	descEntry.SetMinRowsVisible(3)

	// Service options come from the decoded service table
	st := ui.boundaryApp.Store()
	serviceOptions := []string{}
	for i := 0; i < st.ServiceCount(); i++ {
		serviceOptions = append(serviceOptions, st.Service(i).Name.String())
	}
	serviceSelect := widget.NewSelect(serviceOptions, nil)
	if serviceIndex >= 0 && serviceIndex < len(serviceOptions) {
		serviceSelect.SetSelected(serviceOptions[serviceIndex])
	}

	priorities := []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent}
	priorityOptions := []string{}
	for _, p := range priorities {
		priorityOptions = append(priorityOptions, p.String())
	}
	prioritySelect := widget.NewSelect(priorityOptions, nil)
	prioritySelect.SetSelected(model.PriorityMedium.String())

	dueDateEntry := widget.NewEntry()
	dueDateEntry.SetPlaceHolder("YYYY-MM-DD")

	assignedToEntry := widget.NewEntry()
	assignedToEntry.SetText(st.CurrentUser())

	form := container.NewVBox(
		widget.NewLabel(ui.localization.GetText(KeyTitle)+":"),
		titleEntry,

		widget.NewLabel(ui.localization.GetText(KeyDescription)+":"),
		descEntry,

		widget.NewLabel(ui.localization.GetText(KeyService)+":"),
		serviceSelect,

		widget.NewLabel(ui.localization.GetText(KeyPriority)+":"),
		prioritySelect,

		widget.NewLabel(ui.localization.GetText(KeyDueDate)+":"),
		dueDateEntry,

		widget.NewLabel(ui.localization.GetText(KeyAssignedTo)+":"),
		assignedToEntry,
	)

	d := dialog.NewCustomConfirm(
		ui.localization.GetText(KeyNewTask),
		ui.localization.GetText(KeyCreate),
		ui.localization.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			ui.boundaryApp.SetCreatePanelVisible(false)

			if !confirmed {
				return
			}

			title := strings.TrimSpace(titleEntry.Text)
			if title == "" {
				widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPleaseEnterTitle)), ui.window.Canvas())
				return
			}

			priority := model.PriorityMedium
			if idx := prioritySelect.SelectedIndex(); idx >= 0 && idx < len(priorities) {
				priority = priorities[idx]
			}

			ui.createTask(title, descEntry.Text, serviceSelect.Selected, priority, dueDateEntry.Text, assignedToEntry.Text)
		},
		ui.window,
	)

	d.Resize(fyne.NewSize(460, 480))
	d.Show()
}

// createTask appends a task to the loaded document and pushes the grown
// table back through the boundary
func (ui *RootUI) createTask(title, description, service string, priority model.Priority, dueDate, assignedTo string) {
	doc := ui.loader.Document()
	if doc == nil {
		log.Printf("No document loaded yet, ignoring create request")
		return
	}

	doc.Append(sample.Task{
		Title:       title,
		Description: description,
		Service:     service,
		Priority:    sample.Priority(priority),
		DueDate:     strings.TrimSpace(dueDate),
		AssignedTo:  strings.TrimSpace(assignedTo),
	})

	// Re-applying the document resets the current user to the one named
	// in the file, so carry the signed-in name across
	user := ui.boundaryApp.Store().CurrentUser()
	taskCount, serviceCount := doc.Apply(ui.boundaryApp)
	if user != "" {
		ui.boundaryApp.Store().SetCurrentUser(user)
	}

	ui.boundaryApp.SetDataPulse(0)
	log.Printf("Created task %q (%d tasks, %d services)", title, taskCount, serviceCount)

	ui.showToast(ui.localization.GetText(KeyTaskCreated), title)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings that need an active response:
// data file path, frame rate and language
func (ui *RootUI) onSettingsSaved() {
	ui.loader.SetPath(ui.settings.GetDataFile())
	ui.loader.LoadAsync()

	ui.startFrameLoop()

	ui.refreshUITexts()
	ui.createMenu()
}

// onRevealDataFile shows the data file in the system file manager
func (ui *RootUI) onRevealDataFile() {
	path := ui.settings.GetDataFile()
	log.Printf("onRevealDataFile called for path: %s", path)

	if err := platform.RevealInFileManager(path); err != nil {
		log.Printf("Error revealing data file %s: %v", path, err)
		widget.ShowPopUp(widget.NewLabel("Error: "+err.Error()), ui.window.Canvas())
	}
}

// showToast shows an in-app toast notification in the top-right corner
func (ui *RootUI) showToast(title, message string) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(message)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	// Create close button
	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton("✕", func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	// Layout the toast content
	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(header, messageLabel)

	// Create and position the popup
	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(RootToastWidth, RootToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-RootToastMargin, RootToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(RootToastAutoHide)
		fyne.Do(func() {
			toastPopup.Hide()
		})
	}()
}
