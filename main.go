package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/taskdeck/task-tracker/internal/boundary"
	"github.com/taskdeck/task-tracker/internal/config"
	"github.com/taskdeck/task-tracker/internal/platform"
	"github.com/taskdeck/task-tracker/internal/sample"
	"github.com/taskdeck/task-tracker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.taskdeck.task-tracker"
	AppName = "Task Tracker"

	// ScratchArenaSize is the per-frame bump arena backing block size
	ScratchArenaSize = 64 * 1024
)

func main() {
	// Log version information
	fmt.Printf("Task Tracker v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply application theme
	myApp.Settings().SetTheme(ui.NewAppTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)

	settings := config.NewSettings(myApp)
	width, height := settings.GetWindowSize()
	myWindow.Resize(fyne.NewSize(float32(width), float32(height)))

	// Initialize services
	dataFile := settings.GetDataFile()
	if err := platform.EnsureParentDir(dataFile); err != nil {
		fmt.Printf("failed to ensure data dir: %v\n", err)
	}

	boundaryApp := boundary.New(ui.NewComposer())
	boundaryApp.BindScratchMemory(make([]byte, ScratchArenaSize))

	loader := sample.NewLoader(dataFile)

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, boundaryApp, loader)
	root.Start()

	// Show and run
	myWindow.ShowAndRun()
}
