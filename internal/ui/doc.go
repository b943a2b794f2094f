package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It composes frames into draw command buffers, renders them on a canvas surface,
// and overlays native widgets for text input, dialogs and menus. All UI strings
// are localized via Localization.
