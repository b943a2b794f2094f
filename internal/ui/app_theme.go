package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AppTheme aligns the native widgets with the composed canvas palette so
// overlaid entries and dialogs do not look bolted on
type AppTheme struct{}

// NewAppTheme creates the application theme
func NewAppTheme() fyne.Theme {
	return &AppTheme{}
}

// Color returns theme colors
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 59, G: 130, B: 246, A: 255} // Blue for primary actions
	case theme.ColorNameSuccess:
		return color.RGBA{R: 34, G: 197, B: 94, A: 255} // Green for completed
	case theme.ColorNameWarning:
		return color.RGBA{R: 234, G: 179, B: 8, A: 255} // Amber for medium priority
	case theme.ColorNameError:
		return color.RGBA{R: 239, G: 68, B: 68, A: 255} // Red for urgent
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 35, G: 39, B: 47, A: 255} // Sidebar dark
		}
		return color.RGBA{R: 245, G: 245, B: 250, A: 255} // Canvas background
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 30, G: 30, B: 30, A: 255} // Body text
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 250, G: 250, B: 252, A: 255} // Input fill
	case theme.ColorNameInputBorder:
		return color.RGBA{R: 220, G: 220, B: 230, A: 255} // Hairline borders
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return 6 // Match the composed input fields
	case theme.SizeNameSelectionRadius:
		return 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
