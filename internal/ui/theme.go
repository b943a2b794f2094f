package ui

import (
	"github.com/taskdeck/task-tracker/internal/model"
	"github.com/taskdeck/task-tracker/internal/render"
)

// Palette and sizing shared by the composer and the hosts, kept in one
// place to avoid magic numbers scattered across the layout code.

// Font slots. Hosts map these to real faces; the composer only tags text
// commands with them.
const (
	FontBody16  uint16 = 0
	FontBody20  uint16 = 1
	FontTitle24 uint16 = 2
	FontTitle32 uint16 = 3
)

// Core palette
var (
	ColorBG           = render.Color{R: 245, G: 245, B: 250, A: 255}
	ColorWhite        = render.Color{R: 255, G: 255, B: 255, A: 255}
	ColorSidebar      = render.Color{R: 35, G: 39, B: 47, A: 255}
	ColorSidebarHover = render.Color{R: 45, G: 50, B: 60, A: 255}
	ColorPrimary      = render.Color{R: 59, G: 130, B: 246, A: 255}
	ColorPrimaryHover = render.Color{R: 37, G: 99, B: 235, A: 255}
	ColorText         = render.Color{R: 30, G: 30, B: 30, A: 255}
	ColorTextLight    = render.Color{R: 100, G: 100, B: 100, A: 255}
	ColorTextWhite    = render.Color{R: 255, G: 255, B: 255, A: 255}
	ColorBorder       = render.Color{R: 220, G: 220, B: 230, A: 255}
)

// Secondary fills
var (
	ColorSidebarDivider = render.Color{R: 60, G: 65, B: 75, A: 255}
	ColorSidebarCaption = render.Color{R: 150, G: 150, B: 160, A: 255}
	ColorSidebarEmpty   = render.Color{R: 170, G: 170, B: 180, A: 255}
	ColorUserChip       = render.Color{R: 45, G: 50, B: 60, A: 255}
	ColorCardSelected   = render.Color{R: 235, G: 245, B: 255, A: 255}
	ColorCardHover      = render.Color{R: 250, G: 250, B: 252, A: 255}
	ColorServiceTag     = render.Color{R: 235, G: 235, B: 242, A: 255}
	ColorInputFill      = render.Color{R: 250, G: 250, B: 252, A: 255}
	ColorCloseHover     = render.Color{R: 240, G: 240, B: 245, A: 255}
)

// Status and priority accents
var (
	colorStatusPending    = render.Color{R: 156, G: 163, B: 175, A: 255}
	colorStatusInProgress = render.Color{R: 59, G: 130, B: 246, A: 255}
	colorStatusCompleted  = render.Color{R: 34, G: 197, B: 94, A: 255}

	colorPriorityLow    = render.Color{R: 34, G: 197, B: 94, A: 255}
	colorPriorityMedium = render.Color{R: 234, G: 179, B: 8, A: 255}
	colorPriorityHigh   = render.Color{R: 249, G: 115, B: 22, A: 255}
	colorPriorityUrgent = render.Color{R: 239, G: 68, B: 68, A: 255}
)

// Layout sizing
const (
	SidebarWidth    float32 = 220
	SidebarPad      float32 = 16
	SidebarTopPad   float32 = 20
	SidebarGap      float32 = 8
	ServiceButtonH  float32 = 40
	UserChipH       float32 = 50
	UserAvatarSize  float32 = 32
	ListPad         float32 = 24
	ListGap         float32 = 16
	FilterButtonH   float32 = 28
	CreateButtonH   float32 = 40
	ServiceTagH     float32 = 28
	PulseBarH       float32 = 4
	CardPadX        float32 = 16
	CardPadY        float32 = 14
	CardGap         float32 = 8
	CardListGap     float32 = 12
	PriorityDotSize float32 = 8
	StatusBadgePadX float32 = 8
	StatusBadgePadY float32 = 4
	DockFraction    float32 = 0.33
	DockPadLeft     float32 = 20
	DockPadRight    float32 = 24
	DockPadY        float32 = 20
	DockGap         float32 = 12
	DockFieldGap    float32 = 4
	DockCloseSize   float32 = 28
	DockDotSize     float32 = 10
	LoginBoxW       float32 = 400
	LoginBoxPad     float32 = 32
	LoginGap        float32 = 24
	LoginFieldH     float32 = 44
)

// StatusColor returns the accent for a task status, falling back to the
// pending color for values outside the known range.
func StatusColor(s model.Status) render.Color {
	switch s {
	case model.StatusPending:
		return colorStatusPending
	case model.StatusInProgress:
		return colorStatusInProgress
	case model.StatusCompleted:
		return colorStatusCompleted
	default:
		return colorStatusPending
	}
}

// PriorityColor returns the accent for a task priority, falling back to
// the low color for values outside the known range.
func PriorityColor(p model.Priority) render.Color {
	switch p {
	case model.PriorityLow:
		return colorPriorityLow
	case model.PriorityMedium:
		return colorPriorityMedium
	case model.PriorityHigh:
		return colorPriorityHigh
	case model.PriorityUrgent:
		return colorPriorityUrgent
	default:
		return colorPriorityLow
	}
}
