package render

import "fmt"

// CommandType discriminates packed draw records. The numeric values are
// part of the wire format and must not be reordered.
type CommandType uint8

const (
	CommandNone CommandType = iota
	CommandRectangle
	CommandBorder
	CommandText
	CommandImage
	CommandScissorStart
	CommandScissorEnd
	CommandCustom
)

func (c CommandType) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandRectangle:
		return "Rectangle"
	case CommandBorder:
		return "Border"
	case CommandText:
		return "Text"
	case CommandImage:
		return "Image"
	case CommandScissorStart:
		return "ScissorStart"
	case CommandScissorEnd:
		return "ScissorEnd"
	case CommandCustom:
		return "Custom"
	default:
		return fmt.Sprintf("CommandType(%d)", uint8(c))
	}
}

// BoundingBox is a screen-space rectangle, origin top left.
type BoundingBox struct {
	X, Y          float32
	Width, Height float32
}

// Color holds RGBA channels on a 0..255 scale.
type Color struct {
	R, G, B, A float32
}

// CornerRadius holds per-corner rounding in pixels.
type CornerRadius struct {
	TopLeft     float32
	TopRight    float32
	BottomRight float32
	BottomLeft  float32
}

// BorderWidth holds per-edge border widths in pixels.
type BorderWidth struct {
	Left            uint16
	Right           uint16
	Top             uint16
	Bottom          uint16
	BetweenChildren uint16
}

// TextRef points into the frame's string table. Handle 0 means no text.
type TextRef struct {
	Handle uint32
	Length uint32
}

type RectangleData struct {
	Color        Color
	CornerRadius CornerRadius
}

type BorderData struct {
	Color        Color
	CornerRadius CornerRadius
	Width        BorderWidth
}

type TextData struct {
	Text          TextRef
	FontID        uint16
	FontSize      uint16
	LetterSpacing uint16
	LineHeight    uint16
	Color         Color
}

type ImageData struct {
	Color        Color
	CornerRadius CornerRadius
	Data         uint32
}

type CustomData struct {
	Color        Color
	CornerRadius CornerRadius
	Data         uint32
}

// Command is one draw record. Only the payload matching Type is
// meaningful; the others stay zero.
type Command struct {
	Type   CommandType
	ZIndex int16
	Box    BoundingBox

	Rectangle RectangleData
	Border    BorderData
	Text      TextData
	Image     ImageData
	Custom    CustomData
}
