package render

import (
	"encoding/binary"
	"math"
)

// Packed buffer geometry. Every record occupies RecordSize bytes no matter
// which payload it carries; unused payload bytes are zero.
const (
	HeaderSize = 16
	RecordSize = 64
)

// Record field offsets shared by every command type.
const (
	recOffType   = 0
	recOffZIndex = 2
	recOffBox    = 4
)

// Payload offsets. Rectangle, border, image and custom records carry color
// at 20 and corner radii at 36; text records use 20..35 for the string
// reference and font fields and move color to 36.
const (
	recOffColor       = 20
	recOffTextHandle  = 20
	recOffTextLength  = 24
	recOffFontID      = 28
	recOffFontSize    = 30
	recOffLetterSpace = 32
	recOffLineHeight  = 34
	recOffRadius      = 36
	recOffTextColor   = 36
	recOffBorderWidth = 52
	recOffImageData   = 52
)

// PackedSize returns the buffer size needed to pack n commands.
func PackedSize(n int) int {
	return HeaderSize + n*RecordSize
}

// Pack serializes cmds into dst in slice order and returns the number of
// bytes written. A nil dst is a signal that the host has not supplied an
// output buffer this frame; nothing is written and Pack returns 0. dst must
// otherwise hold PackedSize(len(cmds)) bytes; a shorter buffer panics.
func Pack(dst []byte, cmds []Command) int {
	if dst == nil {
		return 0
	}

	binary.LittleEndian.PutUint32(dst[0:], uint32(len(cmds)))
	binary.LittleEndian.PutUint32(dst[4:], RecordSize)
	binary.LittleEndian.PutUint32(dst[8:], HeaderSize)
	binary.LittleEndian.PutUint32(dst[12:], 0)

	for i := range cmds {
		off := HeaderSize + i*RecordSize
		packCommand(dst[off:off+RecordSize], &cmds[i])
	}
	return PackedSize(len(cmds))
}

func packCommand(rec []byte, cmd *Command) {
	for i := range rec {
		rec[i] = 0
	}

	rec[recOffType] = byte(cmd.Type)
	binary.LittleEndian.PutUint16(rec[recOffZIndex:], uint16(cmd.ZIndex))
	putF32(rec[recOffBox:], cmd.Box.X)
	putF32(rec[recOffBox+4:], cmd.Box.Y)
	putF32(rec[recOffBox+8:], cmd.Box.Width)
	putF32(rec[recOffBox+12:], cmd.Box.Height)

	switch cmd.Type {
	case CommandRectangle:
		putColor(rec[recOffColor:], cmd.Rectangle.Color)
		putRadius(rec[recOffRadius:], cmd.Rectangle.CornerRadius)

	case CommandBorder:
		putColor(rec[recOffColor:], cmd.Border.Color)
		putRadius(rec[recOffRadius:], cmd.Border.CornerRadius)
		binary.LittleEndian.PutUint16(rec[recOffBorderWidth:], cmd.Border.Width.Left)
		binary.LittleEndian.PutUint16(rec[recOffBorderWidth+2:], cmd.Border.Width.Right)
		binary.LittleEndian.PutUint16(rec[recOffBorderWidth+4:], cmd.Border.Width.Top)
		binary.LittleEndian.PutUint16(rec[recOffBorderWidth+6:], cmd.Border.Width.Bottom)
		binary.LittleEndian.PutUint16(rec[recOffBorderWidth+8:], cmd.Border.Width.BetweenChildren)

	case CommandText:
		binary.LittleEndian.PutUint32(rec[recOffTextHandle:], cmd.Text.Text.Handle)
		binary.LittleEndian.PutUint32(rec[recOffTextLength:], cmd.Text.Text.Length)
		binary.LittleEndian.PutUint16(rec[recOffFontID:], cmd.Text.FontID)
		binary.LittleEndian.PutUint16(rec[recOffFontSize:], cmd.Text.FontSize)
		binary.LittleEndian.PutUint16(rec[recOffLetterSpace:], cmd.Text.LetterSpacing)
		binary.LittleEndian.PutUint16(rec[recOffLineHeight:], cmd.Text.LineHeight)
		putColor(rec[recOffTextColor:], cmd.Text.Color)

	case CommandImage:
		putColor(rec[recOffColor:], cmd.Image.Color)
		putRadius(rec[recOffRadius:], cmd.Image.CornerRadius)
		binary.LittleEndian.PutUint32(rec[recOffImageData:], cmd.Image.Data)

	case CommandCustom:
		putColor(rec[recOffColor:], cmd.Custom.Color)
		putRadius(rec[recOffRadius:], cmd.Custom.CornerRadius)
		binary.LittleEndian.PutUint32(rec[recOffImageData:], cmd.Custom.Data)
	}
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func putColor(b []byte, c Color) {
	putF32(b[0:], c.R)
	putF32(b[4:], c.G)
	putF32(b[8:], c.B)
	putF32(b[12:], c.A)
}

func putRadius(b []byte, r CornerRadius) {
	putF32(b[0:], r.TopLeft)
	putF32(b[4:], r.TopRight)
	putF32(b[8:], r.BottomRight)
	putF32(b[12:], r.BottomLeft)
}
