package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShortBuffer reports a packed buffer too small for its own header
	// or declared record count.
	ErrShortBuffer = errors.New("render: packed buffer too short")

	// ErrBadHeader reports a header whose fields contradict the format.
	ErrBadHeader = errors.New("render: bad packed buffer header")
)

// Header is the decoded 16-byte prefix of a packed buffer.
type Header struct {
	Count       uint32
	RecordSize  uint32
	RecordsBase uint32
	Reserved    uint32
}

// UnpackHeader decodes and validates the buffer header.
func UnpackHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrShortBuffer
	}
	h := Header{
		Count:       binary.LittleEndian.Uint32(buf[0:]),
		RecordSize:  binary.LittleEndian.Uint32(buf[4:]),
		RecordsBase: binary.LittleEndian.Uint32(buf[8:]),
		Reserved:    binary.LittleEndian.Uint32(buf[12:]),
	}
	if h.RecordSize != RecordSize {
		return Header{}, fmt.Errorf("%w: record size %d", ErrBadHeader, h.RecordSize)
	}
	if h.RecordsBase < HeaderSize {
		return Header{}, fmt.Errorf("%w: records base %d", ErrBadHeader, h.RecordsBase)
	}
	need := int(h.RecordsBase) + int(h.Count)*RecordSize
	if need > len(buf) {
		return Header{}, fmt.Errorf("%w: %d records need %d bytes, have %d",
			ErrShortBuffer, h.Count, need, len(buf))
	}
	return h, nil
}

// Unpack decodes a whole packed buffer back into commands.
func Unpack(buf []byte) ([]Command, error) {
	h, err := UnpackHeader(buf)
	if err != nil {
		return nil, err
	}
	cmds := make([]Command, h.Count)
	for i := range cmds {
		off := int(h.RecordsBase) + i*RecordSize
		cmds[i] = UnpackCommand(buf[off : off+RecordSize])
	}
	return cmds, nil
}

// UnpackCommand decodes one record. An out-of-range type byte is kept
// verbatim with an empty payload.
func UnpackCommand(rec []byte) Command {
	cmd := Command{
		Type:   CommandType(rec[recOffType]),
		ZIndex: int16(binary.LittleEndian.Uint16(rec[recOffZIndex:])),
		Box: BoundingBox{
			X:      getF32(rec[recOffBox:]),
			Y:      getF32(rec[recOffBox+4:]),
			Width:  getF32(rec[recOffBox+8:]),
			Height: getF32(rec[recOffBox+12:]),
		},
	}

	switch cmd.Type {
	case CommandRectangle:
		cmd.Rectangle.Color = getColor(rec[recOffColor:])
		cmd.Rectangle.CornerRadius = getRadius(rec[recOffRadius:])

	case CommandBorder:
		cmd.Border.Color = getColor(rec[recOffColor:])
		cmd.Border.CornerRadius = getRadius(rec[recOffRadius:])
		cmd.Border.Width = BorderWidth{
			Left:            binary.LittleEndian.Uint16(rec[recOffBorderWidth:]),
			Right:           binary.LittleEndian.Uint16(rec[recOffBorderWidth+2:]),
			Top:             binary.LittleEndian.Uint16(rec[recOffBorderWidth+4:]),
			Bottom:          binary.LittleEndian.Uint16(rec[recOffBorderWidth+6:]),
			BetweenChildren: binary.LittleEndian.Uint16(rec[recOffBorderWidth+8:]),
		}

	case CommandText:
		cmd.Text.Text.Handle = binary.LittleEndian.Uint32(rec[recOffTextHandle:])
		cmd.Text.Text.Length = binary.LittleEndian.Uint32(rec[recOffTextLength:])
		cmd.Text.FontID = binary.LittleEndian.Uint16(rec[recOffFontID:])
		cmd.Text.FontSize = binary.LittleEndian.Uint16(rec[recOffFontSize:])
		cmd.Text.LetterSpacing = binary.LittleEndian.Uint16(rec[recOffLetterSpace:])
		cmd.Text.LineHeight = binary.LittleEndian.Uint16(rec[recOffLineHeight:])
		cmd.Text.Color = getColor(rec[recOffTextColor:])

	case CommandImage:
		cmd.Image.Color = getColor(rec[recOffColor:])
		cmd.Image.CornerRadius = getRadius(rec[recOffRadius:])
		cmd.Image.Data = binary.LittleEndian.Uint32(rec[recOffImageData:])

	case CommandCustom:
		cmd.Custom.Color = getColor(rec[recOffColor:])
		cmd.Custom.CornerRadius = getRadius(rec[recOffRadius:])
		cmd.Custom.Data = binary.LittleEndian.Uint32(rec[recOffImageData:])
	}
	return cmd
}

func getF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func getColor(b []byte) Color {
	return Color{
		R: getF32(b[0:]),
		G: getF32(b[4:]),
		B: getF32(b[8:]),
		A: getF32(b[12:]),
	}
}

func getRadius(b []byte) CornerRadius {
	return CornerRadius{
		TopLeft:     getF32(b[0:]),
		TopRight:    getF32(b[4:]),
		BottomRight: getF32(b[8:]),
		BottomLeft:  getF32(b[12:]),
	}
}
