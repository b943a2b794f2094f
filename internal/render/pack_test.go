package render

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func f32At(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func TestPackHeader(t *testing.T) {
	cmds := []Command{
		{Type: CommandRectangle},
		{Type: CommandText},
		{Type: CommandScissorEnd},
	}
	buf := make([]byte, PackedSize(len(cmds)))

	n := Pack(buf, cmds)
	if n != PackedSize(3) {
		t.Errorf("Pack returned %d, expected %d", n, PackedSize(3))
	}

	if got := binary.LittleEndian.Uint32(buf[0:]); got != 3 {
		t.Errorf("header count = %d, expected 3", got)
	}
	if got := binary.LittleEndian.Uint32(buf[4:]); got != 64 {
		t.Errorf("header record size = %d, expected 64", got)
	}
	if got := binary.LittleEndian.Uint32(buf[8:]); got != 16 {
		t.Errorf("header records base = %d, expected 16", got)
	}
	if got := binary.LittleEndian.Uint32(buf[12:]); got != 0 {
		t.Errorf("header reserved = %d, expected 0", got)
	}
}

func TestPackNilBufferWritesNothing(t *testing.T) {
	cmds := []Command{{Type: CommandRectangle}}
	if n := Pack(nil, cmds); n != 0 {
		t.Errorf("Pack(nil) = %d, expected 0", n)
	}
}

func TestPackShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Pack into a short buffer did not panic")
		}
	}()
	Pack(make([]byte, HeaderSize+RecordSize-1), []Command{{Type: CommandNone}})
}

func TestPackRectangleRecord(t *testing.T) {
	cmd := Command{
		Type:   CommandRectangle,
		ZIndex: -2,
		Box:    BoundingBox{X: 10, Y: 20, Width: 300, Height: 44},
		Rectangle: RectangleData{
			Color:        Color{R: 59, G: 130, B: 246, A: 255},
			CornerRadius: CornerRadius{TopLeft: 8, TopRight: 8, BottomRight: 4, BottomLeft: 4},
		},
	}
	buf := make([]byte, PackedSize(1))
	Pack(buf, []Command{cmd})
	rec := buf[HeaderSize : HeaderSize+RecordSize]

	if rec[0] != 1 {
		t.Errorf("type byte = %d, expected 1", rec[0])
	}
	if rec[1] != 0 {
		t.Errorf("pad byte = %d, expected 0", rec[1])
	}
	if got := int16(binary.LittleEndian.Uint16(rec[2:])); got != -2 {
		t.Errorf("z index = %d, expected -2", got)
	}

	boxWant := []float32{10, 20, 300, 44}
	for i, want := range boxWant {
		if got := f32At(rec, 4+4*i); got != want {
			t.Errorf("box float %d = %v, expected %v", i, got, want)
		}
	}
	colorWant := []float32{59, 130, 246, 255}
	for i, want := range colorWant {
		if got := f32At(rec, 20+4*i); got != want {
			t.Errorf("color float %d = %v, expected %v", i, got, want)
		}
	}
	radiusWant := []float32{8, 8, 4, 4}
	for i, want := range radiusWant {
		if got := f32At(rec, 36+4*i); got != want {
			t.Errorf("radius float %d = %v, expected %v", i, got, want)
		}
	}
	for i := 52; i < 64; i++ {
		if rec[i] != 0 {
			t.Errorf("trailing byte %d = %d, expected 0", i, rec[i])
		}
	}
}

func TestPackTextRecord(t *testing.T) {
	cmd := Command{
		Type: CommandText,
		Box:  BoundingBox{X: 24, Y: 100, Width: 180, Height: 24},
		Text: TextData{
			Text:          TextRef{Handle: 9, Length: 11},
			FontID:        2,
			FontSize:      24,
			LetterSpacing: 1,
			LineHeight:    28,
			Color:         Color{R: 30, G: 30, B: 30, A: 255},
		},
	}
	buf := make([]byte, PackedSize(1))
	Pack(buf, []Command{cmd})
	rec := buf[HeaderSize : HeaderSize+RecordSize]

	if rec[0] != 3 {
		t.Errorf("type byte = %d, expected 3", rec[0])
	}
	if got := binary.LittleEndian.Uint32(rec[20:]); got != 9 {
		t.Errorf("text handle = %d, expected 9", got)
	}
	if got := binary.LittleEndian.Uint32(rec[24:]); got != 11 {
		t.Errorf("text length = %d, expected 11", got)
	}
	u16s := []struct {
		name string
		off  int
		want uint16
	}{
		{"font id", 28, 2},
		{"font size", 30, 24},
		{"letter spacing", 32, 1},
		{"line height", 34, 28},
	}
	for _, u := range u16s {
		if got := binary.LittleEndian.Uint16(rec[u.off:]); got != u.want {
			t.Errorf("%s = %d, expected %d", u.name, got, u.want)
		}
	}
	if got := f32At(rec, 36); got != 30 {
		t.Errorf("text color red at 36 = %v, expected 30", got)
	}
	if got := f32At(rec, 48); got != 255 {
		t.Errorf("text color alpha at 48 = %v, expected 255", got)
	}
}

func TestPackBorderRecord(t *testing.T) {
	cmd := Command{
		Type: CommandBorder,
		Box:  BoundingBox{Width: 100, Height: 50},
		Border: BorderData{
			Color:        Color{R: 220, G: 220, B: 230, A: 255},
			CornerRadius: CornerRadius{TopLeft: 10, TopRight: 10, BottomRight: 10, BottomLeft: 10},
			Width:        BorderWidth{Left: 1, Right: 2, Top: 3, Bottom: 4, BetweenChildren: 5},
		},
	}
	buf := make([]byte, PackedSize(1))
	Pack(buf, []Command{cmd})
	rec := buf[HeaderSize : HeaderSize+RecordSize]

	if rec[0] != 2 {
		t.Errorf("type byte = %d, expected 2", rec[0])
	}
	widths := []uint16{1, 2, 3, 4, 5}
	for i, want := range widths {
		if got := binary.LittleEndian.Uint16(rec[52+2*i:]); got != want {
			t.Errorf("border width %d = %d, expected %d", i, got, want)
		}
	}
	if got := binary.LittleEndian.Uint16(rec[62:]); got != 0 {
		t.Errorf("trailing u16 = %d, expected 0", got)
	}
}

func TestPackScissorPayloadStaysZero(t *testing.T) {
	buf := make([]byte, PackedSize(2))
	for i := range buf {
		buf[i] = 0xff
	}

	cmds := []Command{
		{Type: CommandScissorStart, Box: BoundingBox{X: 5, Y: 6, Width: 7, Height: 8}},
		{Type: CommandScissorEnd},
	}
	Pack(buf, cmds)

	for r := 0; r < 2; r++ {
		rec := buf[HeaderSize+r*RecordSize : HeaderSize+(r+1)*RecordSize]
		for i := 20; i < 64; i++ {
			if rec[i] != 0 {
				t.Errorf("record %d payload byte %d = %d, expected 0", r, i, rec[i])
			}
		}
	}
}

func TestPackUnpackRoundTripKeepsOrder(t *testing.T) {
	cmds := []Command{
		{Type: CommandRectangle, ZIndex: 1, Box: BoundingBox{X: 1}, Rectangle: RectangleData{Color: Color{R: 245, G: 245, B: 250, A: 255}}},
		{Type: CommandScissorStart, Box: BoundingBox{Width: 640, Height: 480}},
		{Type: CommandText, Text: TextData{Text: TextRef{Handle: 1, Length: 5}, FontID: 1, FontSize: 16}},
		{Type: CommandBorder, Border: BorderData{Width: BorderWidth{Top: 2}}},
		{Type: CommandImage, Image: ImageData{Data: 77, Color: Color{A: 255}}},
		{Type: CommandCustom, Custom: CustomData{Data: 12}},
		{Type: CommandScissorEnd},
		{Type: CommandNone},
	}
	buf := make([]byte, PackedSize(len(cmds)))
	Pack(buf, cmds)

	got, err := Unpack(buf)
	if err != nil {
		t.Fatalf("Unpack returned error: %v", err)
	}
	if len(got) != len(cmds) {
		t.Fatalf("Unpack returned %d commands, expected %d", len(got), len(cmds))
	}
	for i := range cmds {
		if got[i] != cmds[i] {
			t.Errorf("command %d = %+v, expected %+v", i, got[i], cmds[i])
		}
	}
}

func TestUnpackHeaderErrors(t *testing.T) {
	good := make([]byte, PackedSize(1))
	Pack(good, []Command{{Type: CommandRectangle}})

	tests := []struct {
		name    string
		mutate  func([]byte) []byte
		wantErr error
	}{
		{
			"truncated header",
			func(b []byte) []byte { return b[:HeaderSize-1] },
			ErrShortBuffer,
		},
		{
			"wrong record size",
			func(b []byte) []byte {
				binary.LittleEndian.PutUint32(b[4:], 32)
				return b
			},
			ErrBadHeader,
		},
		{
			"records base inside header",
			func(b []byte) []byte {
				binary.LittleEndian.PutUint32(b[8:], 8)
				return b
			},
			ErrBadHeader,
		},
		{
			"count overruns buffer",
			func(b []byte) []byte {
				binary.LittleEndian.PutUint32(b[0:], 2)
				return b
			},
			ErrShortBuffer,
		},
	}
	for _, test := range tests {
		buf := make([]byte, len(good))
		copy(buf, good)
		_, err := UnpackHeader(test.mutate(buf))
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: error = %v, expected %v", test.name, err, test.wantErr)
		}
	}
}
