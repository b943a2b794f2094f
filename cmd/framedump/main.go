package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/task-tracker/internal/boundary"
	"github.com/taskdeck/task-tracker/internal/model"
	"github.com/taskdeck/task-tracker/internal/render"
	"github.com/taskdeck/task-tracker/internal/sample"
	"github.com/taskdeck/task-tracker/internal/ui"
)

// ScratchArenaSize is the per-frame bump arena backing block size
const ScratchArenaSize = 64 * 1024

// MaxDumpCommands bounds the output buffer handed to the packer
const MaxDumpCommands = 2048

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	labelStyle = lipgloss.NewStyle().Bold(true).Width(14)

	typeStyles = map[render.CommandType]lipgloss.Style{
		render.CommandRectangle:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		render.CommandBorder:       lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
		render.CommandText:         lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		render.CommandScissorStart: lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		render.CommandScissorEnd:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	}
)

func main() {
	dataFile := flag.String("data", "", "YAML data file (empty uses the built-in sample)")
	frames := flag.Int("frames", 30, "number of frames to run")
	width := flag.Float64("width", 1024, "viewport width")
	height := flag.Float64("height", 768, "viewport height")
	click := flag.String("click", "", "pointer press at X,Y on the final frame")
	loggedIn := flag.Bool("login", true, "start logged in")
	dt := flag.Float64("dt", 1.0/30, "simulated seconds per frame")
	flag.Parse()

	clickX, clickY, hasClick, err := parseClick(*click)
	if err != nil {
		log.Fatalf("%s", errorStyle.Render(fmt.Sprintf("bad -click value: %v", err)))
	}
	if *frames < 1 {
		*frames = 1
	}

	app := boundary.New(ui.NewComposer())
	app.BindScratchMemory(make([]byte, ScratchArenaSize))
	app.SetLoggedIn(*loggedIn)

	doc, source, err := loadDocument(*dataFile)
	if err != nil {
		log.Fatalf("%s", errorStyle.Render(fmt.Sprintf("failed to load data: %v", err)))
	}
	taskCount, serviceCount := doc.Apply(app)
	app.SetDataPulse(0)

	fmt.Println(titleStyle.Render("Task Tracker framedump"))
	fmt.Printf("%s %s (%d tasks, %d services)\n", labelStyle.Render("Source"), source, taskCount, serviceCount)
	fmt.Printf("%s %d frames, viewport %.0fx%.0f, dt %.1fms\n",
		labelStyle.Render("Run"), *frames, *width, *height, *dt*1000)
	if hasClick {
		fmt.Printf("%s press at %.0f,%.0f on frame %d\n", labelStyle.Render("Click"), clickX, clickY, *frames-1)
	}
	fmt.Println()

	out := make([]byte, render.PackedSize(MaxDumpCommands))
	packed := 0
	for i := 0; i < *frames; i++ {
		pointerX, pointerY := float32(-1), float32(-1)
		down := false
		if hasClick && i == *frames-1 {
			pointerX, pointerY = clickX, clickY
			down = true
		}
		packed = app.AdvanceFrame(out, float32(*width), float32(*height),
			0, 0, pointerX, pointerY, false, down, float32(*dt))
	}

	if err := dumpBuffer(app, out[:packed]); err != nil {
		log.Fatalf("%s", errorStyle.Render(fmt.Sprintf("failed to unpack frame: %v", err)))
	}
	dumpStore(app)
}

// loadDocument resolves the document and a human-readable source label
func loadDocument(path string) (*sample.Document, string, error) {
	if path == "" {
		return sample.Default(), "built-in sample", nil
	}
	doc, err := sample.Load(path)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}

// parseClick parses an "X,Y" flag value
func parseClick(s string) (x, y float32, ok bool, err error) {
	if s == "" {
		return 0, 0, false, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false, fmt.Errorf("expected X,Y, got %q", s)
	}
	xv, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return 0, 0, false, err
	}
	yv, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return 0, 0, false, err
	}
	return float32(xv), float32(yv), true, nil
}

// dumpBuffer prints the packed header and every decoded command of the
// final frame
func dumpBuffer(app *boundary.App, buf []byte) error {
	header, err := render.UnpackHeader(buf)
	if err != nil {
		return err
	}
	cmds, err := render.Unpack(buf)
	if err != nil {
		return err
	}

	fmt.Println(sectionStyle.Render("Packed buffer"))
	fmt.Printf("%s count=%d recordSize=%d recordsBase=%d (%d bytes)\n",
		labelStyle.Render("Header"), header.Count, header.RecordSize, header.RecordsBase, len(buf))

	for i, cmd := range cmds {
		fmt.Printf("%s %s\n", dimStyle.Render(fmt.Sprintf("[%3d]", i)), formatCommand(app, cmd))
	}
	fmt.Println()
	return nil
}

// formatCommand renders one command with its type-specific payload
func formatCommand(app *boundary.App, cmd render.Command) string {
	style, found := typeStyles[cmd.Type]
	if !found {
		style = dimStyle
	}
	name := style.Render(fmt.Sprintf("%-12s", cmd.Type.String()))
	box := fmt.Sprintf("(%6.1f,%6.1f %6.1fx%6.1f)", cmd.Box.X, cmd.Box.Y, cmd.Box.Width, cmd.Box.Height)

	switch cmd.Type {
	case render.CommandRectangle:
		detail := formatColor(cmd.Rectangle.Color)
		if cmd.Rectangle.CornerRadius.TopLeft > 0 {
			detail += fmt.Sprintf(" r=%.0f", cmd.Rectangle.CornerRadius.TopLeft)
		}
		return fmt.Sprintf("%s %s %s", name, box, detail)

	case render.CommandBorder:
		return fmt.Sprintf("%s %s %s w=%d", name, box, formatColor(cmd.Border.Color), cmd.Border.Width.Top)

	case render.CommandText:
		text, _ := app.TextByHandle(cmd.Text.Text.Handle)
		return fmt.Sprintf("%s %s %q font=%d size=%d %s",
			name, box, text, cmd.Text.FontID, cmd.Text.FontSize, formatColor(cmd.Text.Color))

	default:
		return fmt.Sprintf("%s %s", name, box)
	}
}

// formatColor renders a command color as #RRGGBBAA
func formatColor(c render.Color) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", colorByte(c.R), colorByte(c.G), colorByte(c.B), colorByte(c.A))
}

func colorByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// dumpStore prints the entity store state after the last frame
func dumpStore(app *boundary.App) {
	st := app.Store()

	pending, inProgress, completed, other := 0, 0, 0, 0
	for i := 0; i < st.TaskCount(); i++ {
		switch st.Task(i).Status {
		case model.StatusPending:
			pending++
		case model.StatusInProgress:
			inProgress++
		case model.StatusCompleted:
			completed++
		default:
			other++
		}
	}

	taskLine := fmt.Sprintf("%d (%d pending, %d in progress, %d completed", st.TaskCount(), pending, inProgress, completed)
	if other > 0 {
		taskLine += fmt.Sprintf(", %d other", other)
	}
	taskLine += ")"

	selected := "none"
	if idx := app.SelectedTaskIndex(); idx >= 0 && idx < st.TaskCount() {
		selected = fmt.Sprintf("%d %q", idx, st.Task(idx).Title.String())
	}

	fmt.Println(sectionStyle.Render("Store"))
	fmt.Printf("%s %v\n", labelStyle.Render("Logged in"), st.LoggedIn())
	fmt.Printf("%s %s\n", labelStyle.Render("User"), st.CurrentUser())
	fmt.Printf("%s %s\n", labelStyle.Render("Tasks"), taskLine)
	fmt.Printf("%s %d\n", labelStyle.Render("Services"), st.ServiceCount())
	fmt.Printf("%s %s\n", labelStyle.Render("Selected"), selected)
	fmt.Printf("%s %s\n", labelStyle.Render("Filter"), st.Filter().String())
	fmt.Printf("%s %v\n", labelStyle.Render("Detail panel"), st.ShowDetailPanel())
}
