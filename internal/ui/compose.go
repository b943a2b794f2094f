package ui

import (
	"github.com/taskdeck/task-tracker/internal/boundary"
	"github.com/taskdeck/task-tracker/internal/model"
	"github.com/taskdeck/task-tracker/internal/render"
	"github.com/taskdeck/task-tracker/internal/store"
)

// Composer lays out the task tracker each frame: a centered login card
// while logged out, otherwise a fixed sidebar, a filterable scrolling task
// list and an optional docked detail/create panel. Boxes are positioned
// absolutely and emitted in paint order; text advances use a fixed
// glyph-width approximation since real metrics live on the host side.
type Composer struct {
	scrollY float32
	visible []int
}

func NewComposer() *Composer {
	return &Composer{}
}

func (c *Composer) Compose(f *boundary.Frame) {
	if f.Store().LoggedIn() {
		c.mainLayout(f)
	} else {
		c.loginScreen(f)
	}
}

func (c *Composer) loginScreen(f *boundary.Frame) {
	pushRect(f, render.BoundingBox{Width: f.Width, Height: f.Height}, ColorBG, 0)

	fieldW := LoginBoxW - 2*LoginBoxPad
	boxH := 2*LoginBoxPad + 32 + 14 + 3*LoginFieldH + 4*LoginGap
	box := render.BoundingBox{
		X:      (f.Width - LoginBoxW) / 2,
		Y:      (f.Height - boxH) / 2,
		Width:  LoginBoxW,
		Height: boxH,
	}
	pushRect(f, box, ColorWhite, 12)
	pushBorder(f, box, ColorBorder, borderAll(1), 12)

	x := box.X + LoginBoxPad
	y := box.Y + LoginBoxPad

	title := "Task Tracker"
	pushText(f, box.X+(LoginBoxW-textWidth(title, 32))/2, y, title, FontTitle32, 32, ColorText)
	y += 32 + LoginGap

	sub := "Sign in to continue"
	pushText(f, box.X+(LoginBoxW-textWidth(sub, 14))/2, y, sub, FontBody16, 14, ColorTextLight)
	y += 14 + LoginGap

	y = c.loginField(f, 0, "Username", x, y, fieldW)
	y = c.loginField(f, 1, "Password", x, y, fieldW)

	btn := render.BoundingBox{X: x, Y: y, Width: fieldW, Height: LoginFieldH}
	bg := ColorPrimary
	if f.Hovered(btn) {
		bg = ColorPrimaryHover
	}
	pushRect(f, btn, bg, 6)
	label := "Sign In"
	pushText(f, btn.X+(btn.Width-textWidth(label, 16))/2, btn.Y+(LoginFieldH-16)/2, label, FontBody16, 16, ColorTextWhite)
}

// loginField draws one input placeholder and reports its box for the host
// to position a native entry overlay on.
func (c *Composer) loginField(f *boundary.Frame, which int, placeholder string, x, y, w float32) float32 {
	box := render.BoundingBox{X: x, Y: y, Width: w, Height: LoginFieldH}
	pushRect(f, box, ColorInputFill, 6)
	pushBorder(f, box, ColorBorder, borderAll(1), 6)
	pushText(f, x+12, y+10, placeholder, FontBody16, 14, ColorTextLight)
	f.SetLoginRect(which, box)
	return y + LoginFieldH + LoginGap
}

func (c *Composer) mainLayout(f *boundary.Frame) {
	st := f.Store()

	showCreate := st.CreatePanelVisible()
	var detailTask *model.Task
	if sel := st.SelectedTask(); st.ShowDetailPanel() && sel >= 0 && sel < st.TaskCount() {
		detailTask = st.Task(sel)
	}

	dockH := float32(0)
	if showCreate || detailTask != nil {
		dockH = f.Height * DockFraction
	}

	c.sidebar(f)

	main := render.BoundingBox{
		X:      SidebarWidth,
		Width:  f.Width - SidebarWidth,
		Height: f.Height - dockH,
	}
	c.taskList(f, main)

	if dockH > 0 {
		dock := render.BoundingBox{
			X:      SidebarWidth,
			Y:      f.Height - dockH,
			Width:  f.Width - SidebarWidth,
			Height: dockH,
		}
		c.dockPanel(f, dock, showCreate, detailTask)
	}
}

func (c *Composer) sidebar(f *boundary.Frame) {
	st := f.Store()
	pushRect(f, render.BoundingBox{Width: SidebarWidth, Height: f.Height}, ColorSidebar, 0)

	x := SidebarPad
	w := SidebarWidth - 2*SidebarPad
	y := SidebarTopPad

	pushText(f, x, y+(50-24)/2, "Task Tracker", FontTitle24, 24, ColorTextWhite)
	y += 50 + SidebarGap

	pushRect(f, render.BoundingBox{X: x, Y: y, Width: w, Height: 1}, ColorSidebarDivider, 0)
	y += 1 + SidebarGap

	y += 16 + SidebarGap // fixed spacer element
	pushText(f, x, y, "Services", FontBody16, 12, ColorSidebarCaption)
	y += 12 + SidebarGap
	y += 8 + SidebarGap // fixed spacer element

	y = c.serviceButton(f, "All Services", store.NoSelection, y)
	if st.ServiceCount() == 0 {
		pushText(f, x, y, "No services loaded", FontBody16, 12, ColorSidebarEmpty)
	} else {
		for i := 0; i < st.ServiceCount(); i++ {
			y = c.serviceButton(f, st.Service(i).Name.String(), i, y)
		}
	}

	if user := st.CurrentUser(); user != "" {
		chip := render.BoundingBox{
			X:      x,
			Y:      f.Height - SidebarTopPad - UserChipH,
			Width:  w,
			Height: UserChipH,
		}
		pushRect(f, chip, ColorUserChip, 6)
		avatar := render.BoundingBox{
			X:      chip.X + 12,
			Y:      chip.Y + (UserChipH-UserAvatarSize)/2,
			Width:  UserAvatarSize,
			Height: UserAvatarSize,
		}
		pushRect(f, avatar, ColorPrimary, UserAvatarSize/2)
		pushText(f, avatar.X+UserAvatarSize+8, chip.Y+(UserChipH-14)/2, user, FontBody16, 14, ColorTextWhite)
	}
}

func (c *Composer) serviceButton(f *boundary.Frame, label string, serviceIndex int, y float32) float32 {
	st := f.Store()
	box := render.BoundingBox{
		X:      SidebarPad,
		Y:      y,
		Width:  SidebarWidth - 2*SidebarPad,
		Height: ServiceButtonH,
	}

	bg := ColorSidebar
	if st.SelectedService() == serviceIndex {
		bg = ColorPrimary
	} else if f.Hovered(box) {
		bg = ColorSidebarHover
	}
	pushRect(f, box, bg, 6)
	f.OnHover(box, boundary.ClickData{Action: boundary.ActionSelectService, Payload: int32(serviceIndex)})
	pushText(f, box.X+16, y+(ServiceButtonH-14)/2, label, FontBody16, 14, ColorTextWhite)
	return y + ServiceButtonH + SidebarGap
}

func (c *Composer) taskList(f *boundary.Frame, area render.BoundingBox) {
	st := f.Store()
	pushRect(f, area, ColorBG, 0)

	x := area.X + ListPad
	w := area.Width - 2*ListPad
	y := area.Y + ListPad

	// Header row: title, selected-service tag, create button at the right.
	pushText(f, x, y+(CreateButtonH-28)/2, "Tasks", FontTitle32, 28, ColorText)

	serviceLabel := "All Services"
	if i := st.SelectedService(); i >= 0 && i < st.ServiceCount() {
		serviceLabel = st.Service(i).Name.String()
	}
	tag := render.BoundingBox{
		X:      x + textWidth("Tasks", 28) + ListGap,
		Y:      y + (CreateButtonH-ServiceTagH)/2,
		Width:  textWidth(serviceLabel, 12) + 20,
		Height: ServiceTagH,
	}
	pushRect(f, tag, ColorServiceTag, 6)
	pushText(f, tag.X+10, tag.Y+(ServiceTagH-12)/2, serviceLabel, FontBody16, 12, ColorText)

	createLabel := "+ New Task"
	btn := render.BoundingBox{
		X:      x + w - (textWidth(createLabel, 14) + 32),
		Y:      y,
		Width:  textWidth(createLabel, 14) + 32,
		Height: CreateButtonH,
	}
	bg := ColorPrimary
	if f.Hovered(btn) {
		bg = ColorPrimaryHover
	}
	pushRect(f, btn, bg, 6)
	f.OnHover(btn, boundary.ClickData{Action: boundary.ActionOpenCreate})
	pushText(f, btn.X+16, btn.Y+(CreateButtonH-14)/2, createLabel, FontBody16, 14, ColorTextWhite)
	y += CreateButtonH + ListGap

	fx := x
	filters := []model.StatusFilter{
		model.FilterAll,
		model.FilterPending,
		model.FilterInProgress,
		model.FilterCompleted,
	}
	for _, filter := range filters {
		fx = c.filterButton(f, filter, fx, y)
	}
	y += FilterButtonH + ListGap

	if alpha := f.PulseAlpha(); alpha > 0 {
		barColor := ColorPrimary
		barColor.A = alpha
		pushRect(f, render.BoundingBox{X: x, Y: y, Width: w, Height: PulseBarH}, barColor, 3)
		y += PulseBarH + ListGap
	}

	pushText(f, x, y, "Click a task to view details", FontBody16, 14, ColorTextLight)
	y += 14 + ListGap

	view := render.BoundingBox{
		X:      x,
		Y:      y,
		Width:  w,
		Height: area.Y + area.Height - ListPad - y,
	}
	c.cardList(f, view)
}

func (c *Composer) filterButton(f *boundary.Frame, filter model.StatusFilter, x, y float32) float32 {
	st := f.Store()
	label := filter.String()
	box := render.BoundingBox{
		X:      x,
		Y:      y,
		Width:  textWidth(label, 12) + 20,
		Height: FilterButtonH,
	}

	active := st.Filter() == filter
	bg, fg := ColorWhite, ColorText
	if active {
		bg, fg = ColorPrimary, ColorTextWhite
	} else if f.Hovered(box) {
		bg = ColorPrimaryHover
	}
	pushRect(f, box, bg, 6)
	if !active {
		pushBorder(f, box, ColorBorder, borderAll(1), 6)
	}
	f.OnHover(box, boundary.ClickData{Action: boundary.ActionApplyFilter, Payload: int32(filter)})
	pushText(f, box.X+10, y+(FilterButtonH-12)/2, label, FontBody16, 12, fg)
	return x + box.Width + CardGap
}

// cardList emits the scrolling, clipped run of task cards. The scroll
// offset persists on the Composer and is clamped against the content
// height under the current filter each frame.
func (c *Composer) cardList(f *boundary.Frame, view render.BoundingBox) {
	st := f.Store()

	// Hosts report wheel movement with negative y while scrolling down.
	_, dy := f.ScrollDelta()
	c.scrollY -= dy

	sel := st.SelectedService()
	byService := sel >= 0 && sel < st.ServiceCount()
	serviceName := ""
	if byService {
		serviceName = st.Service(sel).Name.String()
	}

	c.visible = c.visible[:0]
	contentH := float32(0)
	for i := 0; i < st.TaskCount(); i++ {
		task := st.Task(i)
		if !st.Filter().Matches(task.Status) {
			continue
		}
		if byService && task.ServiceName.String() != serviceName {
			continue
		}
		c.visible = append(c.visible, i)
		contentH += cardHeight(task) + CardListGap
	}
	if len(c.visible) > 0 {
		contentH -= CardListGap
	}

	maxScroll := contentH - view.Height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if c.scrollY < 0 {
		c.scrollY = 0
	}
	if c.scrollY > maxScroll {
		c.scrollY = maxScroll
	}

	pushScissorStart(f, view)

	if len(c.visible) == 0 {
		label := "No tasks found. Create one!"
		pushText(f, view.X+(view.Width-textWidth(label, 16))/2, view.Y+(200-16)/2, label, FontBody16, 16, ColorTextLight)
	} else {
		y := view.Y - c.scrollY
		for _, i := range c.visible {
			task := st.Task(i)
			h := cardHeight(task)
			if y+h > view.Y && y < view.Y+view.Height {
				c.taskCard(f, task, i, view, y, h)
			}
			y += h + CardListGap
		}
	}

	pushScissorEnd(f)
}

func cardHeight(task *model.Task) float32 {
	badgeH := 12 + 2*StatusBadgePadY
	h := 2*CardPadY + 16 + CardGap + badgeH
	if !task.Description.IsEmpty() {
		h += 14 + CardGap
	}
	return h
}

func (c *Composer) taskCard(f *boundary.Frame, task *model.Task, index int, view render.BoundingBox, y, h float32) {
	st := f.Store()
	box := render.BoundingBox{X: view.X, Y: y, Width: view.Width, Height: h}
	clipped := intersect(box, view)

	selected := st.SelectedTask() == index
	bg := ColorWhite
	borderColor := ColorBorder
	if selected {
		bg = ColorCardSelected
		borderColor = ColorPrimary
	} else if f.Hovered(clipped) {
		bg = ColorCardHover
	}
	pushRect(f, box, bg, 8)
	f.OnHover(clipped, boundary.ClickData{TaskIndex: int32(index), Action: boundary.ActionSelectTask})

	cx := box.X + CardPadX
	cy := y + CardPadY

	dot := render.BoundingBox{
		X:      cx,
		Y:      cy + (16-PriorityDotSize)/2,
		Width:  PriorityDotSize,
		Height: PriorityDotSize,
	}
	pushRect(f, dot, PriorityColor(task.Priority), PriorityDotSize/2)
	pushText(f, dot.X+PriorityDotSize+CardGap, cy, task.Title.String(), FontBody20, 16, ColorText)
	cy += 16 + CardGap

	if !task.Description.IsEmpty() {
		pushText(f, cx, cy, task.Description.String(), FontBody16, 14, ColorTextLight)
		cy += 14 + CardGap
	}

	badgeLabel := task.Status.String()
	badge := render.BoundingBox{
		X:      cx,
		Y:      cy,
		Width:  textWidth(badgeLabel, 12) + 2*StatusBadgePadX,
		Height: 12 + 2*StatusBadgePadY,
	}
	pushRect(f, badge, StatusColor(task.Status), 4)
	pushText(f, badge.X+StatusBadgePadX, badge.Y+StatusBadgePadY, badgeLabel, FontBody16, 12, ColorTextWhite)

	if !task.DueDate.IsEmpty() {
		due := task.DueDate.String()
		pushText(f, box.X+box.Width-CardPadX-textWidth(due, 12), cy+(badge.Height-12)/2, due, FontBody16, 12, ColorTextLight)
	}

	pushBorder(f, box, borderColor, borderAll(1), 8)
}

func (c *Composer) dockPanel(f *boundary.Frame, area render.BoundingBox, showCreate bool, detailTask *model.Task) {
	pushRect(f, area, ColorWhite, 0)
	pushBorder(f, area, ColorBorder, render.BorderWidth{Left: 1}, 0)

	x := area.X + DockPadLeft
	w := area.Width - DockPadLeft - DockPadRight
	y := area.Y + DockPadY

	title := "Task Details"
	if showCreate {
		title = "Create Task"
	}
	pushText(f, x, y+(DockCloseSize-18)/2, title, FontTitle24, 18, ColorText)

	if !showCreate {
		closeBox := render.BoundingBox{
			X:      x + w - DockCloseSize,
			Y:      y,
			Width:  DockCloseSize,
			Height: DockCloseSize,
		}
		bg := ColorWhite
		if f.Hovered(closeBox) {
			bg = ColorCloseHover
		}
		pushRect(f, closeBox, bg, 4)
		f.OnHover(closeBox, boundary.ClickData{Action: boundary.ActionCloseDetail})
		pushText(f, closeBox.X+(DockCloseSize-textWidth("X", 14))/2, closeBox.Y+(DockCloseSize-14)/2, "X", FontBody16, 14, ColorTextLight)
	}
	y += DockCloseSize + DockGap

	if showCreate {
		hint := "Fill in the form below. This panel stays docked so you can keep referencing the list."
		pushText(f, x, y, hint, FontBody16, 13, ColorTextLight)
		y += 13 + DockGap
	}

	if detailTask == nil {
		return
	}
	task := detailTask

	y = c.dockField(f, x, y, "Title", task.Title.String(), FontBody20, 18, ColorText)

	desc := task.Description.String()
	if desc == "" {
		desc = "No description"
	}
	y = c.dockField(f, x, y, "Description", desc, FontBody16, 14, ColorText)

	pushText(f, x, y, "Status", FontBody16, 12, ColorTextLight)
	y += 12 + DockFieldGap
	statusLabel := task.Status.String()
	badge := render.BoundingBox{
		X:      x,
		Y:      y,
		Width:  textWidth(statusLabel, 14) + 20,
		Height: 14 + 12,
	}
	pushRect(f, badge, StatusColor(task.Status), 4)
	pushText(f, badge.X+10, badge.Y+6, statusLabel, FontBody16, 14, ColorTextWhite)
	y += badge.Height + DockGap

	pushText(f, x, y, "Priority", FontBody16, 12, ColorTextLight)
	y += 12 + DockFieldGap
	dot := render.BoundingBox{
		X:      x,
		Y:      y + (14-DockDotSize)/2,
		Width:  DockDotSize,
		Height: DockDotSize,
	}
	pushRect(f, dot, PriorityColor(task.Priority), DockDotSize/2)
	pushText(f, x+DockDotSize+CardGap, y, task.Priority.String(), FontBody16, 14, ColorText)
	y += 14 + DockGap

	if !task.ServiceName.IsEmpty() {
		y = c.dockField(f, x, y, "Service", task.ServiceName.String(), FontBody16, 14, ColorText)
	}
	if !task.DueDate.IsEmpty() {
		y = c.dockField(f, x, y, "Due Date", task.DueDate.String(), FontBody16, 14, ColorText)
	}
	if !task.AssignedTo.IsEmpty() {
		c.dockField(f, x, y, "Assigned To", task.AssignedTo.String(), FontBody16, 14, ColorText)
	}
}

func (c *Composer) dockField(f *boundary.Frame, x, y float32, caption, value string, fontID, size uint16, color render.Color) float32 {
	pushText(f, x, y, caption, FontBody16, 12, ColorTextLight)
	y += 12 + DockFieldGap
	pushText(f, x, y, value, fontID, size, color)
	return y + float32(size) + DockGap
}

func pushRect(f *boundary.Frame, box render.BoundingBox, color render.Color, radius float32) {
	f.Push(render.Command{
		Type: render.CommandRectangle,
		Box:  box,
		Rectangle: render.RectangleData{
			Color:        color,
			CornerRadius: corner(radius),
		},
	})
}

func pushBorder(f *boundary.Frame, box render.BoundingBox, color render.Color, width render.BorderWidth, radius float32) {
	f.Push(render.Command{
		Type: render.CommandBorder,
		Box:  box,
		Border: render.BorderData{
			Color:        color,
			CornerRadius: corner(radius),
			Width:        width,
		},
	})
}

func pushText(f *boundary.Frame, x, y float32, s string, fontID, size uint16, color render.Color) {
	f.Push(render.Command{
		Type: render.CommandText,
		Box:  render.BoundingBox{X: x, Y: y, Width: textWidth(s, size), Height: float32(size)},
		Text: render.TextData{
			Text:     f.Text(s),
			FontID:   fontID,
			FontSize: size,
			Color:    color,
		},
	})
}

func pushScissorStart(f *boundary.Frame, box render.BoundingBox) {
	f.Push(render.Command{Type: render.CommandScissorStart, Box: box})
}

func pushScissorEnd(f *boundary.Frame) {
	f.Push(render.Command{Type: render.CommandScissorEnd})
}

// textWidth approximates a single line's advance from an average glyph
// ratio. Only box geometry depends on it; hosts measure for real when
// they draw.
func textWidth(s string, size uint16) float32 {
	return float32(len(s)) * float32(size) * 0.55
}

func corner(r float32) render.CornerRadius {
	return render.CornerRadius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

func borderAll(w uint16) render.BorderWidth {
	return render.BorderWidth{Left: w, Right: w, Top: w, Bottom: w}
}

func intersect(a, b render.BoundingBox) render.BoundingBox {
	x1 := max(a.X, b.X)
	y1 := max(a.Y, b.Y)
	x2 := min(a.X+a.Width, b.X+b.Width)
	y2 := min(a.Y+a.Height, b.Y+b.Height)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return render.BoundingBox{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}
