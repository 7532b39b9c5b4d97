package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"napkinwire/sketch"
)

func newModel(config *Config, doc *Document, filename string, log *zap.SugaredLogger) (model, error) {
	opts, err := config.Options()
	if err != nil {
		return model{}, err
	}
	opts.Mode = doc.Mode()

	palette := config.Palette()
	colorIndex := 0
	for i, c := range palette {
		if c == "black" {
			colorIndex = i
		}
	}

	return model{
		doc:        doc,
		filename:   filename,
		mode:       ModeNormal,
		tool:       sketch.Rectangle,
		palette:    palette,
		colorIndex: colorIndex,
		editIndex:  -1,
		config:     config,
		opts:       opts,
		log:        log,
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.help {
			return m.updateHelp(msg)
		}

		switch m.mode {
		case ModeNormal:
			return m.updateNormal(msg)
		case ModeDrawing:
			return m.updateDrawing(msg)
		case ModeEditing:
			return m.updateEditing(msg)
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "esc", "?", "q":
		m.help = false
		m.helpScroll = 0
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "q":
		if m.config.Confirmations && m.doc.Len() > 0 {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		m.handleCursorMove(key, m.getMoveSpeed(key))
	case "r":
		m.tool = sketch.Rectangle
	case "c":
		m.tool = sketch.Circle
	case "d":
		m.tool = sketch.Diamond
	case "a":
		m.tool = sketch.Arrow
	case " ", "space":
		m.anchorX, m.anchorY = m.cursorX, m.cursorY
		m.mode = ModeDrawing
	case "e":
		m.startEditing()
	case "t":
		m.contentRole = !m.contentRole
	case "[":
		if len(m.palette) > 0 {
			m.colorIndex = (m.colorIndex + len(m.palette) - 1) % len(m.palette)
		}
	case "]":
		if len(m.palette) > 0 {
			m.colorIndex = (m.colorIndex + 1) % len(m.palette)
		}
	case "m":
		if m.doc.Mode() == sketch.ModeDiagram {
			m.doc.SetMode(sketch.ModeMockup)
		} else {
			m.doc.SetMode(sketch.ModeDiagram)
		}
		m.opts.Mode = m.doc.Mode()
		m.log.Infow("mode changed", "mode", m.doc.Mode().String())
	case "u":
		m.undo()
	case "U":
		m.redo()
	case "x":
		if m.doc.Len() == 0 {
			return m, nil
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClear
			return m, nil
		}
		m.clearDocument()
	case "s":
		m.startFileInput(FileOpSave, replaceExt(m.filename, filepath.Ext(defaultFilename)))
	case "S":
		m.startFileInput(FileOpSavePNG, replaceExt(m.filename, ".png"))
	case "T":
		m.startFileInput(FileOpSaveTXT, replaceExt(m.filename, ".txt"))
	case "o":
		m.startFileInput(FileOpOpen, "")
	case "y":
		if _, err := copyPrompt(m.doc.Shapes(), m.opts, ""); err != nil {
			m.errorMessage = err.Error()
			m.log.Warnw("copy prompt failed", "error", err)
		} else {
			m.successMessage = "Prompt copied to clipboard"
		}
	case "p":
		m.showPane = !m.showPane
	}
	return m, nil
}

func (m model) updateDrawing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc":
		m.mode = ModeNormal
	case " ", "space", "enter":
		m.completeShape()
		m.mode = ModeNormal
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		m.handleCursorMove(key, m.getMoveSpeed(key))
	}
	return m, nil
}

// pendingShape is the shape spanned by the anchor and the cursor. Closed
// shapes include both corner cells; arrows run from cell to cell.
func (m *model) pendingShape() sketch.Shape {
	snap := m.opts.SnapSize
	var s sketch.Shape
	if m.tool == sketch.Arrow {
		s = sketch.NewShape(sketch.Arrow, m.anchorX*snap, m.anchorY*snap, m.cursorX*snap, m.cursorY*snap, snap)
	} else {
		x0, x1 := min(m.anchorX, m.cursorX), max(m.anchorX, m.cursorX)+1
		y0, y1 := min(m.anchorY, m.cursorY), max(m.anchorY, m.cursorY)+1
		s = sketch.NewShape(m.tool, x0*snap, y0*snap, x1*snap, y1*snap, snap)
	}
	s.Color = m.currentColor()
	if m.contentRole {
		s.Role = sketch.RoleContent
	}
	return s
}

func (m *model) completeShape() {
	s := m.pendingShape()
	minCells := max(m.config.MinShapeCells, 1)
	if !s.MeetsMinimum(minCells * m.opts.SnapSize) {
		m.errorMessage = "Shape too small, discarded"
		m.log.Debugw("shape discarded", "shape", s.String())
		return
	}
	index := m.doc.Add(s)
	m.recordAction(ActionAddShape, AddShapeData{Index: index, Shape: s}, nil)
	m.log.Infow("shape added", "index", index, "shape", s.String(), "color", s.Color, "role", s.Role.String())
}

func (m *model) currentColor() string {
	if len(m.palette) == 0 {
		return ""
	}
	return m.palette[m.colorIndex%len(m.palette)]
}

func (m *model) clearDocument() {
	removed := m.doc.Clear()
	m.recordAction(ActionClear, nil, ClearData{Shapes: removed})
	m.log.Infow("document cleared", "shapes", len(removed))
}

func (m *model) startEditing() {
	px, py := m.cursorPoint()
	index := m.doc.ShapeAt(px, py)
	if index < 0 {
		m.errorMessage = "No shape under cursor"
		return
	}
	m.editIndex = index
	m.editText = m.doc.Text(index)
	m.originalEditText = m.editText
	m.editCursorPos = len([]rune(m.editText))
	m.mode = ModeEditing
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	runes := []rune(m.editText)
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeNormal
		m.editIndex = -1
		m.editText = ""
		return m, nil
	case msg.Type == tea.KeyCtrlS:
		if m.editText != m.originalEditText {
			m.doc.SetText(m.editIndex, m.editText)
			m.recordAction(ActionEditText,
				EditTextData{Index: m.editIndex, NewText: m.editText, OldText: m.originalEditText},
				EditTextData{Index: m.editIndex, NewText: m.originalEditText, OldText: m.editText})
			m.log.Infow("text edited", "index", m.editIndex)
		}
		m.mode = ModeNormal
		m.editIndex = -1
		m.editText = ""
		return m, nil
	case msg.Type == tea.KeyCtrlV:
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = "Clipboard unavailable"
			return m, nil
		}
		m.insertEditText(cleanClipboardText(text))
		return m, nil
	case msg.Type == tea.KeyLeft:
		if m.editCursorPos > 0 {
			m.editCursorPos--
		}
	case msg.Type == tea.KeyRight:
		if m.editCursorPos < len(runes) {
			m.editCursorPos++
		}
	case msg.Type == tea.KeyEnter:
		m.insertEditText("\n")
	case msg.Type == tea.KeyBackspace:
		if m.editCursorPos > 0 {
			m.editText = string(append(runes[:m.editCursorPos-1:m.editCursorPos-1], runes[m.editCursorPos:]...))
			m.editCursorPos--
		}
	case msg.Type == tea.KeyDelete:
		if m.editCursorPos < len(runes) {
			m.editText = string(append(runes[:m.editCursorPos:m.editCursorPos], runes[m.editCursorPos+1:]...))
		}
	case msg.Type == tea.KeySpace:
		m.insertEditText(" ")
	case msg.Type == tea.KeyRunes:
		m.insertEditText(string(msg.Runes))
	}
	return m, nil
}

func (m *model) insertEditText(text string) {
	runes := []rune(m.editText)
	pos := min(m.editCursorPos, len(runes))
	inserted := []rune(text)
	out := make([]rune, 0, len(runes)+len(inserted))
	out = append(out, runes[:pos]...)
	out = append(out, inserted...)
	out = append(out, runes[pos:]...)
	m.editText = string(out)
	m.editCursorPos = pos + len(inserted)
}

func (m *model) startFileInput(op FileOperation, suggestion string) {
	m.fileOp = op
	m.filenameInput = suggestion
	m.mode = ModeFileInput
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.filenameInput = ""
		m.errorMessage = ""
	case tea.KeyBackspace:
		if runes := []rune(m.filenameInput); len(runes) > 0 {
			m.filenameInput = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes:
		m.filenameInput += string(msg.Runes)
	case tea.KeyEnter:
		filename := strings.TrimSpace(m.filenameInput)
		if filename == "" {
			m.errorMessage = "Filename required"
			return m, nil
		}
		if m.fileOp == FileOpSave && filepath.Ext(filename) == "" {
			filename += filepath.Ext(defaultFilename)
		}
		if m.fileOp != FileOpOpen && m.config.Confirmations && filename != m.filename {
			if _, err := os.Stat(m.config.GetSavePath(filename)); err == nil {
				m.pendingFilename = filename
				m.confirmAction = ConfirmOverwriteFile
				m.mode = ModeConfirm
				return m, nil
			}
		}
		m.performFileOp(filename)
	}
	return m, nil
}

func (m *model) performFileOp(filename string) {
	path := m.config.GetSavePath(filename)
	var err error

	switch m.fileOp {
	case FileOpSave:
		if err = m.doc.SaveToFile(path); err == nil {
			m.filename = filename
		}
	case FileOpSavePNG:
		err = exportPNG(path, m.doc.Shapes(), m.opts)
	case FileOpSaveTXT:
		err = exportTXT(path, m.doc.Shapes(), m.opts)
	case FileOpOpen:
		doc := NewDocument(m.opts.Mode)
		if err = doc.LoadFromFile(path); err == nil {
			m.doc = doc
			m.opts.Mode = doc.Mode()
			m.filename = filename
			m.undoStack = m.undoStack[:0]
			m.redoStack = m.redoStack[:0]
		}
	}

	if err != nil {
		m.errorMessage = err.Error()
		m.log.Warnw("file operation failed", "file", path, "error", err)
		m.mode = ModeFileInput
		return
	}

	absPath, _ := filepath.Abs(path)
	if m.fileOp == FileOpOpen {
		m.successMessage = fmt.Sprintf("Opened %s", absPath)
	} else {
		m.successMessage = fmt.Sprintf("Saved to %s", absPath)
	}
	m.errorMessage = ""
	m.filenameInput = ""
	m.mode = ModeNormal
	m.log.Infow("file operation", "file", absPath, "shapes", m.doc.Len())
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmClear:
			m.clearDocument()
			m.mode = ModeNormal
		case ConfirmOverwriteFile:
			m.performFileOp(m.pendingFilename)
			m.pendingFilename = ""
		}
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
		} else {
			m.mode = ModeNormal
		}
	}
	return m, nil
}

func replaceExt(filename, ext string) string {
	if filename == "" {
		filename = defaultFilename
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	shapes := m.doc.Shapes()
	if m.mode == ModeDrawing {
		shapes = append(shapes, m.pendingShape())
	}
	res, err := sketch.Render(shapes, m.opts)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	viewHeight := m.height - 1
	if viewHeight < 1 {
		viewHeight = 1
	}
	viewWidth := m.width
	if m.showPane {
		viewWidth -= helpPaneWidth
	}
	if viewWidth < 1 {
		viewWidth = 1
	}

	canvas := m.canvasView(res.Grid, viewWidth, viewHeight)
	if m.showPane {
		canvas = lipgloss.JoinHorizontal(lipgloss.Top, canvas, renderPane(res, m.opts.Mode, viewHeight))
	}

	return canvas + "\n" + m.statusLine()
}

// canvasView renders the grid cells visible in a width x height viewport that
// follows the cursor, with the cursor cell drawn as a block.
func (m model) canvasView(grid sketch.Grid, width, height int) string {
	cols, rows := grid.Size()
	offX := max(0, m.cursorX-width+1)
	offY := max(0, m.cursorY-height+1)

	lines := make([]string, 0, height)
	for y := offY; y < rows && y < offY+height; y++ {
		var b strings.Builder
		for x := offX; x < cols; x++ {
			if x == m.cursorX && y == m.cursorY {
				b.WriteString("█")
				continue
			}
			b.WriteString(grid.At(x, y))
		}
		lines = append(lines, runewidth.Truncate(b.String(), width, ""))
	}
	return strings.Join(lines, "\n")
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeDrawing:
		return "DRAW"
	case ModeEditing:
		return "EDIT"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) statusLine() string {
	var status string
	switch m.mode {
	case ModeEditing:
		runes := []rune(strings.ReplaceAll(m.editText, "\n", " "))
		pos := min(m.editCursorPos, len(runes))
		display := string(runes[:pos]) + "█" + string(runes[pos:])
		status = fmt.Sprintf("Mode: EDIT | Shape %d | Text: %s | Enter=newline, Ctrl+V=paste, Ctrl+S=save, Esc=cancel", m.editIndex, display)
	case ModeFileInput:
		var op string
		switch m.fileOp {
		case FileOpSave:
			op = "Save"
		case FileOpSavePNG:
			op = "Export PNG"
		case FileOpSaveTXT:
			op = "Export TXT"
		case FileOpOpen:
			op = "Open"
		}
		status = fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", op, m.filenameInput)
		if m.errorMessage != "" {
			status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
		}
		return status
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit napkinwire? Unsaved changes will be lost. (y/n)"
		case ConfirmClear:
			message = "Clear all shapes? (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.pendingFilename)
		}
		return fmt.Sprintf("Mode: CONFIRM | %s", message)
	default:
		role := "structural"
		if m.contentRole {
			role = "content"
		}
		status = fmt.Sprintf("Mode: %s | %s | Tool: %s | Color: %s | Role: %s | Cursor: (%d,%d)",
			m.modeString(), m.opts.Mode, m.tool, m.currentColor(), role, m.cursorX, m.cursorY)
	}

	switch {
	case m.errorMessage != "":
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		status += " | " + successStyle.Render(m.successMessage)
	case m.mode == ModeNormal:
		status += " | ? for help | q to quit"
	}
	return status
}

var helpLines = []string{
	"napkinwire help",
	"===============",
	"",
	"Navigation:",
	"  h/←/j/↓/k/↑/l/→  Move cursor one cell",
	"  Shift+h/j/k/l    Move cursor two cells",
	"",
	"Drawing:",
	"  r / c / d / a    Rectangle, circle, diamond, arrow tool",
	"  Space            Anchor a shape, Space again to finish",
	"  Esc              Cancel the shape being drawn",
	"  t                Toggle content role for new shapes (mockup)",
	"  [ / ]            Previous / next stroke color",
	"  m                Switch between diagram and mockup mode",
	"",
	"Editing:",
	"  e                Edit text of the shape under the cursor",
	"  Ctrl+V           Paste clipboard text while editing",
	"  Ctrl+S           Save text",
	"  u / U            Undo / redo",
	"  x                Clear all shapes",
	"",
	"Files:",
	"  s                Save sketch (.napkin, .json or .yaml)",
	"  o                Open sketch",
	"  S                Export PNG",
	"  T                Export TXT",
	"  y                Copy LLM prompt to clipboard",
	"  p                Toggle legend pane",
	"",
	"  ?                Toggle this help",
	"  q/Ctrl+C         Quit",
}

func (m model) helpView() string {
	visibleHeight := max(m.height-1, 1)
	start := min(m.helpScroll, max(len(helpLines)-visibleHeight, 0))
	end := min(start+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[start:end], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		start+1, end, len(helpLines))
	return result
}
