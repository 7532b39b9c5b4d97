package main

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// gridSize is the canvas size in cells.
func (m *model) gridSize() (cols, rows int) {
	snap := m.config.SnapSize
	return m.config.CanvasWidth / snap, m.config.CanvasHeight / snap
}

func (m *model) ensureCursorInBounds() {
	cols, rows := m.gridSize()
	if m.cursorX >= cols {
		m.cursorX = cols - 1
	}
	if m.cursorY >= rows {
		m.cursorY = rows - 1
	}
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
}

// cursorPoint is the canvas pixel position of the cursor cell.
func (m *model) cursorPoint() (int, int) {
	snap := m.config.SnapSize
	return m.cursorX * snap, m.cursorY * snap
}
