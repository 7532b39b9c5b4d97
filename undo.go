package main

func (m *model) recordAction(actionType ActionType, data, inverse interface{}) {
	m.undoStack = append(m.undoStack, Action{
		Type:    actionType,
		Data:    data,
		Inverse: inverse,
	})
	m.redoStack = m.redoStack[:0]
}

func (m *model) undo() {
	if len(m.undoStack) == 0 {
		return
	}

	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	switch action.Type {
	case ActionAddShape:
		data := action.Data.(AddShapeData)
		m.doc.Truncate(data.Index)
	case ActionEditText:
		data := action.Inverse.(EditTextData)
		m.doc.SetText(data.Index, data.NewText)
	case ActionClear:
		data := action.Inverse.(ClearData)
		m.doc.Restore(data.Shapes)
	}

	m.redoStack = append(m.redoStack, action)
	m.log.Debugw("undo", "action", action.Type, "shapes", m.doc.Len())
}

func (m *model) redo() {
	if len(m.redoStack) == 0 {
		return
	}

	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	switch action.Type {
	case ActionAddShape:
		data := action.Data.(AddShapeData)
		m.doc.Truncate(data.Index)
		m.doc.Add(data.Shape)
	case ActionEditText:
		data := action.Data.(EditTextData)
		m.doc.SetText(data.Index, data.NewText)
	case ActionClear:
		m.doc.Clear()
	}

	m.undoStack = append(m.undoStack, action)
	m.log.Debugw("redo", "action", action.Type, "shapes", m.doc.Len())
}
