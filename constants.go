package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeDrawing
	ModeEditing
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpSavePNG
	FileOpSaveTXT
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
	ConfirmQuit
	ConfirmOverwriteFile
)

type ActionType int

const (
	ActionAddShape ActionType = iota
	ActionEditText
	ActionClear
)

func (a ActionType) String() string {
	switch a {
	case ActionAddShape:
		return "add-shape"
	case ActionEditText:
		return "edit-text"
	case ActionClear:
		return "clear"
	default:
		return "unknown"
	}
}

const (
	defaultFilename = "sketch.napkin"
	logFilename     = "napkinwire.log"
	helpPaneWidth   = 36
)
