package main

import (
	"go.uber.org/zap"

	"napkinwire/sketch"
)

type model struct {
	width            int
	height           int
	cursorX          int
	cursorY          int
	doc              *Document
	undoStack        []Action
	redoStack        []Action
	filename         string
	mode             Mode
	tool             sketch.Kind
	anchorX          int
	anchorY          int
	contentRole      bool
	colorIndex       int
	palette          []string
	editIndex        int
	editText         string
	editCursorPos    int
	originalEditText string
	fileOp           FileOperation
	filenameInput    string
	pendingFilename  string
	confirmAction    ConfirmAction
	showPane         bool
	help             bool
	helpScroll       int
	errorMessage     string
	successMessage   string
	config           *Config
	opts             sketch.Options
	log              *zap.SugaredLogger
}

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type AddShapeData struct {
	Index int
	Shape sketch.Shape
}

type EditTextData struct {
	Index   int
	NewText string
	OldText string
}

type ClearData struct {
	Shapes []sketch.Shape
}
