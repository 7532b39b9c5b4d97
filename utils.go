package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

// cleanClipboardText strips rich-text markup and control characters from
// pasted text and normalises line endings.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	if isRTF(text) {
		text = stripRTF(text)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r >= 32 {
			result.WriteRune(r)
		} else if r == '\t' {
			result.WriteByte(' ')
		}
	}
	return strings.TrimRight(result.String(), "\n")
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1")
}

// stripRTF keeps the plain text of an RTF document. \par and \line become
// newlines, every other control word is dropped.
func stripRTF(text string) string {
	var result strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '{' || r == '}':
			continue
		case r == '\\' && i+1 < len(runes):
			next := runes[i+1]
			if next == '\\' || next == '{' || next == '}' {
				result.WriteRune(next)
				i++
				continue
			}
			j := i + 1
			for j < len(runes) && isASCIILetter(runes[j]) {
				j++
			}
			word := string(runes[i+1 : j])
			for j < len(runes) && (runes[j] == '-' || (runes[j] >= '0' && runes[j] <= '9')) {
				j++
			}
			if j < len(runes) && runes[j] == ' ' {
				j++
			}
			if word == "par" || word == "line" {
				result.WriteByte('\n')
			}
			i = j - 1
		default:
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
