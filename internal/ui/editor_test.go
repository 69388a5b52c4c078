package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEditorSubmit(t *testing.T) {
	model := NewEditorModel("enter code")

	var m tea.Model = model
	for _, r := range "x = 1" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})

	code, ok := Code(m)
	if !ok {
		t.Fatal("Expected submit, got cancel")
	}
	if code != "x = 1" {
		t.Errorf("Expected code %q, got %q", "x = 1", code)
	}
}

func TestEditorCancel(t *testing.T) {
	model := NewEditorModel("enter code")

	m, _ := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := Code(m); ok {
		t.Error("Expected cancel after esc")
	}
}

func TestEditorView(t *testing.T) {
	model := NewEditorModel("Lexical Analyzer")
	view := model.View()
	if !strings.Contains(view, "Lexical Analyzer") {
		t.Error("Expected title in view")
	}
	if !strings.Contains(view, "ctrl+d") {
		t.Error("Expected help line in view")
	}
}
