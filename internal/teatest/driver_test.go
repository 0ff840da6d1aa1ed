package teatest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

// counterModel counts key presses and bumps; "b" triggers a chained bump.
type counterModel struct {
	count int
	width int
	lefts int
}

func (m counterModel) Init() tea.Cmd {
	return func() tea.Msg { return bumpMsg{} }
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case bumpMsg:
		m.count++
	case tea.KeyMsg:
		switch msg.String() {
		case "b":
			return m, tea.Batch(
				func() tea.Msg { return bumpMsg{} },
				func() tea.Msg { return bumpMsg{} },
			)
		case "left":
			m.lefts++
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m counterModel) View() string {
	return fmt.Sprintf("\x1b[1mcount=%d\x1b[0m width=%d lefts=%d", m.count, m.width, m.lefts)
}

func TestDriver_InitAndBatch(t *testing.T) {
	d := New(t, counterModel{}, WithSize(80, 24))
	d.DrainInit()
	assert.True(t, d.ViewContains("count=1", "width=80"))

	d.PressKey('b')
	assert.True(t, d.ViewContains("count=3"), d.PlainView())
}

func TestDriver_ArrowKeys(t *testing.T) {
	d := New(t, counterModel{})
	d.Repeat(3, d.PressLeft)
	assert.True(t, d.ViewContains("lefts=3"))
}

func TestDriver_QuitStopsSends(t *testing.T) {
	d := New(t, counterModel{})
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressKey('b')
	assert.True(t, d.ViewContains("count=0"))
}

func TestDriver_PlainViewStripsANSI(t *testing.T) {
	d := New(t, counterModel{})
	assert.NotContains(t, d.PlainView(), "\x1b")
	assert.Contains(t, d.View(), "\x1b[1m")
}
