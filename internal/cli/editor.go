package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/rolemix/internal/cli/formatter"
	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const bigStep = 5

type editorKeyMap struct {
	Up, Down           key.Binding
	Dec, Inc           key.Binding
	DecBig, IncBig     key.Binding
	Normalize, Balance key.Binding
	NextProfile        key.Binding
	Create, Duplicate  key.Binding
	Insights, Help     key.Binding
	Quit               key.Binding
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Dec:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "-1")),
		Inc:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "+1")),
		DecBig:      key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "-5")),
		IncBig:      key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "+5")),
		Normalize:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "normalize")),
		Balance:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "balance")),
		NextProfile: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next profile")),
		Create:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "new profile")),
		Duplicate:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "duplicate")),
		Insights:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insights")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dec, k.Inc, k.Normalize, k.Balance, k.Insights, k.Help, k.Quit}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Dec, k.Inc, k.DecBig, k.IncBig},
		{k.Normalize, k.Balance, k.Insights},
		{k.NextProfile, k.Create, k.Duplicate, k.Quit},
	}
}

// profileLoadedMsg carries a fresh snapshot of the store.
type profileLoadedMsg struct {
	profile  *domain.Profile
	position int
	count    int
}

// editorResultMsg reports the outcome of a store mutation.
type editorResultMsg struct {
	toast string
	err   error
}

// editorModel is the interactive weight editor. It never mutates its
// profile snapshot directly; every change goes through the store and the
// snapshot is reloaded afterwards.
type editorModel struct {
	app  *App
	keys editorKeyMap
	help help.Model

	profile  *domain.Profile
	position int
	count    int

	cursor       int
	showInsights bool
	toast        string
	toastErr     bool

	width, height int
}

func newEditorModel(app *App) editorModel {
	return editorModel{
		app:          app,
		keys:         newEditorKeyMap(),
		help:         help.New(),
		showInsights: true,
	}
}

func runEditor(app *App) error {
	_, err := tea.NewProgram(newEditorModel(app), tea.WithAltScreen()).Run()
	return err
}

func (m editorModel) Init() tea.Cmd {
	return m.load()
}

func (m editorModel) load() tea.Cmd {
	s := m.app.Store
	return func() tea.Msg {
		msg := profileLoadedMsg{profile: s.Active()}
		profiles := s.Profiles()
		msg.count = len(profiles)
		for i, p := range profiles {
			if msg.profile != nil && p.ID == msg.profile.ID {
				msg.position = i + 1
			}
		}
		return msg
	}
}

// mutate runs fn against the store and reports toast on success.
func (m editorModel) mutate(toast string, fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		override, err := fn(context.Background())
		if override != "" {
			toast = override
		}
		return editorResultMsg{toast: toast, err: err}
	}
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case profileLoadedMsg:
		m.profile = msg.profile
		m.position = msg.position
		m.count = msg.count
		if m.profile != nil && m.cursor >= len(m.profile.Roles) {
			m.cursor = max(len(m.profile.Roles)-1, 0)
		}
		return m, nil

	case editorResultMsg:
		m.toastErr = msg.err != nil
		if msg.err != nil {
			m.toast = msg.err.Error()
		} else {
			m.toast = msg.toast
		}
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Insights):
		m.showInsights = !m.showInsights
		return m, nil
	case key.Matches(msg, m.keys.Create):
		return m, m.mutate("New profile created", func(ctx context.Context) (string, error) {
			_, err := m.app.Store.Create(ctx, defaultNewProfileName, defaultNewProfileDescription)
			return "", err
		})
	case key.Matches(msg, m.keys.NextProfile):
		return m, m.nextProfile()
	}

	if m.profile == nil {
		return m, nil
	}
	roles := m.profile.Roles

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(roles)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Dec):
		return m, m.adjust(-1)
	case key.Matches(msg, m.keys.Inc):
		return m, m.adjust(1)
	case key.Matches(msg, m.keys.DecBig):
		return m, m.adjust(-bigStep)
	case key.Matches(msg, m.keys.IncBig):
		return m, m.adjust(bigStep)
	case key.Matches(msg, m.keys.Normalize):
		return m, m.mutate("Weights normalized", func(ctx context.Context) (string, error) {
			changed, err := m.app.Store.Normalize(ctx)
			if err == nil && !changed {
				return "Total weight is 0; nothing to normalize", nil
			}
			return "", err
		})
	case key.Matches(msg, m.keys.Balance):
		return m, m.mutate("Suggested a more balanced mix", func(ctx context.Context) (string, error) {
			return "", m.app.Store.SuggestBalance(ctx)
		})
	case key.Matches(msg, m.keys.Duplicate):
		id := m.profile.ID
		return m, m.mutate("Profile duplicated", func(ctx context.Context) (string, error) {
			_, err := m.app.Store.Duplicate(ctx, id)
			return "", err
		})
	}
	return m, nil
}

func (m editorModel) adjust(delta int) tea.Cmd {
	if m.cursor >= len(m.profile.Roles) {
		return nil
	}
	roleID := m.profile.Roles[m.cursor].ID
	return m.mutate("", func(ctx context.Context) (string, error) {
		return "", m.app.Store.AdjustWeight(ctx, roleID, delta)
	})
}

// nextProfile selects the profile after the active one, wrapping around.
func (m editorModel) nextProfile() tea.Cmd {
	s := m.app.Store
	return m.mutate("", func(ctx context.Context) (string, error) {
		profiles := s.Profiles()
		if len(profiles) == 0 {
			return "", nil
		}
		next := 0
		for i, p := range profiles {
			if p.ID == s.ActiveID() {
				next = (i + 1) % len(profiles)
			}
		}
		if err := s.Select(ctx, profiles[next].ID); err != nil {
			return "", err
		}
		return "Switched to " + profiles[next].Name, nil
	})
}

func (m editorModel) View() string {
	var b strings.Builder

	if m.profile == nil {
		b.WriteString(formatter.Header("rolemix"))
		b.WriteString("\n\n")
		b.WriteString(formatter.Dim("No active profile. Press c to create one."))
		b.WriteString("\n\n")
		b.WriteString(m.footer())
		return b.String()
	}

	p := m.profile
	title := fmt.Sprintf("%s  (%d/%d)", p.Name, m.position, m.count)
	b.WriteString(formatter.Header(title))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(formatter.Dim(p.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(formatter.RenderDistribution(p.Roles, m.barWidth()))
	b.WriteString("\n")
	b.WriteString(formatter.RenderTotal(p.TotalWeight()))
	b.WriteString("\n\n")

	b.WriteString(formatter.FormatRoleTable(p.Roles, m.cursor))

	if m.cursor < len(p.Roles) {
		r := p.Roles[m.cursor]
		b.WriteString("\n")
		b.WriteString(formatter.Dim(fmt.Sprintf("%s · %s · %s", r.Essence, r.Method, r.CompanyType)))
		b.WriteString("\n")
	}

	if m.showInsights {
		b.WriteString("\n")
		b.WriteString(formatter.FormatInsights(m.app.Store.Insights()))
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m editorModel) footer() string {
	var b strings.Builder
	if m.toast != "" {
		if m.toastErr {
			b.WriteString(formatter.StyleRed.Render(m.toast))
		} else {
			b.WriteString(formatter.StyleGreen.Render(m.toast))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m editorModel) barWidth() int {
	if m.width > 10 {
		return min(m.width-4, 60)
	}
	return 45
}
