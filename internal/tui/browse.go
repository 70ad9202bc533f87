package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tomozane/kotoba/internal/sentence"
	"github.com/tomozane/kotoba/internal/vocab"
)

// BrowseModel is the vocabulary browser: a filterable list on the
// left, the selected entry's details on the right.
type BrowseModel struct {
	entries  []*vocab.Entry
	filtered []*vocab.Entry
	cursor   int

	search    textinput.Model
	searching bool

	renderer *sentence.Renderer

	width  int
	height int
}

// NewBrowseModel creates a browser over the given entries.
func NewBrowseModel(entries []*vocab.Entry, renderer *sentence.Renderer) BrowseModel {
	search := textinput.New()
	search.Placeholder = "search word or translation"
	search.CharLimit = 64

	return BrowseModel{
		entries:  entries,
		filtered: entries,
		search:   search,
		renderer: renderer,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter", "esc":
				m.searching = false
				m.search.Blur()
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.searching = true
			return m, m.search.Focus()
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *BrowseModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		m.filtered = m.entries
	} else {
		var filtered []*vocab.Entry
		for _, e := range m.entries {
			if entryMatches(e, query) {
				filtered = append(filtered, e)
			}
		}
		m.filtered = filtered
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func entryMatches(e *vocab.Entry, query string) bool {
	if strings.Contains(strings.ToLower(e.Word), query) {
		return true
	}
	for _, t := range e.Translations {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

func (m BrowseModel) View() string {
	listWidth := 30
	if m.width > 0 && m.width/3 < listWidth {
		listWidth = m.width / 3
	}

	var list strings.Builder
	list.WriteString(TitleStyle.Render("kotoba · browse"))
	list.WriteString("\n\n")
	if m.searching || m.search.Value() != "" {
		list.WriteString(SearchBoxStyle.Render(m.search.View()))
		list.WriteString("\n")
	}
	for i, e := range m.filtered {
		label := truncate(DisplayText(e.Word), listWidth-4)
		if i == m.cursor {
			list.WriteString(ListItemActiveStyle.Render("> " + label))
		} else {
			list.WriteString(ListItemStyle.Render("  " + label))
		}
		list.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		list.WriteString(HelpStyle.Render("  no matches"))
		list.WriteString("\n")
	}
	list.WriteString("\n")
	list.WriteString(HelpStyle.Render("/ search · j/k move · q quit"))

	detail := m.detailView()

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).Render(list.String()),
		lipgloss.NewStyle().Padding(1, 2).Render(detail),
	)
}

func (m BrowseModel) detailView() string {
	if len(m.filtered) == 0 {
		return ""
	}
	e := m.filtered[m.cursor]

	var b strings.Builder
	b.WriteString(WordStyle.Render(DisplayText(e.Word)))
	b.WriteString("\n\n")
	b.WriteString(DetailLabelStyle.Render("Translations"))
	b.WriteString(DetailValueStyle.Render(strings.Join(e.Translations, ", ")))
	b.WriteString("\n")

	for i, s := range e.Sentences {
		b.WriteString("\n")
		b.WriteString(DetailLabelStyle.Render(fmt.Sprintf("Sentence %d", i+1)))
		b.WriteString(SentenceStyle.Render(DisplayText(s.JP)))
		if s.Translation != "" {
			b.WriteString("\n")
			b.WriteString(DetailLabelStyle.Render(""))
			b.WriteString(SentenceTranslationStyle.Render(s.Translation))
		}
	}

	if len(e.Kanji()) > 0 {
		b.WriteString("\n\n")
		b.WriteString(DetailLabelStyle.Render("Lookup"))
		var links []string
		for _, k := range e.Kanji() {
			links = append(links, fmt.Sprintf("%c %s", k, m.renderer.LookupURL(k)))
		}
		b.WriteString(DetailValueStyle.Render(strings.Join(links, "\n"+strings.Repeat(" ", 14))))
	}

	return b.String()
}
