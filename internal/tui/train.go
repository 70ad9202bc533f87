package tui

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tomozane/kotoba/internal/tui/bigkana"
	"github.com/tomozane/kotoba/internal/vocab"
)

// TrainModel is the flashcard training view. The front of a card shows
// the Japanese word and its example sentences; flipping reveals the
// translations.
type TrainModel struct {
	entries []*vocab.Entry
	order   []int
	current int
	flipped bool

	width  int
	height int
}

// NewTrainModel creates a trainer over the given entries.
func NewTrainModel(entries []*vocab.Entry) TrainModel {
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	return TrainModel{entries: entries, order: order}
}

func (m TrainModel) Init() tea.Cmd {
	return nil
}

func (m TrainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "enter":
			m.flipped = !m.flipped
		case "n", "right", "l":
			m.current = (m.current + 1) % len(m.order)
			m.flipped = false
		case "p", "left", "h":
			m.current = (m.current - 1 + len(m.order)) % len(m.order)
			m.flipped = false
		case "s":
			rand.Shuffle(len(m.order), func(i, j int) {
				m.order[i], m.order[j] = m.order[j], m.order[i]
			})
			m.current = 0
			m.flipped = false
		}
	}
	return m, nil
}

func (m TrainModel) View() string {
	if len(m.entries) == 0 {
		return ErrorStyle.Render("No vocabulary to train. Add entries with 'kotoba add'.")
	}

	entry := m.entries[m.order[m.current]]

	var card strings.Builder

	if big := bigkana.Cached(entry.Word, 24, 10); big != "" {
		card.WriteString(lipgloss.NewStyle().Foreground(ColorAccent).Render(big))
		card.WriteString("\n\n")
	}
	card.WriteString(WordStyle.Render(DisplayText(entry.Word)))
	card.WriteString("\n")

	for _, s := range entry.Sentences {
		card.WriteString("\n")
		card.WriteString(SentenceStyle.Render(DisplayText(s.JP)))
		if m.flipped && s.Translation != "" {
			card.WriteString("\n")
			card.WriteString(SentenceTranslationStyle.Render(s.Translation))
		}
	}

	card.WriteString("\n\n")
	if m.flipped {
		card.WriteString(TranslationStyle.Render(strings.Join(entry.Translations, ", ")))
	} else {
		card.WriteString(FlipHintStyle.Render("[space] reveal"))
	}

	progress := ProgressStyle.Render(fmt.Sprintf("%d/%d", m.current+1, len(m.order)))
	help := HelpStyle.Render("space flip · n/p next/prev · s shuffle · q quit")

	view := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render("kotoba · train"),
		CardStyle.Render(card.String()),
		progress,
		help,
	)

	if m.width > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
