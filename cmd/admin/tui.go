package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/algocode/backend/polechudes"
	"github.com/algocode/backend/user/auth"
)

type phase int

const (
	phaseScoreboard phase = iota
	phaseEnterReveal
)

type model struct {
	srvc   *polechudes.PoleChudesSrvc
	gameID int64

	phase     phase
	errMsg    string
	standings *polechudes.GameStandings

	revealInput textinput.Model
}

func initialModel(srvc *polechudes.PoleChudesSrvc, gameID int64) model {
	ti := textinput.New()
	ti.Placeholder = "team-id letter"
	ti.CharLimit = 32
	ti.Width = 20

	return model{
		srvc:        srvc,
		gameID:      gameID,
		phase:       phaseScoreboard,
		revealInput: ti,
	}
}

type standingsMsg struct {
	standings *polechudes.GameStandings
	err       error
}

type revealMsg struct {
	err error
}

type tickMsg time.Time

func (m model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(5*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) refresh() tea.Cmd {
	return func() tea.Msg {
		standings, err := m.srvc.ListTeams(context.Background(), m.gameID)
		return standingsMsg{standings: standings, err: err}
	}
}

// reveal parses "team-id letter" and opens the letter for that team.
func (m model) reveal(input string) tea.Cmd {
	return func() tea.Msg {
		fields := strings.Fields(input)
		if len(fields) != 2 {
			return revealMsg{err: fmt.Errorf("expected: team-id letter")}
		}
		teamID, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return revealMsg{err: fmt.Errorf("invalid team id %q", fields[0])}
		}
		err = m.srvc.RevealLetter(context.Background(), teamID, auth.Admin(), fields[1])
		return revealMsg{err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case standingsMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.errMsg = ""
			m.standings = msg.standings
		}
		return m, nil
	case revealMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.errMsg = ""
		}
		m.phase = phaseScoreboard
		m.revealInput.Blur()
		m.revealInput.SetValue("")
		return m, m.refresh()
	case tickMsg:
		return m, tea.Batch(m.refresh(), tick())
	case tea.KeyMsg:
		if m.phase == phaseEnterReveal {
			switch msg.Type {
			case tea.KeyCtrlC, tea.KeyEsc:
				m.phase = phaseScoreboard
				m.revealInput.Blur()
				m.revealInput.SetValue("")
				return m, nil
			case tea.KeyEnter:
				return m, m.reveal(m.revealInput.Value())
			}
			m.revealInput, cmd = m.revealInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			return m, m.refresh()
		case "l":
			m.phase = phaseEnterReveal
			m.revealInput.Focus()
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func (m model) View() string {
	b := func(format string, a ...any) string {
		blueText := lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))
		return blueText.Render(fmt.Sprintf(format, a...))
	}

	var sb strings.Builder
	if m.standings == nil {
		sb.WriteString("Loading standings...\n")
	} else {
		sb.WriteString(b("%s (game %d)\n\n", m.standings.Name, m.standings.GameID))
		for i, team := range m.standings.Teams {
			sb.WriteString(fmt.Sprintf("%2d. %-24s %5d pts  word %d\n",
				i+1, team.Name, team.Score, team.WordIdx+1))
		}
		sb.WriteString("\n")
	}

	if m.errMsg != "" {
		sb.WriteString(fmt.Sprintf("Error: %s\n", m.errMsg))
	}

	if m.phase == phaseEnterReveal {
		sb.WriteString(fmt.Sprintf("Open a letter: %s\n", m.revealInput.View()))
		sb.WriteString("Press Enter to confirm, Esc to cancel.\n")
	} else {
		sb.WriteString("Press r to refresh, l to open a letter, q to quit.\n")
	}
	return sb.String()
}
