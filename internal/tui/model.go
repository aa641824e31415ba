package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusrpg/internal/engine"
	"focusrpg/internal/storage"
)

const boardTasks = 5

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	tasks []storage.Task
	stats *engine.DailyStats

	selected  int
	sessionID int64 // 0 when no session is running
	sessionOn string

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	tasks []storage.Task
	stats *engine.DailyStats
	err   error
}

type startedMsg struct {
	res *engine.StartSessionResult
	err error
}

type stoppedMsg struct {
	res *engine.StopSessionResult
	err error
}

type distractedMsg struct {
	count int
	err   error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.svc.TopTasks(m.ctx, boardTasks)
		if err != nil {
			return loadedMsg{err: err}
		}
		stats, err := m.svc.Stats(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{tasks: tasks, stats: stats}
	}
}

func (m boardModel) startCmd(taskID int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.StartSession(m.ctx, taskID)
		return startedMsg{res: res, err: err}
	}
}

func (m boardModel) stopCmd(sessionID int64, completed bool, est int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.StopSession(m.ctx, engine.StopSessionInput{
			SessionID:  sessionID,
			Completed:  completed,
			EstMinutes: est,
		})
		return stoppedMsg{res: res, err: err}
	}
}

func (m boardModel) distractCmd(sessionID int64) tea.Cmd {
	return func() tea.Msg {
		count, err := m.svc.RecordDistraction(m.ctx, sessionID)
		return distractedMsg{count: count, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.tasks = msg.tasks
		m.stats = msg.stats
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case startedMsg:
		if msg.err != nil {
			m.lastLog = "Start failed: " + msg.err.Error()
			return m, nil
		}
		m.sessionID = msg.res.SessionID
		m.sessionOn = msg.res.TaskTitle
		m.lastLog = fmt.Sprintf("Session %d started on %q.", msg.res.SessionID, msg.res.TaskTitle)
		return m, m.loadCmd()
	case stoppedMsg:
		if msg.err != nil {
			m.lastLog = "Stop failed: " + msg.err.Error()
			return m, nil
		}
		m.sessionID = 0
		m.sessionOn = ""
		m.lastLog = fmt.Sprintf("Session stopped: +%d pts, %d min.", msg.res.EarnedPoints, msg.res.DurationMin)
		return m, m.loadCmd()
	case distractedMsg:
		if msg.err != nil {
			m.lastLog = "Distract failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Distraction noted (%d so far).", msg.count)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "s", "enter":
			if m.sessionID != 0 {
				m.lastLog = "A session is already running; stop it first."
				return m, nil
			}
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			m.lastLog = fmt.Sprintf("Starting session on %d…", t.ID)
			return m, m.startCmd(t.ID)
		case "x":
			if m.sessionID == 0 {
				m.lastLog = "No session running."
				return m, nil
			}
			return m, m.stopCmd(m.sessionID, true, m.selectedEst())
		case "a":
			if m.sessionID == 0 {
				m.lastLog = "No session running."
				return m, nil
			}
			return m, m.stopCmd(m.sessionID, false, 0)
		case "d":
			if m.sessionID == 0 {
				m.lastLog = "No session running."
				return m, nil
			}
			return m, m.distractCmd(m.sessionID)
		}
	}
	return m, nil
}

func (m boardModel) selectedEst() int {
	if m.selected >= 0 && m.selected < len(m.tasks) {
		return m.tasks[m.selected].EstMinutes
	}
	return 25
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.stats == nil {
		return "Focus RPG — loading…"
	}
	session := "idle"
	if m.sessionID != 0 {
		session = fmt.Sprintf("session %d on %q", m.sessionID, m.sessionOn)
	}
	return fmt.Sprintf("Focus RPG | Points %d | Streak %d | %s", m.stats.TotalPoints, m.stats.StreakDays, session)
}

func (m boardModel) renderSidebar() string {
	if m.stats == nil {
		return "Stats\n\nLoading…"
	}
	lines := []string{"Today"}
	lines = append(lines, fmt.Sprintf("- points: %d", m.stats.TotalPoints))
	lines = append(lines, fmt.Sprintf("- done: %d", m.stats.TasksDone))
	lines = append(lines, fmt.Sprintf("- sessions: %d", m.stats.SessionsLogged))
	lines = append(lines, fmt.Sprintf("- streak: %d", m.stats.StreakDays))
	lines = append(lines, fmt.Sprintf("- distractions: %d", m.stats.DistractionsToday))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- s/enter: start session")
	lines = append(lines, "- x: stop (completed)")
	lines = append(lines, "- a: stop (abandon)")
	lines = append(lines, "- d: distraction")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Top Tasks")
	if len(m.tasks) == 0 {
		out = append(out, "(no open tasks)")
		return strings.Join(out, "\n")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		due := ""
		if t.DueDate != nil && *t.DueDate != "" {
			due = " due " + *t.DueDate
		}
		out = append(out, fmt.Sprintf("%s%d %s (score=%d, est=%dm%s)", cursor, t.ID, t.Title, t.PriorityScore, t.EstMinutes, due))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
