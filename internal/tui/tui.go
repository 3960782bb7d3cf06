package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"schedsim/config"
	"schedsim/internal/output"
	"schedsim/internal/requests"
	"schedsim/internal/schedulers"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("57")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	baseStyle     = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

type modelState int

const (
	stateMenu modelState = iota
	stateInput
	statePrompt
	stateResult
)

// promptTarget names what the prompt state is collecting input for.
type promptTarget int

const (
	promptRoundRobin promptTarget = iota
	promptFeedbackQueue
	promptCompare
	promptCores
)

const (
	itemInput = iota
	itemExample
	itemFCFS
	itemSJF
	itemPriority
	itemEDF
	itemRoundRobin
	itemMLFQ
	itemCompare
	itemCores
	itemQuit
)

var menuItems = []string{
	"Input custom processes",
	"Load example data",
	"Run FCFS",
	"Run SJF",
	"Run Priority",
	"Run EDF",
	"Run Round Robin",
	"Run MLFQ",
	"Compare all algorithms",
	"Reconfigure cores",
	"Quit",
}

// tuiModel drives the interactive menu. A single scheduler lives for the
// whole session, so loaded processes survive across runs until the user
// replaces them or reconfigures the machine.
type tuiModel struct {
	cfg       *config.SchedulerConfig
	scheduler *schedulers.Scheduler

	state     modelState
	cursor    int
	input     textinput.Model
	processes table.Model
	prompt    promptTarget
	result    string
	status    string
	err       error
}

func initialModel(cfg *config.SchedulerConfig, log *logrus.Logger) (tuiModel, error) {
	scheduler, err := schedulers.NewScheduler(cfg.Cores, log)
	if err != nil {
		return tuiModel{}, err
	}

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40

	columns := []table.Column{
		{Title: "Process", Width: 8},
		{Title: "Burst", Width: 6},
		{Title: "Priority", Width: 9},
		{Title: "Deadline", Width: 9},
		{Title: "Real-Time", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(8),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	t.SetStyles(s)

	m := tuiModel{
		cfg:       cfg,
		scheduler: scheduler,
		input:     ti,
		processes: t,
	}
	return m, nil
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.updateMenu(msg)
	case stateInput:
		return m.updateInput(msg)
	case statePrompt:
		return m.updatePrompt(msg)
	case stateResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m tuiModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case "enter":
			return m.activate(m.cursor)
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				item := int(key[0] - '1')
				if item < len(menuItems) {
					m.cursor = item
					return m.activate(item)
				}
			}
		}
	}
	return m, nil
}

// activate runs one menu entry.
func (m tuiModel) activate(item int) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""

	switch item {
	case itemInput:
		m.scheduler.ClearProcesses()
		m.refreshProcessTable()
		m.input.Placeholder = "burst [priority] [deadline] [rt]"
		m.input.SetValue("")
		m.input.Focus()
		m.state = stateInput
		return m, textinput.Blink

	case itemExample:
		m.scheduler.ClearProcesses()
		if err := m.scheduler.AddProcesses(requests.ExampleJobs()); err != nil {
			m.err = err
			return m, nil
		}
		m.refreshProcessTable()
		m.status = fmt.Sprintf("loaded %d example processes", m.scheduler.NumProcesses())
		return m, nil

	case itemFCFS:
		m.runPolicy(schedulers.PolicyFCFS, schedulers.RunOptions{})
		return m, nil
	case itemSJF:
		m.runPolicy(schedulers.PolicySJF, schedulers.RunOptions{})
		return m, nil
	case itemPriority:
		m.runPolicy(schedulers.PolicyPriority, schedulers.RunOptions{})
		return m, nil
	case itemEDF:
		m.runPolicy(schedulers.PolicyEDF, schedulers.RunOptions{})
		return m, nil

	case itemRoundRobin:
		return m.openPrompt(promptRoundRobin, "time quantum", strconv.Itoa(m.cfg.RoundRobinTimeQuantum))
	case itemMLFQ:
		return m.openPrompt(promptFeedbackQueue, "level quanta, e.g. 2 4 8", formatQuanta(m.cfg.MultilevelFeedbackQueueLevelsTimeQuantum))
	case itemCompare:
		return m.openPrompt(promptCompare, "round robin time quantum", strconv.Itoa(m.cfg.RoundRobinTimeQuantum))
	case itemCores:
		return m.openPrompt(promptCores, "core count (1-16)", strconv.Itoa(m.scheduler.NumCores()))

	case itemQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m tuiModel) openPrompt(target promptTarget, placeholder, initial string) (tea.Model, tea.Cmd) {
	m.prompt = target
	m.input.Placeholder = placeholder
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
	m.state = statePrompt
	return m, textinput.Blink
}

func (m tuiModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.input.Blur()
			m.state = stateMenu
			return m, nil
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				m.input.Blur()
				m.state = stateMenu
				m.status = fmt.Sprintf("%d processes loaded", m.scheduler.NumProcesses())
				return m, nil
			}
			job, err := parseJob(line)
			if err != nil {
				m.err = err
				return m, nil
			}
			if _, err := m.scheduler.AddProcess(job); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.input.SetValue("")
			m.refreshProcessTable()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m tuiModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.input.Blur()
			m.state = stateMenu
			return m, nil
		case "enter":
			return m.submitPrompt(strings.TrimSpace(m.input.Value()))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m tuiModel) submitPrompt(value string) (tea.Model, tea.Cmd) {
	m.err = nil

	switch m.prompt {
	case promptRoundRobin:
		quantum, err := strconv.Atoi(value)
		if err != nil {
			m.err = fmt.Errorf("time quantum %q is not a number", value)
			return m, nil
		}
		m.input.Blur()
		m.runPolicy(schedulers.PolicyRoundRobin, schedulers.RunOptions{TimeQuantum: quantum})

	case promptFeedbackQueue:
		quanta, err := parseQuanta(value)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.input.Blur()
		m.runPolicy(schedulers.PolicyMLFQ, schedulers.RunOptions{LevelQuanta: quanta})

	case promptCompare:
		quantum, err := strconv.Atoi(value)
		if err != nil {
			m.err = fmt.Errorf("time quantum %q is not a number", value)
			return m, nil
		}
		m.input.Blur()
		m.runComparison(quantum)

	case promptCores:
		cores, err := strconv.Atoi(value)
		if err != nil {
			m.err = fmt.Errorf("core count %q is not a number", value)
			return m, nil
		}
		if err := m.scheduler.Reconfigure(cores); err != nil {
			m.err = err
			return m, nil
		}
		m.refreshProcessTable()
		m.input.Blur()
		m.state = stateMenu
		m.status = fmt.Sprintf("reconfigured to %d cores, process list cleared", cores)
	}
	return m, nil
}

func (m tuiModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "enter", "backspace":
			m.result = ""
			m.state = stateMenu
			return m, nil
		}
	}
	return m, nil
}

// runPolicy executes one algorithm over the session scheduler and renders
// the result screen. Errors stay on the menu as a status line.
func (m *tuiModel) runPolicy(policy schedulers.Policy, opts schedulers.RunOptions) {
	run, err := m.scheduler.Run(policy, opts)
	if err != nil {
		m.err = err
		m.state = stateMenu
		return
	}

	var b strings.Builder
	output.RenderTitle(&b, output.PolicyTitle(run.Policy))
	output.RenderGantt(&b, run.Timelines)
	output.RenderSchedule(&b, run)

	m.result = b.String()
	m.state = stateResult
}

func (m *tuiModel) runComparison(timeQuantum int) {
	comparison, err := m.scheduler.CompareAll(timeQuantum, m.cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	if err != nil {
		m.err = err
		m.state = stateMenu
		return
	}

	var b strings.Builder
	output.RenderComparison(&b, comparison)

	m.result = b.String()
	m.state = stateResult
}

func (m *tuiModel) refreshProcessTable() {
	procs := m.scheduler.Processes()
	rows := make([]table.Row, 0, len(procs))
	for _, p := range procs {
		realTime := ""
		if p.IsRealTime {
			realTime = "yes"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("P%d", p.ID),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.Priority),
			output.FormatDeadline(p.Deadline),
			realTime,
		})
	}
	m.processes.SetRows(rows)
}

// parseJob reads one process description: a burst time, then an optional
// priority, an optional deadline, and an optional trailing "rt" marker.
func parseJob(line string) (requests.Job, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return requests.Job{}, fmt.Errorf("empty process description")
	}

	var job requests.Job
	if fields[len(fields)-1] == "rt" {
		job.IsRealTime = true
		fields = fields[:len(fields)-1]
	}
	if len(fields) == 0 || len(fields) > 3 {
		return requests.Job{}, fmt.Errorf("want burst [priority] [deadline] [rt], got %q", line)
	}

	burst, err := strconv.Atoi(fields[0])
	if err != nil {
		return requests.Job{}, fmt.Errorf("burst time %q is not a number", fields[0])
	}
	job.BurstTime = burst

	if len(fields) > 1 {
		priority, err := strconv.Atoi(fields[1])
		if err != nil {
			return requests.Job{}, fmt.Errorf("priority %q is not a number", fields[1])
		}
		job.Priority = &priority
	}
	if len(fields) > 2 {
		deadline, err := strconv.Atoi(fields[2])
		if err != nil {
			return requests.Job{}, fmt.Errorf("deadline %q is not a number", fields[2])
		}
		job.Deadline = deadline
	}
	return job, nil
}

// parseQuanta reads a space separated list of level time quanta.
func parseQuanta(value string) ([]int, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty quanta list")
	}
	quanta := make([]int, len(fields))
	for i, field := range fields {
		quantum, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("quantum %q is not a number", field)
		}
		quanta[i] = quantum
	}
	return quanta, nil
}

func formatQuanta(quanta []int) string {
	fields := make([]string, len(quanta))
	for i, quantum := range quanta {
		fields[i] = strconv.Itoa(quantum)
	}
	return strings.Join(fields, " ")
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CPU Scheduling Simulator") + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d cores, %d processes loaded",
		m.scheduler.NumCores(), m.scheduler.NumProcesses())) + "\n\n")

	switch m.state {
	case stateMenu:
		for i, item := range menuItems {
			label := fmt.Sprintf("%2d. %s", i+1, item)
			if i == m.cursor {
				b.WriteString(selectedStyle.Render(label))
			} else {
				b.WriteString(label)
			}
			b.WriteString("\n")
		}
		m.viewStatus(&b)
		b.WriteString(dimStyle.Render("\n  up/down: move • enter: select • 1-9: shortcut • q: quit") + "\n")

	case stateInput:
		b.WriteString("Add processes, one per line. Empty line finishes.\n\n")
		b.WriteString(baseStyle.Render(m.processes.View()) + "\n\n")
		b.WriteString("> " + m.input.View() + "\n")
		m.viewStatus(&b)
		b.WriteString(dimStyle.Render("\n  enter: add • empty enter: done • esc: back") + "\n")

	case statePrompt:
		b.WriteString(m.input.Placeholder + ":\n\n")
		b.WriteString("> " + m.input.View() + "\n")
		m.viewStatus(&b)
		b.WriteString(dimStyle.Render("\n  enter: run • esc: back") + "\n")

	case stateResult:
		b.WriteString(m.result)
		b.WriteString(dimStyle.Render("\n  esc: menu • q: quit") + "\n")
	}

	return b.String()
}

func (m tuiModel) viewStatus(b *strings.Builder) {
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
}

// Run drives the interactive menu until the user quits.
func Run(cfg *config.SchedulerConfig, log *logrus.Logger) error {
	m, err := initialModel(cfg, log)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
