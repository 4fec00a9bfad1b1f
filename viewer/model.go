package viewer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/reusee/tapeworm/engines"
	"github.com/reusee/tapeworm/vars"
)

const (
	minDelay = 10 * time.Millisecond
	maxDelay = 5 * time.Second
)

// Model is a bubbletea model stepping one engine.
type Model struct {
	engine     *engines.Engine
	cells      int
	delay      time.Duration
	playing    bool
	generation int
	last       *engines.StepResult
	input      textinput.Model
	inputting  bool
	inputErr   error
	help       help.Model
}

var _ tea.Model = new(Model)

func NewModel(engine *engines.Engine, cells int, delay time.Duration) *Model {
	input := textinput.New()
	input.Prompt = "input> "
	input.Placeholder = `bytes, escapes like \n allowed`
	return &Model{
		engine: engine,
		cells:  cells,
		delay:  max(delay, minDelay),
		input:  input,
		help:   help.New(),
	}
}

type tickMsg struct {
	generation int
}

func (m *Model) tick() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return tickMsg{
			generation: generation,
		}
	})
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) step() {
	res, err := m.engine.Step()
	if err != nil || res == nil {
		m.playing = false
		return
	}
	m.last = res
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tickMsg:
		// stale ticks from a previous play are dropped
		if msg.generation != m.generation || !m.playing {
			return m, nil
		}
		m.step()
		if m.engine.Done() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		if m.inputting {
			return m.updateInput(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Step):
			m.playing = false
			m.step()

		case key.Matches(msg, keys.Play):
			if m.playing || m.engine.Done() {
				m.playing = false
				return m, nil
			}
			m.playing = true
			m.generation++
			return m, m.tick()

		case key.Matches(msg, keys.Faster):
			m.delay = max(m.delay/2, minDelay)

		case key.Matches(msg, keys.Slower):
			m.delay = min(m.delay*2, maxDelay)

		case key.Matches(msg, keys.Input):
			m.inputting = true
			m.inputErr = nil
			return m, m.input.Focus()

		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		}
	}

	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {

	case tea.KeyEnter:
		bs, err := vars.DecodeEscapes(m.input.Value())
		if err != nil {
			m.inputErr = err
			return m, nil
		}
		m.engine.Feed(bs...)
		m.closeInput()
		return m, nil

	case tea.KeyEsc:
		m.closeInput()
		return m, nil

	case tea.KeyCtrlC:
		return m, tea.Quit

	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.inputting = false
	m.inputErr = nil
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) Engine() *engines.Engine {
	return m.engine
}

func (m *Model) Playing() bool {
	return m.playing
}

func (m *Model) Delay() time.Duration {
	return m.delay
}
