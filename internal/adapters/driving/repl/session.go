// Package repl provides the interactive session driver as a bubbletea
// program. The session is a strict state machine: it starts by running
// capability discovery, accepts commands only once discovery succeeds,
// dispatches one operation at a time, and terminates on quit, end of
// input or a fatal discovery failure.
package repl

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driving"
)

// Ensure Session implements tea.Model.
var _ tea.Model = (*Session)(nil)

// historyLimit bounds the transcript kept in memory.
const historyLimit = 200

// sessionState tracks where the session is in its lifecycle.
type sessionState int

const (
	stateDiscovering sessionState = iota
	stateReady
	stateDispatching
	stateTerminated
)

// Ports holds the driving ports the session needs.
type Ports struct {
	// Discovery runs once at session start and gates the session.
	Discovery driving.DiscoveryService

	// Dispatcher executes the session's commands.
	Dispatcher driving.DispatcherService
}

// Validate checks that required ports are present.
func (p Ports) Validate() error {
	if p.Discovery == nil {
		return errors.New("discovery service is required")
	}
	if p.Dispatcher == nil {
		return errors.New("dispatcher service is required")
	}
	return nil
}

// Messages produced by session commands.
type (
	discoveredMsg struct {
		descriptor domain.ServiceDescriptor
	}

	discoveryFailedMsg struct {
		err error
	}

	dispatchedMsg struct {
		lines []string
		isErr bool
	}
)

// Session is the interactive session model.
type Session struct {
	ports  Ports
	ctx    context.Context
	styles *Styles

	input   textinput.Model
	state   sessionState
	history []string
	fatal   error
}

// NewSession creates a new interactive session.
func NewSession(ports Ports) *Session {
	ti := textinput.New()
	ti.Placeholder = "health, tables, command <sql>, select <sql>, search <term>, quit"
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Width = 80
	ti.Focus()

	return &Session{
		ports:  ports,
		ctx:    context.Background(),
		styles: DefaultStyles(),
		input:  ti,
		state:  stateDiscovering,
	}
}

// WithContext sets the context used for dispatches.
func (s *Session) WithContext(ctx context.Context) *Session {
	if ctx != nil {
		s.ctx = ctx
	}
	return s
}

// State accessors for the driving command and tests.

// Terminated reports whether the session has ended.
func (s *Session) Terminated() bool {
	return s.state == stateTerminated
}

// Ready reports whether the session accepts commands.
func (s *Session) Ready() bool {
	return s.state == stateReady
}

// FatalError returns the discovery error that ended the session, if any.
func (s *Session) FatalError() error {
	return s.fatal
}

// History returns the transcript lines accumulated so far.
func (s *Session) History() []string {
	return s.history
}

// Init implements tea.Model. Discovery starts immediately; no input is
// accepted until it finishes.
func (s *Session) Init() tea.Cmd {
	if err := s.ports.Validate(); err != nil {
		return func() tea.Msg { return discoveryFailedMsg{err: err} }
	}
	return tea.Batch(textinput.Blink, s.discoverCmd())
}

// Update implements tea.Model.
func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case discoveredMsg:
		s.state = stateReady
		s.append(s.styles.Title.Render(banner(msg.descriptor)))
		s.append(s.styles.Muted.Render(domain.Usage))
		return s, nil

	case discoveryFailedMsg:
		// The sole fatal path: terminate before accepting any command.
		s.fatal = msg.err
		s.state = stateTerminated
		return s, tea.Quit

	case dispatchedMsg:
		for _, line := range msg.lines {
			if msg.isErr {
				s.append(s.styles.Error.Render(line))
			} else {
				s.append(line)
			}
		}
		s.state = stateReady
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// handleKey processes one key message.
func (s *Session) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		// Interruption is a graceful quit, not an error.
		s.state = stateTerminated
		return s, tea.Quit

	case tea.KeyEnter:
		if s.state != stateReady {
			return s, nil
		}
		return s.submit()
	}

	if s.state == stateReady {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit parses and dispatches the current input line.
func (s *Session) submit() (tea.Model, tea.Cmd) {
	line := s.input.Value()
	s.input.Reset()

	command := domain.ParseCommand(line)
	if strings.TrimSpace(line) != "" {
		s.append(s.styles.Prompt.Render("> ") + line)
	}

	switch command.Kind {
	case domain.CmdQuit:
		s.state = stateTerminated
		s.append(s.styles.Muted.Render("bye"))
		return s, tea.Quit

	case domain.CmdUnknown:
		if strings.TrimSpace(line) != "" {
			s.append(s.styles.Error.Render("unknown command: " + command.Arg))
		}
		s.append(s.styles.Muted.Render(domain.Usage))
		return s, nil
	}

	if command.RequiresArg() && command.Arg == "" {
		s.append(s.styles.Error.Render(command.Kind.String() + " needs an argument"))
		return s, nil
	}

	s.state = stateDispatching
	return s, s.dispatchCmd(command)
}

// discoverCmd runs capability discovery off the update loop.
func (s *Session) discoverCmd() tea.Cmd {
	return func() tea.Msg {
		descriptor, err := s.ports.Discovery.Discover(s.ctx)
		if err != nil {
			return discoveryFailedMsg{err: err}
		}
		return discoveredMsg{descriptor: descriptor}
	}
}

// dispatchCmd executes one parsed command off the update loop. The
// session dispatches strictly one operation at a time: input stays
// disabled until the result message arrives.
func (s *Session) dispatchCmd(command domain.Command) tea.Cmd {
	return func() tea.Msg {
		switch command.Kind {
		case domain.CmdHealth:
			return renderHealth(s.ports.Dispatcher.HealthCheck(s.ctx))
		case domain.CmdTables:
			return renderTables(s.ports.Dispatcher.Tables(s.ctx))
		case domain.CmdCommand:
			return renderCommand(s.ports.Dispatcher.ExecuteCommand(s.ctx, command.Arg))
		case domain.CmdSelect:
			return renderQuery(s.ports.Dispatcher.ExecuteQuery(s.ctx, command.Arg))
		case domain.CmdSearch:
			return renderSearch(s.ports.Dispatcher.Search(s.ctx, command.Arg, defaultSearchLimit))
		default:
			return dispatchedMsg{lines: []string{domain.Usage}}
		}
	}
}

// append adds a transcript line, trimming old history.
func (s *Session) append(line string) {
	s.history = append(s.history, line)
	if len(s.history) > historyLimit {
		s.history = s.history[len(s.history)-historyLimit:]
	}
}

// View implements tea.Model.
func (s *Session) View() string {
	var b strings.Builder

	switch s.state {
	case stateDiscovering:
		b.WriteString(s.styles.Muted.Render("discovering service capabilities..."))
		b.WriteString("\n")
		return b.String()

	case stateTerminated:
		for _, line := range s.history {
			b.WriteString(line)
			b.WriteString("\n")
		}
		return b.String()
	}

	for _, line := range s.history {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if s.state == stateDispatching {
		b.WriteString(s.styles.Muted.Render("..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(s.input.View())
	b.WriteString("\n")
	return b.String()
}

// banner builds the post-discovery greeting line.
func banner(descriptor domain.ServiceDescriptor) string {
	name := descriptor.Name
	if name == "" {
		name = "service"
	}
	parts := []string{"connected to " + name}
	if descriptor.Version != "" {
		parts = append(parts, descriptor.Version)
	}
	if n := len(descriptor.Endpoints); n > 0 {
		parts = append(parts, strings.Join(descriptor.EndpointNames(), ", "))
	}
	return strings.Join(parts, " | ")
}
