package domain

import "strings"

// CommandKind identifies an interactive-session operation.
type CommandKind int

const (
	// CmdUnknown is any input that does not match the grammar.
	CmdUnknown CommandKind = iota

	// CmdHealth checks service health.
	CmdHealth

	// CmdTables lists database tables.
	CmdTables

	// CmdCommand executes an administrative statement.
	CmdCommand

	// CmdSelect executes a read-only query.
	CmdSelect

	// CmdSearch performs a free-text search.
	CmdSearch

	// CmdQuit ends the session.
	CmdQuit
)

// String returns the grammar keyword for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdHealth:
		return "health"
	case CmdTables:
		return "tables"
	case CmdCommand:
		return "command"
	case CmdSelect:
		return "select"
	case CmdSearch:
		return "search"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a parsed interactive-session input line. The grammar is
// deliberately flat: the first token selects the operation and the
// remainder of the line, verbatim, is the single argument.
type Command struct {
	// Kind selects the operation.
	Kind CommandKind

	// Arg is the trailing free-text argument, trimmed. Empty for
	// operations that take none.
	Arg string
}

// RequiresArg reports whether the command kind needs a non-empty argument.
func (c Command) RequiresArg() bool {
	switch c.Kind {
	case CmdCommand, CmdSelect, CmdSearch:
		return true
	default:
		return false
	}
}

// Usage is the one-line grammar hint shown for unrecognised input.
const Usage = "commands: health, tables, command <sql>, select <sql>, search <term>, quit"

// ParseCommand parses a free-text input line into a Command. The first
// token is matched case-insensitively; anything unrecognised yields
// CmdUnknown with the original line as Arg.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Kind: CmdUnknown}
	}

	token := line
	rest := ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		token = line[:i]
		rest = strings.TrimSpace(line[i+1:])
	}

	switch strings.ToLower(token) {
	case "health":
		return Command{Kind: CmdHealth}
	case "tables":
		return Command{Kind: CmdTables}
	case "command":
		return Command{Kind: CmdCommand, Arg: rest}
	case "select":
		return Command{Kind: CmdSelect, Arg: rest}
	case "search":
		return Command{Kind: CmdSearch, Arg: rest}
	case "quit", "exit", "q":
		return Command{Kind: CmdQuit}
	default:
		return Command{Kind: CmdUnknown, Arg: line}
	}
}
