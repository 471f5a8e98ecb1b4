package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/smlsoft/smlgo-cli/internal/adapters/driving/repl"
	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"repl"},
	Short:   "Start an interactive command loop",
	Long: `Starts an interactive session against the service. The session begins
with capability discovery; if the service is unreachable the session
ends immediately.

With a non-terminal stdin (a pipe or file) the session degrades to a
plain line reader over the same grammar.

Commands:
  health          check service health
  tables          list database tables
  command <sql>   execute an administrative statement
  select <sql>    execute a read-only query
  search <term>   search products
  quit            leave the session (also: exit, q, ctrl+c)`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	if discoveryService == nil || dispatcherService == nil {
		return errors.New("services not configured")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runLineMode(cmd)
	}

	session := repl.NewSession(repl.Ports{
		Discovery:  discoveryService,
		Dispatcher: dispatcherService,
	})
	session.WithContext(cmd.Context())

	p := tea.NewProgram(session)
	model, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}

	// A failed discovery terminates the session with a single fatal
	// message; surface it as the command error.
	if finished, ok := model.(*repl.Session); ok {
		if fatal := finished.FatalError(); fatal != nil {
			return fatal
		}
	}
	return nil
}

// runLineMode is the non-terminal fallback: the same grammar read line by
// line from stdin, one dispatch per line, output via the regular command
// printers. End of input ends the session like quit does.
func runLineMode(cmd *cobra.Command) error {
	ctx := cmd.Context()

	descriptor, err := discoveryService.Discover(ctx)
	if err != nil {
		return fmt.Errorf("cannot start session: %w", err)
	}
	cmd.Printf("connected to %s %s\n", descriptor.Name, descriptor.Version)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		command := domain.ParseCommand(scanner.Text())

		switch command.Kind {
		case domain.CmdQuit:
			return nil
		case domain.CmdUnknown:
			cmd.Println(domain.Usage)
			continue
		}

		if command.RequiresArg() && command.Arg == "" {
			cmd.PrintErrf("%s needs an argument\n", command.Kind)
			continue
		}

		switch command.Kind {
		case domain.CmdHealth:
			report := dispatcherService.HealthCheck(ctx)
			cmd.Printf("health: %s (%s)\n", report.State, formatElapsed(report.Elapsed))
		case domain.CmdTables:
			if result := dispatcherService.Tables(ctx); result.Success {
				cmd.Printf("%d tables\n", len(result.Records()))
			} else {
				printError(cmd, "tables", result.Error)
			}
		case domain.CmdCommand:
			if result := dispatcherService.ExecuteCommand(ctx, command.Arg); result.Success {
				cmd.Printf("ok (%s)\n", formatElapsed(result.Elapsed))
			} else {
				printError(cmd, "command", result.Error)
			}
		case domain.CmdSelect:
			if result := dispatcherService.ExecuteQuery(ctx, command.Arg); result.Success {
				_ = outputQueryResult(cmd, result)
			} else {
				printError(cmd, "select", result.Error)
			}
		case domain.CmdSearch:
			if result := dispatcherService.Search(ctx, command.Arg, searchLimit); result.Success {
				cmd.Printf("%d results shown, %d found (%s)\n",
					len(result.Records()), result.TotalFound, formatElapsed(result.Elapsed))
			} else {
				printError(cmd, "search", result.Error)
			}
		}
	}
	return scanner.Err()
}
