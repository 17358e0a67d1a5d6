package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root command of the datatable CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment
// lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "datatable",
		Short:         "Render and export paginated data tables",
		Long:          "datatable formats JSON or YAML records through a column file and renders one page, or exports them all.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := resolveLogLevel(logLevel, cmd.Flags().Changed("log-level"), lookupEnv)
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(logger.WithContext(cmd.Context()))
			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (trace, debug, info, warn, error)")
	cmd.AddCommand(newRenderCmd(), newExportCmd(), newPagesCmd())
	return cmd
}

const rootCmdExample = `  # Render page 2 of a record file as a table
  datatable render --data orders.json --columns columns.yaml --page 2 --page-size 10

  # Render the current page as HTML, sorted by amount descending
  datatable render --data orders.json --columns columns.yaml --format html --sort amount:desc

  # Export every record to a timestamped CSV file
  datatable export --data orders.json --columns columns.yaml --name orders

  # Show the page buttons for 230 rows on page 7
  datatable pages --total 230 --page-size 10 --page 7`
