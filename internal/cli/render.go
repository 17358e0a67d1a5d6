package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bjaus/datatable"
)

type renderFlags struct {
	inputFlags
	format   string
	page     uint32
	pageSize uint32
	title    string
	border   string
	search   string
	sort     string
	output   string
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one page of records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.data, "data", "", "JSON or YAML record file, - for stdin")
	cmd.Flags().StringVar(&flags.columns, "columns", "", "YAML column file")
	cmd.Flags().StringVarP(&flags.format, "format", "f", string(datatable.Table), "output format")
	cmd.Flags().Uint32Var(&flags.page, "page", 1, "1-based page number")
	cmd.Flags().Uint32Var(&flags.pageSize, "page-size", datatable.DefaultPageSize, "rows per page")
	cmd.Flags().StringVar(&flags.title, "title", "", "table title")
	cmd.Flags().StringVar(&flags.border, "border", "rounded", "table border: rounded, none, ascii, heavy, double")
	cmd.Flags().StringVar(&flags.search, "search", "", "search term passed to the data source")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort column as field or field:asc|desc")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func runRender(cmd *cobra.Command, flags renderFlags) error {
	ctx := cmd.Context()
	log := zerolog.Ctx(ctx)

	format, err := datatable.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	border, err := datatable.ParseBorder(flags.border)
	if err != nil {
		return err
	}
	sortBy, desc, err := parseSort(flags.sort)
	if err != nil {
		return err
	}

	cols, records, err := flags.load(cmd.InOrStdin())
	if err != nil {
		return err
	}

	state := datatable.NewState(flags.pageSize)
	if err := state.SetPageSize(flags.pageSize); err != nil {
		return fmt.Errorf("--page-size: %w", err)
	}
	state.SetSearch(flags.search)
	if sortBy != "" {
		if col, ok := cols.Find(sortBy); ok {
			sortBy = col.SortField()
		}
		state.SetSort(sortBy, desc)
	}
	state.SetTotal(uint32(len(records)))
	state.SetPage(flags.page)

	page, err := state.Load(ctx, datatable.SliceSource(records))
	if err != nil {
		return err
	}
	if state.Page() != flags.page {
		log.Warn().Uint32("requested", flags.page).Uint32("page", state.Page()).Msg("page out of range, clamped")
	}
	log.Debug().
		Str("format", format.String()).
		Uint32("page", state.Page()).
		Uint32("total", state.Total()).
		Int("rows", len(page)).
		Msg("rendering page")

	out, err := openOutput(cmd.OutOrStdout(), flags.output)
	if err != nil {
		return err
	}

	palette := datatable.NoColor()
	if flags.output == "" && isTerminal(cmd.OutOrStdout()) {
		palette = datatable.DefaultPalette()
	}

	err = datatable.Write(out, format, datatable.View{
		Title:      flags.title,
		Columns:    cols,
		Records:    page,
		Pager:      state.Pager,
		SortBy:     state.SortBy(),
		Descending: state.Descending(),
		Border:     border,
		Palette:    palette,
	})
	return closeOutput(out, err)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// openOutput returns stdout when path is empty, otherwise a created file.
func openOutput(stdout io.Writer, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return f, nil
}

// closeOutput closes out. A write error takes precedence over the close
// error.
func closeOutput(out io.Closer, writeErr error) error {
	if err := out.Close(); err != nil && writeErr == nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return writeErr
}
