package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bjaus/datatable"
)

type exportFlags struct {
	inputFlags
	format string
	name   string
	dir    string
	output string
	table  string
	filter string
	search string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every record to a timestamped file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, flags, time.Now)
		},
	}

	cmd.Flags().StringVar(&flags.data, "data", "", "JSON or YAML record file, - for stdin")
	cmd.Flags().StringVar(&flags.columns, "columns", "", "YAML column file")
	cmd.Flags().StringVarP(&flags.format, "format", "f", string(datatable.CSV), "export format")
	cmd.Flags().StringVar(&flags.name, "name", "export", "base file name, prefixed with a timestamp")
	cmd.Flags().StringVar(&flags.dir, "dir", ".", "directory for the timestamped file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "exact output path, - for stdout")
	cmd.Flags().StringVar(&flags.table, "table", "", "table name sent with the download request")
	cmd.Flags().StringVar(&flags.filter, "filter", "", "filter sent with the download request")
	cmd.Flags().StringVar(&flags.search, "search", "", "search term sent with the download request")
	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags, now func() time.Time) error {
	ctx := cmd.Context()
	log := zerolog.Ctx(ctx)

	format, err := datatable.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	cols, records, err := flags.load(cmd.InOrStdin())
	if err != nil {
		return err
	}

	state := datatable.NewState(datatable.DefaultPageSize)
	state.SetSearch(flags.search)
	req := state.DownloadRequest(flags.table, flags.filter, cols)

	var exporter datatable.Exporter = datatable.SliceSource(records)
	rows, err := exporter.Download(ctx, req)
	if err != nil {
		return fmt.Errorf("download %q: %w", req.TableName, err)
	}

	if flags.output == "-" {
		return datatable.WriteIter(cmd.OutOrStdout(), format, cols, slices.Values(rows))
	}

	path := flags.output
	if path == "" {
		path = filepath.Join(flags.dir, datatable.FileName(flags.name, format, now()))
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := datatable.WriteIter(f, format, cols, slices.Values(rows)); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	log.Info().Str("path", path).Int("rows", len(rows)).Str("format", format.String()).Msg("export written")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
