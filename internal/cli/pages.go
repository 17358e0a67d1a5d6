package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/datatable"
)

type pagesFlags struct {
	total    uint32
	pageSize uint32
	page     uint32
	json     bool
}

func newPagesCmd() *cobra.Command {
	var flags pagesFlags

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the page-number window for a row count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPages(cmd, flags)
		},
	}

	cmd.Flags().Uint32Var(&flags.total, "total", 0, "total number of rows")
	cmd.Flags().Uint32Var(&flags.pageSize, "page-size", datatable.DefaultPageSize, "rows per page")
	cmd.Flags().Uint32Var(&flags.page, "page", 1, "1-based current page")
	cmd.Flags().BoolVar(&flags.json, "json", false, "print pagination metadata as JSON")
	return cmd
}

func runPages(cmd *cobra.Command, flags pagesFlags) error {
	pager := datatable.NewPager(datatable.DefaultPageSize)
	if err := pager.SetPageSize(flags.pageSize); err != nil {
		return fmt.Errorf("--page-size: %w", err)
	}
	pager.SetTotal(flags.total)
	pager.SetPage(flags.page)

	out := cmd.OutOrStdout()
	if flags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(pager.Info())
	}

	window := pager.Window()
	nums := make([]string, len(window))
	for i, n := range window {
		nums[i] = strconv.FormatUint(uint64(n), 10)
	}
	if _, err := fmt.Fprintln(out, strings.Join(nums, " ")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, pager.Summary())
	return err
}
