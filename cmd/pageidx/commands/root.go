package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/maxviazov/page-index-service/internal/model"
	"github.com/maxviazov/page-index-service/internal/pagination"
	"github.com/maxviazov/page-index-service/internal/repository"
)

type options struct {
	page    int
	perPage int
	output  string
	strict  bool
	window  bool
	stdin   bool
}

// NewRootCmd builds the pageidx command. Each call returns an independent flag set.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "pageidx",
		Short: "Print the 1-based inclusive item bounds of a page.",
		Example: `  pageidx --page 3 --per-page 5
  pageidx --page 5 --per-page 20 --output json
  pageidx --page 2 --per-page 10 --window
  seq 100 | pageidx --page 3 --per-page 5 --stdin`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "1-based page number")
	cmd.Flags().IntVarP(&opts.perPage, "per-page", "n", 10, "items per page")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text or json")
	cmd.Flags().BoolVar(&opts.strict, "strict", true, "reject page numbers and sizes below 1 and pages past the int range")
	cmd.Flags().BoolVar(&opts.window, "window", false, "print the zero-based limit/offset window instead")
	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "read one item per line from stdin and print the items on the page")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	var ix pagination.Indices
	if opts.strict {
		var err error
		if ix, err = pagination.CalculateStrict(opts.page, opts.perPage); err != nil {
			return err
		}
	} else {
		ix = pagination.Calculate(opts.page, opts.perPage)
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.stdin:
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
		res := repository.Paginate(lines, ix)
		if opts.output == "json" {
			return json.NewEncoder(out).Encode(res)
		}
		for _, l := range res.Items {
			if _, err := fmt.Fprintln(out, l); err != nil {
				return err
			}
		}
		return nil
	case opts.window:
		w := repository.PageFromIndices(ix)
		if opts.output == "json" {
			return json.NewEncoder(out).Encode(w)
		}
		_, err := fmt.Fprintf(out, "offset=%d limit=%d\n", w.Offset, w.Limit)
		return err
	}

	if opts.output == "json" {
		return json.NewEncoder(out).Encode(model.FromIndices(ix))
	}
	_, err := fmt.Fprintf(out, "start=%d end=%d\n", ix.Start, ix.End)
	return err
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return lines, nil
}
