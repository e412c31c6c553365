package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/sx/reader"
)

func newReadCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "read [file]",
		Short: "Read S-expressions and dump the resulting trees",
		Long: `Read every top-level S-expression from a file and print one
tree per line.

If no file is provided, reads from stdin. With --quiet nothing is
printed; the exit status reports whether the input was well formed.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "<stdin>"
			in := os.Stdin

			if len(args) == 1 {
				name = args[0]
				f, err := os.Open(name)
				if err != nil {
					return fmt.Errorf("open file: %w", err)
				}
				defer f.Close()
				in = f
			}

			r := reader.New(bufio.NewReader(in), reader.WithFile(name))
			nodes, err := r.ReadAll()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return fmt.Errorf("read %s: %w", name, err)
			}

			if !quiet {
				for _, node := range nodes {
					fmt.Println(node)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, only report errors")

	return cmd
}
