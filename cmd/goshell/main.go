// Command goshell is an interactive POSIX-style shell: built-in commands,
// external process execution via PATH, I/O redirection, quote-aware
// tokenization, and raw-mode line editing with tab completion.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/naveen-rn/goshell/internal/shell"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "goshell",
		Short:         "An interactive POSIX-style command shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := shell.New(os.Stdin, os.Stdout, os.Stderr)

			err := sh.Run()
			if code, ok := shell.ExitCode(err); ok {
				os.Exit(code)
			}
			if err != nil {
				logrus.New().WithError(err).Error("shell terminated unexpectedly")
				return err
			}
			return nil
		},
	}

	return cmd
}
