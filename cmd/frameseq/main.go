package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/frameseq"
	"github.com/aledsdavies/frameseq/parser"
)

// Exit code constants
const (
	ExitSuccess    = 0
	ExitUsageError = 1
	ExitIOError    = 2
	ExitParseError = 3
)

func main() {
	var (
		separator string
		countOnly bool
	)

	rootCmd := &cobra.Command{
		Use:   "frameseq <sequence>",
		Short: "Expand frame sequence notation into frame numbers",
		Long: `Expand frame sequence notation into an explicit list of frame numbers.

The notation supports individual frames, ranges, stepped ranges and binary
subdivision ranges:

  frameseq 1,2,3,5,8,13
  frameseq 10-15
  frameseq 10-20@2
  frameseq 42-33@3
  frameseq 10-20@b

Use '-' to read the sequence from stdin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), input, separator, countOnly)
		},
	}

	rootCmd.Flags().StringVarP(&separator, "separator", "s", "\n", "Separator between printed frame numbers")
	rootCmd.Flags().BoolVarP(&countOnly, "count", "c", false, "Print only the number of frames")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
	os.Exit(ExitSuccess)
}

// readInput returns the sequence string: the argument itself, or the whole
// of stdin when the argument is "-".
func readInput(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", &ioError{err}
	}
	return strings.TrimSpace(string(data)), nil
}

func run(out io.Writer, input, separator string, countOnly bool) error {
	frames, err := frameseq.Parse(input)
	if err != nil {
		return err
	}

	if countOnly {
		fmt.Fprintf(out, "%d\n", len(frames))
		return nil
	}

	for i, frame := range frames {
		if i > 0 {
			fmt.Fprint(out, separator)
		}
		fmt.Fprintf(out, "%d", frame)
	}
	fmt.Fprintln(out)
	return nil
}

// ioError marks failures reading the input so they exit with ExitIOError
// instead of ExitParseError.
type ioError struct {
	err error
}

func (e *ioError) Error() string { return fmt.Sprintf("reading stdin: %v", e.err) }
func (e *ioError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var ioErr *ioError
	if errors.As(err, &ioErr) {
		return ExitIOError
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return ExitParseError
	}
	return ExitUsageError
}
