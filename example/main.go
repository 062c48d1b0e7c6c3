// Command vexdemo exercises the vexerror surface end to end: wrapping,
// rendering at each verbosity, ordered dispatch, and bounded retries. It is
// a demonstration binary, not part of the library's API.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	vexerror "github.com/vex-io/vex-error"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Msg(vexerror.Render(err, vexerror.Compact))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vexdemo",
		Short:         "demonstrations of vexerror chains",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(displayCmd(), matchCmd(), retryCmd(), retryOnCmd(), errIsCmd())
	return root
}

// openConfig fails the way a real boundary does: a concrete fs error
// lifted into a chain at the propagation point.
func openConfig() error {
	return vexerror.Lift(&fs.PathError{Op: "open", Path: "/etc/vexdemo.conf", Err: fs.ErrNotExist})
}

func loadConfig() error {
	return vexerror.Wrap(openConfig(), "failed to open config")
}

func start() error {
	return vexerror.Wrap(loadConfig(), "failed to start service")
}

func displayCmd() *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "display",
		Short: "render one failure chain at a chosen verbosity",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := start()
			v := map[string]vexerror.Verbosity{
				"compact":    vexerror.Compact,
				"flat":       vexerror.Flat,
				"debug":      vexerror.Debug,
				"debug-full": vexerror.DebugFull,
			}
			sel, ok := v[level]
			if !ok {
				return vexerror.Newf("unknown level %q", level)
			}
			cmd.Println(vexerror.Render(err, sel))
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", "debug", "compact|flat|debug|debug-full")
	return cmd
}

func matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match",
		Short: "first-match dispatch on the root cause",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := start()
			vexerror.Dispatch(vexerror.Root(err),
				vexerror.On(func(e *fs.PathError) {
					log.Info().Str("path", e.Path).Msg("root cause is a *fs.PathError")
				}),
				vexerror.On(func(e *vexerror.Record) {
					log.Info().Msg("root cause is still a vexerror chain")
				}),
				vexerror.Otherwise(func(e error) {
					log.Info().Str("text", e.Error()).Msg("unrecognized root cause")
				}),
			)
			return nil
		},
	}
}

func flakyDial(attempt int) error {
	log.Info().Int("attempt", attempt).Msg("dialing")
	if attempt < 3 {
		return vexerror.Lift(errors.New("connection refused"))
	}
	return nil
}

func retryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retry",
		Short: "bounded retry of a flaky operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := vexerror.Retry(flakyDial, 3); err != nil {
				return vexerror.Wrap(err, "dial never succeeded")
			}
			log.Info().Msg("dial succeeded")
			return nil
		},
	}
}

func errIsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "err-is",
		Short: "hand-rolled retry loop gated on the root cause type",
		RunE: func(cmd *cobra.Command, args []string) error {
			readState := func() error {
				return vexerror.Lift(&fs.PathError{Op: "read", Path: "/var/lib/vexdemo/state", Err: fs.ErrPermission})
			}
			retries := 0
			err := readState()
			for retries < 3 && vexerror.ErrIs[*fs.PathError](err) {
				retries++
				log.Info().Int("retry", retries).Msg("root cause is a *fs.PathError, retrying")
				err = readState()
			}
			if err != nil {
				return vexerror.Wrapf(err, "state unreadable after %d retries", retries)
			}
			return nil
		},
	}
}

func retryOnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retry-on",
		Short: "retry filtered by concrete failure type",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The filter wants *fs.PathError; the first failure is a plain
			// errors.New, so the helper gives up after one invocation.
			err := vexerror.RetryOn[*fs.PathError](flakyDial, 3)
			if err != nil {
				log.Warn().
					Bool("was_path_error", vexerror.ErrIs[*fs.PathError](err)).
					Msg("gave up without retrying")
				return vexerror.Wrap(err, "dial aborted")
			}
			return nil
		},
	}
}
