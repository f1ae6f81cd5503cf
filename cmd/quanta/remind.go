package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/aretw0/quanta"
	"github.com/aretw0/quanta/pkg/units"
)

var (
	remindLabel   string
	remindSeconds float64
	remindMinutes float64
	remindHours   float64
	remindFiles   []string
	remindBuffer  int
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Print labels once their delay has elapsed",
	Long: `Schedule one reminder from flags and/or many from YAML files, then print
each label when it falls due. Exits once every reminder has been printed.`,
	Example: `  quanta remind --label tea --minutes 3
  quanta remind --file 'reminders/**/*.yaml'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []quanta.Option{quanta.WithLogger(slog.Default())}

		var s *quanta.Scheduler
		if len(remindFiles) > 0 {
			var err error
			s, err = quanta.LoadSchedule(remindFiles, opts...)
			if err != nil {
				return err
			}
		} else {
			s = quanta.NewScheduler(opts...)
		}

		if remindLabel != "" {
			after := units.Seconds(remindSeconds).Add(units.Minutes(remindMinutes)).Add(units.Hours(remindHours))
			if _, err := s.Add(after, remindLabel); err != nil {
				return err
			}
		}
		if s.Len() == 0 {
			return errors.New("nothing to schedule: pass --label or --file")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runReminders(ctx, cmd, s)
	},
}

func runReminders(ctx context.Context, cmd *cobra.Command, s *quanta.Scheduler) error {
	slog.Debug("reminders scheduled", "count", s.Len())

	src := quanta.NewSource(s, quanta.WithBuffer(remindBuffer))
	if err := src.Start(ctx); err != nil {
		return err
	}
	for e := range src.Events() {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", time.Now().Format(time.TimeOnly), e)
	}
	if err := src.Err(); err != nil {
		return errors.Wrapf(err, "%d reminders not delivered", s.Len())
	}
	if n := s.Len(); n > 0 {
		return errors.Newf("%d reminders not delivered", n)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.Flags().StringVarP(&remindLabel, "label", "l", "", "Label to print")
	remindCmd.Flags().Float64Var(&remindSeconds, "seconds", 0, "Delay in seconds")
	remindCmd.Flags().Float64Var(&remindMinutes, "minutes", 0, "Delay in minutes")
	remindCmd.Flags().Float64Var(&remindHours, "hours", 0, "Delay in hours")
	remindCmd.Flags().IntVar(&remindBuffer, "buffer", 0, "Notifications held while the terminal is busy")
	remindCmd.Flags().StringSliceVarP(&remindFiles, "file", "f", nil, "Reminder YAML files (glob patterns, ** supported)")
}
