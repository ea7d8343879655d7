package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/pandamaske/biibii-sub002/internal/api/rest/v1"
	"github.com/pandamaske/biibii-sub002/internal/client"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/kvstore"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// WatchCommandHandler polls live data and prints every refresh.
type WatchCommandHandler struct {
	logger logger.Logger
}

// NewWatchCommandHandler initializes a WatchCommandHandler with a console logger.
func NewWatchCommandHandler() (*WatchCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &WatchCommandHandler{logger: loggerInstance}, nil
}

// WatchCmd polls until interrupted. Pressing enter refreshes immediately.
func (commandHandler *WatchCommandHandler) WatchCmd(cmd *cobra.Command, _ []string) {
	babyID, err := cmd.Flags().GetString("baby")
	if err != nil {
		commandHandler.logger.Error("invalid baby flag ", err)
		return
	}
	tz, err := cmd.Flags().GetString("tz")
	if err != nil {
		commandHandler.logger.Error("invalid tz flag ", err)
		return
	}
	interval, err := cmd.Flags().GetDuration("interval")
	if err != nil {
		commandHandler.logger.Error("invalid interval flag ", err)
		return
	}

	state, err := openState(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	// badger holds a directory lock, so release it before the long running poll
	apiClient := newClient(state)
	if babyID == "" {
		babyID = kvstore.GetOr(state, activeBabyKey, "")
	}
	if err := state.Close(); err != nil {
		commandHandler.logger.Warn("failed to close state ", err)
	}
	if babyID == "" {
		commandHandler.logger.Error("no baby selected, pass --baby or run 'biibii-cli babies use ID'")
		return
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller := client.NewLiveDataPoller(apiClient, babyID, tz, interval, commandHandler.logger)
	out := cmd.OutOrStdout()
	unsubscribe := poller.State().Subscribe(func(s client.PollState[*v1.LiveDataResponse]) {
		printPollState(out, s)
	})
	defer unsubscribe()

	go triggerOnEnter(ctx, cmd.InOrStdin(), poller.Trigger)

	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		commandHandler.logger.Error(err)
	}
}

func triggerOnEnter(ctx context.Context, in io.Reader, trigger func()) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		trigger()
	}
}

// printPollState renders completed polls. Intermediate loading states are skipped.
func printPollState(w io.Writer, s client.PollState[*v1.LiveDataResponse]) {
	if s.Loading {
		return
	}
	if s.Err != nil {
		if s.Data == nil {
			fmt.Fprintf(w, "refresh failed: %v\n", s.Err)
			return
		}
		fmt.Fprintf(w, "refresh failed: %v (showing data from %s)\n", s.Err, s.UpdatedAt.Format(time.Kitchen))
	}
	if s.Data != nil {
		printSnapshot(w, s.Data)
	}
}

func printSnapshot(w io.Writer, snapshot *v1.LiveDataResponse) {
	today := snapshot.Today
	fmt.Fprintf(w, "== %s (%s) %s ==\n", snapshot.Baby.Name, formatAge(snapshot.Baby.AgeDays, snapshot.Baby.AgeMonths), today.Date)
	fmt.Fprintf(w, "feedings: %d (%.0f ml bottle)  diapers: %d (%d wet, %d dirty)  sleep: %s in %d naps\n",
		today.Feedings, today.BottleMl, today.Diapers, today.WetDiapers, today.DirtyDiapers,
		formatMinutes(today.SleepMinutes), today.Naps)

	if snapshot.LastFeeding != nil {
		fmt.Fprintf(w, "last feeding: %s %s ago\n", snapshot.LastFeeding.Type, since(snapshot.GeneratedAt, snapshot.LastFeeding.StartTime))
	}
	if snapshot.LastDiaper != nil {
		fmt.Fprintf(w, "last diaper: %s %s ago\n", snapshot.LastDiaper.Type, since(snapshot.GeneratedAt, snapshot.LastDiaper.OccurredAt))
	}
	if snapshot.ActiveSleep != nil {
		fmt.Fprintf(w, "sleeping for %s\n", since(snapshot.GeneratedAt, snapshot.ActiveSleep.StartTime))
	}
	for _, a := range snapshot.UpcomingAppointments {
		fmt.Fprintf(w, "upcoming: %s on %s\n", a.Title, a.ScheduledAt.Format("Mon 02 Jan 15:04"))
	}
	for _, m := range snapshot.ActiveMedications {
		fmt.Fprintf(w, "medication: %s %s %s\n", m.Name, m.Dosage, m.Unit)
	}
}

func since(now, t time.Time) string {
	return formatMinutes(int(now.Sub(t) / time.Minute))
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

// InitWatchCommands registers the watch command
func InitWatchCommands(rootCmd *cobra.Command) error {
	handler, err := NewWatchCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create watch command handler %w", err)
	}

	var watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Poll a baby's live data and print every refresh",
		Run:   handler.WatchCmd,
	}
	watchCmd.Flags().String("baby", "", "Baby ID, defaults to the one selected with 'babies use'")
	watchCmd.Flags().String("tz", "", "IANA time zone used for today's summary")
	watchCmd.Flags().Duration("interval", client.DefaultPollInterval, "Refresh interval")
	rootCmd.AddCommand(watchCmd)

	return nil
}
