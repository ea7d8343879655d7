package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pandamaske/biibii-sub002/internal/api/rest/v1"
	"github.com/pandamaske/biibii-sub002/internal/client"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/kvstore"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const requestTimeout = 15 * time.Second

// BabyCommandHandler lists babies and remembers which one the CLI tracks.
type BabyCommandHandler struct {
	logger logger.Logger
}

// NewBabyCommandHandler initializes a BabyCommandHandler with a console logger.
func NewBabyCommandHandler() (*BabyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &BabyCommandHandler{logger: loggerInstance}, nil
}

// ListBabiesCmd prints the babies of the acting user, marking the active one
func (commandHandler *BabyCommandHandler) ListBabiesCmd(cmd *cobra.Command, _ []string) {
	state, err := openState(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer state.Close()

	userID := kvstore.GetOr(state, userIDKey, "")
	if flagUser, _ := cmd.Flags().GetString("user"); flagUser != "" {
		userID = flagUser
	}
	if userID == "" {
		commandHandler.logger.Error("no user selected, pass --user or run 'biibii-cli user use ID'")
		return
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	babies, err := newClient(state).Babies(ctx, userID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	printBabies(cmd.OutOrStdout(), babies, kvstore.GetOr(state, activeBabyKey, ""))
}

// UseBabyCmd stores the given baby as the default for watch
func (commandHandler *BabyCommandHandler) UseBabyCmd(cmd *cobra.Command, args []string) {
	babyID := args[0]
	if _, err := uuid.Parse(babyID); err != nil {
		commandHandler.logger.Error("invalid baby id ", babyID)
		return
	}

	state, err := openState(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer state.Close()

	if skip, _ := cmd.Flags().GetBool("no-verify"); !skip {
		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		if _, err := newClient(state).Baby(ctx, babyID); err != nil {
			if client.IsNotFound(err) {
				commandHandler.logger.Error("baby ", babyID, " does not exist")
			} else {
				commandHandler.logger.Error("could not verify baby, retry with --no-verify: ", err)
			}
			return
		}
	}

	if err := state.Set(activeBabyKey, babyID); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Now tracking baby ", babyID)
}

// CurrentBabyCmd prints the stored baby id
func (commandHandler *BabyCommandHandler) CurrentBabyCmd(cmd *cobra.Command, _ []string) {
	state, err := openState(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer state.Close()

	babyID := kvstore.GetOr(state, activeBabyKey, "")
	if babyID == "" {
		commandHandler.logger.Info("No baby selected")
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), babyID)
}

// UseUserCmd stores the acting user sent with every request
func (commandHandler *BabyCommandHandler) UseUserCmd(_ *cobra.Command, args []string) {
	userID := args[0]
	if _, err := uuid.Parse(userID); err != nil {
		commandHandler.logger.Error("invalid user id ", userID)
		return
	}

	state, err := openState(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer state.Close()

	if err := state.Set(userIDKey, userID); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Acting as user ", userID)
}

func printBabies(w io.Writer, babies []v1.BabyResponse, activeID string) {
	if len(babies) == 0 {
		fmt.Fprintln(w, "no babies")
		return
	}
	for _, b := range babies {
		marker := " "
		if b.ID == activeID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s  %-20s %s\n", marker, b.ID, b.Name, formatAge(b.AgeDays, b.AgeMonths))
	}
}

func formatAge(days, months int) string {
	switch {
	case months >= 2:
		return fmt.Sprintf("%d months", months)
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// InitBabyCommands registers the babies and user command groups
func InitBabyCommands(rootCmd *cobra.Command) error {
	handler, err := NewBabyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create baby command handler %w", err)
	}

	var babiesCmd = &cobra.Command{
		Use:   "babies",
		Short: "List and select babies",
	}

	var listBabiesCmd = &cobra.Command{
		Use:   "list",
		Short: "List the babies of the acting user",
		Run:   handler.ListBabiesCmd,
	}
	babiesCmd.AddCommand(listBabiesCmd)

	var useBabyCmd = &cobra.Command{
		Use:   "use ID",
		Short: "Remember the baby tracked by watch",
		Args:  cobra.ExactArgs(1),
		Run:   handler.UseBabyCmd,
	}
	useBabyCmd.Flags().Bool("no-verify", false, "Store the id without asking the server")
	babiesCmd.AddCommand(useBabyCmd)

	var currentBabyCmd = &cobra.Command{
		Use:   "current",
		Short: "Print the remembered baby",
		Run:   handler.CurrentBabyCmd,
	}
	babiesCmd.AddCommand(currentBabyCmd)
	rootCmd.AddCommand(babiesCmd)

	var userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage the acting user",
	}
	var useUserCmd = &cobra.Command{
		Use:   "use ID",
		Short: "Remember the user sent as X-User-ID",
		Args:  cobra.ExactArgs(1),
		Run:   handler.UseUserCmd,
	}
	userCmd.AddCommand(useUserCmd)
	rootCmd.AddCommand(userCmd)

	return nil
}
