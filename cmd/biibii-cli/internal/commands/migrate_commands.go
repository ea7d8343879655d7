package commands

import (
	"fmt"
	"os"

	"github.com/pandamaske/biibii-sub002/internal/infrastructure/persistence"
	"github.com/pandamaske/biibii-sub002/internal/pkg/config"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler applies the database schema described by a REST config file.
type MigrateCommandHandler struct {
	logger logger.Logger
}

// NewMigrateCommandHandler initializes a MigrateCommandHandler with a console logger.
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &MigrateCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd connects to the configured database and migrates every table
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		commandHandler.logger.Error("invalid config flag ", err)
		return
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	db, err := persistence.NewDBConnection(restConfig.Database)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database ", err)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Migrated ", restConfig.Database.Type, " database")
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create migrate command handler %w", err)
	}

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "configs/rest-app.yaml"
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run:   handler.MigrateCmd,
	}
	migrateCmd.Flags().StringP("config", "c", defaultConfig, "Path to the REST API config file")
	rootCmd.AddCommand(migrateCmd)

	return nil
}
