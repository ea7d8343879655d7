package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pandamaske/biibii-sub002/internal/client"
	"github.com/pandamaske/biibii-sub002/internal/infrastructure/kvstore"
	"github.com/pandamaske/biibii-sub002/internal/pkg/config"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Keys of the local state kept between invocations
const (
	activeBabyKey = "active_baby_id"
	userIDKey     = "user_id"
)

const defaultServer = "http://localhost:8080"

// AddGlobalFlags registers the flags shared by every sub-command. Each flag can
// also be set through a BIIBII_* environment variable.
func AddGlobalFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("server", defaultServer, "Base URL of the biibii REST API")
	rootCmd.PersistentFlags().String("user", "", "User ID sent as the acting user")
	rootCmd.PersistentFlags().String("state-dir", defaultStateDir(), "Directory holding local CLI state")

	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
	_ = viper.BindPFlag("state_dir", rootCmd.PersistentFlags().Lookup("state-dir"))
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".biibii"
	}
	return filepath.Join(home, ".biibii")
}

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openState opens the on-disk key value store under the state directory
func openState(log logger.Logger) (*kvstore.Store, error) {
	dir := viper.GetString("state_dir")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state dir %s: %w", dir, err)
	}
	return kvstore.Open(dir, log)
}

// newClient builds an API client. The acting user comes from --user, falling
// back to the one remembered in state.
func newClient(state *kvstore.Store) *client.Client {
	userID := viper.GetString("user")
	if userID == "" && state != nil {
		userID = kvstore.GetOr(state, userIDKey, "")
	}
	return client.New(viper.GetString("server"), client.WithUserID(userID))
}
