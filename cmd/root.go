package cmd

import (
	"context"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

var logger = logrus.WithField("component", "cmd")

func NewRootCmd(ctx context.Context, args []string) *cobra.Command {
	// create a root campus registry CLI command and register sub commands
	rootCmd := &cobra.Command{
		Use: campusRegistry,
		Short: campusRegistry,
		SilenceUsage: true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newStartCommand(ctx, args))
	// register to env variables
	viper.SetEnvPrefix(campus)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return rootCmd
}
