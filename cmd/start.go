package cmd

import (
	"context"
	"fmt"
	"github.com/DAv10195/campus_registry/idgen"
	"github.com/DAv10195/campus_registry/menu"
	"github.com/DAv10195/campus_registry/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
)

func newStartCommand(ctx context.Context, args []string) *cobra.Command {
	var setupErr error
	var configFilePath string
	// create the command
	startCmd := &cobra.Command{
		Use: start,
		Short: fmt.Sprintf("%s %s", start, campusRegistry),
		SilenceUsage: true,
		SilenceErrors: true,
		RunE: func (cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if setupErr != nil {
				return setupErr
			}
			// define logging level and other configuration
			logLevel := viper.GetString(flagLogLevel)
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			logFile := viper.GetString(flagLogFile)
			if logFile != "" {
				lumberjackLogger := &lumberjack.Logger{
					Filename:   logFile,
					MaxSize:    viper.GetInt(flagLogFileMaxSize),
					MaxBackups: viper.GetInt(flagLogFileMaxBackups),
					MaxAge:     viper.GetInt(flagLogFileMaxAge),
					LocalTime:  true,
				}
				if viper.GetBool(flagLogFileAndStdout) {
					logrus.SetOutput(io.MultiWriter(os.Stdout, lumberjackLogger))
				} else {
					logrus.SetOutput(lumberjackLogger)
				}
			} else {
				logger.Debug("log file undefined")
			}
			// handle the data dir
			dir := viper.GetString(flagDataDir)
			if err := store.Init(dir); err != nil {
				return err
			}
			if err := idgen.Init(dir); err != nil {
				return err
			}
			defer func() {
				if err := idgen.Close(); err != nil {
					logger.WithError(err).Error("error closing identifier sequences")
				}
			}()
			// run the console menus
			menuDone := make(chan error, 1)
			go func() {
				menuDone <- menu.NewStdioMenu().Run(ctx)
			}()
			logger.Info("campus registry is running")
			select {
			case <- ctx.Done():
				logger.Info("stopping campus registry...")
				return nil
			case err := <-menuDone:
				if err != nil && err != io.EOF && err != context.Canceled {
					return err
				}
				return nil
			}
		},
	}
	configFlagSet := pflag.NewFlagSet(campus, pflag.ContinueOnError)
	_ = configFlagSet.StringP(flagConfigFile, "c", "", "path to campus registry config file")
	configFlagSet.SetOutput(io.Discard)
	_ = configFlagSet.Parse(args[1:])
	configFilePath, _ = configFlagSet.GetString(flagConfigFile)
	if configFilePath == "" {
		configFilePath = getDefaultConfigFilePath()
	}
	viper.SetConfigType(yaml)
	viper.SetConfigFile(configFilePath)
	viper.SetDefault(flagLogFileAndStdout, defLogFileAndStdOut)
	viper.SetDefault(flagLogFileMaxSize, defMaxLogFileSize)
	viper.SetDefault(flagLogFileMaxAge, defMaxLogFileAge)
	viper.SetDefault(flagLogFileMaxBackups, defMaxLogFileBackups)
	viper.SetDefault(flagLogLevel, info)
	viper.SetDefault(flagDataDir, getDefaultDataDirPath())
	startCmd.Flags().AddFlagSet(configFlagSet)
	startCmd.Flags().Int(flagLogFileMaxBackups, viper.GetInt(flagLogFileMaxBackups), "maximum number of log file rotations")
	startCmd.Flags().Int(flagLogFileMaxSize, viper.GetInt(flagLogFileMaxSize), "maximum size of the log file before it's rotated")
	startCmd.Flags().Int(flagLogFileMaxAge, viper.GetInt(flagLogFileMaxAge), "maximum age of the log file before it's rotated")
	startCmd.Flags().Bool(flagLogFileAndStdout, viper.GetBool(flagLogFileAndStdout), "write logs to stdout if log-file is specified?")
	startCmd.Flags().String(flagLogLevel, viper.GetString(flagLogLevel), "logging level [panic, fatal, error, warn, info, debug]")
	startCmd.Flags().String(flagLogFile, viper.GetString(flagLogFile), "log to file, specify the file location")
	startCmd.Flags().String(flagDataDir, viper.GetString(flagDataDir), "data directory of the campus registry")
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		setupErr = err
	}
	return startCmd
}
