package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/artem13815/interview/pkg/logger"
	"github.com/artem13815/interview/pkg/question"
)

const app = "interviewctl"

// Actual version can be specified in build command.
var version = "unknown"

type cli struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:           app,
		Short:         "interviewctl runs resume extraction, answer scoring and timed interviews from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.initConfig()
		},
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "a config file (default is interviewctl.yaml in current directory, optional)")
	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	root.PersistentFlags().String("questions-file", "", "YAML question bank replacing the built-in one")

	_ = c.v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	_ = c.v.BindPFlag("json", root.PersistentFlags().Lookup("json"))
	_ = c.v.BindPFlag("questions-file", root.PersistentFlags().Lookup("questions-file"))

	c.v.SetEnvPrefix("INTERVIEW")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(
		c.extractCmd(),
		c.evaluateCmd(),
		c.interviewCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
			},
		},
	)
	return root
}

// initConfig reads the config file if one is given or found. Flags and
// INTERVIEW_* variables override it.
func (c *cli) initConfig() error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", c.cfgFile, err)
		}
		return nil
	}
	c.v.AddConfigPath(".")
	c.v.SetConfigName(app)
	c.v.SetConfigType("yaml")
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func (c *cli) logger() *zap.Logger {
	l, err := logger.New(c.v.GetBool("json"), c.v.GetBool("debug"))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func (c *cli) bank() (question.Bank, error) {
	if f := c.v.GetString("questions-file"); f != "" {
		return question.LoadFile(f)
	}
	return question.NewStaticBank(), nil
}

// tick is the countdown cadence; 0 stops the clock.
func (c *cli) tick() time.Duration {
	return c.v.GetDuration("tick")
}
