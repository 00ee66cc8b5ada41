package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"job-catalog/internal/bootstrap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile  string // 为空时尝试加载当前目录的 .env
	LogLevel string // 非空时覆盖 LOG_LEVEL
}

// NewRootCommand creates the root command; invoked without a subcommand it runs serve.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "job-catalog",
		Short:         "Vacancy and resume catalog service",
		Long:          "HTTP service with CRUD and filtered search over vacancies and resumes, plus a small web UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "path to a .env file (default: ./.env if present)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "override LOG_LEVEL (debug|info|warn|error)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

// loadConfig 加载配置并按命令行参数覆盖日志级别
func loadConfig(opts *RootOptions) (*bootstrap.Config, *logrus.Logger, error) {
	cfg, err := bootstrap.LoadConfig(opts.EnvFile)
	if err != nil {
		return nil, nil, err
	}
	if opts.LogLevel != "" {
		if _, err := logrus.ParseLevel(opts.LogLevel); err != nil {
			logrus.Warnf("Invalid --log-level '%s', keeping '%s'", opts.LogLevel, cfg.LogLevel)
		} else {
			cfg.LogLevel = opts.LogLevel
		}
	}
	return cfg, bootstrap.NewLogger(cfg), nil
}
