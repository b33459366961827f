package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rusenback/sysmon/internal/collector"
	"github.com/rusenback/sysmon/internal/docker"
	"github.com/rusenback/sysmon/internal/host"
	"github.com/rusenback/sysmon/internal/logging"
	"github.com/rusenback/sysmon/internal/snapshot"
	"github.com/rusenback/sysmon/internal/trend"
	"github.com/rusenback/sysmon/internal/tui"
)

var version = "dev"

// SetVersionInfo is called from main with build-time version info.
func SetVersionInfo(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command and exits non-zero on fatal errors.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sysmon: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "sysmon",
		Short:         "Terminal dashboard for host and Docker metrics",
		Long:          "sysmon continuously samples host and Docker runtime metrics in the background\nand renders them as a flicker-free terminal dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			v.SetEnvPrefix("SYSMON")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()

			cfg, err := loadConfig(v, configFile)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Version = version
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default ~/.sysmon/config.yaml)")
	cmd.Flags().String("docker-host", "unix:///var/run/docker.sock", "docker daemon socket")
	cmd.Flags().String("disk-path", "/", "filesystem path for disk usage")
	cmd.Flags().Int("history", 60, "trend history length in samples")
	cmd.Flags().Duration("refresh", time.Second, "display refresh period")
	cmd.Flags().Duration("fast-period", time.Second, "host metrics sampling period")
	cmd.Flags().Duration("container-period", 2*time.Second, "container stats sampling period")
	cmd.Flags().Duration("disk-period", time.Minute, "docker disk usage sampling period")
	cmd.Flags().String("log-level", "warn", "log level (trace..error)")
	cmd.Flags().String("log-format", "text", "log format (text or json)")
	cmd.Flags().String("log-file", "", "log file (default ~/.sysmon/sysmon.log)")

	return cmd
}

// run wires the collectors, store and renderer together and blocks
// until quit or signal.
func run(cfg Config) error {
	logger, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Docker unreachable at startup is fatal; once running, failures
	// are contained inside the collector cycles.
	client, err := docker.NewClient(ctx, docker.Config{
		Host:    cfg.DockerHost,
		Timeout: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Docker at %s: %w", cfg.DockerHost, err)
	}
	defer client.Close()

	store := snapshot.NewStore()
	trends := trend.NewSet(cfg.History)
	provider := host.NewSampler()

	fast := collector.NewFast(provider, store, trends, cfg.FastPeriod, cfg.DiskPath,
		logger.WithField("collector", "fast"))
	containers := collector.NewContainers(client, store, trends, cfg.ContainerPeriod,
		logger.WithField("collector", "containers"))
	diskUsage := collector.NewDiskUsage(client, store, cfg.DiskPeriod,
		logger.WithField("collector", "diskusage"))

	collectCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, loop := range []func(context.Context){fast.Run, containers.Run, diskUsage.Run} {
		wg.Add(1)
		go func(run func(context.Context)) {
			defer wg.Done()
			run(collectCtx)
		}(loop)
	}

	logger.WithFields(logrus.Fields{
		"docker_host": cfg.DockerHost,
		"version":     version,
	}).Info("sysmon started")

	p := tea.NewProgram(
		tui.NewModel(store, trends, cfg.Refresh),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, runErr := p.Run()

	// Collectors observe cancellation within one of their own periods.
	cancel()
	wg.Wait()

	if runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal UI failed: %w", runErr)
	}
	return nil
}
