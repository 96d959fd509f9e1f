// Command tempus-clock monitors the local clock against an NTP server.
//
// It periodically compares NTP-corrected time with the raw system clock
// and reports the measured offset, sync health, and how long each query
// took on the monotonic clock.
//
// Usage:
//
//	tempus-clock [flags]
//
// Flags:
//
//	-server string     NTP server to query (default "pool.ntp.org")
//	-config string     YAML configuration file path
//	-interval duration Report interval (default 30s)
//	-count int         Number of reports before exiting, 0 = run forever
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Watch the default pool server
//	tempus-clock
//
//	# One-shot check against a specific server
//	tempus-clock -server time.cloudflare.com -count 1
//
//	# Use a config file and verbose logging
//	tempus-clock -config /etc/tempus/clock.yaml -log-level debug
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tempus-project/tempus-go/pkg/clock"
	"github.com/tempus-project/tempus-go/pkg/instant"
)

var (
	server     string
	configFile string
	interval   time.Duration
	count      int
	logLevel   string
)

func init() {
	flag.StringVar(&server, "server", "", "NTP server to query")
	flag.StringVar(&configFile, "config", "", "YAML configuration file path")
	flag.DurationVar(&interval, "interval", 30*time.Second, "Report interval")
	flag.IntVar(&count, "count", 0, "Number of reports before exiting, 0 = run forever")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	logger := setupLogging(logLevel)

	cfg, err := loadConfig(configFile)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if server != "" {
		cfg.Server = server
	}
	cfg.Logger = logger

	c := clock.NewNTPClock(cfg)
	logger.Info("watching clock", "server", cfg.Server, "interval", interval)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	report(c, logger)
	for reports := 1; count == 0 || reports < count; reports++ {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return
		case <-ticker.C:
			report(c, logger)
		}
	}
}

// report reads the corrected clock once and logs offset and health.
func report(c *clock.NTPClock, logger *slog.Logger) {
	var corrected time.Time
	elapsed := instant.Time(func() {
		corrected = c.Now()
	})

	healthy, offset, lastSync, lastErr := c.Health()

	attrs := []any{
		"corrected", corrected.Format(time.RFC3339Nano),
		"offset", offset,
		"healthy", healthy,
		"read_time", elapsed,
	}
	if !lastSync.IsZero() {
		attrs = append(attrs, "last_sync", lastSync.Format(time.RFC3339))
	}
	if lastErr != nil {
		attrs = append(attrs, "last_error", lastErr)
	}

	if !healthy {
		logger.Warn("clock unhealthy", attrs...)
		return
	}
	logger.Info("clock", attrs...)
}

// loadConfig reads a clock.Config from a YAML file, or returns defaults
// when no path is given.
func loadConfig(path string) (clock.Config, error) {
	cfg := clock.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.UnhealthyOffset.IsNegative() {
		return cfg, fmt.Errorf("unhealthyOffset must not be negative, got %v", cfg.UnhealthyOffset)
	}
	return cfg, nil
}

func setupLogging(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
	return logger
}
