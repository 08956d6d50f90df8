package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mediakiosk/vlcd"
	"github.com/mediakiosk/vlcd/pkg/client"
)

func newClient(flags RemoteFlags) *client.Client {
	return client.New(client.Config{
		BaseURL: flags.APIUrl,
		APIKey:  flags.APIKey,
		Timeout: flags.APITimeout,
	})
}

func requireReachable(ctx context.Context, c *client.Client, apiURL string) error {
	if !c.IsReachable(ctx) {
		return fmt.Errorf("daemon not reachable at %s - start it first with 'vlcd serve'", apiURL)
	}
	return nil
}

func printStatus(st client.PlayerStatus) {
	fmt.Printf("status: %s\n", st.Status)
	if st.VideoPath != "" {
		fmt.Printf("video:  %s\n", st.VideoPath)
	}
	if st.PID != 0 {
		fmt.Printf("pid:    %d\n", st.PID)
	}
	if st.Uptime != nil {
		fmt.Printf("uptime: %.1fs\n", *st.Uptime)
	}
	if st.Error != "" {
		fmt.Printf("error:  %s\n", st.Error)
	}
}

func runPlayCommand(flags *PlayFlags) error {
	ctx := context.Background()
	c := newClient(flags.RemoteFlags)
	if err := requireReachable(ctx, c, flags.APIUrl); err != nil {
		return err
	}
	req := client.PlayRequest{VideoPath: flags.Video}
	if flags.NoLoop {
		v := false
		req.Loop = &v
	}
	if flags.Windowed {
		v := false
		req.Fullscreen = &v
	}
	st, err := c.Play(ctx, req)
	if err != nil {
		return err
	}
	printStatus(st)
	return nil
}

func runStopCommand(flags *RemoteFlags) error {
	ctx := context.Background()
	c := newClient(*flags)
	if err := requireReachable(ctx, c, flags.APIUrl); err != nil {
		return err
	}
	st, err := c.Stop(ctx)
	if err != nil {
		return err
	}
	printStatus(st)
	return nil
}

func runRestartCommand(flags *RemoteFlags) error {
	ctx := context.Background()
	c := newClient(*flags)
	if err := requireReachable(ctx, c, flags.APIUrl); err != nil {
		return err
	}
	st, err := c.Restart(ctx)
	if err != nil {
		return err
	}
	printStatus(st)
	return nil
}

func runStatusCommand(flags *RemoteFlags) error {
	ctx := context.Background()
	c := newClient(*flags)
	st, err := c.Status(ctx)
	if err != nil {
		return err
	}
	printStatus(st)
	return nil
}

func runHealthCommand(flags *RemoteFlags) error {
	h, err := newClient(*flags).Healthz(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("status: %s (api %s)\n", h.Status, h.APIVersion)
	return nil
}

func runVideosCommand(flags *VideosFlags) error {
	paths, err := newClient(flags.RemoteFlags).Videos(context.Background(), flags.Directory)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func runServeCommand(flags *ServeFlags, args []string) error {
	configPath := flags.ConfigPath
	if len(args) > 0 {
		configPath = args[0]
	}

	cfg, err := vlcd.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if flags.Daemonize {
		return daemonize(flags.PidFile, flags.LogFile)
	}

	logger := cfg.Log.New()
	slog.SetDefault(logger)

	var sinks []vlcd.HistorySink
	if cfg.History.Enabled {
		sink, err := vlcd.NewHistorySink(cfg.History.DSN)
		if err != nil {
			return fmt.Errorf("opening history sink: %w", err)
		}
		sinks = append(sinks, sink)
		defer func() { _ = sink.Close() }()
	}

	mgr := vlcd.New(vlcd.ManagerConfig{
		Spec: vlcd.Spec{
			BinPath:   cfg.Player.VLCPath,
			ExtraArgs: cfg.Player.ExtraArgs,
		},
		StopGrace:  cfg.Player.StopGrace,
		Logger:     logger,
		Sinks:      sinks,
		CaptureDir: cfg.Player.CaptureDir,
	})

	if cfg.Metrics.Enabled {
		if err := vlcd.RegisterMetricsDefault(); err != nil {
			logger.Warn("failed to register metrics", "error", err)
		} else if cfg.Metrics.Listen != "" {
			go func() {
				if err := vlcd.ServeMetrics(cfg.Metrics.Listen); err != nil {
					logger.Error("metrics server error", "error", err)
				}
			}()
		}
	}

	server, err := vlcd.NewHTTPServer(cfg.Server.Listen, cfg.Server.BasePath, mgr, vlcd.ServerOptions{
		APIKey:      cfg.Server.APIKey,
		CORSOrigins: cfg.Server.CORSOrigins,
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP server: %w", err)
	}

	logger.Info("vlcd server started", "listen", cfg.Server.Listen, "base_path", cfg.Server.BasePath)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	mgr.Shutdown()
	_ = removePidFile(flags.PidFile)
	return server.Close()
}
