package main

import (
	"fmt"
	"os"

	"txgraph/pkg/config"
	"txgraph/pkg/logging"
	"txgraph/pkg/rpc"
	"txgraph/pkg/scanner"
	"txgraph/pkg/tui"

	"github.com/urfave/cli/v2"
)

// Version should be set during build
var Version = "dev"

func newApp() *cli.App {
	return &cli.App{
		Name:    "txgraph",
		Usage:   "Scan recent blocks for one address and browse its transaction graph",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Aliases:  []string{"a"},
				Usage:    "target address (0x-prefixed, 20 bytes)",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   fmt.Sprintf("number of blocks to walk back from the head (default: config block_count, %d)", config.DefaultBlockCount),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   fmt.Sprintf("path to configuration file (default: ~/%s)", config.ConfigFileName),
			},
			&cli.StringFlag{
				Name:  "rpc",
				Usage: "node RPC endpoint, http(s) or ws(s)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Action: run,
	}
}

// loadConfig resolves the file, environment and flag layers, in that order.
func loadConfig(c *cli.Context) (config.Config, error) {
	path, err := config.GetConfigPath(c.String("config"))
	if err != nil {
		return config.Config{}, fmt.Errorf("determine config path: %w", err)
	}
	cfg, err := config.LoadConfigFromFile(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config from %s: %w", path, err)
	}

	if c.IsSet("limit") {
		cfg.BlockCount = c.Int("limit")
	}
	if c.IsSet("rpc") {
		cfg.RPCURL = c.String("rpc")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := logging.New(cfg, c.App.ErrWriter)
	ctx := c.Context

	client, err := rpc.Dial(ctx, cfg.RPCURL, cfg.RPCTimeout())
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.RPCURL, err)
	}
	if latency, err := client.Latency(ctx); err == nil {
		logger.Debug("node reachable", "url", client.URL(), "latency", latency)
	}

	res, err := scanner.New(client, logger).Scan(ctx, c.String("address"), uint64(cfg.BlockCount))
	client.Close()
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		Target:          res.Target,
		Records:         res.Records,
		Graph:           res.Graph,
		Range:           res.Range,
		RPCURL:          cfg.RPCURL,
		ValueDecimals:   cfg.ValueDecimals,
		DisplayWidth:    cfg.DisplayWidth,
		EdgeLabel:       cfg.EdgeLabel,
		QuitKey:         cfg.QuitKey,
		RefreshInterval: cfg.RefreshInterval(),
	})
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
