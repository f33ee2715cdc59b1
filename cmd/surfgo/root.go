package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/surfgo"
	"github.com/hupe1980/surfgo/internal/config"
	"github.com/hupe1980/surfgo/surf"
)

// app carries state shared by all subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	overrides  config.Config

	cfg    *config.Config
	logger *surfgo.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "surfgo",
		Short: "Encode, decode and compare SURF descriptors",
		Long: `surfgo converts SURF interest point descriptors between the legacy
text layout ("<x> <y> <response> <c0> <c1> ...") and the compact binary
layout stored in image index documents, and computes L2 distances.`,
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to YAML config file")
	flags.StringVar(&a.overrides.Codec, "codec", "", "envelope codec: raw, lz4 or zstd")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.overrides.LogFormat, "log-format", "", "log format: text or json")
	flags.IntVar(&a.overrides.Concurrency, "concurrency", 0, "parallel decoders (0 = GOMAXPROCS)")
	flags.BoolVar(&a.overrides.SkipMalformed, "skip-malformed", false, "skip undecodable records instead of failing")

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newDistanceCmd(a),
		newInfoCmd(a),
	)
	return rootCmd
}

// setup loads the config file and applies explicitly set flags on top.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFromFile(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("codec") {
		cfg.Codec = a.overrides.Codec
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.overrides.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.overrides.LogFormat
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = a.overrides.Concurrency
	}
	if flags.Changed("skip-malformed") {
		cfg.SkipMalformed = a.overrides.SkipMalformed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		a.logger = surfgo.NewLogger(slog.NewJSONHandler(a.stderr, opts))
	} else {
		a.logger = surfgo.NewLogger(slog.NewTextHandler(a.stderr, opts))
	}
	a.cfg = cfg
	return nil
}

func (a *app) loader() (*surfgo.Loader, error) {
	return surfgo.NewLoader(surf.Family(),
		surfgo.WithCodec(a.cfg.EnvelopeCodec()),
		surfgo.WithLogger(a.logger),
		surfgo.WithConcurrency(a.cfg.Concurrency),
		surfgo.WithSkipMalformed(a.cfg.SkipMalformed),
	)
}
