package main

import (
	"log/slog"
	"os"

	"floatimg/cli"
	"floatimg/parallel"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Config    kong.ConfigFlag `help:"JSON file with default flag values. Keys use underscores, e.g. {\"log_level\": \"debug\"}"`
	LogLevel  string          `help:"Log level" enum:"debug,info,warn,error" default:"info" env:"FLOATIMG_LOG_LEVEL"`
	LogFormat string          `help:"Log format" enum:"text,json" default:"text" env:"FLOATIMG_LOG_FORMAT"`
	Workers   int             `help:"Number of parallel workers, 0 for one per CPU" default:"0" env:"FLOATIMG_WORKERS"`

	Resize   cli.ResizeCmd   `cmd:"" help:"Resize images by factor or to an exact size"`
	Plot     cli.PlotCmd     `cmd:"" help:"Render an image as it would be displayed"`
	Gradient cli.GradientCmd `cmd:"" help:"Normalize an image and plot it as a gradient"`
	Info     cli.InfoCmd     `cmd:"" help:"Print format, shape and value range of images"`
	Colormap cli.ColormapCmd `cmd:"" help:"Sample a colormap and write it as a RIFF PAL file"`
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// parserOptions reads defaults from the JSON files at configPaths, then from
// the file given with --config.
func parserOptions(configPaths ...string) []kong.Option {
	return []kong.Option{
		kong.Name("floatimg"),
		kong.Description("Load, resize, normalize and plot images as floating-point pixel arrays."),
		kong.Configuration(kong.JSON, configPaths...),
		kong.UsageOnError(),
	}
}

func main() {
	var conf CLI
	kctx := kong.Parse(&conf, parserOptions("~/.config/floatimg.json", ".floatimg.json")...)

	logger := newLogger(conf.LogLevel, conf.LogFormat)
	slog.SetDefault(logger)
	logger.Debug("running", "command", kctx.Command())

	pool := parallel.Start(conf.Workers)
	err := kctx.Run(logger, pool)
	pool.Wait()

	if err != nil {
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
