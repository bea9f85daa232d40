// Package cmd provides the entrypoint and CLI command configuration for the
// quickplt application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kpumuk/quickplt/internal/config"
	"github.com/kpumuk/quickplt/internal/matrix"
	"github.com/kpumuk/quickplt/internal/render"
	"github.com/kpumuk/quickplt/internal/timeaxis"
	"github.com/kpumuk/quickplt/internal/ui"
)

// ErrInputMissing is returned when the primary input file does not exist.
var ErrInputMissing = errors.New("input file does not exist")

// ErrColumn is returned for column numbers that are not positive integers.
var ErrColumn = errors.New("column numbers start at 1")

func buildVersion(version, commit, date, builtBy string) string {
	result := version
	if commit != "" {
		result = fmt.Sprintf("%s\ncommit: %s", result, commit)
	}
	if date != "" {
		result = fmt.Sprintf("%s\nbuilt at: %s", result, date)
	}
	if builtBy != "" {
		result = fmt.Sprintf("%s\nbuilt by: %s", result, builtBy)
	}
	result = fmt.Sprintf("%s\ngoos: %s\ngoarch: %s", result, runtime.GOOS, runtime.GOARCH)
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
		result = fmt.Sprintf("%s\nmodule version: %s, checksum: %s", result, info.Main.Version, info.Main.Sum)
	}

	return result
}

// options holds the parsed command line.
type options struct {
	filename  string
	filename2 string
	xcol      int
	ycol      int
	mjd       string
	ymdhm     string
	ydoy      string
	reverse   string
	show      string
	xlabel    string
	ylabel    string
	title     string
	symbol    string
	outfile   string
	xlimits   limitsValue
	ylimits   limitsValue
	config    string
	logLevel  string
	logFormat string
}

// Execute initializes and runs the quickplt command.
func Execute(version, commit, date, builtBy string) error {
	rootCmd := newRootCmd()
	rootCmd.Version = buildVersion(version, commit, date, builtBy)
	rootCmd.SetVersionTemplate(`quickplt {{printf "version %s\n" .Version}}`)
	rootCmd.SetArgs(normalizeArgs(rootCmd.Flags(), os.Args[1:]))

	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(rootCmd.Version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "quickplt filename xcol ycol",
		Short: "Quick plots of columns from a text file.",
		Long: "Plot one column of a whitespace-delimited text file against another and save the\n" +
			"result as a PNG in $REFL_CODE/Files. Lines starting at % are comments.",
		Example: "quickplt data.txt 1 16 -mjd T -ylabel RH -ylimits 0 2",
		Args:    cobra.ExactArgs(3),
	}

	flags := rootCmd.Flags()
	flags.BoolP("help", "h", false, "help for quickplt")
	flags.StringVar(&opts.mjd, "mjd", "", "set to T/True if x-values are MJD")
	flags.StringVar(&opts.ymdhm, "ymdhm", "", "set to T/True if columns 1-4 are year month day hour")
	flags.StringVar(&opts.ydoy, "ydoy", "", "set to T/True if columns 1-2 are year and day of year")
	flags.StringVar(&opts.reverse, "reverse", "", "set to T/True to reverse the y-axis")
	flags.StringVar(&opts.xlabel, "xlabel", "", "x-axis label")
	flags.StringVar(&opts.ylabel, "ylabel", "Unknown", "y-axis label")
	flags.StringVar(&opts.title, "title", "", "plot title (default: base name of the file)")
	flags.StringVar(&opts.symbol, "symbol", render.PrimaryFormat, "plot symbol, e.g. b. ro k--")
	flags.StringVar(&opts.outfile, "outfile", render.DefaultOutput, "name of the PNG file, must end in png")
	flags.StringVar(&opts.filename2, "filename2", "", "second file, plotted in red")
	flags.Var(&opts.xlimits, "xlimits", "pair of x-axis limits")
	flags.Var(&opts.ylimits, "ylimits", "pair of y-axis limits")
	flags.StringVar(&opts.show, "show", "", "set to T/True to preview the plot in the terminal")
	flags.StringVar(&opts.config, "config", "", "path to an HCL config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		switch name {
		case "ymdh":
			name = "ymdhm"
		}
		return pflag.NormalizedName(name)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts.filename = args[0]
		var err error
		if opts.xcol, err = parseColumn("xcol", args[1]); err != nil {
			return err
		}
		if opts.ycol, err = parseColumn("ycol", args[2]); err != nil {
			return err
		}
		return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, os.LookupEnv)
	}

	return rootCmd
}

func parseColumn(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, value, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s %d: %w", name, n, ErrColumn)
	}
	return n, nil
}

func run(ctx context.Context, stdout, stderr io.Writer, opts *options, lookup func(string) (string, bool)) error {
	cfg, err := config.Load(opts.config, lookup)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	mode, err := timeaxis.ModeFromFlags(
		timeaxis.Enabled(opts.mjd),
		timeaxis.Enabled(opts.ymdhm),
		timeaxis.Enabled(opts.ydoy),
	)
	if err != nil {
		return err
	}
	logger.Debug("resolved time mode", "mode", mode)

	format, err := render.ParseFormat(opts.symbol)
	if err != nil {
		return fmt.Errorf("parse symbol: %w", err)
	}

	primary, err := loadMatrix(logger, opts.filename)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrInputMissing, opts.filename)
	}
	if err != nil {
		return err
	}
	if primary.Empty() {
		fmt.Fprintln(stdout, "empty input file number 1")
		return nil
	}

	var secondary *matrix.Matrix
	if opts.filename2 != "" {
		m, err := loadMatrix(logger, opts.filename2)
		switch {
		case errors.Is(err, os.ErrNotExist):
			fmt.Fprintln(stdout, "second filename does not exist")
		case err != nil:
			return err
		case m.Empty():
			fmt.Fprintln(stdout, "empty input for filenumber 2")
			return nil
		default:
			secondary = m
		}
	}

	xcol, ycol := opts.xcol-1, opts.ycol-1
	series, err := timeaxis.Resolve(primary, xcol, ycol, mode)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", opts.filename, err)
	}
	layers := []render.Layer{{Series: series, Format: format}}
	preview := []ui.Layer{{Name: filepath.Base(opts.filename), Series: series}}

	if secondary != nil {
		series2, err := timeaxis.Resolve(secondary, xcol, ycol, mode)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", opts.filename2, err)
		}
		layers = append(layers, render.Layer{Series: series2, Format: render.MustParseFormat(render.SecondaryFormat)})
		preview = append(preview, ui.Layer{Name: filepath.Base(opts.filename2), Series: series2, Secondary: true})
	}

	title := opts.title
	if title == "" {
		title = filepath.Base(opts.filename)
	}
	renderOpts := render.Options{
		Title:   title,
		XLabel:  opts.xlabel,
		YLabel:  opts.ylabel,
		Reverse: timeaxis.Enabled(opts.reverse),
	}

	if raw := opts.ylimits.Raw(); raw != nil {
		fmt.Fprintln(stdout, "found y-axis limits")
		if renderOpts.YLimits, err = timeaxis.ResolveLimits(raw, timeaxis.Raw); err != nil {
			return fmt.Errorf("resolve y-axis limits: %w", err)
		}
		logger.Debug("resolved y-axis limits", "min", renderOpts.YLimits.Min, "max", renderOpts.YLimits.Max)
	}
	if raw := opts.xlimits.Raw(); raw != nil {
		fmt.Fprintln(stdout, "found x-axis limits")
		if renderOpts.XLimits, err = timeaxis.ResolveLimits(raw, mode); err != nil {
			return fmt.Errorf("resolve x-axis limits: %w", err)
		}
		logger.Debug("resolved x-axis limits", "min", renderOpts.XLimits.Min, "max", renderOpts.XLimits.Max)
	}

	outDir, err := cfg.OutputDir()
	if err != nil {
		return err
	}
	if err := render.ValidateName(opts.outfile); err != nil {
		fmt.Fprintln(stdout, "Output filename must end in png.")
		logger.Debug("skipping output", "error", err)
		return nil
	}

	p, err := render.Plot(renderOpts, layers...)
	if err != nil {
		return fmt.Errorf("build plot: %w", err)
	}
	path, err := render.Save(p, outDir, opts.outfile, render.Size{
		Width:  cfg.Width,
		Height: cfg.Height,
		DPI:    cfg.DPI,
	})
	if err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	fmt.Fprintln(stdout, "Plotfile saved to:", path)
	logger.Debug("saved plot", "path", path)

	if !timeaxis.Enabled(opts.show) {
		return nil
	}
	return ui.Run(ctx, ui.Config{
		Title:   title,
		XLabel:  opts.xlabel,
		YLabel:  opts.ylabel,
		Layers:  preview,
		XLimits: renderOpts.XLimits,
		YLimits: renderOpts.YLimits,
		Reverse: renderOpts.Reverse,
	})
}

func loadMatrix(logger *slog.Logger, path string) (*matrix.Matrix, error) {
	m, err := matrix.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded matrix", "path", path, "rows", m.Rows(), "cols", m.Cols())
	return m, nil
}
