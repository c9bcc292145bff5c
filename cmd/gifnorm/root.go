package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gifnorm/internal/check"
	"gifnorm/internal/config"
	"gifnorm/internal/console"
	"gifnorm/internal/display"
	"gifnorm/internal/ffmpeg"
	"gifnorm/internal/logging"
	"gifnorm/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

// cfgFile is the --config flag; empty means the default location.
var cfgFile string

// flags holds raw CLI flag values. They are merged onto the config file
// result in run(), so a flag the user actually set always wins over the
// file, and an unset flag never clobbers a file value.
var flags = struct {
	fps            int
	width          int
	dryRun         bool
	yes            bool
	nonInteractive bool
	deleteHTML     bool
	deleteErrors   bool
	verbose        bool
	color          string
	noColor        bool
	logFile        string
	check          bool
}{}

var rootCmd = &cobra.Command{
	Use:   "gifnorm [flags] <directory>",
	Short: "Normalize a directory of media files into correctly named GIFs",
	Long: `gifnorm scans a directory of downloaded media, detects each file's real
type from its binary signature, and normalizes everything to GIF:

  - files that are already GIFs are renamed to a clean .gif name
  - videos (mp4, webm, avi, mov) and images (png, apng, jpeg, webp)
    are converted with ffmpeg and the originals removed
  - HTML pages and "content no longer available" placeholders saved
    under media names are listed for review and optional deletion

Conversion needs ffmpeg on PATH; run with --check to verify the setup.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command; errors are printed once, here.
func Execute() {
	rootCmd.SetVersionTemplate(`{{.Name}} version {{.Version}}` + "\n")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gifnorm: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path (default "+config.DefaultFilePath()+")")

	defaults := config.DefaultConfig()
	f := rootCmd.Flags()
	f.BoolVarP(&flags.dryRun, "dry-run", "d", false, "Show what would happen without touching any file")
	f.BoolVarP(&flags.yes, "yes", "y", false, "Skip the initial confirmation prompt")
	f.BoolVar(&flags.nonInteractive, "non-interactive", false, "Never prompt; review buckets are kept unless the delete flags are set")
	f.BoolVar(&flags.deleteHTML, "delete-html", false, "With --non-interactive, delete files detected as HTML")
	f.BoolVar(&flags.deleteErrors, "delete-errors", false, "With --non-interactive, delete error placeholder files")
	f.IntVar(&flags.fps, "fps", defaults.FPS, "Output GIF frame rate")
	f.IntVar(&flags.width, "width", defaults.Width, "Output GIF width in pixels (height keeps aspect)")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Show ffmpeg progress and per-file detection detail")
	f.StringVar(&flags.color, "color", string(defaults.ColorMode), `Color output: "auto", "always" or "never"`)
	f.BoolVar(&flags.noColor, "no-color", false, `Shorthand for --color=never`)
	f.StringVarP(&flags.logFile, "log", "l", "", "Also append plain-text log lines to this file")
	f.BoolVarP(&flags.check, "check", "c", false, "Verify ffmpeg availability and GIF encoding, then exit")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return errors.New("system check failed")
		}
		return nil
	}

	if fi, err := os.Stat(cfg.InputDir); err != nil || !fi.IsDir() {
		return fmt.Errorf("not a directory: %s", cfg.InputDir)
	}

	log.Info("=== gifnorm v%s ===", version)
	log.Info("Target: %s", cfg.InputDir)
	log.Info("")

	// Fail fast when ffmpeg is missing. A dry run never spawns it, so the
	// preview stays usable on machines without ffmpeg.
	if !cfg.DryRun {
		if err := check.CheckDeps(); err != nil {
			log.Error("%v", err)
			log.Error("Install ffmpeg or run with --check for diagnostics")
			return err
		}
	}

	prompter := buildPrompter(&cfg, log)
	if prompter == nil {
		return nil // operator declined at the initial confirmation
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stats, err := pipeline.Run(ctx, &cfg, log, ffmpeg.NewGIFConverter(&cfg), prompter)
	if err != nil {
		return err
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", stats.Failed, stats.Total)
	}
	return nil
}

// loadConfig layers the three config sources: defaults, then the YAML
// config file, then only the flags the user explicitly set.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.DefaultConfig()

	path, explicit := config.DefaultFilePath(), false
	if cfgFile != "" {
		path, explicit = cfgFile, true
	}
	if err := config.ApplyFile(&cfg, path, explicit); err != nil {
		return cfg, err
	}

	fs := cmd.Flags()
	if fs.Changed("fps") {
		cfg.FPS = flags.fps
	}
	if fs.Changed("width") {
		cfg.Width = flags.width
	}
	if fs.Changed("color") {
		cfg.ColorMode = config.ColorMode(flags.color)
	}
	if flags.noColor {
		cfg.ColorMode = config.ColorNever
	}
	if fs.Changed("log") {
		cfg.LogFile = flags.logFile
	}
	cfg.DryRun = flags.dryRun
	cfg.AssumeYes = flags.yes
	cfg.NonInteractive = flags.nonInteractive
	cfg.DeleteHTML = flags.deleteHTML
	cfg.DeleteErrors = flags.deleteErrors
	cfg.Verbose = flags.verbose
	cfg.CheckOnly = flags.check

	if len(args) == 1 {
		cfg.InputDir = config.NormalizeDirArg(args[0])
	} else if !cfg.CheckOnly && !cfg.NonInteractive {
		// No positional arg: ask, like the shell workflow this replaces.
		in := console.NewInteractive(os.Stdin, os.Stdout)
		dir, err := in.ReadLine("Enter the folder path: ")
		if err != nil {
			return cfg, err
		}
		cfg.InputDir = config.NormalizeDirArg(dir)
	}

	return cfg, cfg.Validate()
}

// buildPrompter picks the review-phase prompter and handles the initial
// "continue?" confirmation. A nil result means the operator answered no.
func buildPrompter(cfg *config.Config, log *logging.Logger) pipeline.Prompter {
	if cfg.NonInteractive {
		return console.FlagAnswers{
			DeleteHTML:   cfg.DeleteHTML,
			DeleteErrors: cfg.DeleteErrors,
		}
	}

	in := console.NewInteractive(os.Stdin, os.Stdout)
	if !cfg.AssumeYes && !cfg.DryRun {
		if !in.Ask("This will convert videos and images to GIF and fix filenames. Continue?") {
			log.Info("Cancelled.")
			return nil
		}
	}
	return in
}
