package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/config"
	"github.com/blackwell-systems/avex/internal/explorer"
	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/logging"
	"github.com/blackwell-systems/avex/internal/tui"
	"github.com/blackwell-systems/avex/internal/util"
)

var (
	cfg     *config.Config
	backend catalog.Backend
	session *explorer.Session
	out     *explorer.Capture
	logger  *logrus.Logger
	closers []io.Closer

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
)

var rootCmd = &cobra.Command{
	Use:   "avex",
	Short: "Browse and manage a local catalog of avatar items",
	Long: `avex keeps a catalog of avatars and the items made for them (clothing,
textures, gimmicks, accessories, ...) and lets you browse it by avatar,
author or category, search it, and open item folders.

Run 'avex' with no arguments to launch the interactive explorer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runExplorer()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	err := rootCmd.Execute()
	closeAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/avex/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		// These run without a catalog.
		switch cmd.Name() {
		case "version", "completion", "help":
			return nil
		}

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return openCatalog()
	}

	rootCmd.AddCommand(
		newBrowseCmd(),
		newAvatarsCmd(),
		newAuthorsCmd(),
		newCategoriesCmd(),
		newItemsCmd(),
		newSearchCmd(),
		newShowCmd(),
		newAddCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newThumbnailCmd(),
		newAuthorImageCmd(),
		newGroupsCmd(),
		newCategoryCmd(),
		newBoothCmd(),
		newExportCmd(),
		newBackupCmd(),
		newRestoreCmd(),
		newImportLegacyCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// openCatalog sets up logging, opens the configured backend and builds
// the shared session.
func openCatalog() error {
	if err := util.EnsureDir(cfg.DataDir); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	var logCloser io.Closer
	var err error
	logger, logCloser, err = logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.EffectiveLogFile()})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	closers = append(closers, logCloser)

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		db, err := catalog.OpenSQLite(filepath.Join(cfg.DataDir, catalog.SQLiteFile))
		if err != nil {
			return err
		}
		closers = append(closers, db)
		backend = db
	default:
		backend = catalog.NewFileBackend(cfg.DataDir)
	}

	store, err := catalog.Load(backend)
	if err != nil {
		return err
	}
	if n := store.FixSupportedAvatarPaths(); n > 0 {
		logger.WithField("fixed", n).Info("rewrote supported avatar titles to paths")
	}

	out = explorer.NewCapture()
	session = explorer.New(store, backend,
		explorer.WithRenderer(out),
		explorer.WithLogger(logging.Component(logger, "explorer")),
		explorer.WithLanguage(cfg.Lang()),
		explorer.WithSort(listing.ParseSortKey(cfg.Sort)),
		explorer.WithBoothURL(cfg.Booth.BaseURL),
	)
	return nil
}

func closeAll() {
	for i := len(closers) - 1; i >= 0; i-- {
		_ = closers[i].Close()
	}
	closers = nil
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
