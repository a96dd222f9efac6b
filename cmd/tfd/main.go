// tfd is a terminal tool for browsing The First Descendant weapon and
// module metadata: fetch it from Nexon's static open API, cache it
// locally, search it, and export entries to CSV.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tfdsearch/cmd/tfd/tui"
	"tfdsearch/internal/api"
	"tfdsearch/internal/cache"
	"tfdsearch/internal/catalog"
	"tfdsearch/internal/config"
	"tfdsearch/internal/logging"
	"tfdsearch/internal/store"
)

var (
	// Global flags
	verbose    bool
	configPath string
	langFlag   string

	cfg *config.Config
	log = zap.NewNop()
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "tfd",
	Short: "Search The First Descendant weapon and module metadata",
	Long: `tfd mirrors Nexon's static TFD metadata (weapon.json, module.json,
stat.json) into a local cache and lets you search it, display entries as
tables, and export them to CSV.

Run without arguments to start the interactive interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if langFlag != "" {
			cfg.API.Language = langFlag
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		logFile, err := cfg.LogFile()
		if err != nil {
			return err
		}
		// The TUI owns the terminal; keep stderr quiet there.
		quiet := cmd.Use == "tfd" && cmd.CalledAs() == "tfd"
		log, err = logging.Init(logging.Options{
			Level:   cfg.Logging.Level,
			File:    logFile,
			Verbose: verbose,
			Quiet:   quiet,
		})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// app bundles the wired components a command needs.
type app struct {
	cache   *cache.Cache
	store   *store.Store
	client  *api.Client
	catalog *catalog.Service
}

// newApp wires cache, store, client and catalog service from the loaded
// config. Callers must Close.
func newApp() (*app, error) {
	dir, err := cfg.CacheDir()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(filepath.Join(dir, "tfd.db"))
	if err != nil {
		return nil, err
	}

	c := cache.New(dir)
	client := api.NewClient(api.Config{
		BaseURL:   cfg.API.BaseURL,
		Language:  cfg.API.Language,
		Timeout:   cfg.APITimeout(),
		UserAgent: cfg.API.UserAgent,
	}, &http.Client{Timeout: cfg.APITimeout()})

	return &app{
		cache:   c,
		store:   st,
		client:  client,
		catalog: catalog.New(client, c, st),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		log.Warn("closing store", zap.Error(err))
	}
}

// runInteractive loads the catalog and hands the terminal to the TUI.
func runInteractive(cmd *cobra.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println("Loading data...")
	cat, err := a.catalog.Load(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d weapons and %d modules.\n", len(cat.Weapons), len(cat.Modules))

	model := tui.New(cat, a.catalog, a.store, cfg.Export.Dir)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <config dir>/tfd-search/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "metadata language (en, ko, ja, ...)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
