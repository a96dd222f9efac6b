package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"tfdsearch/internal/api"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-download all metadata from the API",
	Long: `Fetches weapon.json, stat.json and module.json again, replacing the
local cache. Resources that answer 304 Not Modified keep the cached copy.`,
	RunE: runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	bar := progressbar.NewOptions(len(api.Resources),
		progressbar.OptionSetDescription("Refreshing cache"),
		progressbar.OptionClearOnFinish(),
	)

	err = a.catalog.Refresh(cmd.Context(), func(res api.Resource) {
		_ = bar.Add(1)
	})
	if err != nil {
		return err
	}
	_ = bar.Finish()

	cat, err := a.catalog.Load(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Cache refreshed: %d weapons, %d modules.\n", len(cat.Weapons), len(cat.Modules))
	return nil
}
