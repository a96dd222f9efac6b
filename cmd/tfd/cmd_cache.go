package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tfdsearch/internal/render"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the local metadata cache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what is cached and when it was fetched",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		manifests, err := a.store.AllManifests()
		if err != nil {
			return err
		}
		if len(manifests) == 0 {
			fmt.Println("Nothing cached yet. Run `tfd refresh` first.")
			return nil
		}
		fmt.Print(render.CacheStatusTable(manifests, render.DefaultStyles()))
		fmt.Printf("Cache directory: %s\n", a.cache.Dir())
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete cached documents, manifests and search history",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.cache.Clear(); err != nil {
			return err
		}
		if err := a.store.Clear(); err != nil {
			return err
		}
		fmt.Println("Cache cleared.")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
