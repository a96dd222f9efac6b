package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tfdsearch/internal/export"
	"tfdsearch/internal/meta"
	"tfdsearch/internal/render"
)

var (
	searchCSVPath string
	searchRange   string
)

// searchCmd groups the non-interactive search commands.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the cached catalog without the interactive interface",
}

var searchWeaponsCmd = &cobra.Command{
	Use:   "weapons <term>",
	Short: "Search weapons by name",
	Long: `Case-insensitive substring search over weapon names. A single match
prints the full detail tables; multiple matches print a summary list.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchWeapons,
}

var searchModulesCmd = &cobra.Command{
	Use:   "modules <term>",
	Short: "Search modules by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchModules,
}

func runSearchWeapons(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	cat, err := a.catalog.Load(cmd.Context())
	if err != nil {
		return err
	}

	matches, err := meta.FilterWeapons(cat.Weapons, args[0])
	if err != nil {
		return err
	}
	_ = a.store.RecordSearch("weapons", args[0], len(matches))

	if len(matches) == 0 {
		fmt.Printf("No weapons found matching '%s'.\n", args[0])
		return nil
	}

	styles := render.DefaultStyles()

	if len(matches) > 1 {
		fmt.Print(render.WeaponMatchesTable(matches, styles))
		if searchCSVPath != "" {
			return errors.New("--csv needs a term matching exactly one weapon")
		}
		return nil
	}

	w := matches[0]
	rng := meta.DefaultLevelRange
	if searchRange != "" {
		if rng, err = meta.ParseLevelRange(searchRange); err != nil {
			return err
		}
	}
	fmt.Println(render.WeaponDetail(w, cat.Stats, rng, styles))

	if searchCSVPath != "" {
		if err := export.WriteCSV(searchCSVPath, export.WeaponRows(w, cat.Stats)); err != nil {
			return err
		}
		fmt.Printf("Data successfully exported to %s.\n", searchCSVPath)
	}
	return nil
}

func runSearchModules(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	cat, err := a.catalog.Load(cmd.Context())
	if err != nil {
		return err
	}

	matches, err := meta.FilterModules(cat.Modules, args[0])
	if err != nil {
		return err
	}
	_ = a.store.RecordSearch("modules", args[0], len(matches))

	if len(matches) == 0 {
		fmt.Printf("No modules found matching '%s'.\n", args[0])
		return nil
	}

	styles := render.DefaultStyles()

	if len(matches) > 1 {
		fmt.Print(render.ModuleMatchesTable(matches, styles))
		if searchCSVPath != "" {
			return errors.New("--csv needs a term matching exactly one module")
		}
		return nil
	}

	m := matches[0]
	fmt.Println(render.ModuleStatsTable(m, styles))

	if searchCSVPath != "" {
		if err := export.WriteCSV(searchCSVPath, export.ModuleRows(m)); err != nil {
			return err
		}
		fmt.Printf("Data successfully exported to %s.\n", searchCSVPath)
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{searchWeaponsCmd, searchModulesCmd} {
		c.Flags().StringVar(&searchCSVPath, "csv", "", "export the single match to this CSV file")
	}
	searchWeaponsCmd.Flags().StringVar(&searchRange, "range", "", "firearm attack level window, e.g. 91-120")

	searchCmd.AddCommand(searchWeaponsCmd)
	searchCmd.AddCommand(searchModulesCmd)
}
