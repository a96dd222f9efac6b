// Package export serializes weapon and module entries to CSV files laid
// out as labelled sections rather than one flat table.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"tfdsearch/internal/logging"
	"tfdsearch/internal/meta"
)

// WeaponRows builds the CSV rows for a weapon: identity block, base stats
// with resolved names, then the full 1-160 firearm attack table.
func WeaponRows(w meta.Weapon, stats meta.StatMap) [][]string {
	rows := [][]string{
		{"Weapon ID", w.WeaponID},
		{"Weapon Type", w.WeaponType},
		{"Weapon Tier", w.WeaponTier},
		{"Rounds Type", w.WeaponRoundsType},
		{},
		{"Base Stats"},
	}
	for _, st := range w.BaseStat {
		rows = append(rows, []string{stats.Name(st.StatID), formatFloat(st.StatValue)})
	}

	rows = append(rows,
		[]string{},
		[]string{fmt.Sprintf("Firearm Attack (%s)", meta.FullLevelRange)},
		[]string{"Level", "Type", "Value"},
	)
	for _, r := range w.FirearmRows(meta.FullLevelRange) {
		rows = append(rows, []string{
			strconv.Itoa(r.Level),
			stats.Name(r.Type),
			formatFloat(r.Value),
		})
	}
	return rows
}

// ModuleRows builds the CSV rows for a module: name, then the per-level
// capacity/value table.
func ModuleRows(m meta.Module) [][]string {
	rows := [][]string{
		{"Module Name", m.ModuleName},
		{},
		{"Level", "Capacity", "Value"},
	}
	for _, st := range m.ModuleStat {
		rows = append(rows, []string{
			strconv.Itoa(st.Level),
			strconv.Itoa(st.ModuleCapacity),
			st.Value,
		})
	}
	return rows
}

// FilePath joins an output directory and a bare file name into the final
// CSV path.
func FilePath(dir, name string) string {
	return filepath.Join(dir, name+".csv")
}

// WriteCSV writes rows to path. The parent directory must already exist.
func WriteCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range rows {
		// encoding/csv rejects zero-field records; blank separator rows
		// become a single empty field.
		if len(row) == 0 {
			row = []string{""}
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	logging.Named("export").Info("exported csv",
		zap.String("path", path),
		zap.Int("rows", len(rows)),
	)
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
