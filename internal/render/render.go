package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"tfdsearch/internal/meta"
	"tfdsearch/internal/store"
)

// BaseStatsTable renders a weapon's identity and base stats.
func BaseStatsTable(w meta.Weapon, stats meta.StatMap, styles Styles) string {
	t := NewTable(fmt.Sprintf("%s - Base Stats", w.WeaponName), "Attribute", "Value")
	t.AddRow("Weapon ID", w.WeaponID)
	t.AddRow("Weapon Type", w.WeaponType)
	t.AddRow("Weapon Tier", w.WeaponTier)
	t.AddRow("Rounds Type", w.WeaponRoundsType)
	for _, st := range w.BaseStat {
		t.AddRow(stats.Name(st.StatID), formatFloat(st.StatValue))
	}
	return t.Render(styles)
}

// FirearmAttackTable renders a weapon's attack values inside the window.
func FirearmAttackTable(w meta.Weapon, stats meta.StatMap, r meta.LevelRange, styles Styles) string {
	t := NewTable(
		fmt.Sprintf("%s - Firearm Attack (%s)", w.WeaponName, r),
		"Level", "Type", "Value",
	)
	for _, row := range w.FirearmRows(r) {
		t.AddRow(strconv.Itoa(row.Level), stats.Name(row.Type), formatFloat(row.Value))
	}
	return t.Render(styles)
}

// WeaponDetail joins the base-stats and firearm-attack tables side by side.
func WeaponDetail(w meta.Weapon, stats meta.StatMap, r meta.LevelRange, styles Styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		BaseStatsTable(w, stats, styles),
		"   ",
		FirearmAttackTable(w, stats, r, styles),
	)
}

// ModuleStatsTable renders a module's per-level table.
func ModuleStatsTable(m meta.Module, styles Styles) string {
	t := NewTable(fmt.Sprintf("%s - Stats", m.ModuleName), "Level", "Capacity", "Value")
	for _, st := range m.ModuleStat {
		t.AddRow(strconv.Itoa(st.Level), strconv.Itoa(st.ModuleCapacity), st.Value)
	}
	return t.Render(styles)
}

// WeaponMatchesTable lists search results.
func WeaponMatchesTable(weapons []meta.Weapon, styles Styles) string {
	t := NewTable("", "Name", "Type", "Tier", "Rounds")
	for _, w := range weapons {
		t.AddRow(w.WeaponName, w.WeaponType, w.WeaponTier, w.WeaponRoundsType)
	}
	return t.Render(styles)
}

// ModuleMatchesTable lists search results.
func ModuleMatchesTable(modules []meta.Module, styles Styles) string {
	t := NewTable("", "Name", "Type", "Tier", "Class", "Socket")
	for _, m := range modules {
		t.AddRow(m.ModuleName, m.ModuleType, m.ModuleTier, m.ModuleClass, m.ModuleSocketType)
	}
	return t.Render(styles)
}

// CacheStatusTable summarizes the sqlite manifest rows.
func CacheStatusTable(manifests []store.Manifest, styles Styles) string {
	t := NewTable("Cache Status", "Resource", "Entries", "ETag", "Fetched")
	for _, m := range manifests {
		t.AddRow(
			string(m.Resource),
			strconv.Itoa(m.EntryCount),
			m.ETag,
			m.FetchedAt.Local().Format("2006-01-02 15:04:05"),
		)
	}
	return t.Render(styles)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
