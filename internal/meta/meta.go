// Package meta defines the TFD metadata records served by Nexon's static
// open API: weapons, modules, and the stat id -> name dictionary they
// reference. The structs mirror the upstream JSON schema field-for-field;
// nothing is normalized on ingest so a cached document round-trips exactly.
package meta

import "fmt"

// Stat is one entry of stat.json, the dictionary that gives display names
// to the stat ids referenced by weapons.
type Stat struct {
	StatID   string `json:"stat_id"`
	StatName string `json:"stat_name"`
}

// StatMap resolves stat ids to display names.
type StatMap map[string]string

// NewStatMap builds the id -> name lookup from the raw stat list.
func NewStatMap(stats []Stat) StatMap {
	m := make(StatMap, len(stats))
	for _, s := range stats {
		m[s.StatID] = s.StatName
	}
	return m
}

// Name returns the display name for a stat id, or a marked placeholder for
// ids absent from the dictionary. Upstream occasionally ships weapons that
// reference stat ids stat.json does not list yet.
func (m StatMap) Name(id string) string {
	if name, ok := m[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown Stat (%s)", id)
}

// WeaponStat is a single base stat of a weapon.
type WeaponStat struct {
	StatID    string  `json:"stat_id"`
	StatValue float64 `json:"stat_value"`
}

// FirearmValue is one attack value at a given level.
type FirearmValue struct {
	FirearmATKType  string  `json:"firearm_atk_type"`
	FirearmATKValue float64 `json:"firearm_atk_value"`
}

// FirearmLevel groups the attack values for one enhancement level (1-160).
type FirearmLevel struct {
	Level   int            `json:"level"`
	Firearm []FirearmValue `json:"firearm"`
}

// Weapon is one entry of weapon.json.
type Weapon struct {
	WeaponID                     string         `json:"weapon_id"`
	WeaponName                   string         `json:"weapon_name"`
	ImageURL                     string         `json:"image_url"`
	WeaponType                   string         `json:"weapon_type"`
	WeaponTier                   string         `json:"weapon_tier"`
	WeaponRoundsType             string         `json:"weapon_rounds_type"`
	WeaponPerkAbilityName        string         `json:"weapon_perk_ability_name"`
	WeaponPerkAbilityDescription string         `json:"weapon_perk_ability_description"`
	BaseStat                     []WeaponStat   `json:"base_stat"`
	FirearmATK                   []FirearmLevel `json:"firearm_atk"`
}

// ModuleStat is the per-level effect of a module.
type ModuleStat struct {
	Level          int    `json:"level"`
	ModuleCapacity int    `json:"module_capacity"`
	Value          string `json:"value"`
}

// Module is one entry of module.json.
type Module struct {
	ModuleID         string       `json:"module_id"`
	ModuleName       string       `json:"module_name"`
	ImageURL         string       `json:"image_url"`
	ModuleType       string       `json:"module_type"`
	ModuleTier       string       `json:"module_tier"`
	ModuleClass      string       `json:"module_class"`
	ModuleSocketType string       `json:"module_socket_type"`
	ModuleStat       []ModuleStat `json:"module_stat"`
}

// Catalog bundles everything the search and display layers need. Name
// slices are kept in upstream order for autocomplete suggestions.
type Catalog struct {
	Weapons     []Weapon
	Modules     []Module
	Stats       StatMap
	WeaponNames []string
	ModuleNames []string
}

// NewCatalog assembles a Catalog from raw upstream lists.
func NewCatalog(weapons []Weapon, modules []Module, stats []Stat) *Catalog {
	c := &Catalog{
		Weapons:     weapons,
		Modules:     modules,
		Stats:       NewStatMap(stats),
		WeaponNames: make([]string, 0, len(weapons)),
		ModuleNames: make([]string, 0, len(modules)),
	}
	for _, w := range weapons {
		c.WeaponNames = append(c.WeaponNames, w.WeaponName)
	}
	for _, m := range modules {
		c.ModuleNames = append(c.ModuleNames, m.ModuleName)
	}
	return c
}

// WeaponByName returns the weapon with the exact display name.
func (c *Catalog) WeaponByName(name string) (Weapon, bool) {
	for _, w := range c.Weapons {
		if w.WeaponName == name {
			return w, true
		}
	}
	return Weapon{}, false
}

// ModuleByName returns the module with the exact display name.
func (c *Catalog) ModuleByName(name string) (Module, bool) {
	for _, m := range c.Modules {
		if m.ModuleName == name {
			return m, true
		}
	}
	return Module{}, false
}
