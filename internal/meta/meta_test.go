package meta

import (
	"encoding/json"
	"testing"
)

func TestStatMapName(t *testing.T) {
	m := NewStatMap([]Stat{
		{StatID: "105000001", StatName: "Firearm ATK"},
		{StatID: "105000026", StatName: "Fire Rate"},
	})

	if got := m.Name("105000001"); got != "Firearm ATK" {
		t.Errorf("Name(known) = %q", got)
	}
	if got := m.Name("999"); got != "Unknown Stat (999)" {
		t.Errorf("Name(unknown) = %q", got)
	}
}

func TestWeaponUnmarshal(t *testing.T) {
	// Trimmed from a live weapon.json entry.
	raw := `{
		"weapon_id": "101001001",
		"weapon_name": "Thunder Cage",
		"weapon_type": "Submachine Gun",
		"weapon_tier": "Ultimate",
		"weapon_rounds_type": "General Rounds",
		"base_stat": [{"stat_id": "105000026", "stat_value": 37.5}],
		"firearm_atk": [
			{"level": 1, "firearm": [{"firearm_atk_type": "105000001", "firearm_atk_value": 361}]},
			{"level": 100, "firearm": [{"firearm_atk_type": "105000001", "firearm_atk_value": 16661}]}
		]
	}`

	var w Weapon
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if w.WeaponName != "Thunder Cage" || w.WeaponRoundsType != "General Rounds" {
		t.Errorf("unexpected weapon: %+v", w)
	}
	if len(w.BaseStat) != 1 || w.BaseStat[0].StatValue != 37.5 {
		t.Errorf("unexpected base_stat: %+v", w.BaseStat)
	}
	if len(w.FirearmATK) != 2 || w.FirearmATK[1].Firearm[0].FirearmATKValue != 16661 {
		t.Errorf("unexpected firearm_atk: %+v", w.FirearmATK)
	}
}

func TestCatalogLookups(t *testing.T) {
	c := NewCatalog(
		[]Weapon{{WeaponID: "1", WeaponName: "Tamer"}},
		[]Module{{ModuleID: "2", ModuleName: "Rifling Reinforcement"}},
		[]Stat{{StatID: "s1", StatName: "Firearm ATK"}},
	)

	if len(c.WeaponNames) != 1 || c.WeaponNames[0] != "Tamer" {
		t.Errorf("WeaponNames = %v", c.WeaponNames)
	}
	if len(c.ModuleNames) != 1 || c.ModuleNames[0] != "Rifling Reinforcement" {
		t.Errorf("ModuleNames = %v", c.ModuleNames)
	}

	if _, ok := c.WeaponByName("Tamer"); !ok {
		t.Error("WeaponByName(Tamer) not found")
	}
	if _, ok := c.WeaponByName("tamer"); ok {
		t.Error("WeaponByName is exact-match; lowercase should miss")
	}
	if _, ok := c.ModuleByName("Rifling Reinforcement"); !ok {
		t.Error("ModuleByName not found")
	}
}
