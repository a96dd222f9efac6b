package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"tfdsearch/internal/meta"
)

func testWeapon() meta.Weapon {
	return meta.Weapon{
		WeaponID:         "101001001",
		WeaponName:       "Thunder Cage",
		WeaponType:       "Submachine Gun",
		WeaponTier:       "Ultimate",
		WeaponRoundsType: "General Rounds",
		BaseStat: []meta.WeaponStat{
			{StatID: "fire_rate", StatValue: 37.5},
			{StatID: "magazine", StatValue: 50},
		},
		FirearmATK: []meta.FirearmLevel{
			{Level: 1, Firearm: []meta.FirearmValue{{FirearmATKType: "atk", FirearmATKValue: 361}}},
			{Level: 2, Firearm: []meta.FirearmValue{{FirearmATKType: "atk", FirearmATKValue: 372}}},
		},
	}
}

func testStats() meta.StatMap {
	return meta.StatMap{"fire_rate": "Fire Rate", "magazine": "Magazine Capacity", "atk": "Firearm ATK"}
}

func TestWeaponRows(t *testing.T) {
	rows := WeaponRows(testWeapon(), testStats())

	// 4 identity + blank + header + 2 stats + blank + section + header + 2 attack rows.
	if len(rows) != 13 {
		t.Fatalf("WeaponRows returned %d rows, want 13", len(rows))
	}
	if rows[0][0] != "Weapon ID" || rows[0][1] != "101001001" {
		t.Errorf("identity row = %v", rows[0])
	}
	if rows[6][0] != "Fire Rate" || rows[6][1] != "37.5" {
		t.Errorf("base stat row = %v", rows[6])
	}
	if rows[7][1] != "50" {
		t.Errorf("integral float rendered as %q, want 50", rows[7][1])
	}
	if rows[9][0] != "Firearm Attack (1-160)" {
		t.Errorf("section header = %v", rows[9])
	}
	last := rows[len(rows)-1]
	if last[0] != "2" || last[1] != "Firearm ATK" || last[2] != "372" {
		t.Errorf("attack row = %v", last)
	}
}

func TestWeaponRowsUnknownStat(t *testing.T) {
	rows := WeaponRows(testWeapon(), meta.StatMap{})
	if rows[6][0] != "Unknown Stat (fire_rate)" {
		t.Errorf("unknown stat row = %v", rows[6])
	}
}

func TestModuleRows(t *testing.T) {
	m := meta.Module{
		ModuleName: "Rifling Reinforcement",
		ModuleStat: []meta.ModuleStat{
			{Level: 0, ModuleCapacity: 6, Value: "Firearm ATK +2.1%"},
			{Level: 10, ModuleCapacity: 16, Value: "Firearm ATK +32%"},
		},
	}

	rows := ModuleRows(m)
	if len(rows) != 5 {
		t.Fatalf("ModuleRows returned %d rows, want 5", len(rows))
	}
	if rows[0][1] != "Rifling Reinforcement" {
		t.Errorf("name row = %v", rows[0])
	}
	if rows[3][0] != "0" || rows[3][1] != "6" || rows[3][2] != "Firearm ATK +2.1%" {
		t.Errorf("stat row = %v", rows[3])
	}
}

func TestWriteCSV(t *testing.T) {
	path := FilePath(t.TempDir(), "thunder-cage")
	rows := WeaponRows(testWeapon(), testStats())

	if err := WriteCSV(path, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != len(rows) {
		t.Errorf("file has %d records, want %d", len(records), len(rows))
	}
}

func TestWriteCSVMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.csv")
	if err := WriteCSV(path, [][]string{{"a"}}); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFilePath(t *testing.T) {
	got := FilePath("/tmp/out", "tamer")
	if got != filepath.Join("/tmp/out", "tamer.csv") {
		t.Errorf("FilePath = %q", got)
	}
}
