package main

import "testing"

func TestCommandWiring(t *testing.T) {
	want := map[string]bool{
		"search":  false,
		"refresh": false,
		"cache":   false,
		"history": false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSearchSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range searchCmd.Commands() {
		names[c.Name()] = true
	}
	if !names["weapons"] || !names["modules"] {
		t.Errorf("search subcommands = %v", names)
	}

	if searchWeaponsCmd.Flags().Lookup("csv") == nil {
		t.Error("weapons --csv flag missing")
	}
	if searchWeaponsCmd.Flags().Lookup("range") == nil {
		t.Error("weapons --range flag missing")
	}
	if searchModulesCmd.Flags().Lookup("csv") == nil {
		t.Error("modules --csv flag missing")
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, flag := range []string{"verbose", "config", "lang"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("global flag %q missing", flag)
		}
	}
}

func TestCacheSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range cacheCmd.Commands() {
		names[c.Name()] = true
	}
	if !names["status"] || !names["clear"] {
		t.Errorf("cache subcommands = %v", names)
	}
}
