package main

import (
	"github.com/ericogr/mecha-tactics/internal/catalog"
	"github.com/ericogr/mecha-tactics/internal/config"
	"github.com/ericogr/mecha-tactics/internal/logging"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid mecha configuration", err, logging.Fields{"config_path": path, "hint": "create a mecha_config.json with 'mecha_list' and 'pilot_list' arrays and optional keys: equipment_list, skill_catalog, server.address, database.path, max_rounds"})
	}
	return cfg
}

// loadCatalogOrExit returns the built-in skill catalog, with entries
// from the configured catalog file merged over it when a path is set.
func loadCatalogOrExit(path string) *catalog.Catalog {
	if path == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(path)
	if err != nil {
		logging.Fatal("Invalid skill catalog", err, logging.Fields{"catalog_path": path})
	}
	return cat
}
