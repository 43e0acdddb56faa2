package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mecha_config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const validConfig = `{
  "mecha_list": [
    {
      "id": "gf-01", "name": "Grappler", "max_hp": 4000, "max_en": 120,
      "armor": 800, "mobility": 90,
      "weapons": [
        {"id": "beam-saber", "name": "Beam Saber", "category": "melee", "power": 2200, "range_min": 0, "range_max": 1000}
      ]
    }
  ],
  "pilot_list": [
    {"id": "ace", "name": "Ace", "stat_melee": 160, "weapon_proficiency": 800, "mecha_proficiency": 2500}
  ],
  "equipment_list": [
    {"id": "booster", "name": "Booster", "stat_modifiers": {"mobility": 20}}
  ],
  "server": {"address": ":9090"},
  "database": {"path": "/tmp/test-mecha.db"},
  "max_rounds": 6
}`

func TestLoadConfig_Valid(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Len(t, cfg.Mechas, 1)
	assert.Contains(t, cfg.MechaByID, "gf-01")
	assert.Contains(t, cfg.PilotByID, "ace")
	assert.Contains(t, cfg.EquipmentByID, "booster")
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "/tmp/test-mecha.db", cfg.DatabasePath)
	assert.Equal(t, 6, cfg.MaxRounds)
}

func TestLoadConfig_Defaults(t *testing.T) {
	body := `{
  "mecha_list": [
    {"id": "m", "name": "M", "max_hp": 100, "max_en": 10,
     "weapons": [{"id": "w", "name": "W", "category": "melee", "power": 100, "range_max": 1000}]}
  ],
  "pilot_list": [{"id": "p", "name": "P"}]
}`
	cfg, err := LoadConfig(writeConfig(t, body))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "./data/mecha.db", cfg.DatabasePath)
	assert.Zero(t, cfg.MaxRounds)
}

func TestLoadConfig_Rejections(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing file content", `{`},
		{"empty mecha list", `{"mecha_list": [], "pilot_list": [{"id": "p", "name": "P"}]}`},
		{"empty pilot list", `{"mecha_list": [{"id": "m", "name": "M", "max_hp": 1, "max_en": 1, "weapons": [{"id": "w", "name": "W", "category": "melee", "power": 1, "range_max": 1}]}], "pilot_list": []}`},
		{"mecha without weapons", `{"mecha_list": [{"id": "m", "name": "M", "max_hp": 1, "max_en": 1, "weapons": []}], "pilot_list": [{"id": "p", "name": "P"}]}`},
		{"weapon with unknown category", `{"mecha_list": [{"id": "m", "name": "M", "max_hp": 1, "max_en": 1, "weapons": [{"id": "w", "name": "W", "category": "psychic", "power": 1, "range_max": 1}]}], "pilot_list": [{"id": "p", "name": "P"}]}`},
		{"weapon with inverted range", `{"mecha_list": [{"id": "m", "name": "M", "max_hp": 1, "max_en": 1, "weapons": [{"id": "w", "name": "W", "category": "melee", "power": 1, "range_min": 500, "range_max": 100}]}], "pilot_list": [{"id": "p", "name": "P"}]}`},
		{"duplicate mecha ids", `{"mecha_list": [{"id": "m", "name": "M", "max_hp": 1, "max_en": 1, "weapons": [{"id": "w", "name": "W", "category": "melee", "power": 1, "range_max": 1}]}, {"id": "m", "name": "M2", "max_hp": 1, "max_en": 1, "weapons": [{"id": "w2", "name": "W2", "category": "melee", "power": 1, "range_max": 1}]}], "pilot_list": [{"id": "p", "name": "P"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
