package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ericogr/mecha-tactics/internal/game"
)

type rawConfig struct {
	MechaList     []game.MechaDefinition     `json:"mecha_list"`
	PilotList     []game.PilotDefinition     `json:"pilot_list"`
	EquipmentList []game.EquipmentDefinition `json:"equipment_list"`
	// Optional path to a skill catalog JSON file merged over the
	// built-in catalog.
	SkillCatalog string `json:"skill_catalog"`
	Server       *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
	} `json:"database"`
	// Optional override for the default round limit.
	MaxRounds int `json:"max_rounds"`
}

// LoadedConfig contains the validated battle content and server settings.
type LoadedConfig struct {
	Mechas    []game.MechaDefinition
	Pilots    []game.PilotDefinition
	Equipment []game.EquipmentDefinition

	MechaByID     map[string]game.MechaDefinition
	PilotByID     map[string]game.PilotDefinition
	EquipmentByID map[string]game.EquipmentDefinition

	SkillCatalogPath string
	ServerAddress    string
	DatabasePath     string
	MaxRounds        int
}

// LoadConfig reads and validates the configuration file at path. It
// requires non-empty `mecha_list` and `pilot_list` arrays.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.MechaList) == 0 {
		return nil, fmt.Errorf("config file %s: mecha_list is empty (provide 'mecha_list' array)", path)
	}
	if len(rc.PilotList) == 0 {
		return nil, fmt.Errorf("config file %s: pilot_list is empty (provide 'pilot_list' array)", path)
	}

	out := &LoadedConfig{
		Mechas:        rc.MechaList,
		Pilots:        rc.PilotList,
		Equipment:     rc.EquipmentList,
		MechaByID:     make(map[string]game.MechaDefinition, len(rc.MechaList)),
		PilotByID:     make(map[string]game.PilotDefinition, len(rc.PilotList)),
		EquipmentByID: make(map[string]game.EquipmentDefinition, len(rc.EquipmentList)),
	}

	for _, m := range rc.MechaList {
		if strings.TrimSpace(m.ID) == "" || strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("config file %s: mecha entry missing 'id' or 'name'", path)
		}
		if _, exists := out.MechaByID[m.ID]; exists {
			return nil, fmt.Errorf("config file %s: duplicate mecha id '%s'", path, m.ID)
		}
		if m.MaxHP <= 0 || m.MaxEN <= 0 {
			return nil, fmt.Errorf("config file %s: mecha '%s' needs positive max_hp and max_en", path, m.ID)
		}
		if len(m.Weapons) == 0 {
			return nil, fmt.Errorf("config file %s: mecha '%s' has no weapons", path, m.ID)
		}
		for _, w := range m.Weapons {
			if err := validateWeapon(w); err != nil {
				return nil, fmt.Errorf("config file %s: mecha '%s': %w", path, m.ID, err)
			}
		}
		out.MechaByID[m.ID] = m
	}

	for _, p := range rc.PilotList {
		if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("config file %s: pilot entry missing 'id' or 'name'", path)
		}
		if _, exists := out.PilotByID[p.ID]; exists {
			return nil, fmt.Errorf("config file %s: duplicate pilot id '%s'", path, p.ID)
		}
		out.PilotByID[p.ID] = p
	}

	for _, eq := range rc.EquipmentList {
		if strings.TrimSpace(eq.ID) == "" {
			return nil, fmt.Errorf("config file %s: equipment entry missing 'id'", path)
		}
		if _, exists := out.EquipmentByID[eq.ID]; exists {
			return nil, fmt.Errorf("config file %s: duplicate equipment id '%s'", path, eq.ID)
		}
		if eq.Weapon != nil {
			if err := validateWeapon(*eq.Weapon); err != nil {
				return nil, fmt.Errorf("config file %s: equipment '%s': %w", path, eq.ID, err)
			}
		}
		out.EquipmentByID[eq.ID] = eq
	}

	out.SkillCatalogPath = strings.TrimSpace(rc.SkillCatalog)

	out.ServerAddress = ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	out.DatabasePath = "./data/mecha.db"
	if rc.Database != nil && rc.Database.Path != "" {
		out.DatabasePath = rc.Database.Path
	}
	out.MaxRounds = rc.MaxRounds

	return out, nil
}

func validateWeapon(w game.WeaponDefinition) error {
	if strings.TrimSpace(w.ID) == "" || strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("weapon entry missing 'id' or 'name'")
	}
	switch w.Category {
	case game.WeaponMelee, game.WeaponShooting, game.WeaponAwakening, game.WeaponSpecial:
	default:
		return fmt.Errorf("weapon '%s' has unknown category '%s'", w.ID, w.Category)
	}
	if w.Power <= 0 {
		return fmt.Errorf("weapon '%s' needs positive power", w.ID)
	}
	if w.RangeMax < w.RangeMin {
		return fmt.Errorf("weapon '%s' has range_max below range_min", w.ID)
	}
	return nil
}
