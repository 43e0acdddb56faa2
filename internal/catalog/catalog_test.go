package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/mecha-tactics/internal/game"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NotEmpty(t, cat.Skills())

	// Every built-in effect must land with its defaults resolved.
	for _, def := range cat.Skills() {
		for _, spec := range def.Effects {
			assert.NotZero(t, spec.Priority, "skill %s effect %s", def.ID, spec.ID)
			assert.NotZero(t, spec.SubPriority, "skill %s effect %s", def.ID, spec.ID)
			assert.NotZero(t, spec.TriggerChance, "skill %s effect %s", def.ID, spec.ID)
			assert.NotZero(t, spec.Duration, "skill %s effect %s", def.ID, spec.ID)
			assert.NotZero(t, spec.Charges, "skill %s effect %s", def.ID, spec.ID)
			assert.NotEmpty(t, spec.Hook, "skill %s effect %s", def.ID, spec.ID)
		}
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]SkillDef{
		{ID: "dup", Name: "A", Effects: []EffectSpec{{ID: "e1", Hook: game.HookPreHitRate, Operation: game.OpAdd, Value: game.Number(1)}}},
		{ID: "dup", Name: "B", Effects: []EffectSpec{{ID: "e2", Hook: game.HookPreHitRate, Operation: game.OpAdd, Value: game.Number(1)}}},
	})
	require.Error(t, err)

	_, err = New([]SkillDef{
		{ID: "a", Name: "A", Effects: []EffectSpec{{ID: "shared", Hook: game.HookPreHitRate, Operation: game.OpAdd, Value: game.Number(1)}}},
		{ID: "b", Name: "B", Effects: []EffectSpec{{ID: "shared", Hook: game.HookPreHitRate, Operation: game.OpAdd, Value: game.Number(1)}}},
	})
	require.Error(t, err)
}

func TestCreateEffects_FreshInstances(t *testing.T) {
	cat := Default()

	first := cat.CreateEffects("spirit_strike", 0)
	second := cat.CreateEffects("spirit_strike", 0)
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	first[0].Charges = 0
	assert.Equal(t, 1, second[0].Charges, "instances must not share state")
}

func TestCreateEffects_DurationOverride(t *testing.T) {
	cat := Default()

	// spirit_strike is a one-round effect; the override stretches it.
	effects := cat.CreateEffects("spirit_strike", 3)
	require.Len(t, effects, 1)
	assert.Equal(t, 3, effects[0].Duration)

	// Permanent effects ignore the override.
	effects = cat.CreateEffects("spirit_protract", 3)
	require.Len(t, effects, 1)
	assert.Equal(t, -1, effects[0].Duration)

	assert.Empty(t, cat.CreateEffects("no_such_skill", 0))
}

func TestLoad_MergesOverBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	body := `{
	  "skills": [
	    {
	      "id": "spirit_strike",
	      "name": "Custom Strike",
	      "effects": [
	        {"id": "spirit_strike_hit", "hook": "pre_hit_rate", "operation": "add", "value": 60, "charges": 2}
	      ]
	    },
	    {
	      "id": "house_rule",
	      "name": "House Rule",
	      "effects": [
	        {"id": "house_rule_crit", "hook": "pre_crit_rate", "operation": "add", "value": 5, "duration": -1}
	      ]
	    }
	  ]
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)

	// The file entry replaces the built-in with the same id.
	def, ok := cat.Skill("spirit_strike")
	require.True(t, ok)
	assert.Equal(t, "Custom Strike", def.Name)
	require.Len(t, def.Effects, 1)
	assert.Equal(t, 2, def.Effects[0].Charges)
	v, _ := def.Effects[0].Value.AsNumber()
	assert.Equal(t, 60.0, v)

	_, ok = cat.Skill("house_rule")
	assert.True(t, ok)

	// Untouched built-ins survive the merge.
	_, ok = cat.Skill("spirit_valor")
	assert.True(t, ok)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills": [{]}`), 0o644))
	_, err := Load(path)
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
