package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/ericogr/mecha-tactics/internal/catalog"
	"github.com/ericogr/mecha-tactics/internal/config"
	"github.com/ericogr/mecha-tactics/internal/engine"
	"github.com/ericogr/mecha-tactics/internal/factory"
	"github.com/ericogr/mecha-tactics/internal/game"
	"github.com/ericogr/mecha-tactics/internal/logging"
	"github.com/ericogr/mecha-tactics/internal/service"
)

// battle-sim runs repeated battles between two configured loadouts and
// prints aggregate results. It is a balance-tuning aid and never
// persists anything.
func main() {
	configPath := flag.String("config", "./mecha_config.json", "path to the content configuration file")
	mechaA := flag.String("mecha-a", "", "mecha id for side A (defaults to the first configured mecha)")
	pilotA := flag.String("pilot-a", "", "pilot id for side A (defaults to the first configured pilot)")
	mechaB := flag.String("mecha-b", "", "mecha id for side B (defaults to the second configured mecha, or the first)")
	pilotB := flag.String("pilot-b", "", "pilot id for side B (defaults to the second configured pilot, or the first)")
	battles := flag.Int("n", 1000, "number of battles to simulate")
	seed := flag.Int64("seed", 1, "base seed; battle i runs with seed+i")
	maxRounds := flag.Int("max-rounds", 0, "round limit override (0 keeps the default)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logging.Fatal("Missing or invalid mecha configuration", err, logging.Fields{"config_path": *configPath})
	}
	cat := catalog.Default()
	if cfg.SkillCatalogPath != "" {
		cat, err = catalog.Load(cfg.SkillCatalogPath)
		if err != nil {
			logging.Fatal("Invalid skill catalog", err, logging.Fields{"catalog_path": cfg.SkillCatalogPath})
		}
	}

	sideA := pickLoadout(cfg, *mechaA, *pilotA, 0)
	sideB := pickLoadout(cfg, *mechaB, *pilotB, 1)

	printOpeningTable(cfg, cat, sideA, sideB)

	svc := service.NewService(nil, cfg, cat)

	wins := map[string]int{}
	reasons := map[game.BattleEndReason]int{}
	outcomes := map[game.AttackOutcome]int{}
	totalRounds := 0
	totalAttacks := 0

	for i := 0; i < *battles; i++ {
		s := *seed + int64(i)
		req := service.BattleRequest{SideA: sideA, SideB: sideB, Seed: &s, MaxRounds: *maxRounds}
		result, err := svc.RunBattle(req)
		if err != nil {
			logging.Fatal("battle simulation failed", err, logging.Fields{"seed": s})
		}
		report := result.Report

		totalRounds += report.Rounds
		switch {
		case report.WinnerID == "":
			wins["draw"]++
		case len(report.Snapshots) > 0 && report.WinnerID == report.Snapshots[0].SideB.InstanceID:
			wins["B"]++
		default:
			wins["A"]++
		}
		reasons[report.EndReason]++
		for _, rec := range report.Attacks {
			outcomes[rec.Outcome]++
			totalAttacks++
		}
	}

	fmt.Printf("\nSimulated %d battles (%s + %s vs %s + %s)\n",
		*battles, sideA.MechaID, sideA.PilotID, sideB.MechaID, sideB.PilotID)
	fmt.Printf("  wins A: %d  wins B: %d  draws: %d\n", wins["A"], wins["B"], wins["draw"])
	fmt.Printf("  avg rounds: %.2f\n", float64(totalRounds)/float64(*battles))
	for _, r := range []game.BattleEndReason{game.EndDestruction, game.EndJudgment, game.EndDraw} {
		if n := reasons[r]; n > 0 {
			fmt.Printf("  end by %s: %d\n", r, n)
		}
	}
	fmt.Printf("  attack outcomes (%d attacks):\n", totalAttacks)
	for _, o := range []game.AttackOutcome{game.OutcomeMiss, game.OutcomeDodge, game.OutcomeParry, game.OutcomeBlock, game.OutcomeHit, game.OutcomeCrit} {
		n := outcomes[o]
		pct := 0.0
		if totalAttacks > 0 {
			pct = 100 * float64(n) / float64(totalAttacks)
		}
		fmt.Printf("    %-6s %6d (%.1f%%)\n", o, n, pct)
	}
}

func pickLoadout(cfg *config.LoadedConfig, mechaID, pilotID string, index int) service.LoadoutRequest {
	out := service.LoadoutRequest{MechaID: mechaID, PilotID: pilotID}
	if out.MechaID == "" {
		out.MechaID = cfg.Mechas[index%len(cfg.Mechas)].ID
	}
	if out.PilotID == "" {
		out.PilotID = cfg.Pilots[index%len(cfg.Pilots)].ID
	}
	return out
}

func buildSnapshot(cfg *config.LoadedConfig, cat *catalog.Catalog, req service.LoadoutRequest) *game.MechaSnapshot {
	mecha, ok := cfg.MechaByID[req.MechaID]
	if !ok {
		logging.Fatal("unknown mecha id", nil, logging.Fields{"mecha_id": req.MechaID})
	}
	pilot, ok := cfg.PilotByID[req.PilotID]
	if !ok {
		logging.Fatal("unknown pilot id", nil, logging.Fields{"pilot_id": req.PilotID})
	}
	snap := factory.BuildSnapshot(factory.Loadout{Mecha: mecha, Pilot: pilot})
	engine.ApplySkills(snap, cat)
	return snap
}

// printOpeningTable shows the theoretical attack table for side A
// attacking side B at mid range, before any effects have fired. The
// empirical outcome distribution printed later should converge toward
// these segments.
func printOpeningTable(cfg *config.LoadedConfig, cat *catalog.Catalog, sideA, sideB service.LoadoutRequest) {
	a := buildSnapshot(cfg, cat, sideA)
	b := buildSnapshot(cfg, cat, sideB)

	rng := rand.New(rand.NewSource(0))
	reg := engine.NewRegistry(cat, engine.NewEventBus(), rng)
	engine.RegisterBuiltins(reg)

	ctx := engine.NewBattleContext(1, 5000, a, b)
	ctx.Weapon = engine.NewWeaponSelector(reg).Select(ctx)
	if ctx.Weapon == nil {
		ctx.Weapon = engine.FallbackWeapon()
	}
	resolver := engine.NewAttackResolver(reg, rng)

	fmt.Printf("Opening attack table: %s -> %s with %s at 5000m\n", a.Name, b.Name, ctx.Weapon.Name)
	for _, seg := range resolver.Segments(ctx) {
		fmt.Printf("  %-6s [%6.2f, %6.2f)\n", seg.Outcome, seg.Start, seg.End)
	}
}
