package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ericogr/mecha-tactics/internal/catalog"
	"github.com/ericogr/mecha-tactics/internal/config"
	"github.com/ericogr/mecha-tactics/internal/engine"
	"github.com/ericogr/mecha-tactics/internal/factory"
	"github.com/ericogr/mecha-tactics/internal/game"
	"github.com/ericogr/mecha-tactics/internal/logging"
	"github.com/ericogr/mecha-tactics/internal/stats"
	"github.com/ericogr/mecha-tactics/internal/storage"
)

var (
	ErrUnknownMecha     = errors.New("unknown mecha id")
	ErrUnknownPilot     = errors.New("unknown pilot id")
	ErrUnknownEquipment = errors.New("unknown equipment id")
	ErrUnknownSpirit    = errors.New("unknown spirit command")
	ErrBattleNotFound   = errors.New("battle not found")
)

// Service runs battles from loaded content and persists their reports.
type Service struct {
	repo storage.Repository
	cfg  *config.LoadedConfig
	cat  *catalog.Catalog
}

func NewService(repo storage.Repository, cfg *config.LoadedConfig, cat *catalog.Catalog) *Service {
	return &Service{repo: repo, cfg: cfg, cat: cat}
}

// LoadoutRequest selects one side of a battle from configured content.
type LoadoutRequest struct {
	MechaID      string   `json:"mecha_id"`
	PilotID      string   `json:"pilot_id"`
	EquipmentIDs []string `json:"equipment_ids,omitempty"`
	UpgradeLevel int      `json:"upgrade_level,omitempty"`
	Spirits      []string `json:"spirits,omitempty"`
}

// BattleRequest describes a battle to simulate. A nil seed picks one
// from the clock; the seed always lands in the report so any battle can
// be replayed.
type BattleRequest struct {
	SideA     LoadoutRequest `json:"side_a"`
	SideB     LoadoutRequest `json:"side_b"`
	Seed      *int64         `json:"seed,omitempty"`
	MaxRounds int            `json:"max_rounds,omitempty"`
}

// BattleResult bundles the report with its aggregate statistics.
type BattleResult struct {
	Report     *game.BattleReport      `json:"report"`
	Statistics *stats.BattleStatistics `json:"statistics"`
}

// RunBattle simulates one battle and persists the finished record.
func (s *Service) RunBattle(req BattleRequest) (*BattleResult, error) {
	loadoutA, err := s.buildLoadout(req.SideA)
	if err != nil {
		return nil, fmt.Errorf("side_a: %w", err)
	}
	loadoutB, err := s.buildLoadout(req.SideB)
	if err != nil {
		return nil, fmt.Errorf("side_b: %w", err)
	}
	if err := s.checkSpirits(req.SideA.Spirits); err != nil {
		return nil, fmt.Errorf("side_a: %w", err)
	}
	if err := s.checkSpirits(req.SideB.Spirits); err != nil {
		return nil, fmt.Errorf("side_b: %w", err)
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	events := engine.NewEventBus()
	reg := engine.NewRegistry(s.cat, events, rng)
	engine.RegisterBuiltins(reg)

	a := factory.BuildSnapshot(loadoutA)
	b := factory.BuildSnapshot(loadoutB)
	engine.ApplySkills(a, s.cat)
	engine.ApplySkills(b, s.cat)
	for _, id := range req.SideA.Spirits {
		engine.ApplySpiritCommand(a, s.cat, id)
	}
	for _, id := range req.SideB.Spirits {
		engine.ApplySpiritCommand(b, s.cat, id)
	}

	collector := stats.NewCollector()
	collector.Attach(events)

	battle := engine.NewBattle(a, b, reg, rng)
	if req.MaxRounds > 0 {
		battle.SetMaxRounds(req.MaxRounds)
	} else if s.cfg != nil && s.cfg.MaxRounds > 0 {
		battle.SetMaxRounds(s.cfg.MaxRounds)
	}

	report := battle.Run()
	report.BattleID = uuid.NewString()
	report.Seed = seed

	result := &BattleResult{Report: report, Statistics: collector.Observe(report)}

	if err := s.persist(report, req, a, b); err != nil {
		// The battle itself succeeded; surface the storage failure.
		return result, fmt.Errorf("failed to store battle record: %w", err)
	}
	return result, nil
}

func (s *Service) buildLoadout(req LoadoutRequest) (factory.Loadout, error) {
	var out factory.Loadout

	mecha, ok := s.cfg.MechaByID[req.MechaID]
	if !ok {
		return out, fmt.Errorf("%w: %s", ErrUnknownMecha, req.MechaID)
	}
	pilot, ok := s.cfg.PilotByID[req.PilotID]
	if !ok {
		return out, fmt.Errorf("%w: %s", ErrUnknownPilot, req.PilotID)
	}
	equipment := make([]game.EquipmentDefinition, 0, len(req.EquipmentIDs))
	for _, id := range req.EquipmentIDs {
		eq, ok := s.cfg.EquipmentByID[id]
		if !ok {
			return out, fmt.Errorf("%w: %s", ErrUnknownEquipment, id)
		}
		equipment = append(equipment, eq)
	}

	out = factory.Loadout{
		Mecha:        mecha,
		Pilot:        pilot,
		Equipment:    equipment,
		UpgradeLevel: req.UpgradeLevel,
	}
	return out, nil
}

func (s *Service) checkSpirits(ids []string) error {
	for _, id := range ids {
		if _, ok := s.cat.Skill(id); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSpirit, id)
		}
	}
	return nil
}

func (s *Service) persist(report *game.BattleReport, req BattleRequest, a, b *game.MechaSnapshot) error {
	if s.repo == nil {
		return nil
	}
	body, err := json.Marshal(report)
	if err != nil {
		return err
	}

	// The summary column stores the winning mecha definition id so
	// listings stay meaningful across battles.
	winner := ""
	switch report.WinnerID {
	case a.InstanceID:
		winner = a.DefinitionID
	case b.InstanceID:
		winner = b.DefinitionID
	}

	rec := &game.BattleRecord{
		BattleID:   report.BattleID,
		Seed:       report.Seed,
		MechaAID:   req.SideA.MechaID,
		PilotAID:   req.SideA.PilotID,
		MechaBID:   req.SideB.MechaID,
		PilotBID:   req.SideB.PilotID,
		Rounds:     report.Rounds,
		WinnerID:   winner,
		EndReason:  string(report.EndReason),
		ReportJSON: body,
	}
	if err := s.repo.CreateBattle(rec); err != nil {
		return err
	}
	logging.Info("battle stored", logging.Fields{"battle_id": report.BattleID, "rounds": report.Rounds, "winner": winner})
	return nil
}

// GetBattleReport loads and decodes a stored battle report.
func (s *Service) GetBattleReport(battleID string) (*game.BattleReport, error) {
	rec, err := s.repo.GetBattleByID(battleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBattleNotFound
		}
		return nil, err
	}
	var report game.BattleReport
	if err := json.Unmarshal(rec.ReportJSON, &report); err != nil {
		return nil, fmt.Errorf("failed to decode stored report %s: %w", battleID, err)
	}
	return &report, nil
}

// ListBattles returns recent battle records, newest first.
func (s *Service) ListBattles(limit int) ([]game.BattleRecord, error) {
	return s.repo.ListBattles(limit)
}

// ListBattlesByWinner returns recent records won by a mecha definition
// id.
func (s *Service) ListBattlesByWinner(mechaID string, limit int) ([]game.BattleRecord, error) {
	return s.repo.ListBattlesByWinner(mechaID, limit)
}
