package storage

import "github.com/ericogr/mecha-tactics/internal/game"

type Repository interface {
	// CreateBattle persists a finished battle record.
	CreateBattle(rec *game.BattleRecord) error
	// GetBattleByID returns a record by its public battle id.
	GetBattleByID(battleID string) (*game.BattleRecord, error)
	// ListBattles returns the most recent records, newest first.
	ListBattles(limit int) ([]game.BattleRecord, error)
	// ListBattlesByWinner returns recent records won by the given
	// mecha definition id.
	ListBattlesByWinner(mechaID string, limit int) ([]game.BattleRecord, error)
}
