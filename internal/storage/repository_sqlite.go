package storage

import (
	"github.com/ericogr/mecha-tactics/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateBattle(rec *game.BattleRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetBattleByID(battleID string) (*game.BattleRecord, error) {
	var rec game.BattleRecord
	if err := r.db.Where("battle_id = ?", battleID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) ListBattles(limit int) ([]game.BattleRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []game.BattleRecord
	if err := r.db.Order("created_at desc").Limit(limit).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sqliteRepository) ListBattlesByWinner(mechaID string, limit int) ([]game.BattleRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []game.BattleRecord
	if err := r.db.Where("winner_id = ?", mechaID).
		Order("created_at desc").
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
