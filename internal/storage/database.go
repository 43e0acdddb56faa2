package storage

import (
	"github.com/ericogr/mecha-tactics/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database and keeps the schema updated
// via AutoMigrate. Battle content (mechas, pilots, equipment) lives in
// the config file and is never persisted; only finished battle records
// are stored.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.BattleRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
