package api

import (
	"github.com/ericogr/mecha-tactics/internal/catalog"
	"github.com/ericogr/mecha-tactics/internal/config"
	"github.com/ericogr/mecha-tactics/internal/service"
)

// BattleHandler serves battle content and simulation endpoints.
type BattleHandler struct {
	svc *service.Service
	cfg *config.LoadedConfig
	cat *catalog.Catalog
}

func NewBattleHandler(svc *service.Service, cfg *config.LoadedConfig, cat *catalog.Catalog) *BattleHandler {
	return &BattleHandler{svc: svc, cfg: cfg, cat: cat}
}
