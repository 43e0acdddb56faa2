package main

import (
	"os"

	"github.com/ericogr/mecha-tactics/internal/api"
	"github.com/ericogr/mecha-tactics/internal/constants"
	"github.com/ericogr/mecha-tactics/internal/logging"
	"github.com/ericogr/mecha-tactics/internal/service"
	"github.com/ericogr/mecha-tactics/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load battle content configuration (required). Path may be provided
	// via MECHA_CONFIG env var or defaults to ./mecha_config.json in the
	// current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./mecha_config.json"
	}
	cfg := loadConfigOrExit(configPath)
	cat := loadCatalogOrExit(cfg.SkillCatalogPath)

	// Allow the DB path to be configured via MECHA_DB. Default comes
	// from the config file (a `data/` directory for local development).
	dbPath := os.Getenv(constants.EnvDatabasePath)
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)

	svc := service.NewService(repo, cfg, cat)
	handler := api.NewBattleHandler(svc, cfg, cat)

	router := gin.Default()

	router.GET(constants.RouteHealth, func(c *gin.Context) {
		c.JSON(200, gin.H{constants.JSONKeyStatus: "ok"})
	})

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)

		// Content endpoints: what a loadout may reference.
		apiRoutes.GET(constants.RouteMechas, handler.ListMechas)
		apiRoutes.GET(constants.RoutePilots, handler.ListPilots)
		apiRoutes.GET(constants.RouteEquipment, handler.ListEquipment)
		apiRoutes.GET(constants.RouteSkills, handler.ListSkills)
		apiRoutes.GET(constants.RouteSkillByID, handler.GetSkill)

		// Simulation endpoints.
		apiRoutes.POST(constants.RouteBattles, handler.SimulateBattle)
		apiRoutes.GET(constants.RouteBattles, handler.ListBattles)
		apiRoutes.GET(constants.RouteBattleByID, handler.GetBattle)
	}

	// Start server on configured address
	addr := cfg.ServerAddress
	if env := os.Getenv(constants.EnvServerAddr); env != "" {
		addr = env
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
