package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/mecha-tactics/internal/constants"
	"github.com/ericogr/mecha-tactics/internal/game"
	"github.com/ericogr/mecha-tactics/internal/logging"
	"github.com/ericogr/mecha-tactics/internal/service"
)

// SimulateBattle runs a battle from the posted request and returns the
// full report with statistics. The record is persisted before the
// response is written.
func (h *BattleHandler) SimulateBattle(c *gin.Context) {
	var req service.BattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	result, err := h.svc.RunBattle(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownMecha),
			errors.Is(err, service.ErrUnknownPilot),
			errors.Is(err, service.ErrUnknownEquipment),
			errors.Is(err, service.ErrUnknownSpirit):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
			return
		}
		if result != nil {
			// Simulation finished but persistence failed; return the
			// report anyway and log the storage error.
			logging.Error("failed to persist battle", err, logging.Fields{constants.LogFieldBattleID: result.Report.BattleID})
			c.JSON(http.StatusOK, result)
			return
		}
		logging.Error("battle simulation failed", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRunBattle})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBattle returns a stored battle report by id.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	battleID := c.Param("battleID")
	report, err := h.svc.GetBattleReport(battleID)
	if err != nil {
		if errors.Is(err, service.ErrBattleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
			return
		}
		logging.Error("failed to load battle", err, logging.Fields{constants.LogFieldBattleID: battleID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattle})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListBattles returns recent battle records, newest first. The optional
// `limit` query parameter caps the page size and `winner` filters by
// the winning mecha id.
func (h *BattleHandler) ListBattles(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	var recs []game.BattleRecord
	var err error
	if winner := c.Query("winner"); winner != "" {
		recs, err = h.svc.ListBattlesByWinner(winner, limit)
	} else {
		recs, err = h.svc.ListBattles(limit)
	}
	if err != nil {
		logging.Error("failed to list battles", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattles})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(recs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeBattles})
		return
	}
	c.JSON(http.StatusOK, out)
}
