package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/mecha-tactics/internal/constants"
)

// ListMechas returns the configured mecha definitions.
func (h *BattleHandler) ListMechas(c *gin.Context) {
	c.JSON(http.StatusOK, h.cfg.Mechas)
}

// ListPilots returns the configured pilot definitions.
func (h *BattleHandler) ListPilots(c *gin.Context) {
	c.JSON(http.StatusOK, h.cfg.Pilots)
}

// ListEquipment returns the configured equipment definitions.
func (h *BattleHandler) ListEquipment(c *gin.Context) {
	c.JSON(http.StatusOK, h.cfg.Equipment)
}

// ListSkills returns the skill catalog (skills, traits and spirit
// commands) so clients can present what a loadout may reference.
func (h *BattleHandler) ListSkills(c *gin.Context) {
	c.JSON(http.StatusOK, h.cat.Skills())
}

// GetSkill returns one catalog entry by id.
func (h *BattleHandler) GetSkill(c *gin.Context) {
	id := c.Param("skillID")
	def, ok := h.cat.Skill(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSkillNotFound})
		return
	}
	c.JSON(http.StatusOK, def)
}
