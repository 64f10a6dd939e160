package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/netmon/internal/rest/model"
)

// GetStatus godoc
// @Summary      Current connectivity status
// @Description  Report the most recently resolved internet connectivity status
// @Tags         status
// @Produce      json
// @Success      200 {object} model.Status
// @Router       /status [get]
func (a *API) GetStatus(c *gin.Context) {
	resp, err := a.container.GetStatus.Execute(c)
	if err != nil {
		a.logger.Err(err).Msg("Failed to obtain current status")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, model.NewStatusFromDomain(resp.Status, resp.ChangedAt))
}
