package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/usecases/listhistory"
	"github.com/sergeii/netmon/internal/rest/model"
)

type HistoryFilterForm struct {
	Limit int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
	State string `form:"state" validate:"omitempty,connstate"`
}

// ListHistory godoc
// @Summary      Connectivity transition log
// @Description  List recorded connectivity transitions in chronological order
// @Tags         history
// @Produce      json
// @Param        limit  query    int     false  "Return up to this many most recent events"
// @Param        state  query    string  false  "Only include transitions into this state (online, offline)"
// @Success      200 {array} model.Event
// @Router       /history [get]
func (a *API) ListHistory(c *gin.Context) {
	var form HistoryFilterForm
	if err := c.ShouldBindQuery(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	state := connstate.Unknown
	if form.State != "" {
		// the form is validated, the state name is guaranteed to parse
		state, _ = connstate.Parse(form.State) // nolint: errcheck
	}

	ucRequest := listhistory.NewRequest(form.Limit, state)
	events, err := a.container.ListHistory.Execute(c, ucRequest)
	if err != nil {
		a.logger.Err(err).Msg("Failed to obtain history events")
		c.Status(http.StatusInternalServerError)
		return
	}

	result := make([]model.Event, 0, len(events))
	for _, evt := range events {
		result = append(result, model.NewEventFromDomain(evt))
	}
	c.JSON(http.StatusOK, result)
}
