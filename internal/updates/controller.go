package updates

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bdm-tracker-api/internal/logs"
	"bdm-tracker-api/internal/util"
)

type Controller struct {
	UpdateService UpdateServicePort
	LogService    LogServicePort
}

func userIDFromContext(c *gin.Context) *uint {
	v, ok := c.Get("userID")
	if !ok {
		return nil
	}
	switch id := v.(type) {
	case float64:
		u := uint(id)
		return &u
	case uint:
		return &id
	case int:
		u := uint(id)
		return &u
	}
	return nil
}

func (ctl *Controller) audit(c *gin.Context, action, message string, metadata interface{}) {
	if err := ctl.LogService.Log(logs.SystemLog{
		Level:   "info",
		Service: "updates",
		UserID:  userIDFromContext(c),
		Action:  action,
		Message: message,
	}, metadata); err != nil {
		log.Printf("failed to write %s log: %v", action, err)
	}
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
	case errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidUpdateType),
		errors.Is(err, ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}

func (ctl *Controller) Create(c *gin.Context) {
	var input CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := ctl.UpdateService.Create(input, userIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	ctl.audit(c, "CREATE_UPDATE", "Created update transaction",
		map[string]interface{}{"id": record.ID, "updateType": record.UpdateType})
	c.JSON(http.StatusCreated, record)
}

func (ctl *Controller) List(c *gin.Context) {
	filter := ListFilter{
		HHID:         c.Query("hhid"),
		Municipality: c.Query("municipality"),
		Types:        util.ParseCommaSeparatedList(c.QueryArray("types")),
		Statuses:     util.ParseCommaSeparatedList(c.QueryArray("statuses")),
	}
	if p := c.Query("period"); p != "" {
		period, err := strconv.Atoi(p)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
			return
		}
		filter.Period = period
	}

	records, err := ctl.UpdateService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (ctl *Controller) Get(c *gin.Context) {
	record, err := ctl.UpdateService.Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (ctl *Controller) SetStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	record, err := ctl.UpdateService.SetStatus(c.Param("id"), body.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	ctl.audit(c, "SET_UPDATE_STATUS", "Changed transaction status",
		map[string]interface{}{"id": record.ID, "status": record.Status})
	c.JSON(http.StatusOK, record)
}

func (ctl *Controller) Update(c *gin.Context) {
	var input CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := ctl.UpdateService.Update(c.Param("id"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	ctl.audit(c, "EDIT_UPDATE", "Edited update transaction",
		map[string]interface{}{"id": record.ID})
	c.JSON(http.StatusOK, record)
}

func (ctl *Controller) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := ctl.UpdateService.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}

	ctl.audit(c, "DELETE_UPDATE", "Deleted update transaction",
		map[string]interface{}{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

func (ctl *Controller) Summary(c *gin.Context) {
	rows, err := ctl.UpdateService.Summary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": rows})
}

// Types lists the selectable update categories and statuses for form
// dropdowns.
func (ctl *Controller) Types(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"updateTypes": UpdateTypes, "statuses": Statuses})
}
