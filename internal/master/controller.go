package master

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bdm-tracker-api/internal/logs"
)

type Controller struct {
	MasterService MasterServicePort
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

// UploadMaster replaces the master list with the uploaded CSV or Excel file.
func (ctl *Controller) UploadMaster(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	records, err := ctl.MasterService.ParseUpload(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ctl.MasterService.ReplaceAll(records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save master records"})
		return
	}

	if err := ctl.LogService.Log(logs.SystemLog{
		Level:   "info",
		Service: "master",
		UserID:  userIDFromContext(c),
		Action:  "UPLOAD_MASTER",
		Message: "Replaced master list",
	}, map[string]interface{}{"filename": fileHeader.Filename, "records": len(records)}); err != nil {
		log.Printf("failed to write master upload log: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Master list updated", "records": len(records)})
}

func (ctl *Controller) GetAll(c *gin.Context) {
	records, err := ctl.MasterService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load master records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// Template serves the CSV upload template.
func (ctl *Controller) Template(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="master_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(TemplateCSV()))
}
