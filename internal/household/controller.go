package household

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"bdm-tracker-api/internal/logs"
	"bdm-tracker-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/iancoleman/orderedmap"
	"gorm.io/gorm"
)

type Controller struct {
	ImportService ImportServicePort
	Store         StorePort
	LogService    LogServicePort
	Bucket        string
}

func userIDFromContext(c *gin.Context) (uint, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	switch v := val.(type) {
	case float64:
		return uint(v), true
	case uint:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return uint(f), true
	default:
		return 0, false
	}
}

// UploadDataset accepts a profile-dataset file and starts a background
// import. The response carries the job id; clients poll ImportStatus for the
// two progress gauges.
func (hc *Controller) UploadDataset(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dataset file is required"})
		return
	}

	encoding := strings.TrimSpace(c.PostForm("encoding"))

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := hc.ImportService.StartImport(fileHeader.Filename, raw, encoding, userID)
	if err != nil {
		if errors.Is(err, ErrImportInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := hc.LogService.Log(logs.SystemLog{
		Level:   "INFO",
		Service: "household",
		Action:  "UPLOAD_DATASET",
		Message: fmt.Sprintf("Dataset upload started : %s", fileHeader.Filename),
		UserID:  &userID,
	}, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Import started",
		"job_id":  job.ID,
	})
}

func (hc *Controller) ImportStatus(c *gin.Context) {
	jobID := strings.TrimSpace(c.Param("jobId"))
	job, ok := hc.ImportService.GetJob(jobID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown import job"})
		return
	}

	c.JSON(http.StatusOK, job.Status())
}

func (hc *Controller) Count(c *gin.Context) {
	n, err := hc.Store.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": n})
}

// Dataset serves the latest import-batch snapshot for the dashboard's
// database card.
func (hc *Controller) Dataset(c *gin.Context) {
	batch, err := hc.Store.LatestBatch()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no dataset imported"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, batch)
}

// memberColumns fixes the serving order of member fields so table consumers
// render columns deterministically (Go maps marshal in random key order).
var memberColumns = []struct {
	key string
	val func(m *Member) interface{}
}{
	{"hhid", func(m *Member) interface{} { return m.HHID }},
	{"entryId", func(m *Member) interface{} { return m.EntryID }},
	{"region", func(m *Member) interface{} { return m.Region }},
	{"province", func(m *Member) interface{} { return m.Province }},
	{"municipality", func(m *Member) interface{} { return m.Municipality }},
	{"barangay", func(m *Member) interface{} { return m.Barangay }},
	{"firstName", func(m *Member) interface{} { return m.FirstName }},
	{"middleName", func(m *Member) interface{} { return m.MiddleName }},
	{"lastName", func(m *Member) interface{} { return m.LastName }},
	{"extName", func(m *Member) interface{} { return m.ExtName }},
	{"birthday", func(m *Member) interface{} { return m.Birthday }},
	{"age", func(m *Member) interface{} { return m.Age }},
	{"sex", func(m *Member) interface{} { return m.Sex }},
	{"clientStatus", func(m *Member) interface{} { return m.ClientStatus }},
	{"csCategory", func(m *Member) interface{} { return m.CSCategory }},
	{"memberStatus", func(m *Member) interface{} { return m.MemberStatus }},
	{"relationship", func(m *Member) interface{} { return m.Relationship }},
	{"civilStatus", func(m *Member) interface{} { return m.CivilStatus }},
	{"isGrantee", func(m *Member) interface{} { return m.IsGrantee }},
	{"hhSet", func(m *Member) interface{} { return m.HHSet }},
	{"soloparent", func(m *Member) interface{} { return m.SoloParent }},
	{"ipAffiliation", func(m *Member) interface{} { return m.IPAffiliation }},
	{"pcn", func(m *Member) interface{} { return m.PCN }},
	{"pregnancyStatus", func(m *Member) interface{} { return m.PregnancyStatus }},
	{"healthFacility", func(m *Member) interface{} { return m.HealthFacility }},
	{"disability", func(m *Member) interface{} { return m.Disability }},
	{"gradeLevel", func(m *Member) interface{} { return m.GradeLevel }},
	{"attendingSchool", func(m *Member) interface{} { return m.AttendingSchool }},
	{"schoolName", func(m *Member) interface{} { return m.SchoolName }},
	{"lrn", func(m *Member) interface{} { return m.LRN }},
}

func memberToOrdered(m *Member) *orderedmap.OrderedMap {
	row := orderedmap.New()
	for _, col := range memberColumns {
		row.Set(col.key, col.val(m))
	}
	return row
}

// MemberRaw serves one member row with a stable column order.
func (hc *Controller) MemberRaw(c *gin.Context) {
	entryID := strings.TrimSpace(c.Param("entryId"))
	if entryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entry id is required"})
		return
	}

	m, err := hc.Store.GetByEntryID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": memberToOrdered(m)})
}

func (hc *Controller) ListArchives(c *gin.Context) {
	if hc.Bucket == "" {
		c.JSON(http.StatusOK, gin.H{"archives": []string{}})
		return
	}

	names, err := util.ListDatasetArchives(hc.Bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"archives": names})
}
