package lookup

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bdm-tracker-api/internal/household"
)

type Controller struct {
	LookupService LookupServicePort
}

// GetHousehold resolves a household id to its roster. Unknown ids are not an
// error, and store read failures degrade to an empty roster so the entry form
// falls back to manual input instead of blocking.
func (ctl *Controller) GetHousehold(c *gin.Context) {
	hhid := c.Param("hhid")
	roster, err := ctl.LookupService.FindHousehold(hhid)
	if err != nil {
		log.Printf("household lookup failed for %q: %v", hhid, err)
		c.JSON(http.StatusOK, &Roster{HHID: hhid, Members: []household.Member{}})
		return
	}
	c.JSON(http.StatusOK, roster)
}

// SearchMembers finds members matching a name or id fragment from the q
// query parameter. Failures degrade to an empty result list.
func (ctl *Controller) SearchMembers(c *gin.Context) {
	members, err := ctl.LookupService.SearchMembers(c.Query("q"))
	if err != nil {
		log.Printf("member search failed for %q: %v", c.Query("q"), err)
		c.JSON(http.StatusOK, gin.H{"results": []household.Member{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": members})
}
