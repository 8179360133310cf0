package lookup

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"bdm-tracker-api/internal/household"
)

type fakeLookupService struct {
	roster  *Roster
	results []household.Member
	err     error
}

func (f *fakeLookupService) FindHousehold(hhid string) (*Roster, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roster, nil
}

func (f *fakeLookupService) SearchMembers(fragment string) ([]household.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func setupRouter(ctl *Controller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/household/:hhid", ctl.GetHousehold)
	r.GET("/search", ctl.SearchMembers)
	return r
}

func TestGetHouseholdOK(t *testing.T) {
	svc := &fakeLookupService{roster: &Roster{HHID: "H-1", Found: true, HeadName: "PEDRO REYES", Members: []household.Member{{EntryID: "E-1"}}}}
	r := setupRouter(&Controller{LookupService: svc})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/household/H-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "PEDRO REYES") {
		t.Fatalf("roster missing head: %s", w.Body.String())
	}
}

func TestGetHouseholdDegradesOnError(t *testing.T) {
	svc := &fakeLookupService{err: errors.New("store unavailable")}
	r := setupRouter(&Controller{LookupService: svc})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/household/H-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("lookup errors must degrade to empty roster, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"found":false`) {
		t.Fatalf("expected empty roster: %s", w.Body.String())
	}
}

func TestSearchDegradesOnError(t *testing.T) {
	svc := &fakeLookupService{err: errors.New("store unavailable")}
	r := setupRouter(&Controller{LookupService: svc})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?q=maria", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("search errors must degrade to empty results, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"results":[]`) {
		t.Fatalf("expected empty results: %s", w.Body.String())
	}
}
