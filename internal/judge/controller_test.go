package judge

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"culturefest-api/internal/logs"
	"culturefest-api/internal/testdb"

	"github.com/gin-gonic/gin"
)

type mockLogService struct{ count int }

func (m *mockLogService) Log(logs.SystemLog, interface{}) error {
	m.count++
	return nil
}

func TestJudgeController_CreateAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testdb.New(t, &Judge{}, &scoreForTest{})
	ls := &mockLogService{}
	jc := &JudgeController{JudgeService: &JudgeService{DB: db}, LogService: ls}

	r := gin.New()
	r.POST("/judges", jc.CreateJudge)
	r.DELETE("/judges/:id", jc.DeleteJudge)
	r.GET("/judges", jc.GetJudges)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/judges", bytes.NewBufferString(`{"name":"Lakshmi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/judges", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name status=%d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/judges/unknown", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete unknown status=%d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/judges", nil))
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"count":1`)) {
		t.Fatalf("list status=%d body=%s", w.Code, w.Body.String())
	}
	if ls.count != 1 {
		t.Fatalf("audit count=%d want 1", ls.count)
	}
}
