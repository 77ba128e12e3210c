package registration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"culturefest-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type nopLog struct{}

func (nopLog) Log(logs.SystemLog, interface{}) error { return nil }

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _ := newService(t)
	rc := &RegistrationController{RegistrationService: svc, LogService: nopLog{}}

	r := gin.New()
	r.POST("/registrations", rc.CreateRegistration)
	r.GET("/registrations", rc.GetRegistrations)
	r.GET("/registrations/export", rc.ExportRegistrations)
	r.GET("/registrations/:id", rc.GetRegistration)
	r.PUT("/registrations/:id", rc.UpdateRegistration)
	return r
}

func sendJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegistrationController_Flow(t *testing.T) {
	r := newRouter(t)

	w := sendJSON(r, http.MethodPost, "/registrations", validSubmission())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", w.Code, w.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created.ID == "" {
		t.Fatalf("no id returned: %s", w.Body.String())
	}

	if w := sendJSON(r, http.MethodGet, "/registrations/"+created.ID, nil); w.Code != http.StatusOK {
		t.Fatalf("get status=%d", w.Code)
	}

	bad := validSubmission()
	bad.Bank.ConfirmAccountNumber = "124"
	w = sendJSON(r, http.MethodPut, "/registrations/"+created.ID, bad)
	if w.Code != http.StatusBadRequest || !bytes.Contains(w.Body.Bytes(), []byte(CodeAccountNumberMismatch)) {
		t.Fatalf("mismatch status=%d body=%s", w.Code, w.Body.String())
	}

	w = sendJSON(r, http.MethodPut, "/registrations/unknown", validSubmission())
	if w.Code != http.StatusNotFound || !bytes.Contains(w.Body.Bytes(), []byte(`"search_again":true`)) {
		t.Fatalf("unknown status=%d body=%s", w.Code, w.Body.String())
	}

	w = sendJSON(r, http.MethodGet, "/registrations/export?format=csv", nil)
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("SBIN0001234")) {
		t.Fatalf("export status=%d body=%s", w.Code, w.Body.String())
	}
}
