package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestValidationError_AddAndOrNil(t *testing.T) {
	v := &ValidationError{}
	if v.OrNil() != nil {
		t.Fatalf("empty ValidationError should be nil")
	}

	v.Add("bank.ifsc", "ifsc", "invalid IFSC")
	v.Add("contact.mobile", "mobile", "invalid mobile")

	err := v.OrNil()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !v.Has("mobile") || v.Has("email") {
		t.Fatalf("Has() mismatch: %+v", v.Fields)
	}
	want := "validation failed: bank.ifsc: invalid IFSC; contact.mobile: invalid mobile"
	if err.Error() != want {
		t.Fatalf("Error()=%q want %q", err.Error(), want)
	}
}

func TestPersistence_PassesTypedErrorsThrough(t *testing.T) {
	if Persistence("op", nil) != nil {
		t.Fatalf("nil should stay nil")
	}

	nf := NotFound("school", "s1")
	if got := Persistence("op", fmt.Errorf("wrapped: %w", nf)); !IsNotFound(got) {
		t.Fatalf("expected not found to pass through, got %v", got)
	}

	raw := errors.New("connection reset")
	got := Persistence("save school", raw)
	var pe *PersistenceError
	if !errors.As(got, &pe) || pe.Op != "save school" || !errors.Is(got, raw) {
		t.Fatalf("expected PersistenceError wrapping raw, got %#v", got)
	}
}

func TestUploadError_Status(t *testing.T) {
	cases := map[string]int{
		ReasonEmpty:           http.StatusBadRequest,
		ReasonTooLarge:        http.StatusRequestEntityTooLarge,
		ReasonUnsupportedType: http.StatusUnsupportedMediaType,
		ReasonFailed:          http.StatusBadGateway,
	}
	for reason, want := range cases {
		if got := Upload(reason, "x", nil).Status(); got != want {
			t.Fatalf("%s: status=%d want %d", reason, got, want)
		}
	}
}

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, err)

	var body map[string]any
	if e := json.Unmarshal(w.Body.Bytes(), &body); e != nil {
		t.Fatalf("bad json: %v body=%s", e, w.Body.String())
	}
	return w, body
}

func TestRespond(t *testing.T) {
	w, body := respond(t, Validation("school_name", "required", "school name is required"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want 400", w.Code)
	}
	fields, _ := body["fields"].([]any)
	if len(fields) != 1 {
		t.Fatalf("fields=%v", body["fields"])
	}

	w, body = respond(t, NotFound("registration", "abc"))
	if w.Code != http.StatusNotFound || body["search_again"] != true {
		t.Fatalf("status=%d body=%v", w.Code, body)
	}

	w, body = respond(t, Upload(ReasonTooLarge, "file too large", nil))
	if w.Code != http.StatusRequestEntityTooLarge || body["reason"] != ReasonTooLarge {
		t.Fatalf("status=%d body=%v", w.Code, body)
	}

	w, body = respond(t, Persistence("save", errors.New("disk full")))
	if w.Code != http.StatusInternalServerError || body["code"] != "persistence" {
		t.Fatalf("status=%d body=%v", w.Code, body)
	}
	if body["error"] == "disk full" {
		t.Fatalf("raw driver error must not leak: %v", body)
	}

	w, _ = respond(t, errors.New("boom"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d want 500", w.Code)
	}
}
