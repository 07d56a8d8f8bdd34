package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/courtside-sg/courtside-api/internal/service"
)

type fakeNotifySrv struct {
	enabled      bool
	registration *service.NotifyRegistration
	err          error
	lastReq      service.NotifyRequest
}

func (f *fakeNotifySrv) Enabled() bool { return f.enabled }

func (f *fakeNotifySrv) Register(_ context.Context, req service.NotifyRequest) (*service.NotifyRegistration, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.registration, nil
}

func TestNotifyHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeNotifySrv{
		enabled:      true,
		registration: &service.NotifyRegistration{ID: "reg-1", SlotID: "slot-1"},
	}
	handler := NewNotifyHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	body := `{"instructor_id":"ins-1","slot_id":"slot-1","email":"player@example.com"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/notify-requests", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ins-1", srv.lastReq.InstructorID)
	assert.Contains(t, rec.Body.String(), "reg-1")
}

func TestNotifyHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewNotifyHandler(&fakeNotifySrv{enabled: true})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/notify-requests", strings.NewReader("{not-json"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotifyHandlerCreateDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewNotifyHandler(&fakeNotifySrv{enabled: false})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/notify-requests", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
