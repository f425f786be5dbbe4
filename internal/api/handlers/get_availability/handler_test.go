package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeUseCase struct {
	got  *getAvailability.Request
	resp *getAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_ReturnsDaysWithUTCSlots(t *testing.T) {
	slot := domain.NewSlot(time.Date(2026, 10, 16, 14, 30, 0, 0, domain.ReferenceLocation))
	uc := &fakeUseCase{resp: &getAvailability.Response{
		ProviderID:    "p1",
		HoursResolved: true,
		Days: []domain.DaySlots{
			{Date: "2026-10-16", Slots: []domain.Slot{slot}},
			{Date: "2026-10-17", Slots: []domain.Slot{}, Closed: true},
		},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := serve(h, "/api/v1/availability?providerRef=p1&days=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"hoursResolved": true,
		"days": [
			{"date": "2026-10-16", "slots": ["2026-10-16T09:00:00Z"]},
			{"date": "2026-10-17", "slots": []}
		]
	}`, rec.Body.String())
	assert.Equal(t, &getAvailability.Request{ProviderRef: "p1", Days: 2}, uc.got)
}

func TestHandle_DaysDefault(t *testing.T) {
	for _, target := range []string{
		"/api/v1/availability?providerRef=p1",
		"/api/v1/availability?providerRef=p1&days=abc",
	} {
		uc := &fakeUseCase{resp: &getAvailability.Response{}}
		serve(NewHandler(uc, logger.NewNop()), target)
		assert.Equal(t, 14, uc.got.Days, target)
	}
}

func TestHandle_MissingProviderRef(t *testing.T) {
	uc := &fakeUseCase{err: getAvailability.ErrMissingParams}

	rec := serve(NewHandler(uc, logger.NewNop()), "/api/v1/availability")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "missing_params", body["error"])
}
