package nudge_decision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	nudgeDecision "github.com/m04kA/SMC-SchedulingService/internal/usecase/nudge_decision"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type fakeUseCase struct {
	resp *nudgeDecision.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *nudgeDecision.Request) (*nudgeDecision.Response, error) {
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_DefaultConfigCapReached(t *testing.T) {
	uc := &fakeUseCase{resp: &nudgeDecision.Response{
		ProviderID: "p1",
		Decision: domain.NudgeDecision{
			Allowed:   false,
			IsQuiet:   false,
			Remaining: 0,
			SentToday: 25,
			Config:    domain.DefaultNudgeConfig(),
		},
	}}

	rec := serve(uc, "/api/v1/nudges/decision?providerRef=p1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"allowed": false,
		"is_quiet": false,
		"remaining": 0,
		"sent_today": 25,
		"config": {"quiet_start": 22, "quiet_end": 8, "cap": 25, "updated_ts": null}
	}`, rec.Body.String())
}

func TestHandle_LoggedConfigHasTimestamp(t *testing.T) {
	updated := time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC)
	cfg := domain.NudgeConfig{QuietStart: 21, QuietEnd: 7, DailyCap: 10, UpdatedAt: ptr.Ptr(updated)}
	uc := &fakeUseCase{resp: &nudgeDecision.Response{
		Decision: domain.NudgeDecision{Allowed: true, Remaining: 10, Config: cfg},
	}}

	rec := serve(uc, "/api/v1/nudges/decision?providerRef=p1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated_ts":"2026-10-10T12:00:00Z"`)
	assert.Contains(t, rec.Body.String(), `"allowed":true`)
}

func TestHandle_MissingProviderRef(t *testing.T) {
	rec := serve(&fakeUseCase{err: nudgeDecision.ErrMissingParams}, "/api/v1/nudges/decision")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"missing_params"`)
}
