package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		state    ServerState
		wantCode int
		wantBody string
	}{
		{name: "ready", state: ServerStateReady, wantCode: http.StatusOK, wantBody: "OK"},
		{name: "draining", state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable, wantBody: constant.ResponseErrorPrepareShutdown},
		{name: "cleaning up", state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable, wantBody: constant.ResponseErrorUnhealthy},
		{name: "not started", wantCode: http.StatusServiceUnavailable, wantBody: constant.ResponseErrorUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &HTTP{Config: &config.Config{}}
			server.setState(tt.state)

			rec := httptest.NewRecorder()
			server.health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Equal(t, tt.state, server.State())
		})
	}
}
