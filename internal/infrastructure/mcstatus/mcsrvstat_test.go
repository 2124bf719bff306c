package mcstatus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leafsmp/internal/shared/logger"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *MCSrvStatProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewMCSrvStatProvider(Options{APIURL: srv.URL + "/2/", Timeout: time.Second}, logger.NewDiscard())
}

func TestMCSrvStatProvider_Lookup(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantOnline  bool
		wantPlayers int
		wantMax     int
		wantVersion string
	}{
		{
			name:        "online server",
			status:      http.StatusOK,
			body:        `{"online":true,"version":"Paper 1.20.4","players":{"online":37,"max":200}}`,
			wantOnline:  true,
			wantPlayers: 37,
			wantMax:     200,
			wantVersion: "Paper 1.20.4",
		},
		{
			name:        "offline server without players block",
			status:      http.StatusOK,
			body:        `{"online":false}`,
			wantMax:     500,
			wantVersion: "1.20.x",
		},
		{
			name:        "zero max keeps default",
			status:      http.StatusOK,
			body:        `{"online":true,"players":{"online":3,"max":0}}`,
			wantOnline:  true,
			wantPlayers: 3,
			wantMax:     500,
			wantVersion: "1.20.x",
		},
		{
			name:    "non-2xx",
			status:  http.StatusBadGateway,
			body:    `{}`,
			wantErr: true,
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `<html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			snap, err := p.Lookup(context.Background(), "play.leafsmp.org", 25590)
			assert.Equal(t, "/2/play.leafsmp.org:25590", gotPath)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, snap)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "play.leafsmp.org", snap.IP)
			assert.Equal(t, 25590, snap.Port)
			assert.Equal(t, tt.wantOnline, snap.Online)
			assert.Equal(t, tt.wantPlayers, snap.PlayerCount)
			assert.Equal(t, tt.wantMax, snap.MaxPlayers)
			assert.Equal(t, tt.wantVersion, snap.Version)
		})
	}
}

func TestMCSrvStatProvider_RespectsContext(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Lookup(ctx, "play.leafsmp.org", 25590)
	assert.Error(t, err)
}

func TestMCSrvStatProvider_TransportError(t *testing.T) {
	p := NewMCSrvStatProvider(Options{APIURL: "http://127.0.0.1:1", Timeout: time.Second}, logger.NewDiscard())
	_, err := p.Lookup(context.Background(), "play.leafsmp.org", 25590)
	assert.Error(t, err)
}
