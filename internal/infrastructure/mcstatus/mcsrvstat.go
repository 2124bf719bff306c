package mcstatus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leafsmp/internal/domain/serverstatus"
	"leafsmp/internal/shared/logger"
)

const (
	DefaultAPIURL = "https://api.mcsrvstat.us/2"
	// Maximum response body size for the status API (256KB)
	maxStatusResponseSize = 256 << 10
	userAgent             = "leafsmp-status/1.0"
)

// mcsrvstatResponse is the subset of the mcsrvstat.us v2 payload we use.
type mcsrvstatResponse struct {
	Online  *bool  `json:"online"`
	Version string `json:"version"`
	Players *struct {
		Online int `json:"online"`
		Max    int `json:"max"`
	} `json:"players"`
}

type Options struct {
	APIURL         string
	Timeout        time.Duration
	DefaultVersion string
	DefaultMax     int
}

// MCSrvStatProvider looks servers up through the mcsrvstat.us HTTP API.
type MCSrvStatProvider struct {
	apiURL         string
	httpClient     *http.Client
	defaultVersion string
	defaultMax     int
	logger         logger.Interface
}

var _ serverstatus.Provider = (*MCSrvStatProvider)(nil)

func NewMCSrvStatProvider(opts Options, logger logger.Interface) *MCSrvStatProvider {
	if opts.APIURL == "" {
		opts.APIURL = DefaultAPIURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.DefaultVersion == "" {
		opts.DefaultVersion = serverstatus.DefaultVersion
	}
	if opts.DefaultMax <= 0 {
		opts.DefaultMax = serverstatus.DefaultMaxPlayers
	}

	return &MCSrvStatProvider{
		apiURL:         strings.TrimRight(opts.APIURL, "/"),
		httpClient:     &http.Client{Timeout: opts.Timeout},
		defaultVersion: opts.DefaultVersion,
		defaultMax:     opts.DefaultMax,
		logger:         logger,
	}
}

// Lookup fetches host:port. Missing fields fall back to offline, 0 players,
// the default player cap and the default version.
func (p *MCSrvStatProvider) Lookup(ctx context.Context, host string, port int) (*serverstatus.Snapshot, error) {
	url := fmt.Sprintf("%s/%s:%d", p.apiURL, host, port)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch server status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data mcsrvstatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxStatusResponseSize)).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	snapshot := &serverstatus.Snapshot{
		IP:         host,
		Port:       port,
		MaxPlayers: p.defaultMax,
		Version:    p.defaultVersion,
	}
	if data.Online != nil {
		snapshot.Online = *data.Online
	}
	if data.Players != nil {
		snapshot.PlayerCount = max(data.Players.Online, 0)
		if data.Players.Max > 0 {
			snapshot.MaxPlayers = data.Players.Max
		}
	}
	if v := strings.TrimSpace(data.Version); v != "" {
		snapshot.Version = v
	}

	p.logger.Debugw("fetched server status",
		"host", host,
		"port", port,
		"online", snapshot.Online,
		"players", snapshot.PlayerCount,
	)

	return snapshot, nil
}
