// Package serverstatus models the cached view of the Minecraft server.
package serverstatus

import (
	"context"
	"time"
)

const (
	DefaultMaxPlayers = 500
	DefaultVersion    = "1.20.x"
)

// Snapshot is the last known state of the game server. Only one exists per
// process (or per Redis instance when the store is shared).
type Snapshot struct {
	IP          string    `json:"ip"`
	Port        int       `json:"port"`
	Online      bool      `json:"online"`
	PlayerCount int       `json:"playerCount"`
	MaxPlayers  int       `json:"maxPlayers"`
	Version     string    `json:"version"`
	LastChecked time.Time `json:"lastChecked"`
}

// DefaultSnapshot is the seed used before any successful lookup.
func DefaultSnapshot(ip string, port int, checkedAt time.Time) *Snapshot {
	return &Snapshot{
		IP:          ip,
		Port:        port,
		Online:      false,
		PlayerCount: 0,
		MaxPlayers:  DefaultMaxPlayers,
		Version:     DefaultVersion,
		LastChecked: checkedAt.UTC(),
	}
}

func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Provider asks an external service about host:port.
type Provider interface {
	Lookup(ctx context.Context, host string, port int) (*Snapshot, error)
}

// SnapshotStore holds the singleton snapshot. Get returns nil, nil when
// nothing has been stored yet.
type SnapshotStore interface {
	Get(ctx context.Context) (*Snapshot, error)
	Set(ctx context.Context, snapshot *Snapshot) error
}
