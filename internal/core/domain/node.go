package domain

import (
	"net/url"
	"time"
)

// Network selects the ledger the wallet follows.
type Network string

const (
	NetworkMainnet  Network = "mainnet"
	NetworkStagenet Network = "stagenet"
)

// Valid reports whether n is a supported network.
func (n Network) Valid() bool {
	return n == NetworkMainnet || n == NetworkStagenet
}

// Endpoint describes how to reach a remote node.
type Endpoint struct {
	URI      string
	Username string
	Password string
}

// Identity returns the endpoint URI with any embedded credentials removed,
// safe for logs and status output.
func (e Endpoint) Identity() string {
	u, err := url.Parse(e.URI)
	if err != nil {
		return e.URI
	}
	u.User = nil
	return u.String()
}

// ConnectionState is the connection manager's current view of the node.
type ConnectionState struct {
	Connected bool      `json:"connected"`
	Endpoint  string    `json:"endpoint"`
	CheckedAt time.Time `json:"checked_at"`
}

// ConnectionChanged is published after every health check.
type ConnectionChanged struct {
	Connected bool
	Endpoint  string
	At        time.Time
}
