package monero

import (
	"context"
	"errors"
	"fmt"
	"time"

	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
)

// DaemonDialer creates JSON-RPC connections to monerod.
type DaemonDialer struct {
	timeout time.Duration
}

// NewDaemonDialer creates a DaemonDialer whose requests give up after timeout.
func NewDaemonDialer(timeout time.Duration) *DaemonDialer {
	return &DaemonDialer{timeout: timeout}
}

// Dial prepares a connection to endpoint. No request is sent until the first
// call.
func (d *DaemonDialer) Dial(endpoint domain.Endpoint) (ports.NodeConnection, error) {
	rpc, err := newRPCClient(endpoint.URI, endpoint.Username, endpoint.Password, d.timeout)
	if err != nil {
		return nil, err
	}
	return &DaemonConn{rpc: rpc, endpoint: endpoint}, nil
}

// DaemonConn implements ports.NodeConnection against monerod.
type DaemonConn struct {
	rpc      *rpcClient
	endpoint domain.Endpoint
}

func (c *DaemonConn) Endpoint() domain.Endpoint { return c.endpoint }

type blockCountResult struct {
	Count  uint64 `json:"count"`
	Status string `json:"status"`
}

// Height returns the daemon's block count.
func (c *DaemonConn) Height(ctx context.Context) (uint64, error) {
	var res blockCountResult
	if err := c.rpc.call(ctx, "get_block_count", nil, &res); err != nil {
		return 0, err
	}
	if res.Status != "" && res.Status != "OK" {
		return 0, fmt.Errorf("get_block_count: status %q", res.Status)
	}
	return res.Count, nil
}

type infoResult struct {
	Height  uint64 `json:"height"`
	Offline bool   `json:"offline"`
	Status  string `json:"status"`
}

// Ping checks that the daemon answers and is online.
func (c *DaemonConn) Ping(ctx context.Context) error {
	var res infoResult
	if err := c.rpc.call(ctx, "get_info", nil, &res); err != nil {
		return err
	}
	if res.Status != "OK" {
		return fmt.Errorf("get_info: status %q", res.Status)
	}
	if res.Offline {
		return errors.New("daemon is offline")
	}
	return nil
}

// Close releases idle connections held for this daemon.
func (c *DaemonConn) Close() error {
	c.rpc.httpClient.CloseIdleConnections()
	return nil
}
