package service

import (
	"context"
	"fmt"

	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
	"simplepay/pkg/apperror"
)

type connectionControl interface {
	State() domain.ConnectionState
	SetEndpoint(endpoint domain.Endpoint) error
}

type syncStateReader interface {
	State() domain.SyncState
}

type balanceReader interface {
	Snapshot() domain.Balance
}

// NodeServiceImpl implements ports.NodeService on top of the connection
// manager, sync coordinator and balance tracker.
type NodeServiceImpl struct {
	conn     connectionControl
	sync     syncStateReader
	balances balanceReader
}

// NewNodeService creates a new NodeServiceImpl.
func NewNodeService(conn connectionControl, sync syncStateReader, balances balanceReader) *NodeServiceImpl {
	return &NodeServiceImpl{conn: conn, sync: sync, balances: balances}
}

// Status returns the current connection, sync and balance snapshot.
func (s *NodeServiceImpl) Status(_ context.Context) ports.NodeStatus {
	return ports.NodeStatus{
		Connection: s.conn.State(),
		Sync:       s.sync.State(),
		Balance:    s.balances.Snapshot(),
	}
}

// UpdateEndpoint switches the node the wallet syncs against. Readiness is
// lost until the new node has been fully synced.
func (s *NodeServiceImpl) UpdateEndpoint(_ context.Context, endpoint domain.Endpoint) error {
	return s.conn.SetEndpoint(endpoint)
}

type connectionStateReader interface {
	State() domain.ConnectionState
}

// NodeHealthCheck implements ports.HealthChecker from the connection
// manager's last check result. It never contacts the node itself.
type NodeHealthCheck struct {
	conn connectionStateReader
}

// NewNodeHealthCheck creates a node health checker.
func NewNodeHealthCheck(conn connectionStateReader) *NodeHealthCheck {
	return &NodeHealthCheck{conn: conn}
}

// Ping fails while the node is not connected.
func (h *NodeHealthCheck) Ping(_ context.Context) error {
	st := h.conn.State()
	if st.Endpoint == "" {
		return apperror.ErrNoEndpoint()
	}
	if !st.Connected {
		return fmt.Errorf("node %s unreachable", st.Endpoint)
	}
	return nil
}

// Name returns the dependency name.
func (h *NodeHealthCheck) Name() string {
	return "node"
}
