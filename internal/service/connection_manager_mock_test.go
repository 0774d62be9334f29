package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
	"simplepay/internal/core/ports/mocks"
	"simplepay/internal/events"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockedManager struct {
	mgr    *ConnectionManager
	conn   *mocks.MockNodeConnection
	sync   *mocks.MockSyncController
	events <-chan domain.ConnectionChanged
}

// setupMockedManager dials one endpoint without starting the check loop, so
// tests drive checks directly.
func setupMockedManager(t *testing.T) *mockedManager {
	t.Helper()
	ctrl := gomock.NewController(t)
	endpoint := domain.Endpoint{URI: "http://node-a:18081"}

	conn := mocks.NewMockNodeConnection(ctrl)
	conn.EXPECT().Endpoint().Return(endpoint).AnyTimes()
	dialer := mocks.NewMockNodeDialer(ctrl)
	dialer.EXPECT().Dial(endpoint).Return(conn, nil)
	syncCtl := mocks.NewMockSyncController(ctrl)

	bus := events.NewBus()
	ch, cancel := bus.Connection.Subscribe()
	t.Cleanup(func() {
		cancel()
		bus.Close()
	})

	mgr := NewConnectionManager(dialer, syncCtl, bus, time.Hour, time.Second, zerolog.Nop())
	require.NoError(t, mgr.SetEndpoint(endpoint))
	return &mockedManager{mgr: mgr, conn: conn, sync: syncCtl, events: ch}
}

func TestConnectionManager_BeginsSyncBeforePublishingConnected(t *testing.T) {
	m := setupMockedManager(t)

	m.conn.EXPECT().Ping(gomock.Any()).Return(nil)
	m.sync.EXPECT().BeginSync(gomock.Any(), m.conn, ports.SyncOptions{}).
		DoAndReturn(func(context.Context, ports.NodeConnection, ports.SyncOptions) error {
			assert.Empty(t, m.events, "connected must not be published before sync starts")
			return nil
		})

	m.mgr.check(context.Background())

	ev := nextConnectionEvent(t, m.events)
	assert.True(t, ev.Connected)
	assert.Equal(t, "http://node-a:18081", ev.Endpoint)
	assert.True(t, m.mgr.State().Connected)
}

func TestConnectionManager_PingFailureStopsSync(t *testing.T) {
	m := setupMockedManager(t)

	gomock.InOrder(
		m.conn.EXPECT().Ping(gomock.Any()).Return(nil),
		m.sync.EXPECT().BeginSync(gomock.Any(), m.conn, gomock.Any()).Return(nil),
		m.conn.EXPECT().Ping(gomock.Any()).Return(errors.New("connection reset")),
		m.sync.EXPECT().StopSync(),
	)

	m.mgr.check(context.Background())
	require.True(t, nextConnectionEvent(t, m.events).Connected)

	m.mgr.check(context.Background())
	assert.False(t, nextConnectionEvent(t, m.events).Connected)
	assert.False(t, m.mgr.State().Connected)
}

func TestConnectionManager_MockedSyncStartFailureStaysDisconnected(t *testing.T) {
	m := setupMockedManager(t)

	m.conn.EXPECT().Ping(gomock.Any()).Return(nil)
	m.sync.EXPECT().BeginSync(gomock.Any(), m.conn, gomock.Any()).Return(errors.New("wallet busy"))

	m.mgr.check(context.Background())

	assert.False(t, nextConnectionEvent(t, m.events).Connected)
	assert.False(t, m.mgr.State().Connected)
}
