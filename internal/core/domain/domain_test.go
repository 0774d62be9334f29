package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentResponse_StatusAndCompletion(t *testing.T) {
	tx := TxSnapshot{Hash: "abc", Confirmations: 3}

	tests := []struct {
		name     string
		verdict  Verdict
		status   PaymentStatus
		complete bool
		hasTx    bool
	}{
		{"nil verdict", nil, PaymentStatusUnknown, false, false},
		{"no match", NoMatch{}, PaymentStatusUnknown, false, false},
		{"amount mismatch", AmountMismatch{ObservedAtomic: 1}, PaymentStatusUnknown, false, false},
		{"unconfirmed", MatchedUnconfirmed{Tx: tx}, PaymentStatusConfirming, false, true},
		{"confirmed", MatchedConfirmed{Tx: tx}, PaymentStatusSuccessful, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewPaymentResponse(PaymentRequest{PaymentID: "p"}, tt.verdict, time.Now())
			assert.Equal(t, tt.status, r.Status())
			assert.Equal(t, tt.complete, r.Complete())
			assert.Equal(t, r.Complete(), r.Status() == PaymentStatusSuccessful)
			if tt.hasTx {
				require.NotNil(t, r.Tx())
				assert.Equal(t, "abc", r.Tx().Hash)
				require.NotNil(t, r.Confirmations())
				assert.Equal(t, uint64(3), *r.Confirmations())
			} else {
				assert.Nil(t, r.Tx())
				assert.Nil(t, r.Confirmations())
			}
		})
	}
}

func TestIncomingTransfer_Usable(t *testing.T) {
	assert.True(t, IncomingTransfer{}.Usable())
	assert.False(t, IncomingTransfer{DoubleSpendSeen: true}.Usable())
	assert.False(t, IncomingTransfer{Failed: true}.Usable())
}

func TestRestoreHeight(t *testing.T) {
	assert.Equal(t, uint64(3099999), RestoreHeight(3100000))
	assert.Equal(t, uint64(0), RestoreHeight(1))
	assert.Equal(t, uint64(0), RestoreHeight(0))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name               string
		height, start, end uint64
		want               float64
	}{
		{"at start", 100, 100, 200, 0},
		{"midway", 150, 100, 200, 50},
		{"caught up", 200, 100, 200, 100},
		{"past end", 210, 100, 200, 100},
		{"empty range", 100, 100, 100, 100},
		{"below start", 90, 100, 200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percent(tt.height, tt.start, tt.end), 1e-9)
		})
	}
}

func TestNetwork_Valid(t *testing.T) {
	assert.True(t, NetworkMainnet.Valid())
	assert.True(t, NetworkStagenet.Valid())
	assert.False(t, Network("testnet").Valid())
}

func TestEndpoint_Identity(t *testing.T) {
	e := Endpoint{URI: "http://user:pw@node.example.com:18081"}
	assert.Equal(t, "http://node.example.com:18081", e.Identity())
}

func TestTxSnapshot_IsConfirmed(t *testing.T) {
	assert.False(t, TxSnapshot{}.IsConfirmed())
	assert.True(t, TxSnapshot{Confirmations: 1}.IsConfirmed())
}
