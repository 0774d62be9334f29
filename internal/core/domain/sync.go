package domain

// SyncState is the sync coordinator's view of the wallet scan.
type SyncState struct {
	RestoreHeight uint64  `json:"restore_height"`
	ScanHeight    uint64  `json:"scan_height"`
	StartHeight   uint64  `json:"start_height"`
	EndHeight     uint64  `json:"end_height"`
	PercentDone   float64 `json:"percent_done"`
	Syncing       bool    `json:"syncing"`
	Ready         bool    `json:"ready"`
	EverSynced    bool    `json:"ever_synced"`
}

// SyncProgress is published on each scan step that moves the wallet forward.
type SyncProgress struct {
	Height      uint64
	StartHeight uint64
	EndHeight   uint64
	PercentDone float64
}

// NewBlock is published when the node tip advances during a sync.
type NewBlock struct {
	Height uint64
}

// BalanceChanged is published when the wallet balance differs from the last
// observed one.
type BalanceChanged struct {
	Balance Balance
}

// OutputReceived is published for each incoming transfer discovered by a scan
// step.
type OutputReceived struct {
	Transfer IncomingTransfer
}

// RestoreHeight returns the height to start scanning from given the node's
// reported height. One block is kept in hand because the node may report its
// height before the wallet can fetch that block.
func RestoreHeight(nodeHeight uint64) uint64 {
	if nodeHeight == 0 {
		return 0
	}
	return nodeHeight - 1
}

// Percent computes scan progress for height within [start, end], in 0..100.
func Percent(height, start, end uint64) float64 {
	if height >= end || end <= start {
		return 100
	}
	if height <= start {
		return 0
	}
	return float64(height-start) / float64(end-start) * 100
}
