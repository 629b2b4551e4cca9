// Package testutil provides fixtures for testing ddsbatch components.
//
// Key components:
//   - ImageTree: an in-memory asset tree on afero.MemMapFs
//   - FaultyFs: an afero.Fs wrapper that injects errors for chosen paths
//
// Tests should build their trees inline with ImageTree rather than reading
// fixtures from disk.
package testutil
