package interfaces

import "context"

// ISnapshotStore abstracts the key-value persistence of the serialized
// AppData aggregate.
//
// The app usecase must be able to:
//   - read the snapshot once at startup
//   - write the full snapshot after every mutator
//   - observe snapshots written by other instances (best-effort; stores
//     without change notification return a nil channel)
//
//go:generate mockgen -source=snapshot_store_interface.go -destination=mocks/snapshot_store_mock.go -package=mocks

type ISnapshotStore interface {
	// Load returns the stored snapshot, or (nil, nil) when none exists yet.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snapshot []byte) error
	// Watch emits snapshots written by other writers until ctx is done.
	// Stores without notification support return a nil channel.
	Watch(ctx context.Context) (<-chan []byte, error)
}
