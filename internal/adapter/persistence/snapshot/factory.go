package snapshot

import (
	"context"
	"fmt"

	"acm_e_letras/internal/infrastructure/database"
	"acm_e_letras/internal/usecase/interfaces"
)

// NewFromEnv builds the snapshot store selected by SNAPSHOT_BACKEND
// (file | memory | redis | dynamodb; default file).
func NewFromEnv(ctx context.Context) (interfaces.ISnapshotStore, error) {
	backend := getenvDefault("SNAPSHOT_BACKEND", "file")
	switch backend {
	case "file":
		return NewFileStore(getenvDefault("DATA_FILE", "data/app-data.json"))
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		client, err := database.NewRedisClient(ctx)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, getenvDefault("REDIS_SNAPSHOT_KEY", snapshotKey)), nil
	case "dynamodb":
		return NewDynamoStore(database.ConnectDynamoDB()), nil
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", backend)
	}
}
