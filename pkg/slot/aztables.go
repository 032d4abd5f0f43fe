package slot

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
)

// tablePartition groups all slots of one site under a single partition.
const tablePartition = "slots"

// slotEntity is the table row for one slot. The slot key is the RowKey and Value holds
// the payload base64 encoded, since slot values are arbitrary bytes.
type slotEntity struct {
	aztables.Entity
	Value string `json:"Value"`
}

// TableConfig contains options for connecting a TableStore.
type TableConfig struct {
	ConnectionString string
	Table            string
	Namespace        string // Used as the partition key prefix so several sites can share a table
}

// TableStore keeps slots as entities in an Azure Storage table.
// String properties are capped at 64 KiB by the service, which leaves about 48 KiB of
// payload after base64 encoding.
type TableStore struct {
	client    *aztables.Client
	partition string
}

var _ Store = (*TableStore)(nil)

// NewTableStore connects to the table service and creates the table when it does not exist yet.
func NewTableStore(ctx context.Context, cfg TableConfig) (*TableStore, error) {
	if cfg.ConnectionString == "" || cfg.Table == "" {
		return nil, errors.New("table connection string and table name are required")
	}
	opts := aztables.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{
				MaxRetries:    3,
				TryTimeout:    30 * time.Second,
				RetryDelay:    time.Second,
				MaxRetryDelay: 10 * time.Second,
				StatusCodes:   []int{408, 429, 500, 502, 503, 504},
			},
		},
	}
	svc, err := aztables.NewServiceClientFromConnectionString(cfg.ConnectionString, &opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create table service client: %w", err)
	}
	client := svc.NewClient(cfg.Table)
	if _, err := client.CreateTable(ctx, nil); err != nil {
		var respErr *azcore.ResponseError
		if !(errors.As(err, &respErr) && respErr.ErrorCode == string(aztables.TableAlreadyExists)) {
			return nil, fmt.Errorf("failed to create table %s: %w", cfg.Table, err)
		}
	}
	return &TableStore{client: client, partition: cfg.Namespace + tablePartition}, nil
}

func isTableNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}

// Get retrieves the slot entity.
func (s *TableStore) Get(ctx context.Context, key string) ([]byte, error) {
	resp, err := s.client.GetEntity(ctx, s.partition, key, nil)
	if err != nil {
		if isTableNotFound(err) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to get slot %q from table: %w", key, err)
	}
	var ent slotEntity
	if err := json.Unmarshal(resp.Value, &ent); err != nil {
		return nil, fmt.Errorf("failed to decode slot %q: %w", key, err)
	}
	value, err := base64.StdEncoding.DecodeString(ent.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode slot %q: %w", key, err)
	}
	return value, nil
}

// Set replaces the slot entity.
func (s *TableStore) Set(ctx context.Context, key string, value []byte) error {
	ent := slotEntity{
		Entity: aztables.Entity{PartitionKey: s.partition, RowKey: key},
		Value:  base64.StdEncoding.EncodeToString(value),
	}
	body, err := json.Marshal(ent)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", key, err)
	}
	_, err = s.client.UpsertEntity(ctx, body, &aztables.UpsertEntityOptions{UpdateMode: aztables.UpdateModeReplace})
	if err != nil {
		return fmt.Errorf("failed to set slot %q in table: %w", key, err)
	}
	return nil
}

// Delete removes the slot entity.
func (s *TableStore) Delete(ctx context.Context, key string) error {
	if _, err := s.client.DeleteEntity(ctx, s.partition, key, nil); err != nil {
		if isTableNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete slot %q from table: %w", key, err)
	}
	return nil
}

// Close is a no-op; the table client holds no connections of its own.
func (s *TableStore) Close() error { return nil }
