package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultFirestoreCollection is used when no collection name is configured.
const DefaultFirestoreCollection = "slots"

// firestoreSlot is the document shape stored per slot.
type firestoreSlot struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

// FirestoreStore keeps each slot as one document in a collection; the slot key is the document ID.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
	owned      bool
}

var _ Store = (*FirestoreStore)(nil)

// NewFirestoreStore wraps a Firestore client. When owned is true, Close also closes the client.
func NewFirestoreStore(client *firestore.Client, collection string, owned bool) (*FirestoreStore, error) {
	if client == nil {
		return nil, errors.New("firestore client is not initialized for FirestoreStore")
	}
	if collection == "" {
		collection = DefaultFirestoreCollection
	}
	return &FirestoreStore{client: client, collection: collection, owned: owned}, nil
}

// Get retrieves the slot document.
func (s *FirestoreStore) Get(ctx context.Context, key string) ([]byte, error) {
	docSnap, err := s.client.Collection(s.collection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to get slot %q from firestore: %w", key, err)
	}
	var doc firestoreSlot
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode slot %q: %w", key, err)
	}
	return []byte(doc.Value), nil
}

// Set overwrites the slot document.
func (s *FirestoreStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.client.Collection(s.collection).Doc(key).Set(ctx, firestoreSlot{Value: string(value)})
	if err != nil {
		return fmt.Errorf("failed to set slot %q in firestore: %w", key, err)
	}
	return nil
}

// Delete removes the slot document. Firestore treats deleting a missing document as success.
func (s *FirestoreStore) Delete(ctx context.Context, key string) error {
	if _, err := s.client.Collection(s.collection).Doc(key).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return fmt.Errorf("failed to delete slot %q from firestore: %w", key, err)
	}
	return nil
}

// Close closes the client if the store owns it.
func (s *FirestoreStore) Close() error {
	if s.owned && s.client != nil {
		return s.client.Close()
	}
	return nil
}
