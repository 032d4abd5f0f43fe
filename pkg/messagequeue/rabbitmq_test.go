package messagequeue

import (
	"context"
	"errors"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	closed    bool
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitMQPublisher{channel: ch, queue: "inquiries"}

	require.NoError(t, p.Publish(context.Background(), []byte(`{"id":"1"}`)))

	require.Len(t, ch.published, 1)
	assert.Equal(t, []string{"inquiries"}, ch.keys)
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)
	assert.Equal(t, `{"id":"1"}`, string(ch.published[0].Body))
}

func TestPublishErrors(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &RabbitMQPublisher{channel: ch, queue: "inquiries"}

	assert.ErrorContains(t, p.Publish(context.Background(), []byte("x")), "channel closed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Publish(ctx, []byte("x")), context.Canceled)
}

func TestCloseThenPublish(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitMQPublisher{channel: ch, queue: "inquiries"}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
	assert.Error(t, p.Publish(context.Background(), []byte("x")))
	assert.NoError(t, p.Close())
}

func TestNewRabbitMQPublisherValidates(t *testing.T) {
	_, err := NewRabbitMQPublisher(RabbitMQConfig{Queue: "q"})
	assert.Error(t, err)

	_, err = NewRabbitMQPublisher(RabbitMQConfig{URL: "amqp://localhost"})
	assert.Error(t, err)
}
