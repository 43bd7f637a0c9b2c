package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNilProducerIsNoOp(t *testing.T) {
	p := NewProducer(nil)
	require.Nil(t, p)

	err := p.PublishEvent(context.Background(), TopicCart, "key", map[string]string{"type": "cart_item_added"})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}
