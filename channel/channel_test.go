/*
File    : vexel/channel/channel_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package channel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuncs69/vexel/objects"
)

func TestSendRecvFIFO(t *testing.T) {
	r := NewRegistry()
	id := r.Create()

	require.NoError(t, r.Send(id, &objects.Number{Value: 1}))
	require.NoError(t, r.Send(id, &objects.Number{Value: 2}))

	v1, err := r.Recv(id)
	require.NoError(t, err)
	v2, err := r.Recv(id)
	require.NoError(t, err)

	assert.Equal(t, int32(1), v1.(*objects.Number).Value)
	assert.Equal(t, int32(2), v2.(*objects.Number).Value)
}

func TestRecvBlocksUntilSend(t *testing.T) {
	r := NewRegistry()
	id := r.Create()

	done := make(chan objects.Value, 1)
	go func() {
		v, err := r.Recv(id)
		require.NoError(t, err)
		done <- v
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, r.Send(id, &objects.String{Value: "hi"}))

	select {
	case v := <-done:
		assert.Equal(t, "hi", v.(*objects.String).Value)
	case <-time.After(time.Second):
		t.Fatal("Recv never unblocked after Send")
	}
}

func TestRecvOnDrainedClosedChannelReturnsNull(t *testing.T) {
	r := NewRegistry()
	id := r.Create()
	require.NoError(t, r.Close(id))

	v, err := r.Recv(id)
	require.NoError(t, err)
	assert.Equal(t, objects.NullValue, v)
}

func TestSendOnClosedChannelErrors(t *testing.T) {
	r := NewRegistry()
	id := r.Create()
	require.NoError(t, r.Close(id))
	assert.Error(t, r.Send(id, &objects.Number{Value: 1}))
}

func TestUnknownChannelIDErrors(t *testing.T) {
	r := NewRegistry()
	_, err := r.Recv(999)
	assert.Error(t, err)
	assert.Error(t, r.Send(999, objects.NullValue))
	assert.Error(t, r.Close(999))
}
