package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_RegisterMessageUnregister(t *testing.T) {
	h := NewHub()
	messages := make(chan *ClientMessage, 1)
	disconnected := make(chan *Client, 1)
	h.OnMessage = func(cm *ClientMessage) { messages <- cm }
	h.OnDisconnect = func(c *Client) { disconnected <- c }

	defer h.Stop()
	go h.Run()

	c := &Client{ID: "c1", Hub: h, Send: make(chan []byte, 1)}
	h.Register <- c
	assert.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	h.Incoming <- &ClientMessage{Client: c, Data: []byte(`{"type":"get_layout"}`)}
	select {
	case cm := <-messages:
		assert.Same(t, c, cm.Client)
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}

	h.Unregister <- c
	select {
	case got := <-disconnected:
		assert.Same(t, c, got)
	case <-time.After(time.Second):
		t.Fatal("disconnect not reported")
	}
	assert.Equal(t, 0, h.ClientCount())

	_, open := <-c.Send
	require.False(t, open, "send channel closed on unregister")
}

func TestHub_StoppedHubDoesNotBlockClients(t *testing.T) {
	h := NewHub()
	exited := make(chan struct{})
	go func() {
		h.Run()
		close(exited)
	}()

	c := &Client{ID: "c1", Hub: h, Send: make(chan []byte, 1)}
	require.True(t, h.Join(c))
	h.Stop()
	h.Stop()

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}

	left := make(chan struct{})
	go func() {
		h.Leave(c)
		assert.False(t, h.deliver(&ClientMessage{Client: c}))
		assert.False(t, h.Join(c))
		close(left)
	}()

	select {
	case <-left:
	case <-time.After(time.Second):
		t.Fatal("client blocked on a stopped hub")
	}
}
