package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, userID string) *Client {
	return &Client{
		hub:    hub,
		userID: userID,
		send:   make(chan []byte, sendBufferSize),
	}
}

func TestHub_AddAndRemoveClient(t *testing.T) {
	hub := NewHub()
	client := newTestClient(hub, "alice")

	hub.addClient(client)
	assert.True(t, hub.IsOnline("alice"))
	assert.Equal(t, []string{"alice"}, hub.OnlineUserIDs())

	hub.removeClient(client)
	assert.False(t, hub.IsOnline("alice"))
	assert.Empty(t, hub.OnlineUserIDs())

	// The send channel is closed so the write pump exits.
	_, open := <-client.send
	assert.False(t, open)
}

func TestHub_MultipleConnectionsPerUser(t *testing.T) {
	hub := NewHub()
	first := newTestClient(hub, "alice")
	second := newTestClient(hub, "alice")

	hub.addClient(first)
	hub.addClient(second)

	hub.removeClient(first)
	assert.True(t, hub.IsOnline("alice"), "user stays online while one connection remains")

	hub.removeClient(second)
	assert.False(t, hub.IsOnline("alice"))
}

func TestHub_RemoveUnknownClientIsNoop(t *testing.T) {
	hub := NewHub()
	hub.removeClient(newTestClient(hub, "ghost"))
	assert.Empty(t, hub.OnlineUserIDs())
}

func TestHub_BroadcastToUser(t *testing.T) {
	hub := NewHub()
	client := newTestClient(hub, "alice")
	other := newTestClient(hub, "bob")
	hub.addClient(client)
	hub.addClient(other)

	hub.BroadcastToUser("alice", Event{
		Type:    EventNotification,
		Path:    "notifications/alice/n1",
		Payload: map[string]string{"message": "hi"},
	})

	require.Len(t, client.send, 1)
	assert.Empty(t, other.send)

	var event Event
	require.NoError(t, json.Unmarshal(<-client.send, &event))
	assert.Equal(t, EventNotification, event.Type)
	assert.Equal(t, "notifications/alice/n1", event.Path)
	assert.Equal(t, int64(1), event.Seq)
}

func TestHub_BroadcastToUsers_SharedSeq(t *testing.T) {
	hub := NewHub()
	alice := newTestClient(hub, "alice")
	bob := newTestClient(hub, "bob")
	hub.addClient(alice)
	hub.addClient(bob)

	hub.BroadcastToUsers([]string{"alice", "bob", "offline"}, Event{Type: EventMessage})

	var fromAlice, fromBob Event
	require.NoError(t, json.Unmarshal(<-alice.send, &fromAlice))
	require.NoError(t, json.Unmarshal(<-bob.send, &fromBob))
	assert.Equal(t, fromAlice.Seq, fromBob.Seq)
}

func TestHub_SeqIncreasesPerBroadcast(t *testing.T) {
	hub := NewHub()
	client := newTestClient(hub, "alice")
	hub.addClient(client)

	hub.BroadcastToUser("alice", Event{Type: EventMessage})
	hub.BroadcastToUser("alice", Event{Type: EventMessageUpdate})

	var first, second Event
	require.NoError(t, json.Unmarshal(<-client.send, &first))
	require.NoError(t, json.Unmarshal(<-client.send, &second))
	assert.Greater(t, second.Seq, first.Seq)
}
