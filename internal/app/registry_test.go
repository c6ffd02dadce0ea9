package app_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/core"
)

type nopConn struct{}

func (nopConn) TrySend(core.Frame) error { return nil }
func (nopConn) Close()                   {}

func TestRegistryBindUnbind(t *testing.T) {
	reg := app.NewRegistry()

	user := reg.Bind("s1", nopConn{}, nil)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, 1, reg.SessionCount())

	conn, ok := reg.Conn("s1")
	require.True(t, ok)
	assert.NotNil(t, conn)

	reg.Unbind("s1")
	assert.Equal(t, 0, reg.SessionCount())
	_, ok = reg.Conn("s1")
	assert.False(t, ok)

	// Unbind is idempotent.
	reg.Unbind("s1")
	assert.Equal(t, 0, reg.SessionCount())
}

func TestRegistryRoomBinding(t *testing.T) {
	reg := app.NewRegistry()
	reg.Bind("s1", nopConn{}, nil)

	_, ok := reg.RoomOf("s1")
	assert.False(t, ok, "fresh session has no room")

	require.True(t, reg.UpdateRoom("s1", "R1"))
	roomID, ok := reg.RoomOf("s1")
	require.True(t, ok)
	assert.Equal(t, "R1", string(roomID))

	reg.ClearRoom("s1")
	_, ok = reg.RoomOf("s1")
	assert.False(t, ok)
	assert.Equal(t, 1, reg.SessionCount(), "clearing the room keeps the session")

	assert.False(t, reg.UpdateRoom("ghost", "R1"))
}

func TestRegistryCancel(t *testing.T) {
	reg := app.NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	reg.Bind("s1", nopConn{}, cancel)

	require.True(t, reg.Cancel("s1"))
	select {
	case <-ctx.Done():
	default:
		t.Fatal("cancel func was not fired")
	}

	assert.False(t, reg.Cancel("ghost"))
}

func TestRegistryConcurrentBindUnbind(t *testing.T) {
	reg := app.NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sid := core.SessionID(rune('a' + n%26))
			reg.Bind(sid, nopConn{}, nil)
			reg.UpdateRoom(sid, "R1")
			reg.Unbind(sid)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, reg.SessionCount())
}
