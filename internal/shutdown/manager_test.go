package shutdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShutdownReverseOrder(t *testing.T) {
	m := NewManager(nil)
	var order []string

	m.Register("first", ShutdownFunc(func() { order = append(order, "first") }))
	m.Register("second", ShutdownFunc(func() { order = append(order, "second") }))
	m.Register("third", ShutdownFunc(func() { order = append(order, "third") }))

	m.Shutdown()

	assert.Equal(t, []string{"third", "second", "first"}, order)
	assert.Error(t, m.Context().Err())
}

func TestShutdownOnce(t *testing.T) {
	m := NewManager(nil)
	calls := 0
	m.Register("counter", ShutdownFunc(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
	select {
	case <-m.Done():
	default:
		t.Fatal("done not closed")
	}
}

func TestShutdownComponentTimeout(t *testing.T) {
	m := NewManager(nil)
	m.timeout = 20 * time.Millisecond

	release := make(chan struct{})
	defer close(release)
	m.Register("stuck", ShutdownFunc(func() { <-release }))
	after := false
	m.Register("quick", ShutdownFunc(func() { after = true }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, after)
	assert.Less(t, time.Since(start), 2*time.Second)
}
