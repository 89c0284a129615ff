package testutil

import (
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRandomPortUnique(t *testing.T) {
	ports := make(map[int]bool)
	for range 10 {
		port := GetRandomPort(t)
		assert.Greater(t, port, 0)
		assert.Less(t, port, 65536)
		assert.False(t, ports[port], "Port %d was already used", port)
		ports[port] = true
	}
}

func TestGetRandomPortConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	portChan := make(chan int, 20)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			portChan <- GetRandomPort(t)
		}()
	}
	wg.Wait()
	close(portChan)

	seen := make(map[int]bool)
	for p := range portChan {
		assert.False(t, seen[p], "duplicate port %d", p)
		seen[p] = true
	}
}

func TestGetRandomListeningAddr(t *testing.T) {
	addr := GetRandomListeningAddr(t)
	assert.True(t, strings.HasPrefix(addr, "127.0.0.1:"))

	l, err := net.Listen("tcp", addr)
	require.NoError(t, err)
	require.NoError(t, l.Close())
}

func TestNewCapturingLogger(t *testing.T) {
	logger, buf := NewCapturingLogger()
	logger.Debug("captured", "key", "value")
	assert.Contains(t, buf.String(), `"msg":"captured"`)

	buf.Reset()
	assert.Empty(t, buf.String())
}
