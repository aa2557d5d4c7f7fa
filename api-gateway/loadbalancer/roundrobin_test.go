package loadbalancer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundRobin_Rotation(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080", "http://b:8080", "http://c:8080"})

	var got []string
	for i := 0; i < 6; i++ {
		got = append(got, rr.Next())
	}

	require.Equal(t, []string{
		"http://a:8080", "http://b:8080", "http://c:8080",
		"http://a:8080", "http://b:8080", "http://c:8080",
	}, got)
}

func TestRoundRobin_DefaultServer(t *testing.T) {
	rr := NewRoundRobin(nil)
	require.Equal(t, "http://localhost:8080", rr.Next())
	require.Equal(t, []string{"http://localhost:8080"}, rr.GetServers())
}

func TestRoundRobin_GetServersCopies(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080", "http://b:8080"})

	servers := rr.GetServers()
	servers[0] = "http://mutated:9999"

	require.Equal(t, "http://a:8080", rr.Next())
}

func TestRoundRobin_ConcurrentNext(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080", "http://b:8080"})

	const calls = 100
	var wg sync.WaitGroup
	counts := make(chan string, calls)

	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counts <- rr.Next()
		}()
	}
	wg.Wait()
	close(counts)

	seen := map[string]int{}
	for server := range counts {
		seen[server]++
	}
	require.Equal(t, calls/2, seen["http://a:8080"])
	require.Equal(t, calls/2, seen["http://b:8080"])

	stats := rr.GetStats()
	require.Equal(t, "round-robin", stats["algorithm"])
	require.Equal(t, 2, stats["server_count"])
}