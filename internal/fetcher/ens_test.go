package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameMap_Lookup(t *testing.T) {
	names := NameMap{"0xabc": "alpha.eth"}

	assert.Equal(t, "alpha.eth", names.Lookup("0xabc"))
	assert.Equal(t, "alpha.eth", names.Lookup("0xABC"), "lookup is case-insensitive")
	assert.Equal(t, "0xdef", names.Lookup("0xdef"), "unmapped addresses fall back to themselves")
}

func TestENSResolver_Resolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": "0xAbC", "name": "alpha.eth", "idShort": "0xAbC"},
			{"id": "0xDeF", "name": "", "idShort": "0xDeF"},
			{"id": "", "name": "orphan.eth"}
		]`))
	}))
	defer server.Close()

	resolver := NewENSResolver(server.URL, time.Second, nil)
	names := resolver.Resolve(context.Background())

	// Entries without an id or a name are dropped; keys are lowercased.
	require.Len(t, names, 1)
	assert.Equal(t, "alpha.eth", names.Lookup("0xabc"))
}

func TestENSResolver_FailureFallsBackToLastGood(t *testing.T) {
	var failing atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[{"id": "0xAbC", "name": "alpha.eth"}]`))
	}))
	defer server.Close()

	resolver := NewENSResolver(server.URL, time.Second, nil)

	first := resolver.Resolve(context.Background())
	require.Equal(t, "alpha.eth", first.Lookup("0xabc"))

	failing.Store(true)
	second := resolver.Resolve(context.Background())
	assert.Equal(t, "alpha.eth", second.Lookup("0xabc"), "failed refresh keeps the last good mapping")
}

func TestENSResolver_FailureWithNoHistoryYieldsEmptyMap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	resolver := NewENSResolver(server.URL, time.Second, nil)
	names := resolver.Resolve(context.Background())

	assert.Empty(t, names)
	assert.Equal(t, "0xabc", names.Lookup("0xabc"))
}
