package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"identikit/internal/platform/config"
)

func TestNewAppliesDefaults(t *testing.T) {
	srv := New(":8080", http.NewServeMux(), config.HTTPConfig{})

	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, defaultReadHeaderTimeout, srv.ReadHeaderTimeout)
	assert.Equal(t, defaultWriteTimeout, srv.WriteTimeout)
	assert.Equal(t, defaultIdleTimeout, srv.IdleTimeout)
}

func TestNewHonorsConfiguredTimeouts(t *testing.T) {
	cfg := config.HTTPConfig{
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       45 * time.Second,
	}
	srv := New(":9090", http.NewServeMux(), cfg)

	assert.Equal(t, 2*time.Second, srv.ReadHeaderTimeout)
	assert.Equal(t, 30*time.Second, srv.WriteTimeout)
	assert.Equal(t, 45*time.Second, srv.IdleTimeout)
}
