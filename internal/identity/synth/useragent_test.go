package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every agent in the pool must classify by its platform token, including the
// Safari one whose parsed full name reads "Intel Mac OS X 10_15_7".
func TestOSFromUserAgent(t *testing.T) {
	for _, ua := range userAgents {
		os := osFromUserAgent(ua)
		switch {
		case strings.Contains(ua, "Windows NT"):
			assert.True(t, strings.HasPrefix(os, "Windows"), "%s -> %s", ua, os)
		case strings.Contains(ua, "Macintosh"):
			assert.Equal(t, "macOS", os, ua)
		default:
			assert.Equal(t, "Linux", os, ua)
		}
	}
}
