package synth

import (
	"strings"

	"github.com/mssola/useragent"
)

// Browser fingerprints the synthesizer hands out. Desktop only; the external
// validation path does not require mobile agents.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
}

// userAgentAndOS draws a user agent and derives the operating system from it,
// so the two fields never disagree.
func userAgentAndOS(d *draw) (string, string) {
	ua := d.pick(userAgents)
	return ua, osFromUserAgent(ua)
}

func osFromUserAgent(ua string) string {
	info := useragent.New(ua).OSInfo()
	switch {
	case strings.HasPrefix(info.Name, "Windows"):
		return info.FullName
	case info.Name == "Mac OS X":
		return "macOS"
	default:
		return "Linux"
	}
}
