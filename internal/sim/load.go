package sim

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/V1adau/GameOfLife/internal/rle"
)

// ErrTransport reports that pattern text could not be retrieved at all.
// It is distinct from rle.ErrInvalidPattern so callers can tell a failed
// fetch from a malformed file.
var ErrTransport = errors.New("could not retrieve pattern")

// LoadFile reads and decodes a pattern file from disk.
func LoadFile(path string) (*rle.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer f.Close()
	return rle.Parse(f)
}

// LoadURL fetches and decodes pattern text from a URL. The call blocks until
// the fetch completes or fails; nothing is committed on error.
func LoadURL(url string) (*rle.Pattern, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %s", ErrTransport, resp.Status)
	}
	return rle.Parse(resp.Body)
}
