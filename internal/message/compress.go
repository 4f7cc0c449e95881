package message

import (
	"fmt"

	"estructura/internal/domain"
)

// compressKeep is how many leading characters the simulated compression
// keeps.
const compressKeep = 10

// Compressor simulates compression: it keeps at most the first ten
// characters of the text, wraps them in <compressed> tags and delegates.
type Compressor struct {
	next domain.Messenger
}

// WithCompression wraps next in a compression layer.
func WithCompression(next domain.Messenger) *Compressor {
	return &Compressor{next: next}
}

// Send transforms text and delegates to the wrapped sender.
func (c *Compressor) Send(text string) {
	runes := []rune(text)
	if len(runes) > compressKeep {
		runes = runes[:compressKeep]
	}
	c.next.Send(fmt.Sprintf("<compressed>%s...</compressed>", string(runes)))
}

var _ domain.Messenger = (*Compressor)(nil)
