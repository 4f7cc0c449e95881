package message

import (
	"fmt"

	"estructura/internal/domain"
)

// Encrypter simulates encryption: it reverses the text, wraps it in
// <encrypted> tags and delegates. Each Encrypter exclusively owns its inner
// sender; chains are acyclic by construction.
type Encrypter struct {
	next domain.Messenger
}

// WithEncryption wraps next in an encryption layer.
func WithEncryption(next domain.Messenger) *Encrypter {
	return &Encrypter{next: next}
}

// Send transforms text and delegates to the wrapped sender.
func (e *Encrypter) Send(text string) {
	e.next.Send(fmt.Sprintf("<encrypted>%s</encrypted>", reverse(text)))
}

// reverse returns the runes of s in reverse order.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

var _ domain.Messenger = (*Encrypter)(nil)
