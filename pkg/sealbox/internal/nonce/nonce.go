// Package nonce generates unique nonces for sealing messages.
package nonce

import (
	"encoding/binary"
	"io"
	"sync/atomic"

	"github.com/codahale/sealbox/pkg/sealbox/internal"
)

// Generator produces 12-byte nonces which are unique across the lifetime of the process.
//
// Each nonce is a 32-bit big-endian counter followed by 8 bytes from the random source. The
// counter guarantees uniqueness within 2^32 calls per process; the random suffix keeps nonces
// unpredictable and is the only safeguard against collision after counter wrap or across process
// restarts. Callers which need stronger cross-restart guarantees must persist the counter
// themselves.
type Generator struct {
	counter uint32
	rand    io.Reader
}

// NewGenerator returns a Generator which draws its random suffix from r.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Next returns a new nonce. It is safe for arbitrary concurrent use: no two calls can observe
// the same counter value. Reusing a nonce under the same key voids GCM's confidentiality and
// integrity guarantees, so the increment-and-read must stay atomic.
func (g *Generator) Next() ([]byte, error) {
	n := make([]byte, internal.NonceSize)

	// Claim a counter value. Wraps mod 2^32.
	binary.BigEndian.PutUint32(n, atomic.AddUint32(&g.counter, 1))

	// Fill the remainder with random bytes.
	if _, err := io.ReadFull(g.rand, n[4:]); err != nil {
		return nil, err
	}

	return n, nil
}
