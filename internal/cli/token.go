package cli

import (
	"sync"

	"github.com/google/uuid"
)

// TokenGenerator produces run tokens that correlate one CLI invocation's
// verbose output with its result.
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, making tokens
// sortable by creation time, which is helpful when collecting the output
// of many explain runs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined run tokens for testing, enabling
// deterministic golden output.
type FixedGenerator struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewFixedGenerator creates a generator that returns tokens in order.
func NewFixedGenerator(tokens ...string) *FixedGenerator {
	return &FixedGenerator{tokens: tokens}
}

// Generate returns the next predetermined token. Panics when all tokens
// are consumed; a fail-fast guard against test misconfiguration.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.tokens) {
		panic("FixedGenerator: all tokens exhausted")
	}
	token := g.tokens[g.idx]
	g.idx++
	return token
}

// tokenSource is the generator used by commands; tests swap in a
// FixedGenerator.
var tokenSource TokenGenerator = UUIDv7Generator{}

// SetTokenGenerator replaces the run token source and returns a restore
// function. Test use only.
func SetTokenGenerator(g TokenGenerator) (restore func()) {
	prev := tokenSource
	tokenSource = g
	return func() { tokenSource = prev }
}
