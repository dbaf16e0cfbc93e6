package grouptrip

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// codeAlphabet leaves out 0/O, 1/I and L so codes stay readable when
// shared over voice or handwriting
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// CodeLength is the length of every room code
const CodeLength = 6

// maxCodeAttempts bounds the collision-retry loop; hitting it means the
// live keyspace is effectively full
const maxCodeAttempts = 10000

// CodeGenerator produces short shareable room codes
type CodeGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewCodeGenerator returns a generator seeded from the clock
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Generate returns a fresh code not currently in use. The taken callback
// is queried for every candidate; the caller is expected to hold whatever
// lock makes that check race-free.
func (g *CodeGenerator) Generate(taken func(code string) bool) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := g.randomCode()
		if !taken(code) {
			return code, nil
		}
	}
	return "", ErrCodespaceExhausted
}

func (g *CodeGenerator) randomCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(CodeLength)
	for i := 0; i < CodeLength; i++ {
		b.WriteByte(codeAlphabet[g.rnd.Intn(len(codeAlphabet))])
	}
	return b.String()
}
