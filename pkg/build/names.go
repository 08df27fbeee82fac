package build

import (
	"math/rand"
	"time"
)

const nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const nameLength = 8

// NameSource yields a build target name when the user does not supply one.
// It is injected so tests can pin the randomness down.
type NameSource func() string

// RandomNames returns a source producing 8-character alphanumeric tokens
// drawn from r.
func RandomNames(r *rand.Rand) NameSource {
	return func() string {
		b := make([]byte, nameLength)
		for i := range b {
			b[i] = nameAlphabet[r.Intn(len(nameAlphabet))]
		}
		return string(b)
	}
}

// DefaultNameSource is the time-seeded source the CLI uses.
func DefaultNameSource() NameSource {
	return RandomNames(rand.New(rand.NewSource(time.Now().UnixNano())))
}
