package pkg

import (
	"math/rand"
	"time"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Seed the shared source once so restarted processes don't repeat the same
// id sequence into a shared keyspace.
func init() {
	rand.Seed(time.Now().UnixNano())
}

// RandString generates a random alphanumeric code, used as game ids.
func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
