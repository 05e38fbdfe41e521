package minimax

import (
	"encoding/binary"
	"errors"
	"time"

	"lukechampine.com/frand"
)

var (
	ErrInvalidDepth  = errors.New("minimax: search depth must be positive")
	ErrInvalidPlayer = errors.New("minimax: invalid player")
	ErrUnknownPolicy = errors.New("minimax: unknown policy")
)

// Source of randomness used by the random tie-break
type RandSource interface {
	Intn(n int) int
}

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the random number generators
// of the engines, by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

// ChaCha rounds and buffer size of the engine's generator
const (
	randRounds  = 12
	randBufSize = 1024
)

// Create a new generator seeded with given value
func NewRand(seed int64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	return frand.NewCustom(key[:], randBufSize, randRounds)
}
