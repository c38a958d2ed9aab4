package guuid

import (
	"encoding/binary"
	"log/slog"
	"strconv"
	"sync"

	"github.com/Lzww0608/guuid/v2/convert"
	"github.com/Lzww0608/guuid/v2/types"
)

// UnixTimeGenerator is a thread-safe UUIDv7 generator that ensures monotonicity
// within the same millisecond by using a counter with random data.
type UnixTimeGenerator struct {
	mu            sync.Mutex
	lastTimestamp uint64
	clockSeq      uint16 // 12-bit counter for sub-millisecond ordering

	random RandomGenerator
	times  convert.TimeConverter
	clock  TimeProvider
	logger *slog.Logger
}

// NewUnixTimeGenerator creates a UUIDv7 generator. times must convert to
// 48-bit Unix millisecond timestamps.
func NewUnixTimeGenerator(random RandomGenerator, times convert.TimeConverter, clock TimeProvider, logger *slog.Logger) *UnixTimeGenerator {
	return &UnixTimeGenerator{random: random, times: times, clock: clock, logger: logger}
}

// Generate returns the logical bytes of a version 7 UUID for the current time.
func (g *UnixTimeGenerator) Generate() ([16]byte, error) {
	return g.GenerateAt(g.clock.Time())
}

// GenerateAt returns the logical bytes of a version 7 UUID for t.
// UUIDs generated by one generator never go backwards, even if t does.
func (g *UnixTimeGenerator) GenerateAt(t types.Time) ([16]byte, error) {
	var uuid [16]byte

	hex, err := g.times.CalculateTime(t)
	if err != nil {
		return uuid, err
	}
	timestamp, err := strconv.ParseUint(hex.String(), 16, 64)
	if err != nil {
		return uuid, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Handle monotonicity: if timestamp is same or earlier, increment counter
	if timestamp <= g.lastTimestamp {
		timestamp = g.lastTimestamp
		g.clockSeq++
		// If counter overflows (> 12 bits), move on to the next millisecond
		if g.clockSeq > 0xFFF {
			g.clockSeq = 0
			timestamp++
			g.lastTimestamp = timestamp
			if g.logger != nil {
				g.logger.Debug("uuidv7 counter overflow, advancing timestamp", "timestamp_ms", timestamp)
			}
		}
	} else {
		/*
		 *The 12-bit rand_a field and the 62-bit rand_b field SHOULD be filled with
		 *random data, such as from a cryptographically secure random number generator.
		 */
		// New millisecond, generate new random clock sequence
		randBytes, err := g.random.Generate(2)
		if err != nil {
			return uuid, err
		}
		g.clockSeq = binary.BigEndian.Uint16(randBytes) & 0xFFF // 12 bits
		g.lastTimestamp = timestamp
	}

	// Encode timestamp (48 bits) - bytes 0-5
	binary.BigEndian.PutUint64(uuid[0:8], timestamp<<16)

	// Encode the 12-bit counter as rand_a - bytes 6-7, below the version nibble
	uuid[6] = byte(g.clockSeq >> 8)
	uuid[7] = byte(g.clockSeq)

	// Random data for bytes 8-15 (64 bits)
	randB, err := g.random.Generate(8)
	if err != nil {
		return uuid, err
	}
	copy(uuid[8:], randB)

	setVersion(&uuid, VersionTimeSorted)
	return uuid, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = guuid.Must(guuid.NewV7())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}
