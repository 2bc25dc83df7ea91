// Package gameid generates sortable identifiers for games: a UUIDv7 encoded
// as 26 characters of Crockford base32.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource interface for dependency injection of randomness
type RandSource interface {
	IntN(n int) int
}

// Generator produces game IDs from a clock and a random source.
type Generator struct {
	clock      quartz.Clock
	randSource RandSource
}

// NewGenerator returns a Generator. A nil clock uses the real clock and a nil
// randSource uses crypto/rand.
func NewGenerator(clock quartz.Clock, randSource RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, randSource: randSource}
}

// Generate creates a game ID using the real clock and crypto/rand.
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new game ID.
func (g *Generator) Generate() string {
	return encodeBase32(g.uuidV7())
}

func (g *Generator) uuidV7() [16]byte {
	var uuid [16]byte

	// 48-bit millisecond timestamp, then random bits with version and
	// variant overwritten.
	now := g.clock.Now().UnixMilli()
	for i := range 6 {
		uuid[i] = byte(now >> (40 - 8*i))
	}

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(g.randSource.IntN(256))
		}
	} else if _, err := rand.Read(uuid[6:]); err != nil {
		panic("gameid: failed to generate random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid
}

// encodeBase32 writes the 128 bits as 26 five-bit groups, left padded with
// two zero bits, so the first character is always 0-7.
func encodeBase32(data [16]byte) string {
	var sb strings.Builder
	sb.Grow(26)
	for i := range 26 {
		var value byte
		for k := range 5 {
			value <<= 1
			p := i*5 + k - 2
			if p >= 0 {
				value |= (data[p/8] >> (7 - p%8)) & 1
			}
		}
		sb.WriteByte(alphabet[value])
	}
	return sb.String()
}

func decodeBase32(id string) ([16]byte, error) {
	var data [16]byte
	for i := 0; i < len(id); i++ {
		value := strings.IndexByte(alphabet, id[i])
		if value < 0 {
			return data, fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
		for k := range 5 {
			p := i*5 + k - 2
			if p < 0 {
				continue
			}
			if (value>>(4-k))&1 == 1 {
				data[p/8] |= 1 << (7 - p%8)
			}
		}
	}
	return data, nil
}

// Validate checks if a game ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("game ID must be exactly 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	_, err := decodeBase32(id)
	return err
}

// Timestamp returns the creation time embedded in a game ID.
func Timestamp(id string) (time.Time, error) {
	if err := Validate(id); err != nil {
		return time.Time{}, err
	}
	data, _ := decodeBase32(id)
	var ms int64
	for i := range 6 {
		ms = ms<<8 | int64(data[i])
	}
	return time.UnixMilli(ms), nil
}
