package random

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/chacha20"
)

const (
	// Chacha20SeedLen is the exact seed size of a Chacha20 generator.
	Chacha20SeedLen = chacha20.KeySize
	// Chacha20CustomizerMaxLen is the maximum customizer size of a Chacha20 generator.
	Chacha20CustomizerMaxLen = chacha20.NonceSize

	chacha20BlockSize = 64
	// 256 GiB
	chacha20MaxKeystreamLen = uint64(math.MaxUint32+1) * chacha20BlockSize
	// seed, customizer and the number of output bytes
	chacha20StateLen = Chacha20SeedLen + Chacha20CustomizerMaxLen + 8
)

// Chacha20 is a PRG based on the ChaCha20 stream cipher keystream.
//
// The seed is used as the cipher key and the customizer as the cipher nonce, so that
// the same seed with different customizers produces independent outputs.
type Chacha20 struct {
	genericPRG

	seed       [Chacha20SeedLen]byte
	customizer [Chacha20CustomizerMaxLen]byte
	// number of bytes read from the keystream so far
	consumed uint64
	cipher   *chacha20.Cipher
}

var _ Rand = (*Chacha20)(nil)

// NewChacha20 returns a new Chacha20-based PRG, seeded with
// the input seed (32 bytes) and a customizer (up to 12 bytes).
//
// It is recommended to sample the seed uniformly at random.
// The customizer is padded with zero bytes and can be left empty.
//
// It returns:
//   - (nil, InvalidInputsError) if the seed or the customizer have an invalid size
//   - (prg, nil) otherwise
func NewChacha20(seed []byte, customizer []byte) (*Chacha20, error) {
	if len(seed) != Chacha20SeedLen {
		return nil, NewInvalidInputsErrorf("new Chacha20: seed length should be %d bytes, got %d", Chacha20SeedLen, len(seed))
	}
	if len(customizer) > Chacha20CustomizerMaxLen {
		return nil, NewInvalidInputsErrorf("new Chacha20: customizer length should be at most %d bytes, got %d", Chacha20CustomizerMaxLen, len(customizer))
	}

	prg := &Chacha20{}
	copy(prg.seed[:], seed)
	copy(prg.customizer[:], customizer)
	if err := prg.initCipher(); err != nil {
		return nil, err
	}
	return prg, nil
}

// RestoreChacha20 restores a Chacha20 PRG from a state returned by State.
// The restored generator outputs the same randoms as the generator the state was taken from.
//
// It returns:
//   - (nil, InvalidInputsError) if the state has an invalid size
//   - (prg, nil) otherwise
func RestoreChacha20(state []byte) (*Chacha20, error) {
	if len(state) != chacha20StateLen {
		return nil, NewInvalidInputsErrorf("restore Chacha20: state length should be %d bytes, got %d", chacha20StateLen, len(state))
	}

	consumed := binary.LittleEndian.Uint64(state[Chacha20SeedLen+Chacha20CustomizerMaxLen:])
	// the block counter of the keystream is 32 bits
	if consumed/chacha20BlockSize > math.MaxUint32 {
		return nil, NewInvalidInputsErrorf("restore Chacha20: keystream position %d is beyond the %d bytes keystream", consumed, chacha20MaxKeystreamLen)
	}

	prg := &Chacha20{}
	copy(prg.seed[:], state[:Chacha20SeedLen])
	copy(prg.customizer[:], state[Chacha20SeedLen:Chacha20SeedLen+Chacha20CustomizerMaxLen])
	if err := prg.initCipher(); err != nil {
		return nil, err
	}

	// move the keystream to the start of the current block, then
	// discard the bytes already read from that block
	prg.cipher.SetCounter(uint32(consumed / chacha20BlockSize))
	prg.consumed = consumed - consumed%chacha20BlockSize
	prg.Read(make([]byte, consumed%chacha20BlockSize))
	return prg, nil
}

func (c *Chacha20) initCipher() error {
	cipher, err := chacha20.NewUnauthenticatedCipher(c.seed[:], c.customizer[:])
	if err != nil {
		return NewInvalidInputsErrorf("chacha20 cipher instantiation failed: %w", err)
	}
	c.cipher = cipher
	c.genericPRG = genericPRG{randCore: c}
	return nil
}

// Read fills the input slice with random bytes.
// The keystream is limited to 256 GiB per seed and customizer.
func (c *Chacha20) Read(buffer []byte) {
	for i := range buffer {
		buffer[i] = 0
	}
	c.cipher.XORKeyStream(buffer, buffer)
	c.consumed += uint64(len(buffer))
}

// State returns the seed, the customizer and the keystream position of the generator.
// The state can be used with RestoreChacha20.
func (c *Chacha20) State() []byte {
	state := make([]byte, 0, chacha20StateLen)
	state = append(state, c.seed[:]...)
	state = append(state, c.customizer[:]...)
	return binary.LittleEndian.AppendUint64(state, c.consumed)
}
