package sim

import (
	"crypto/rand"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"

	"qrand/internal/domain"
)

// DefaultQubits is the register width when Config leaves it zero.
const DefaultQubits = 9

// Config describes a backend instance.
type Config struct {
	Qubits int         // register width; 0 means DefaultQubits
	Seed   uint64      // measurement keystream seed; 0 draws a random key
	Sink   domain.Sink // destination for recorded outputs
}

// Backend is a seedable classical measurement oracle.
type Backend struct {
	sink         domain.Sink
	slots        []domain.Bit
	bits         *bitStream
	gates        uint64
	measurements uint64
}

// New builds a backend from cfg. It fails only when no seed is given
// and the system randomness source is unavailable.
func New(cfg Config) (*Backend, error) {
	qubits := cfg.Qubits
	if qubits == 0 {
		qubits = DefaultQubits
	}
	bits, err := newBitStream(cfg.Seed)
	if err != nil {
		return nil, err
	}
	return &Backend{
		sink:  cfg.Sink,
		slots: make([]domain.Bit, qubits),
		bits:  bits,
	}, nil
}

var _ domain.Intrinsics = (*Backend)(nil)

func (b *Backend) X(q domain.Qubit) {
	_ = b.slots[q] // out-of-range qubits are fatal, as contracted
	b.gates++
}

func (b *Backend) H(q domain.Qubit) {
	_ = b.slots[q]
	b.gates++
}

func (b *Backend) CZ(control, target domain.Qubit) {
	_ = b.slots[control]
	_ = b.slots[target]
	b.gates++
}

func (b *Backend) MResetZ(q domain.Qubit, r domain.Result) {
	_ = b.slots[q]
	b.slots[r] = b.bits.next()
	b.measurements++
}

func (b *Backend) ReadBit(r domain.Result) domain.Bit {
	return b.slots[r]
}

func (b *Backend) RecordArray(size int, label string) {
	b.sink.Array(size, label)
}

func (b *Backend) RecordResult(r domain.Result, label string) {
	b.sink.Result(b.slots[r], label)
}

// Gates reports how many gate applications the backend has accepted.
func (b *Backend) Gates() uint64 { return b.gates }

// Measurements reports how many measure-and-reset calls have run.
func (b *Backend) Measurements() uint64 { return b.measurements }

// bitStream serves single bits off a ChaCha20 keystream. A fixed seed
// reproduces the exact same outcome sequence across runs.
type bitStream struct {
	cipher *chacha20.Cipher
	cur    byte
	left   int
}

func newBitStream(seed uint64) (*bitStream, error) {
	var key [chacha20.KeySize]byte
	if seed == 0 {
		if _, err := rand.Read(key[:]); err != nil {
			return nil, err
		}
	} else {
		binary.LittleEndian.PutUint64(key[:8], seed)
	}
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &bitStream{cipher: cipher}, nil
}

func (s *bitStream) next() domain.Bit {
	if s.left == 0 {
		buf := [1]byte{}
		s.cipher.XORKeyStream(buf[:], buf[:])
		s.cur = buf[0]
		s.left = 8
	}
	bit := domain.Bit(s.cur & 1)
	s.cur >>= 1
	s.left--
	return bit
}
