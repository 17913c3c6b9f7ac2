package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/hupe1980/densevec/codec"
)

var (
	// ErrInvalidMagic is returned when the input does not start with a
	// snapshot header.
	ErrInvalidMagic = errors.New("snapshot: invalid header magic")
	// ErrUnsupportedVersion is returned for snapshots written by an
	// incompatible format version.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported header version")
	// ErrUnknownCodec is returned when the codec named in the header is not
	// registered.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")
	// ErrChecksumMismatch is returned when the stored payload fails its CRC32
	// check.
	ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")
	// ErrInvalidLength is returned when a stored payload length is
	// implausible. Lengths are external input and must be validated before
	// any allocation.
	ErrInvalidLength = errors.New("snapshot: invalid payload length")
)

// maxPayloadSize bounds the stored payload length accepted by Read. The
// length field is external input; without a bound a corrupt file could
// demand an arbitrary allocation before the checksum is ever verified.
const maxPayloadSize = 1 << 31

// Options configures snapshot writing.
type Options struct {
	// Codec encodes the value. Its name is recorded in the header so the
	// snapshot can be decoded later. Defaults to codec.Default.
	Codec codec.Codec

	// Compression selects the payload compression. Defaults to
	// CompressionNone.
	Compression Compression
}

// Write serializes v into the snapshot format.
//
// v is typically a *densevec.DefaultVec or *bitset.BitSet, but any value the
// configured codec can encode works.
func Write(w io.Writer, v any, optFns ...func(o *Options)) error {
	opts := Options{
		Codec:       codec.Default,
		Compression: CompressionNone,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	payload, err := opts.Codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot payload: %w", err)
	}

	// An empty payload is stored raw, without a block header; the recorded
	// compression must say so or the reader would try to parse one.
	compression := opts.Compression
	if len(payload) == 0 {
		compression = CompressionNone
	}

	stored, err := compressBlock(payload, compression)
	if err != nil {
		return fmt.Errorf("failed to compress snapshot payload: %w", err)
	}

	if err := writeHeader(w, headerInfo{
		Compression: compression,
		CodecName:   opts.Codec.Name(),
	}); err != nil {
		return err
	}

	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(stored)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("failed to write snapshot payload length: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("failed to write snapshot payload: %w", err)
	}

	var crcBuf [4]byte
	binary.LittleEndian.PutUint32(crcBuf[:], crc32.ChecksumIEEE(stored))
	if _, err := w.Write(crcBuf[:]); err != nil {
		return fmt.Errorf("failed to write snapshot checksum: %w", err)
	}
	return nil
}

// Read deserializes a snapshot into v, selecting the codec recorded in the
// header. v must be a pointer.
func Read(r io.Reader, v any) error {
	info, err := readHeader(r)
	if err != nil {
		return err
	}

	c, ok := codec.ByName(info.CodecName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodec, info.CodecName)
	}

	var lenBuf [8]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return fmt.Errorf("failed to read snapshot payload length: %w", err)
	}
	storedLen := binary.LittleEndian.Uint64(lenBuf[:])
	if storedLen > maxPayloadSize {
		return fmt.Errorf("%w: %d", ErrInvalidLength, storedLen)
	}
	stored := make([]byte, storedLen)
	if _, err := io.ReadFull(r, stored); err != nil {
		return fmt.Errorf("failed to read snapshot payload: %w", err)
	}

	var crcBuf [4]byte
	if _, err := io.ReadFull(r, crcBuf[:]); err != nil {
		return fmt.Errorf("failed to read snapshot checksum: %w", err)
	}
	if crc32.ChecksumIEEE(stored) != binary.LittleEndian.Uint32(crcBuf[:]) {
		return ErrChecksumMismatch
	}

	payload, err := decompressBlock(stored, info.Compression)
	if err != nil {
		return fmt.Errorf("failed to decompress snapshot payload: %w", err)
	}

	if err := c.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("failed to decode snapshot payload: %w", err)
	}
	return nil
}
