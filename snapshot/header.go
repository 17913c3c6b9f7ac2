package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

var (
	snapshotMagic  = [4]byte{'D', 'V', 'S', '0'}
	headerVersion  = uint16(1)
	headerFixedLen = 16 // excludes variable codec name bytes
	flagCompressed = uint16(1)
)

type headerInfo struct {
	Compression Compression
	CodecName   string
}

func writeHeader(w io.Writer, info headerInfo) error {
	var flags uint16
	if info.Compression != CompressionNone {
		flags |= flagCompressed
	}

	buf := make([]byte, 0, headerFixedLen+2+len(info.CodecName))
	buf = append(buf, snapshotMagic[:]...)
	var fixed [12]byte
	binary.LittleEndian.PutUint16(fixed[0:2], headerVersion)
	binary.LittleEndian.PutUint16(fixed[2:4], flags)
	fixed[4] = byte(info.Compression)
	// fixed[5:12] reserved
	buf = append(buf, fixed[:]...)

	if len(info.CodecName) > math.MaxUint16 {
		return fmt.Errorf("snapshot: codec name too long: %d bytes", len(info.CodecName))
	}
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(info.CodecName)))
	buf = append(buf, info.CodecName...)

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}
	return nil
}

func readHeader(r io.Reader) (headerInfo, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return headerInfo{}, fmt.Errorf("failed to read snapshot header magic: %w", err)
	}
	if magic != snapshotMagic {
		return headerInfo{}, ErrInvalidMagic
	}

	fixed := make([]byte, headerFixedLen-4)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return headerInfo{}, fmt.Errorf("failed to read snapshot header: %w", err)
	}

	version := binary.LittleEndian.Uint16(fixed[0:2])
	if version != headerVersion {
		return headerInfo{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	flags := binary.LittleEndian.Uint16(fixed[2:4])
	compression := Compression(fixed[4])
	if flags&flagCompressed == 0 {
		compression = CompressionNone
	}

	var nameLen [2]byte
	if _, err := io.ReadFull(r, nameLen[:]); err != nil {
		return headerInfo{}, fmt.Errorf("failed to read snapshot codec name length: %w", err)
	}
	name := make([]byte, binary.LittleEndian.Uint16(nameLen[:]))
	if _, err := io.ReadFull(r, name); err != nil {
		return headerInfo{}, fmt.Errorf("failed to read snapshot codec name: %w", err)
	}

	return headerInfo{Compression: compression, CodecName: string(name)}, nil
}
