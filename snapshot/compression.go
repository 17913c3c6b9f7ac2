package snapshot

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone Compression = 0
	// CompressionLZ4 indicates LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD indicates ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Compressed block format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// If CompressedSize == 0, the block is stored uncompressed.
const blockHeaderSize = 8

// compressBlock compresses a payload using the specified algorithm.
// Falls back to storing the payload uncompressed when compression does not
// pay off (ratio > 0.9) or the input is incompressible.
func compressBlock(data []byte, compression Compression) ([]byte, error) {
	if compression == CompressionNone || len(data) == 0 {
		return data, nil
	}

	var compressed []byte
	var err error

	switch compression {
	case CompressionLZ4:
		compressed, err = compressBlockLZ4(data)
	case CompressionZSTD:
		compressed, err = compressBlockZSTD(data)
	default:
		return data, nil
	}

	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0) // 0 = uncompressed
		copy(result[blockHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)
	return result, nil
}

// compressBlockLZ4 compresses data using LZ4.
func compressBlockLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, nil // Incompressible
	}

	return compressed[:n], nil
}

// compressBlockZSTD compresses data using ZSTD.
func compressBlockZSTD(data []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

// decompressBlock reverses compressBlock.
func decompressBlock(data []byte, compression Compression) ([]byte, error) {
	if compression == CompressionNone {
		return data, nil
	}
	if len(data) < blockHeaderSize {
		return nil, errors.New("block too small for header")
	}

	// The sizes are external input; compare in uint64 so a corrupt value
	// near the uint32 maximum cannot overflow the bound and pass.
	uncompressedSize := uint64(binary.LittleEndian.Uint32(data[0:]))
	compressedSize := uint64(binary.LittleEndian.Uint32(data[4:]))

	if compressedSize == 0 {
		// Uncompressed block
		if uint64(len(data)) < blockHeaderSize+uncompressedSize {
			return nil, errors.New("block data too small")
		}
		return data[blockHeaderSize : blockHeaderSize+uncompressedSize], nil
	}

	if uint64(len(data)) < blockHeaderSize+compressedSize {
		return nil, errors.New("compressed block data too small")
	}

	if uncompressedSize > maxPayloadSize {
		return nil, errors.New("uncompressed size too large")
	}

	compressedData := data[blockHeaderSize : blockHeaderSize+compressedSize]
	result := make([]byte, uncompressedSize)

	switch compression {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(compressedData, result)
		if err != nil {
			return nil, err
		}
		if uint64(n) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(compressedData, result[:0])
		if err != nil {
			return nil, err
		}
		if uint64(len(decoded)) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return decoded, nil

	default:
		return nil, errors.New("unknown compression type")
	}
}
