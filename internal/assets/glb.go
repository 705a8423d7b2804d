package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrInvalidGLB = errors.New("invalid GLB")

const (
	glbMagic      = 0x46546C67 // "glTF"
	glbVersion    = 2
	glbHeaderSize = 12
)

// CheckGLB validates the binary glTF header: magic, container version and
// declared total length.
func CheckGLB(data []byte) error {
	if len(data) < glbHeaderSize {
		return fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidGLB, len(data))
	}
	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != glbMagic {
		return fmt.Errorf("%w: bad magic %#x", ErrInvalidGLB, magic)
	}
	if version := binary.LittleEndian.Uint32(data[4:8]); version != glbVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidGLB, version)
	}
	if length := binary.LittleEndian.Uint32(data[8:12]); int(length) != len(data) {
		return fmt.Errorf("%w: header declares %d bytes, file has %d", ErrInvalidGLB, length, len(data))
	}
	return nil
}
