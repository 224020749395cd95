package picontrol

import (
	"encoding/binary"
	"fmt"
)

// DecodeValue interprets data as a little-endian unsigned integer. The
// length of data must match a supported variable width, 1, 2 or 4 bytes.
func DecodeValue(data []byte) (uint32, error) {
	switch len(data) {
	case 1:
		return uint32(data[0]), nil
	case 2:
		return uint32(binary.LittleEndian.Uint16(data)), nil
	case 4:
		return binary.LittleEndian.Uint32(data), nil
	}

	return 0, fmt.Errorf("can not decode value of %d bytes", len(data))
}

// NumToBytes converts num to its little-endian representation of the given
// width in bits. Supported widths are 8, 16, 32 and 64.
func NumToBytes(num uint64, bits int) ([]byte, error) {
	switch bits {
	case 8:
		return []byte{uint8(num)}, nil
	case 16:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(num))
		return buf, nil
	case 32:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(num))
		return buf, nil
	case 64:
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, num)
		return buf, nil
	}

	return nil, fmt.Errorf("invalid size %d", bits)
}
