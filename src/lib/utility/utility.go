package utility

import "encoding/binary"

func Concat[T any](arrays ...[]T) []T {
	result := []T{}
	for _, ele := range arrays {
		result = append(result, ele...)
	}
	return result
}

// Int32ToBytes renders v in the same little-endian layout the dat file
// format uses on disk.
func Int32ToBytes(v int32) []byte {
	int_buffer := make([]byte, 4)
	binary.LittleEndian.PutUint32(int_buffer, uint32(v))
	return int_buffer
}
