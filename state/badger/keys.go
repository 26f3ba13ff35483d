package badger

import (
	"encoding/binary"
	"fmt"
)

// Key prefixes for different data types
const (
	entryPrefix        = "stentry"
	iterationLogPrefix = "itlog"
)

// makeEntryKey generates a key for a state entry.
func makeEntryKey(key string) []byte {
	return []byte(fmt.Sprintf("%s:%s", entryPrefix, key))
}

// makeIterationKey generates a composite key for one iteration record.
// Format: prefix:requestID:iteration
func makeIterationKey(requestID string, iteration int) []byte {
	prefix := fmt.Sprintf("%s:%s:", iterationLogPrefix, requestID)
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+4)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint32(buf[offset:], uint32(iteration))
	return buf
}

// makeIterationScanPrefix generates the scan prefix for a request's log.
func makeIterationScanPrefix(requestID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", iterationLogPrefix, requestID))
}
