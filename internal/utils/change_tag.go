package utils

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"hash"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/blake2b"
)

// changeTagSize is the digest length in bytes of a change tag.
const changeTagSize = 16

var changeTagPool = sync.Pool{
	New: func() any {
		h, err := blake2b.New(changeTagSize, nil)
		if err != nil {
			panic(err)
		}
		return h
	},
}

// ChangeTag derives a new concurrency version for a record write.
//
// The tag covers the previous tag, the record identity, the write time and
// every field in key order, so two writes only share a tag when they are the
// same write. The result is a hex string.
func ChangeTag(previous, zone, name string, at time.Time, fields map[string]json.RawMessage) string {
	h := changeTagPool.Get().(hash.Hash)
	defer func() {
		h.Reset()
		changeTagPool.Put(h)
	}()

	writeString(h, previous)
	writeString(h, zone)
	writeString(h, name)

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(at.UnixNano()))
	h.Write(ts[:])

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeString(h, k)
		writeString(h, string(fields[k]))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// writeString writes a length-prefixed string so that adjacent values cannot
// run into each other.
func writeString(h hash.Hash, s string) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(s)))
	h.Write(n[:])
	h.Write([]byte(s))
}
