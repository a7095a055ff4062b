/*
	`guid.New` generates short string identifiers used to tag requests
	and calculation runs in logs.

	The ids are a millisecond timestamp rendered in a reduced base32
	alphabet, a dash, and 40 bits of randomness -- so ids sort roughly
	chronologically (a politeness to humans grepping logs), and the
	random tail keeps concurrent requests distinct.  They are not
	rfc4122 uuids and there is no binary form; this is an id generator,
	not a serialization format.
*/
package guid

import (
	"crypto/rand"
	"sync"
	"time"
)

// case-insensitive base32, ascii-ordered, with the easily-confused
// lookalike characters (i, l, u) dropped.
const alphabet = "0123456789abcdefghjkmnopqrstvwxy"

const (
	timeLen = 9 // 45 bits of milliseconds; rolls over circa 3084.
	randLen = 8
)

var mu sync.Mutex

func New() string {
	var id [timeLen + 1 + randLen]byte

	ms := time.Now().UTC().UnixMilli()
	for i := timeLen - 1; i >= 0; i-- {
		id[i] = alphabet[ms&31]
		ms >>= 5
	}
	id[timeLen] = '-'

	var tail [randLen]byte
	mu.Lock()
	rand.Read(tail[:])
	mu.Unlock()
	for i, b := range tail {
		id[timeLen+1+i] = alphabet[int(b)&31]
	}

	return string(id[:])
}
