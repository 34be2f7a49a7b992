// Package util contains small helpers shared across the application
package util

import (
	"math/rand"
	"time"
	"unsafe"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	idxBits = 6 // bits needed to index idAlphabet
	idxMask = 1<<idxBits - 1
	idxMax  = 63 / idxBits // indices drawn per Int63 call
)

var src = rand.NewSource(time.Now().UnixNano())

// RandStr builds a short random identifier by masked-index sampling
// over batched Int63 draws. Runs on every request, so it stays
// allocation-light. Not for secrets, the one-shot tokens come from
// the security package
func RandStr(n int) string {
	b := make([]byte, n)
	for i, cache, remain := n-1, src.Int63(), idxMax; i >= 0; {
		if remain == 0 {
			cache, remain = src.Int63(), idxMax
		}
		if idx := int(cache & idxMask); idx < len(idAlphabet) {
			b[i] = idAlphabet[idx]
			i--
		}
		cache >>= idxBits
		remain--
	}

	return *(*string)(unsafe.Pointer(&b))
}
