package model

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// NewItemID returns item-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space, which is
// plenty for a single document; collisions are additionally impossible
// within one process because reads never reuse freed IDs.
func NewItemID() string {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand only fails on broken platforms; an ID must still be
		// produced so structural operations stay total.
		panic("model: rand.Read: " + err.Error())
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return "item-" + strings.ToLower(enc.EncodeToString(b[:]))
}
