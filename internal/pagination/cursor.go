// Package pagination implements the Relay-style cursor protocol: an
// opaque token codec, GORM scopes that translate a page request into a
// bounded ascending range query, and the connection assembler that
// shapes raw rows into edges plus page metadata.
package pagination

import (
	"encoding/base64"
	"strconv"

	"github.com/simp-lee/cardbase/internal/domain"
)

// EncodeCursor wraps an ordering key in an opaque token: base64 of the
// key's decimal string form. The encoding exists only to mark the value
// as client-opaque; it carries no ordering semantics and no tamper
// resistance. Callers must compare decoded keys, never encoded tokens.
func EncodeCursor(key uint) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(key), 10)))
}

// DecodeCursor recovers the ordering key from an opaque token.
// It fails with a malformed-cursor error when the token is not valid
// base64, does not decode to an unsigned decimal integer, or decodes to
// zero (no live record can sit before the first key).
func DecodeCursor(cursor string) (uint, error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, domain.NewAppError(domain.CodeMalformedCursor, "malformed cursor", err)
	}

	key, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, domain.NewAppError(domain.CodeMalformedCursor, "malformed cursor", err)
	}
	if key == 0 || uint64(uint(key)) != key {
		return 0, domain.NewAppError(domain.CodeMalformedCursor, "malformed cursor", nil)
	}

	return uint(key), nil
}
