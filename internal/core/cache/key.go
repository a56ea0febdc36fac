// internal/core/cache/key.go
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// digestBytes is the digest length kept in keys (128 bits)
const digestBytes = 16

// NamedArg is a keyword argument. Named arguments are sorted by name before
// hashing, so call-site order never changes a key.
type NamedArg struct {
	Name  string
	Value any
}

// Named builds a keyword argument
func Named(name string, value any) NamedArg {
	return NamedArg{Name: name, Value: value}
}

// OpaqueFunc reports whether an argument must be left out of the key
type OpaqueFunc func(arg any) bool

// DefaultOpaque excludes request contexts and persistence handles
func DefaultOpaque(arg any) bool {
	switch arg.(type) {
	case context.Context, ports.DBTX:
		return true
	}
	return false
}

// KeyDeriver turns an operation call into a stable cache key of the form
// prefix:operation[:tag]:digest.
type KeyDeriver struct {
	opaque OpaqueFunc
}

// NewKeyDeriver creates a deriver. A nil predicate selects DefaultOpaque.
func NewKeyDeriver(opaque OpaqueFunc) *KeyDeriver {
	if opaque == nil {
		opaque = DefaultOpaque
	}
	return &KeyDeriver{opaque: opaque}
}

// Key derives a key from every argument
func (d *KeyDeriver) Key(prefix, op, tag string, args ...any) string {
	return build(prefix, op, tag, Digest(args...))
}

// KeyDB derives a key after dropping opaque arguments
func (d *KeyDeriver) KeyDB(prefix, op, tag string, args ...any) string {
	return build(prefix, op, tag, Digest(d.Filter(args)...))
}

// Filter returns args without the opaque ones, including opaque named values
func (d *KeyDeriver) Filter(args []any) []any {
	kept := make([]any, 0, len(args))
	for _, a := range args {
		v := a
		if n, ok := a.(NamedArg); ok {
			v = n.Value
		}
		if d.opaque(v) {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

func build(prefix, op, tag, digest string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(op) + len(tag) + len(digest) + 3)
	b.WriteString(prefix)
	b.WriteByte(':')
	b.WriteString(op)
	if tag != "" {
		b.WriteByte(':')
		b.WriteString(tag)
	}
	b.WriteByte(':')
	b.WriteString(digest)
	return b.String()
}

// signature is the canonical form hashed into a key
type signature struct {
	Args  []json.RawMessage `json:"a"`
	Named [][2]any          `json:"k"`
}

// Digest hashes positional and named arguments into a 32 character hex token
func Digest(args ...any) string {
	sig := signature{Args: []json.RawMessage{}, Named: [][2]any{}}
	var named []NamedArg
	for _, a := range args {
		if n, ok := a.(NamedArg); ok {
			named = append(named, n)
			continue
		}
		sig.Args = append(sig.Args, canonical(a))
	}
	sort.SliceStable(named, func(i, j int) bool { return named[i].Name < named[j].Name })
	for _, n := range named {
		sig.Named = append(sig.Named, [2]any{n.Name, canonical(n.Value)})
	}

	data, err := json.Marshal(sig)
	if err != nil {
		data = []byte(fmt.Sprintf("%#v", sig))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:digestBytes])
}

// canonical renders one argument. Values JSON cannot encode fall back to
// their Go syntax representation.
func canonical(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		data, _ = json.Marshal(fmt.Sprintf("%T:%#v", v, v))
	}
	return data
}

// EscapePattern quotes glob metacharacters so an identifier can be embedded
// in a store pattern.
func EscapePattern(s string) string {
	if !strings.ContainsAny(s, `*?[]\^`) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\', '^':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
