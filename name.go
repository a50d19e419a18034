package ramfat

import (
	"strings"

	"github.com/rusted-os/ramfat/checkpoint"
)

// DefaultExt is appended to every entry by the store. Callers never choose an extension.
var DefaultExt = [3]byte{'T', 'X', 'T'}

// Name is the 8 byte, space padded, upper case base name of a file.
type Name [8]byte

// NameFromBytes upper cases ASCII letters of b and truncates or pads it to 8 bytes.
// Bytes outside of a-z are kept as they are.
func NameFromBytes(b []byte) Name {
	var n Name
	for i := range n {
		if i >= len(b) {
			n[i] = ' '
			continue
		}
		c := b[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		n[i] = c
	}
	return n
}

// ParseName is NameFromBytes for strings.
func ParseName(s string) Name {
	return NameFromBytes([]byte(s))
}

// String returns the name without padding.
func (n Name) String() string {
	return strings.TrimRight(string(n[:]), " ")
}

// Valid reports whether the name may be written into a slot. A first byte of
// 0x00 or 0xE5 would make the slot look free.
func (n Name) Valid() bool {
	return n[0] != entryFree && n[0] != entryDeleted
}

// parsePath maps a slash separated path of the root directory to a Name.
// It accepts "NAME" and "NAME.TXT" in any case.
// root is true for the root directory itself.
func parsePath(p string) (name Name, root bool, err error) {
	p = strings.Trim(p, "/")
	if p == "" || p == "." {
		return Name{}, true, nil
	}

	if strings.Contains(p, "/") {
		return Name{}, false, checkpoint.Wrap(ErrInvalidName, ErrNoDirectories)
	}

	base := p
	if dot := strings.LastIndexByte(p, '.'); dot >= 0 {
		base = p[:dot]
		if !strings.EqualFold(p[dot+1:], string(DefaultExt[:])) {
			return Name{}, false, checkpoint.From(ErrInvalidName)
		}
	}

	if base == "" || len(base) > len(name) {
		return Name{}, false, checkpoint.From(ErrInvalidName)
	}

	return ParseName(base), false, nil
}
