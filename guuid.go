package guuid

import (
	"fmt"
	"regexp"
	"time"
)

// defaultFactory backs the package-level functions. It is never replaced;
// build a Factory with NewFactory for any other configuration.
var defaultFactory = NewFactory()

var (
	// Nil is the nil UUID (all zeros)
	Nil = Must(defaultFactory.FromString("00000000-0000-0000-0000-000000000000"))

	// Max is the max UUID (all ones)
	Max = Must(defaultFactory.FromString("ffffffff-ffff-ffff-ffff-ffffffffffff"))
)

// Well known namespaces for name-based UUIDs.
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// Parse parses a UUID from its string representation.
// It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//
// Hex digits may be upper or lower case.
func Parse(s string) (UUID, error) {
	return defaultFactory.FromString(s)
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// New generates a new UUIDv7 using the default factory.
func New() (UUID, error) {
	return defaultFactory.NewV7()
}

// NewV1 generates a time-based UUID.
func NewV1(opts ...TimeOption) (UUID, error) {
	return defaultFactory.NewV1(opts...)
}

// NewV2 generates a DCE Security UUID.
func NewV2(domain Domain, opts ...TimeOption) (UUID, error) {
	return defaultFactory.NewV2(domain, opts...)
}

// NewV3 generates a name-based UUID using MD5.
func NewV3(ns UUID, name string) (UUID, error) {
	return defaultFactory.NewV3(ns, name)
}

// NewV4 generates a random UUID.
func NewV4() (UUID, error) {
	return defaultFactory.NewV4()
}

// NewV5 generates a name-based UUID using SHA-1.
func NewV5(ns UUID, name string) (UUID, error) {
	return defaultFactory.NewV5(ns, name)
}

// NewV6 generates a reordered-time UUID.
func NewV6(opts ...TimeOption) (UUID, error) {
	return defaultFactory.NewV6(opts...)
}

// NewV7 is an alias for New() for explicit version specification
func NewV7() (UUID, error) {
	return defaultFactory.NewV7()
}

// NewV7At generates a UUIDv7 for t.
func NewV7At(t time.Time) (UUID, error) {
	return defaultFactory.NewV7At(t)
}

// NewV8 generates a custom UUID from 16 bytes.
func NewV8(b []byte) (UUID, error) {
	return defaultFactory.NewV8(b)
}

var validPattern = regexp.MustCompile(`^[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[1-8][0-9A-Fa-f]{3}-[89ABab][0-9A-Fa-f]{3}-[0-9A-Fa-f]{12}$`)

// IsValid reports whether s is an RFC 4122 UUID of versions 1 to 8, or the
// nil or max UUID. The urn:uuid: prefix and braces are allowed; the bare
// 32-digit form is not.
func IsValid(s string) bool {
	t := stripDecorations(s)
	switch t {
	case "00000000-0000-0000-0000-000000000000", "ffffffff-ffff-ffff-ffff-ffffffffffff", "FFFFFFFF-FFFF-FFFF-FFFF-FFFFFFFFFFFF":
		return true
	}
	return validPattern.MatchString(t)
}
