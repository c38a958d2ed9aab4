package guuid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Lzww0608/guuid/v2/types"
)

func (u UUID) timeBased() (Version, error) {
	f := u.fieldsOrNil()
	v, ok := f.Version()
	if !ok || f.Layout() == LayoutNonstandard {
		return 0, ErrNotTimeBased
	}
	switch v {
	case VersionTimeBased, VersionDCESecurity, VersionReorderedTime, VersionTimeSorted:
		return v, nil
	}
	return 0, fmt.Errorf("%w: version %d", ErrNotTimeBased, byte(v))
}

// Timestamp returns the raw timestamp bits of a time-based UUID: a 60-bit
// count of 100ns intervals since 1582-10-15 for versions 1, 2 and 6, and
// the 48-bit Unix millisecond count for version 7.
func (u UUID) Timestamp() (types.Hexadecimal, error) {
	if _, err := u.timeBased(); err != nil {
		return types.Hexadecimal{}, err
	}
	return u.fieldsOrNil().Timestamp(), nil
}

// DateTime returns the wall-clock time encoded in a time-based UUID.
// Version 2 UUIDs lose the low 32 bits of their timestamp to the local
// identifier, so their time is only accurate to about seven minutes.
func (u UUID) DateTime() (types.Time, error) {
	ts, err := u.Timestamp()
	if err != nil {
		return types.Time{}, err
	}
	times := u.times
	if times == nil {
		times = defaultFactory.conv.gregorian
	}
	return times.ConvertTime(ts)
}

// Time returns the time encoded in a time-based UUID as a UTC time.Time.
func (u UUID) Time() (time.Time, error) {
	t, err := u.DateTime()
	if err != nil {
		return time.Time{}, err
	}
	return t.StdTime()
}

// LocalDomain returns the DCE Security domain of a version 2 UUID.
func (u UUID) LocalDomain() (Domain, error) {
	if v, ok := u.Version(); !ok || v != VersionDCESecurity {
		return 0, ErrNotDCESecurity
	}
	b := logical(u.fieldsOrNil())
	return Domain(b[9]), nil
}

// LocalIdentifier returns the user, group or organization identifier of a
// version 2 UUID.
func (u UUID) LocalIdentifier() (types.Integer, error) {
	if v, ok := u.Version(); !ok || v != VersionDCESecurity {
		return types.Integer{}, ErrNotDCESecurity
	}
	b := logical(u.fieldsOrNil())
	return types.IntegerFromUint64(uint64(binary.BigEndian.Uint32(b[0:4]))), nil
}

// ToV6 converts a version 1 UUID to the version 6 UUID holding the same
// timestamp, clock sequence and node.
func (u UUID) ToV6() (UUID, error) {
	if v, ok := u.Version(); !ok || v != VersionTimeBased {
		return UUID{}, fmt.Errorf("%w: expected version 1", ErrNotConvertible)
	}
	return u.withLogical(v1ToV6(logical(u.fieldsOrNil())))
}

// ToV1 converts a version 6 UUID to the equivalent version 1 UUID.
func (u UUID) ToV1() (UUID, error) {
	if v, ok := u.Version(); !ok || v != VersionReorderedTime {
		return UUID{}, fmt.Errorf("%w: expected version 6", ErrNotConvertible)
	}
	return u.withLogical(v6ToV1(logical(u.fieldsOrNil())))
}

// withLogical returns a UUID with the same layout, codec and converters as
// u holding the logical value b.
func (u UUID) withLogical(b [16]byte) (UUID, error) {
	var (
		f   Fields
		err error
	)
	switch u.fieldsOrNil().Layout() {
	case LayoutGUID:
		s := swapGUID(b)
		f, err = NewGUIDFields(s[:])
	case LayoutNonstandard:
		f, err = NewNonstandardFields(b[:])
	default:
		f, err = NewFields(b[:])
	}
	if err != nil {
		return UUID{}, err
	}
	return UUID{fields: f, codec: u.codec, numbers: u.numbers, times: u.times}, nil
}

// v1ToV6 moves the 60-bit timestamp of a version 1 UUID into most
// significant first order.
func v1ToV6(b [16]byte) [16]byte {
	h := hex.EncodeToString(b[:])
	return mustDecode16(h[13:16] + h[8:12] + h[0:5] + "6" + h[5:8] + h[16:])
}

func v6ToV1(b [16]byte) [16]byte {
	h := hex.EncodeToString(b[:])
	return mustDecode16(h[7:12] + h[13:16] + h[3:7] + "1" + h[0:3] + h[16:])
}

func mustDecode16(s string) [16]byte {
	var b [16]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		panic(err)
	}
	return b
}
