package guuid

import "strconv"

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	VersionReorderedTime // UUIDv6
	VersionTimeSorted    // UUIDv7
	VersionCustom        // UUIDv8
)

var versionNames = [...]string{
	VersionTimeBased:     "1 (time and node based)",
	VersionDCESecurity:   "2 (DCE security based)",
	VersionNameBasedMD5:  "3 (name based, MD5)",
	VersionRandom:        "4 (random data based)",
	VersionNameBasedSHA1: "5 (name based, SHA-1)",
	VersionReorderedTime: "6 (reordered time)",
	VersionTimeSorted:    "7 (unix epoch time)",
	VersionCustom:        "8 (custom)",
}

// Valid reports whether v is one of the defined versions 1 through 8.
func (v Version) Valid() bool {
	return v >= VersionTimeBased && v <= VersionCustom
}

func (v Version) String() string {
	if v.Valid() {
		return versionNames[v]
	}
	return "Version(" + strconv.Itoa(int(v)) + ")"
}

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "Reserved for NCS (Network Computing System)"
	case VariantRFC4122:
		return "RFC 4122: Leach-Salz"
	case VariantMicrosoft:
		return "Reserved for Microsoft Corporation"
	case VariantFuture:
		return "Reserved for future use"
	}
	return "Variant(" + strconv.Itoa(int(v)) + ")"
}

// variantOf decodes the variant from clock_seq_hi_and_reserved.
func variantOf(b byte) Variant {
	switch {
	case (b & 0x80) == 0x00:
		return VariantNCS
	case (b & 0xc0) == 0x80:
		return VariantRFC4122
	case (b & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// Layout identifies how the 16 stored bytes map onto the logical fields.
type Layout byte

const (
	// LayoutRFC4122 stores every field big-endian, in canonical string order.
	LayoutRFC4122 Layout = iota
	// LayoutGUID stores time_low, time_mid and time_hi_and_version little-endian.
	LayoutGUID
	// LayoutNonstandard stores fields big-endian without version or variant checks.
	LayoutNonstandard
)

func (l Layout) String() string {
	switch l {
	case LayoutRFC4122:
		return "rfc4122"
	case LayoutGUID:
		return "guid"
	case LayoutNonstandard:
		return "nonstandard"
	}
	return "Layout(" + strconv.Itoa(int(l)) + ")"
}

// DCE Security domains stored in clock_seq_low of a version 2 UUID.
type Domain byte

const (
	DomainPerson Domain = iota
	DomainGroup
	DomainOrg
)

func (d Domain) Valid() bool {
	return d <= DomainOrg
}

func (d Domain) String() string {
	switch d {
	case DomainPerson:
		return "person"
	case DomainGroup:
		return "group"
	case DomainOrg:
		return "org"
	}
	return "Domain(" + strconv.Itoa(int(d)) + ")"
}
