package guuid

import (
	"github.com/Lzww0608/guuid/v2/calc"
	"github.com/Lzww0608/guuid/v2/convert"
	"github.com/Lzww0608/guuid/v2/types"
	"github.com/Lzww0608/guuid/v2/uuiderr"
)

// Error kinds. Every error returned by this module matches exactly one of
// them under errors.Is.
var (
	ErrInvalidArgument       = uuiderr.ErrInvalidArgument
	ErrUnsupportedOperation  = uuiderr.ErrUnsupportedOperation
	ErrUnsatisfiedDependency = uuiderr.ErrUnsatisfiedDependency
	ErrNoSuitableBuilder     = uuiderr.ErrNoSuitableBuilder
)

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = uuiderr.New(ErrInvalidArgument, "invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = uuiderr.New(ErrInvalidArgument, "invalid UUID length (expected 16 bytes)")

	// ErrInvalidLayout indicates bytes that do not form a valid UUID for the
	// requested layout
	ErrInvalidLayout = uuiderr.New(ErrInvalidArgument, "invalid UUID layout")

	// ErrInvalidVersion indicates that the UUID version is not supported
	ErrInvalidVersion = uuiderr.New(ErrInvalidArgument, "invalid or unsupported UUID version")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122 or Microsoft
	ErrInvalidVariant = uuiderr.New(ErrInvalidArgument, "invalid UUID variant (expected RFC 4122 or Microsoft)")

	// ErrInvalidNode indicates a node that is not at most 12 hexadecimal digits
	ErrInvalidNode = uuiderr.New(ErrInvalidArgument, "invalid node value")

	// ErrInvalidClockSeq indicates a clock sequence outside its bit width
	ErrInvalidClockSeq = uuiderr.New(ErrInvalidArgument, "clock sequence out of bounds")

	// ErrInvalidDomain indicates an unknown DCE Security domain
	ErrInvalidDomain = uuiderr.New(ErrInvalidArgument, "local domain must be a valid DCE Security domain")

	// ErrInvalidLocalIdentifier indicates a DCE local identifier outside 0..2^32-1
	ErrInvalidLocalIdentifier = uuiderr.New(ErrInvalidArgument, "local identifier must be an unsigned 32-bit integer")

	// ErrNotTimeBased indicates a time accessor called on a UUID without a timestamp
	ErrNotTimeBased = uuiderr.New(ErrUnsupportedOperation, "UUID is not time-based")

	// ErrNotDCESecurity indicates a DCE accessor called on a UUID that is not version 2
	ErrNotDCESecurity = uuiderr.New(ErrUnsupportedOperation, "UUID is not a version 2 (DCE Security) UUID")

	// ErrNotConvertible indicates a v1/v6 conversion requested from another version
	ErrNotConvertible = uuiderr.New(ErrUnsupportedOperation, "UUID cannot be converted between versions 1 and 6")

	// ErrNoLocalIdentifier indicates the host cannot supply a DCE local identifier
	ErrNoLocalIdentifier = uuiderr.New(ErrUnsatisfiedDependency, "unable to get a local identifier for the DCE Security domain")

	// ErrNoNode indicates that no node provider could supply a node
	ErrNoNode = uuiderr.New(ErrUnsatisfiedDependency, "unable to find a suitable node provider")
)

// Errors of the lower-level packages, re-exported for convenience.
var (
	ErrInvalidHexadecimal = types.ErrInvalidHexadecimal
	ErrInvalidInteger     = types.ErrInvalidInteger
	ErrTimeOutOfRange     = convert.ErrTimeOutOfRange
	ErrNoCalculator       = convert.ErrNoCalculator
	ErrDivisionByZero     = calc.ErrDivisionByZero
)
