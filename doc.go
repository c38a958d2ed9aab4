// Package guuid provides Universally Unique Identifiers (UUIDs) as defined by
// RFC 4122 and RFC 9562: parsing, validation, generation of versions 1 to 8,
// formatting and introspection of their fields.
//
// A UUID is an immutable value combining Fields, the 16 stored bytes with
// accessors for the named RFC 4122 fields, and a Codec, which defines its
// string and binary forms. Fields come in three layouts:
//   - RFC 4122: every field big-endian, in the order of the canonical string
//   - GUID: time_low, time_mid and time_hi_and_version little-endian
//   - Nonstandard: any 16 bytes, with no version
//
// Binary forms are codec specific. Bytes written by one codec must be read
// back with the same codec:
//   - StringCodec: the stored bytes
//   - GUIDStringCodec: GUID storage order, canonical string
//   - OrderedTimeCodec: time_hi and time_mid first, so version 1 UUIDs sort by time
//   - TimestampFirstCombCodec, TimestampLastCombCodec: for COMB UUIDs whose
//     random bytes end with a timestamp
//
// Basic Usage:
//
//	// Generate a new UUIDv7
//	id, err := guuid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Parse a UUID from string
//	id, err := guuid.Parse("ff6f8cb0-c57d-11e1-9b21-0800200c9a66")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Get the time of a time-based UUID
//	t, err := id.Time()
//
// Custom Factory:
//
//	// Embed a timestamp in random UUIDs and print it first
//	f := guuid.NewFactory(guuid.WithCodec(guuid.CodecTimestampFirstComb), guuid.WithCombGenerator())
//	id, err := f.NewV4()
//
// Nodes:
//
// Time-based UUIDs carry the hardware address of the host, or a random node
// when there is none. Processes that must never share a node can lease one
// from MySQL or ZooKeeper with the providers of package nodes:
//
//	db, err := nodes.OpenMySQL(dsn)
//	p := nodes.NewSegmentNodeProvider(nodes.NewAllocator(nodes.NewSegmentDAO(db), "orders"), logger)
//	f := guuid.NewFactory(guuid.WithNodeProvider(p))
//
// Arithmetic:
//
// Integer values and timestamps are computed exactly through a calc.Calculator
// (math/big by default). A factory built WithDegraded still parses and formats
// UUIDs but fails integer and time conversions with ErrUnsatisfiedDependency.
//
// Errors:
//
// Every error matches one of ErrInvalidArgument, ErrUnsupportedOperation,
// ErrUnsatisfiedDependency or ErrNoSuitableBuilder under errors.Is, as well as
// its specific sentinel such as ErrInvalidFormat.
//
// Thread Safety:
//
// All operations are thread-safe. UUIDs, codecs, builders and factories can be
// used concurrently from multiple goroutines without additional synchronization.
package guuid
