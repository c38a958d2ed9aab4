package guuid

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

const testUUIDString = "f47ac10b-58cc-4372-a567-0e02b2c3d479"

var testUUIDBytes = []byte{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "canonical format",
			input:   "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "upper case",
			input:   "F47AC10B-58CC-4372-A567-0E02B2C3D479",
			wantErr: false,
		},
		{
			name:    "without hyphens",
			input:   "f47ac10b58cc4372a5670e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "with URN prefix",
			input:   "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "with upper case URN prefix",
			input:   "URN:UUID:f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "with braces",
			input:   "{f47ac10b-58cc-4372-a567-0e02b2c3d479}",
			wantErr: false,
		},
		{
			name:    "invalid format - wrong length",
			input:   "f47ac10b-58cc-4372-a567",
			wantErr: true,
		},
		{
			name:    "invalid format - invalid hex",
			input:   "g47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: true,
		},
		{
			name:    "with braced URN",
			input:   "{urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479}",
			wantErr: false,
		},
		{
			name:    "missing hyphen",
			input:   "f47ac10b58cc-4372-a567-0e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "hyphens moved",
			input:   "f47ac10b5-8cc-4372a567-0e02b2c3d4-79",
			wantErr: false,
		},
		{
			name:    "invalid format - 33 digits",
			input:   "f47ac10b-58cc-4372-a567-0e02b2c3d4790",
			wantErr: true,
		},
		{
			name:    "invalid format - only hyphens",
			input:   "------------------------------------",
			wantErr: true,
		},
		{
			name:    "invalid format - trailing garbage",
			input:   "f47ac10b-58cc-4372-a567-0e02b2c3d479x",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uuid, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) || !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("Parse() error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if uuid.String() != testUUIDString {
				t.Errorf("Parse() = %v, want %v", uuid, testUUIDString)
			}
			// Verify round-trip
			uuid2, err := Parse(uuid.String())
			if err != nil {
				t.Errorf("Round-trip parse failed: %v", err)
			}
			if uuid != uuid2 {
				t.Errorf("Round-trip UUID mismatch: got %v, want %v", uuid2, uuid)
			}
		})
	}
}

func TestUUID_String(t *testing.T) {
	testUUID := MustFromBytes(testUUIDBytes)
	want := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	if got := testUUID.String(); got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
	if got := testUUID.URN(); got != "urn:uuid:"+want {
		t.Errorf("URN() = %v, want urn:uuid:%v", got, want)
	}
}

func TestUUID_IsNil(t *testing.T) {
	if !Nil.IsNil() {
		t.Error("Nil UUID should return true for IsNil()")
	}

	var zero UUID
	if !zero.IsNil() || zero.String() != "00000000-0000-0000-0000-000000000000" {
		t.Errorf("zero UUID = %v, want the nil UUID", zero)
	}
	if !zero.Equal(Nil) {
		t.Error("zero UUID should equal Nil")
	}

	nonNilUUID := MustFromBytes(testUUIDBytes)
	if nonNilUUID.IsNil() {
		t.Error("Non-nil UUID should return false for IsNil()")
	}
}

func TestUUID_IsMax(t *testing.T) {
	if !Max.IsMax() || Max.IsNil() {
		t.Error("Max UUID should return true for IsMax() only")
	}
	if Max.String() != "ffffffff-ffff-ffff-ffff-ffffffffffff" {
		t.Errorf("Max = %v", Max)
	}
	if _, ok := Max.Version(); ok {
		t.Error("Max UUID should have no version")
	}
}

func TestUUID_MarshalUnmarshalText(t *testing.T) {
	uuid := MustFromBytes(testUUIDBytes)

	// Marshal
	text, err := uuid.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}

	// Unmarshal
	var uuid2 UUID
	err = uuid2.UnmarshalText(text)
	if err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}

	if uuid != uuid2 {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", uuid2, uuid)
	}
}

func TestUUID_MarshalUnmarshalBinary(t *testing.T) {
	uuid := MustFromBytes(testUUIDBytes)

	// Marshal
	data, err := uuid.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}

	if len(data) != 16 {
		t.Errorf("MarshalBinary() length = %d, want 16", len(data))
	}

	// Unmarshal
	var uuid2 UUID
	err = uuid2.UnmarshalBinary(data)
	if err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}

	if uuid != uuid2 {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", uuid2, uuid)
	}

	if err := uuid2.UnmarshalBinary(data[:15]); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("UnmarshalBinary(15 bytes) error = %v, want %v", err, ErrInvalidLength)
	}
}

func TestUUID_JSON(t *testing.T) {
	uuid := MustFromBytes(testUUIDBytes)

	type TestStruct struct {
		ID UUID `json:"id"`
	}

	ts := TestStruct{ID: uuid}

	// Marshal
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"id":"f47ac10b-58cc-4372-a567-0e02b2c3d479"}` {
		t.Errorf("json.Marshal() = %s", data)
	}

	// Unmarshal
	var ts2 TestStruct
	err = json.Unmarshal(data, &ts2)
	if err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if ts.ID != ts2.ID {
		t.Errorf("JSON Marshal/Unmarshal mismatch: got %v, want %v", ts2.ID, ts.ID)
	}
}

func TestUUID_Compare(t *testing.T) {
	uuid1 := MustParse("01000000-0000-4000-8000-000000000000")
	uuid2 := MustParse("02000000-0000-4000-8000-000000000000")
	uuid3 := MustParse("01000000-0000-4000-8000-000000000000")

	if uuid1.Compare(uuid2) != -1 {
		t.Error("uuid1 should be less than uuid2")
	}

	if uuid2.Compare(uuid1) != 1 {
		t.Error("uuid2 should be greater than uuid1")
	}

	if uuid1.Compare(uuid3) != 0 {
		t.Error("uuid1 should be equal to uuid3")
	}

	// the least significant half only decides between equal most significant halves
	low := MustParse("01000000-0000-4000-8000-0000000000ff")
	high := MustParse("01000000-0000-4000-8000-ff0000000000")
	if low.Compare(high) != -1 || high.Compare(low) != 1 {
		t.Error("least significant bits compared in the wrong order")
	}

	if Nil.Compare(Max) != -1 || Max.Compare(Nil) != 1 {
		t.Error("Nil should sort before Max")
	}
}

func TestUUID_SignificantBits(t *testing.T) {
	uuid := MustParse("ff6f8cb0-c57d-11e1-9b21-0800200c9a66")
	if got := uuid.MostSignificantBits(); got != 0xff6f8cb0c57d11e1 {
		t.Errorf("MostSignificantBits() = %x", got)
	}
	if got := uuid.LeastSignificantBits(); got != 0x9b210800200c9a66 {
		t.Errorf("LeastSignificantBits() = %x", got)
	}
}

func TestUUID_Equal(t *testing.T) {
	uuid1 := MustParse("01020300-0000-4000-8000-000000000000")
	uuid2 := MustParse("01020300-0000-4000-8000-000000000000")
	uuid3 := MustParse("03020100-0000-4000-8000-000000000000")

	if !uuid1.Equal(uuid2) {
		t.Error("uuid1 should equal uuid2")
	}

	if uuid1.Equal(uuid3) {
		t.Error("uuid1 should not equal uuid3")
	}
}

func TestUUID_EqualAcrossLayouts(t *testing.T) {
	const s = "ff6f8cb0-c57d-11e1-9b21-0800200c9a66"
	rfc := MustParse(s)
	guid := Must(NewFactory(WithGUIDs()).FromString(s))

	if bytes.Equal(rfc.Bytes(), guid.Bytes()) {
		t.Fatalf("stored bytes should differ, both %x", rfc.Bytes())
	}
	if !rfc.Equal(guid) || rfc.Compare(guid) != 0 {
		t.Errorf("Equal() = false for %v and %v, want true", rfc, guid)
	}
	if got := guid.MostSignificantBits(); got != 0xff6f8cb0c57d11e1 {
		t.Errorf("MostSignificantBits() = %x, want ff6f8cb0c57d11e1", got)
	}

	other := Must(NewFactory(WithGUIDs()).FromString("ff6f8cb0-c57d-11e1-9b21-0800200c9a67"))
	if rfc.Compare(other) != -1 {
		t.Errorf("Compare() = %d, want -1", rfc.Compare(other))
	}
}

func TestUUID_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    string
		wantErr bool
	}{
		{
			name:  "string input",
			input: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			want:  testUUIDString,
		},
		{
			name:  "byte slice input - 16 bytes",
			input: testUUIDBytes,
			want:  testUUIDString,
		},
		{
			name:  "byte slice input - string format",
			input: []byte("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
			want:  testUUIDString,
		},
		{
			name:  "nil input",
			input: nil,
			want:  "00000000-0000-0000-0000-000000000000",
		},
		{
			name:    "invalid type",
			input:   123,
			wantErr: true,
		},
		{
			name:    "invalid string",
			input:   "not-a-uuid",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var uuid UUID
			err := uuid.Scan(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Scan() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("Scan() error = %v, want kind ErrInvalidArgument", err)
				}
				return
			}
			if uuid.String() != tt.want {
				t.Errorf("Scan() = %v, want %v", uuid, tt.want)
			}
		})
	}
}

func TestUUID_Value(t *testing.T) {
	uuid := MustFromBytes(testUUIDBytes)
	val, err := uuid.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	str, ok := val.(string)
	if !ok {
		t.Fatalf("Value() returned non-string type: %T", val)
	}

	expected := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	if str != expected {
		t.Errorf("Value() = %v, want %v", str, expected)
	}
}

func TestUUID_Version(t *testing.T) {
	tests := []struct {
		input string
		want  Version
	}{
		{"ff6f8cb0-c57d-11e1-9b21-0800200c9a66", VersionTimeBased},
		{"000001f5-5cde-21ea-8400-0242ac130003", VersionDCESecurity},
		{"3df2eb31-026e-3c3e-a288-1608df8ba487", VersionNameBasedMD5},
		{"f47ac10b-58cc-4372-a567-0e02b2c3d479", VersionRandom},
		{"5aac5eff-6aca-5fc3-a31a-3fa5d813ea31", VersionNameBasedSHA1},
		{"1e1c57df-f6f8-6cb0-9b21-0800200c9a66", VersionReorderedTime},
		{"01384fc4-80fb-7000-8000-000000000000", VersionTimeSorted},
		{"00000000-0000-8000-8000-000000000000", VersionCustom},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			uuid := MustParse(tt.input)
			version, ok := uuid.Version()
			if !ok || version != tt.want {
				t.Errorf("Version() = %v, %v, want %v", version, ok, tt.want)
			}
		})
	}

	if _, ok := Nil.Version(); ok {
		t.Error("Nil UUID should have no version")
	}
}

func TestUUID_Variant(t *testing.T) {
	tests := []struct {
		input string
		want  Variant
	}{
		{"00000000-0000-4000-0000-000000000000", VariantNCS},
		{"00000000-0000-4000-7fff-000000000000", VariantNCS},
		{"00000000-0000-4000-8000-000000000000", VariantRFC4122},
		{"00000000-0000-4000-bfff-000000000000", VariantRFC4122},
		{"00000000-0000-4000-c000-000000000000", VariantMicrosoft},
		{"00000000-0000-4000-dfff-000000000000", VariantMicrosoft},
		{"00000000-0000-4000-e000-000000000000", VariantFuture},
		{"00000000-0000-4000-ffff-000000000000", VariantFuture},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			uuid := MustParse(tt.input)
			if variant := uuid.Variant(); variant != tt.want {
				t.Errorf("Variant() = %v, want %v", variant, tt.want)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	// Valid UUID should not panic
	uuid := MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	if uuid.IsNil() {
		t.Error("MustParse() returned nil UUID")
	}

	// Invalid UUID should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse() did not panic on invalid input")
		}
	}()
	MustParse("invalid-uuid")
}

func TestUUID_Bytes(t *testing.T) {
	uuid := MustParse(testUUIDString)
	b := uuid.Bytes()
	if len(b) != 16 {
		t.Errorf("Bytes() length = %d, want 16", len(b))
	}
	if !bytes.Equal(b, testUUIDBytes) {
		t.Error("Bytes() did not return correct byte slice")
	}

	// the returned slice is a copy
	b[0] = 0
	if uuid.String() != testUUIDString {
		t.Error("modifying Bytes() changed the UUID")
	}
}

func TestUUID_Integer(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"00000000-0000-0000-0000-000000000000", "0"},
		{"ffffffff-ffff-ffff-ffff-ffffffffffff", "340282366920938463463374607431768211455"},
		{"f47ac10b-58cc-4372-a567-0e02b2c3d479", "324969006592305634633390616021200786553"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			uuid := MustParse(tt.input)
			i, err := uuid.Integer()
			if err != nil {
				t.Fatalf("Integer() error = %v", err)
			}
			if i.String() != tt.want {
				t.Errorf("Integer() = %v, want %v", i, tt.want)
			}

			back, err := defaultFactory.FromInteger(i)
			if err != nil {
				t.Fatalf("FromInteger() error = %v", err)
			}
			if !back.Equal(uuid) {
				t.Errorf("FromInteger() = %v, want %v", back, uuid)
			}
		})
	}
}
