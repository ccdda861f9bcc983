package codec

import "errors"

var (
	// ErrUnsupportedVersion is returned when a hash's version byte does
	// not match any version this package knows how to decode.
	ErrUnsupportedVersion = errors.New("codec: unsupported wire version")

	// ErrTruncated is returned when the bit stream ends before the lookup
	// table says it should.
	ErrTruncated = errors.New("codec: truncated wire data")

	// ErrInvalidChar is returned when a character outside the codec
	// alphabet appears in an encoded hash.
	ErrInvalidChar = errors.New("codec: invalid character in hash")

	// ErrUnknownNode is returned when EncodeTalentHash is given a
	// selection for a node absent from the EntryLookup.
	ErrUnknownNode = errors.New("codec: selection references unknown node")

	// ErrEntryIndexOutOfRange is returned when a Choice selection's
	// EntryIndex exceeds the node's NumEntries.
	ErrEntryIndexOutOfRange = errors.New("codec: entry index out of range")

	// ErrRankOutOfRange is returned when a Single selection's Rank falls
	// outside [1, MaxRanks].
	ErrRankOutOfRange = errors.New("codec: rank out of range")
)

const CurrentVersion = 2

// SupportedVersions lists every version DecodeTalentHash accepts.
var SupportedVersions = map[int]bool{1: true, 2: true}
