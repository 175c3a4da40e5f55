package types

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindSignature       ErrKind = iota // buffer does not start with the PNG signature
	ErrKindTruncated                      // buffer ends before a declared length is satisfied
	ErrKindTrailingGarbage                // bytes left over after the last complete chunk
	ErrKindTypeCode                       // chunk type string is not four ASCII letters
	ErrKindCRC                            // stored checksum disagrees with the computed one
	ErrKindNotFound                       // no chunk of the requested type
	ErrKindTooLarge                       // data does not fit the 32-bit length field
	ErrKindEncoding                       // bytes are not valid in the requested text encoding
	ErrKindState                          // operation not valid for the current state
)

// String returns a short, stable name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindSignature:
		return "signature"
	case ErrKindTruncated:
		return "truncated"
	case ErrKindTrailingGarbage:
		return "trailing-garbage"
	case ErrKindTypeCode:
		return "type-code"
	case ErrKindCRC:
		return "crc"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindTooLarge:
		return "too-large"
	case ErrKindEncoding:
		return "encoding"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so a detailed error
// matches the sentinel of its category: errors.Is(err, ErrCRCMismatch).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// New returns an *Error of the given kind.
func New(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// KindOf extracts the ErrKind of the outermost *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	for err != nil {
		if te, ok := err.(*Error); ok && te != nil {
			return te.Kind, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0, false
		}
		err = u.Unwrap()
	}
	return 0, false
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidSignature indicates the buffer lacks the PNG signature.
	ErrInvalidSignature = &Error{Kind: ErrKindSignature, Msg: "not a PNG file (bad signature)"}
	// ErrTooShort indicates the buffer is shorter than the signature itself.
	ErrTooShort = &Error{Kind: ErrKindTruncated, Msg: "buffer shorter than PNG signature"}
	// ErrTruncated indicates a declared length runs past the end of the buffer.
	ErrTruncated = &Error{Kind: ErrKindTruncated, Msg: "truncated chunk"}
	// ErrTrailingGarbage indicates bytes that do not form a complete chunk.
	ErrTrailingGarbage = &Error{Kind: ErrKindTrailingGarbage, Msg: "trailing bytes after last chunk"}
	// ErrInvalidTypeCode indicates a chunk type string that is not four ASCII letters.
	ErrInvalidTypeCode = &Error{Kind: ErrKindTypeCode, Msg: "invalid chunk type code"}
	// ErrCRCMismatch indicates a chunk whose stored CRC does not match its contents.
	ErrCRCMismatch = &Error{Kind: ErrKindCRC, Msg: "chunk crc mismatch"}
	// ErrNotFound indicates no chunk of the requested type exists.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "chunk not found"}
	// ErrDataTooLarge indicates chunk data longer than the length field can express.
	ErrDataTooLarge = &Error{Kind: ErrKindTooLarge, Msg: "chunk data too large"}
	// ErrEncoding indicates chunk data is not valid text in the expected encoding.
	ErrEncoding = &Error{Kind: ErrKindEncoding, Msg: "chunk data is not valid text"}
	// ErrInvalidEncoding indicates a type code whose bytes are not valid UTF-8.
	ErrInvalidEncoding = &Error{Kind: ErrKindEncoding, Msg: "chunk type is not valid UTF-8"}
	// ErrNoInsertionPoint indicates Append on a container with no chunks.
	ErrNoInsertionPoint = &Error{Kind: ErrKindState, Msg: "no chunk to insert before"}
)
