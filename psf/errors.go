package psf

import "fmt"

// ErrorKind classifies the ways a PSF2 byte stream can be rejected.
// Every parse failure carries exactly one kind; clients that need to react
// to a specific failure mode should unwrap a FontError with errors.As and
// switch on its Kind.
type ErrorKind int

const (
	// KindTruncatedHeader indicates fewer than the 32 header bytes were supplied.
	KindTruncatedHeader ErrorKind = iota
	// KindInvalidMagic indicates the buffer does not start with the PSF2 magic number.
	KindInvalidMagic
	// KindUnsupportedVersion indicates a header version other than 0.
	KindUnsupportedVersion
	// KindTruncatedGlyphTable indicates the buffer ends before all glyph bitmaps are present.
	KindTruncatedGlyphTable
	// KindInconsistentGeometry indicates header geometry fields that contradict
	// each other, i.e. charsize ≠ linesize × height, or absurd dimensions.
	KindInconsistentGeometry
	// KindTruncatedUnicodeTable indicates the buffer ends mid-entry in the Unicode table.
	KindTruncatedUnicodeTable
	// KindInvalidUtf8Sequence indicates a Unicode table character that does not
	// decode as valid UTF-8.
	KindInvalidUtf8Sequence
	// KindInconsistentUnicodeTable indicates a Unicode table whose entry count
	// does not match the glyph count.
	KindInconsistentUnicodeTable
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindTruncatedHeader:
		return "TruncatedHeader"
	case KindInvalidMagic:
		return "InvalidMagic"
	case KindUnsupportedVersion:
		return "UnsupportedVersion"
	case KindTruncatedGlyphTable:
		return "TruncatedGlyphTable"
	case KindInconsistentGeometry:
		return "InconsistentGeometry"
	case KindTruncatedUnicodeTable:
		return "TruncatedUnicodeTable"
	case KindInvalidUtf8Sequence:
		return "InvalidUtf8Sequence"
	case KindInconsistentUnicodeTable:
		return "InconsistentUnicodeTable"
	default:
		return "Unknown"
	}
}

// FontError represents an error encountered during font parsing.
type FontError struct {
	Kind    ErrorKind // failure classification
	Section string    // file section where the error occurred ("header", "glyphs", "unicode")
	Issue   string    // human-readable description of the issue
	Offset  uint32    // byte offset in the font file where the error occurred (0 if unknown)
}

// Error implements the error interface.
func (e FontError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s at offset %d: %s", e.Kind, e.Section, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Section, e.Issue)
}

// FontWarning represents a non-fatal oddity encountered during font parsing.
// Warnings never abort a parse; they are retained on the resulting Font.
type FontWarning struct {
	Section string // file section where the warning occurred
	Issue   string // human-readable description
	Offset  uint32 // byte offset in the font file (0 if unknown)
}

// String returns a human-readable representation of the warning.
func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Section, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Section, w.Issue)
}

// errorCollector accumulates warnings during font parsing and wraps the
// construction of the fatal error, if any. PSF2 parsing fails fast: the first
// error aborts the parse, so unlike warnings, errors are not accumulated.
type errorCollector struct {
	warnings []FontWarning
}

// fail constructs the typed error that aborts the parse.
func (ec *errorCollector) fail(kind ErrorKind, section string, offset uint32, format string, args ...interface{}) error {
	err := FontError{
		Kind:    kind,
		Section: section,
		Issue:   fmt.Sprintf(format, args...),
		Offset:  offset,
	}
	tracer().Errorf(err.Error())
	return err
}

// addWarning records a parsing warning.
func (ec *errorCollector) addWarning(section string, offset uint32, format string, args ...interface{}) {
	w := FontWarning{
		Section: section,
		Issue:   fmt.Sprintf(format, args...),
		Offset:  offset,
	}
	tracer().Infof(w.String())
	ec.warnings = append(ec.warnings, w)
}

// hasWarnings returns true if any warnings have been recorded.
func (ec *errorCollector) hasWarnings() bool {
	return len(ec.warnings) > 0
}
