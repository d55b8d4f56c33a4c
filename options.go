package zipscan

import "log/slog"

// ParseOptions configures optional, non-authoritative parsing behavior.
// The zero value is the conservative default described by spec.md.
type ParseOptions struct {
	// ConsumeDataDescriptorPreamble, when true, opportunistically
	// consumes the optional 4-byte signature 0x08074b50 ahead of a data
	// descriptor's crc32 field when GeneralPurposeFlags.HasDataDescriptor
	// is set and the next 4 bytes match. It is never required: a data
	// descriptor without the preamble is still read correctly. See
	// spec.md §9.
	ConsumeDataDescriptorPreamble bool

	// Logger receives Reported-class diagnostics (spec.md §7), such as a
	// missing end-of-central-directory trailer. Defaults to
	// slog.Default() when nil.
	Logger *slog.Logger
}

func (o ParseOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
