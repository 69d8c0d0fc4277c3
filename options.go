package datamodels

// Option configures a single Marshal or Unmarshal call.
// Wire configuration is passed per call, never attached to record types.
type Option func(*Options)

// Options holds wire-format configuration for one codec call.
type Options struct {
	// AliasID substitutes the document-store identity field name ("_id")
	// for the canonical "id" at the top level of the payload.
	AliasID bool

	// SkipValidation decodes without running the value's Validate method.
	// Intended for tooling that inspects known-bad payloads.
	SkipValidation bool
}

// DefaultOptions returns the canonical wire configuration: schema field
// names as-is, validation on decode.
func DefaultOptions() *Options {
	return &Options{}
}

// WithAliasedID enables the aliased field-naming mode used by
// document-oriented stores ("_id" in place of "id").
func WithAliasedID(enable bool) Option {
	return func(o *Options) {
		o.AliasID = enable
	}
}

// WithoutValidation disables post-decode validation.
func WithoutValidation() Option {
	return func(o *Options) {
		o.SkipValidation = true
	}
}

func applyOptions(opts []Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
