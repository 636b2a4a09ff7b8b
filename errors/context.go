package errors

// WithContext adds a single context field to an error.
// Returns a new OpError with the context field added.
// Existing context fields are preserved.
//
// If err is not an OpError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "dst", dst)
func WithContext(err error, key string, value interface{}) OpError {
	if err == nil {
		return nil
	}

	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// Existing context fields are preserved; new fields override existing ones with the same key.
//
// If err is not an OpError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) OpError {
	if err == nil {
		return nil
	}

	e := convert(err)
	if e.context == nil {
		e.context = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		e.context[k] = v
	}
	return e
}

// convert returns a private copy of err as an *opError.
// Plain errors become CodeUnknown errors whose message is err.Error().
func convert(err error) *opError {
	switch e := err.(type) {
	case *opError:
		return e.clone()
	case OpError:
		return &opError{
			op:      e.Op(),
			path:    e.Path(),
			code:    e.Code(),
			message: e.Message(),
			context: e.Context(),
			cause:   e.Unwrap(),
		}
	}

	return &opError{
		code:    CodeUnknown,
		message: err.Error(),
		cause:   err,
	}
}
