package errors

// Convenience functions for common error patterns

func ConfigNotFound(path string) *Error {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *Error {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file could not be parsed").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *Error {
	return New(CategoryValidation, SeverityFatal, "validation failed: "+field+": "+reason).
		WithContext("field", field).
		WithContext("reason", reason)
}

func LoadFailed(target string, cause error) *Error {
	return Wrap(cause, CategoryLoad, SeverityFatal, "could not load "+target).
		WithContext("target", target)
}

func NoSymbol(symbol, pkg string) *Error {
	return New(CategoryLoad, SeverityFatal, "no matching symbol "+symbol+" in "+pkg).
		WithContext("symbol", symbol).
		WithContext("package", pkg)
}

func WriteFailed(path string, cause error) *Error {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "could not write output").
		WithContext("path", path)
}
