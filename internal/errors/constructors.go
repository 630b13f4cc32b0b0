package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *RenderError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigParseError(path string, cause error) *RenderError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to parse configuration").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *RenderError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Model errors

func ModelLoadError(path string, cause error) *RenderError {
	return Wrap(cause, CategoryModel, SeverityFatal, "failed to load documentation model").
		WithContext("path", path)
}

func UnknownKind(kind string) *RenderError {
	return New(CategoryModel, SeverityFatal, "unknown node kind").
		WithContext("kind", kind)
}

// Location errors

func LocationUnresolved(name string) *RenderError {
	return New(CategoryLocation, SeverityFatal, "cannot resolve location").
		WithContext("node", name)
}

// Render pipeline errors

func PageRenderError(page string, cause error) *RenderError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page render failed").
		WithContext("page", page)
}

func PageWriteError(path string, cause error) *RenderError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "page write failed").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *RenderError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
