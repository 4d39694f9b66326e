// internal/logging/context.go
package logging

import (
	"context"

	"go.uber.org/zap"
)

// ContextFields extracts correlation data from context.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 2)

	if root := ProjectFromContext(ctx); root != "" {
		fields = append(fields, zap.String("project.root", root))
	}
	if step := StepFromContext(ctx); step != "" {
		fields = append(fields, zap.String("step", step))
	}

	return fields
}

// Context key types
type projectCtxKey struct{}
type stepCtxKey struct{}
type loggerCtxKey struct{}

// WithProject adds the project root to context.
func WithProject(ctx context.Context, root string) context.Context {
	return context.WithValue(ctx, projectCtxKey{}, root)
}

// ProjectFromContext extracts the project root from context.
func ProjectFromContext(ctx context.Context) string {
	if r, ok := ctx.Value(projectCtxKey{}).(string); ok {
		return r
	}
	return ""
}

// WithStep adds the current run step (e.g. "layout", "envfile") to context.
func WithStep(ctx context.Context, step string) context.Context {
	return context.WithValue(ctx, stepCtxKey{}, step)
}

// StepFromContext extracts the run step from context.
func StepFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(stepCtxKey{}).(string); ok {
		return s
	}
	return ""
}

// WithLogger stores logger in context.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// FromContext retrieves logger from context.
// Returns a nop logger if not found.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}
	return NewNop()
}
