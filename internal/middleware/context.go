package middleware

import (
	"context"

	"github.com/dev-760/portfolio-v2/internal/i18n"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyRequestID ctxKey = "req_id"
	ctxKeyIsHTMX    ctxKey = "is_htmx"
	ctxKeyLocale    ctxKey = "locale"
	ctxKeyCSRF      ctxKey = "csrf"
)

// WithRequestID stores request id in context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID gets request id from context
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok
}

// WithHTMX marks request as HTMX
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// WithLocale stores the route locale in context
func WithLocale(ctx context.Context, l i18n.Locale) context.Context {
	return context.WithValue(ctx, ctxKeyLocale, l)
}

// LocaleFrom returns the route locale, or false outside a locale route
func LocaleFrom(ctx context.Context) (i18n.Locale, bool) {
	l, ok := ctx.Value(ctxKeyLocale).(i18n.Locale)
	return l, ok
}

// Lang returns the route locale or the default locale
func Lang(ctx context.Context) i18n.Locale {
	if l, ok := LocaleFrom(ctx); ok {
		return l
	}
	return i18n.Default
}

func withCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyCSRF, token)
}

// CSRFToken returns the token issued for this request, for embedding in forms
func CSRFToken(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyCSRF).(string)
	return v
}
