// Package observability provides the structured zap logger shared by the web
// server and helpers to carry it through request contexts.
package observability
