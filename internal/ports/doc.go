// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by the
// HTTP handlers and the terminal wizard. Outbound ports (session storage,
// asset sources, document renderers) are implemented by adapters and called
// by the application layer.
package ports
