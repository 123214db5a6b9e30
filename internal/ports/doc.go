// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers
// and the admin CLI. Store and client ports are implemented by outbound adapters
// (hosted backend, SQL, object storage, mail) and called by the application layer.
package ports
