// Package docs holds the generated Swagger document served under
// /api/swagger. Run `go generate ./internal/api` to produce it.
package docs
