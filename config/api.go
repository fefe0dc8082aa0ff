package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public paths (catalog detail is read-only, consumed by the console and GraphQL)
	return []string{"/api/catalog/products/:id/detail", "/graphql", "/playground", "/health"}
}
