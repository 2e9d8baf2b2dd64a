// Package catalog holds the registry of front-end assets webinit can link
// into a generated page: CSS frameworks, CSS libraries and jQuery builds.
// Each entry carries CDN URLs together with subresource-integrity digests.
//
// The built-in catalog is embedded from catalog.yaml. A user catalog with the
// same shape can replace it; every catalog is checked against
// schema/catalog.schema.json before it is decoded.
package catalog
