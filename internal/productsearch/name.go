// Package productsearch manages product sets and products in the Cloud
// Vision Product Search API. It exposes the remote capability set behind an
// interface so command handlers can be tested against fakes.
package productsearch

import (
	"strings"

	"go.einride.tech/aip/resourcename"
)

// Resource name patterns for the product search API surface.
const (
	locationPattern   = "projects/{project}/locations/{location}"
	productSetPattern = "projects/{project}/locations/{location}/productSets/{product_set}"
	productPattern    = "projects/{project}/locations/{location}/products/{product}"
)

// Location scopes every resource name under a project and compute region.
// It is constructed once per process from configuration.
type Location struct {
	ProjectID string
	Region    string
}

// Name returns the location resource name.
func (l Location) Name() string {
	return resourcename.Sprint(locationPattern, l.ProjectID, l.Region)
}

// ProductSetName returns the resource name of a product set under the location.
// IDs are interpolated as-is; the service owns validation of the segments.
func (l Location) ProductSetName(productSetID string) string {
	return resourcename.Sprint(productSetPattern, l.ProjectID, l.Region, productSetID)
}

// ProductName returns the resource name of a product under the location.
func (l Location) ProductName(productID string) string {
	return resourcename.Sprint(productPattern, l.ProjectID, l.Region, productID)
}

// ResourceID returns the trailing segment of a resource name. Names without
// a separator are returned unchanged.
func ResourceID(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
