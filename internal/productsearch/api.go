package productsearch

import (
	"context"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// ProductSetIterator yields product sets one element at a time as pages are
// fetched from the service. Iteration is single-pass and non-restartable;
// Next returns iterator.Done after the last element.
type ProductSetIterator interface {
	Next() (*visionpb.ProductSet, error)
}

// ProductIterator yields products one element at a time as pages are fetched
// from the service. Same single-pass contract as ProductSetIterator.
type ProductIterator interface {
	Next() (*visionpb.Product, error)
}

// API is the capability set exposed by the remote product search service.
// It is the seam between command handlers and the transport: the live
// implementation wraps the Vision client, tests substitute fakes.
type API interface {
	CreateProductSet(ctx context.Context, parent, productSetID string, set *visionpb.ProductSet) (*visionpb.ProductSet, error)
	ListProductSets(ctx context.Context, parent string) ProductSetIterator
	GetProductSet(ctx context.Context, name string) (*visionpb.ProductSet, error)
	DeleteProductSet(ctx context.Context, name string) error

	CreateProduct(ctx context.Context, parent, productID string, product *visionpb.Product) (*visionpb.Product, error)
	ListProducts(ctx context.Context, parent string) ProductIterator
	GetProduct(ctx context.Context, name string) (*visionpb.Product, error)
	UpdateProduct(ctx context.Context, product *visionpb.Product, mask *fieldmaskpb.FieldMask) (*visionpb.Product, error)
	DeleteProduct(ctx context.Context, name string) error

	ListProductsInProductSet(ctx context.Context, name string) ProductIterator
	AddProductToProductSet(ctx context.Context, name, product string) error
	RemoveProductFromProductSet(ctx context.Context, name, product string) error

	Close() error
}
