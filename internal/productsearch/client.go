package productsearch

import (
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// Options configures the live client.
type Options struct {
	// Endpoint overrides the default API endpoint, for emulators.
	Endpoint string
}

// Client adapts the Vision product search client to the API capability set.
type Client struct {
	ps *vision.ProductSearchClient
}

var _ API = (*Client)(nil)

// NewClient dials the product search API. Outbound RPCs carry trace context
// when a tracer provider is registered.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	clientOpts := []option.ClientOption{
		option.WithGRPCDialOption(grpc.WithStatsHandler(otelgrpc.NewClientHandler())),
	}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}

	ps, err := vision.NewProductSearchClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create product search client: %w", err)
	}
	return &Client{ps: ps}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.ps.Close()
}

// CreateProductSet creates a product set under parent with the given id.
func (c *Client) CreateProductSet(ctx context.Context, parent, productSetID string, set *visionpb.ProductSet) (*visionpb.ProductSet, error) {
	return c.ps.CreateProductSet(ctx, &visionpb.CreateProductSetRequest{
		Parent:       parent,
		ProductSet:   set,
		ProductSetId: productSetID,
	})
}

// ListProductSets enumerates the product sets under parent.
func (c *Client) ListProductSets(ctx context.Context, parent string) ProductSetIterator {
	return c.ps.ListProductSets(ctx, &visionpb.ListProductSetsRequest{Parent: parent})
}

// GetProductSet fetches one product set by resource name.
func (c *Client) GetProductSet(ctx context.Context, name string) (*visionpb.ProductSet, error) {
	return c.ps.GetProductSet(ctx, &visionpb.GetProductSetRequest{Name: name})
}

// DeleteProductSet removes a product set. Products inside are not deleted.
func (c *Client) DeleteProductSet(ctx context.Context, name string) error {
	return c.ps.DeleteProductSet(ctx, &visionpb.DeleteProductSetRequest{Name: name})
}

// CreateProduct creates a product under parent with the given id.
func (c *Client) CreateProduct(ctx context.Context, parent, productID string, product *visionpb.Product) (*visionpb.Product, error) {
	return c.ps.CreateProduct(ctx, &visionpb.CreateProductRequest{
		Parent:    parent,
		Product:   product,
		ProductId: productID,
	})
}

// ListProducts enumerates the products under parent.
func (c *Client) ListProducts(ctx context.Context, parent string) ProductIterator {
	return c.ps.ListProducts(ctx, &visionpb.ListProductsRequest{Parent: parent})
}

// GetProduct fetches one product by resource name.
func (c *Client) GetProduct(ctx context.Context, name string) (*visionpb.Product, error) {
	return c.ps.GetProduct(ctx, &visionpb.GetProductRequest{Name: name})
}

// UpdateProduct updates the masked fields of product.
func (c *Client) UpdateProduct(ctx context.Context, product *visionpb.Product, mask *fieldmaskpb.FieldMask) (*visionpb.Product, error) {
	return c.ps.UpdateProduct(ctx, &visionpb.UpdateProductRequest{
		Product:    product,
		UpdateMask: mask,
	})
}

// DeleteProduct removes a product and its reference images.
func (c *Client) DeleteProduct(ctx context.Context, name string) error {
	return c.ps.DeleteProduct(ctx, &visionpb.DeleteProductRequest{Name: name})
}

// ListProductsInProductSet enumerates the products referenced by a set.
func (c *Client) ListProductsInProductSet(ctx context.Context, name string) ProductIterator {
	return c.ps.ListProductsInProductSet(ctx, &visionpb.ListProductsInProductSetRequest{Name: name})
}

// AddProductToProductSet associates an existing product with a set.
func (c *Client) AddProductToProductSet(ctx context.Context, name, product string) error {
	return c.ps.AddProductToProductSet(ctx, &visionpb.AddProductToProductSetRequest{
		Name:    name,
		Product: product,
	})
}

// RemoveProductFromProductSet removes a product from a set.
func (c *Client) RemoveProductFromProductSet(ctx context.Context, name, product string) error {
	return c.ps.RemoveProductFromProductSet(ctx, &visionpb.RemoveProductFromProductSetRequest{
		Name:    name,
		Product: product,
	})
}
