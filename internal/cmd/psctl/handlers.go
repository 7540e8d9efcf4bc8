package psctl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/iterator"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	apperrors "github.com/visionops/psctl/internal/platform/errors"
	"github.com/visionops/psctl/internal/productsearch"
)

func createProductSet(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error {
	set, err := api.CreateProductSet(ctx, loc.Name(), args[0], &visionpb.ProductSet{
		DisplayName: args[1],
	})
	if err != nil {
		return apperrors.FromRPC("create product set", err)
	}
	fmt.Fprintf(out, "Product set name: %s\n", set.GetName())
	return nil
}

func listProductSets(ctx context.Context, api productsearch.API, loc productsearch.Location, _ []string, out io.Writer) error {
	it := api.ListProductSets(ctx, loc.Name())
	for {
		set, err := it.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return apperrors.FromRPC("list product sets", err)
		}
		printProductSet(out, set)
	}
}

func getProductSet(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error {
	set, err := api.GetProductSet(ctx, loc.ProductSetName(args[0]))
	if err != nil {
		return apperrors.FromRPC("get product set", err)
	}
	printProductSet(out, set)
	return nil
}

func listProductsInProductSet(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error {
	it := api.ListProductsInProductSet(ctx, loc.ProductSetName(args[0]))
	return printProducts(it, out, "list products in product set")
}

func addProductToProductSet(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error {
	err := api.AddProductToProductSet(ctx, loc.ProductSetName(args[0]), loc.ProductName(args[1]))
	if err != nil {
		return apperrors.FromRPC("add product to product set", err)
	}
	fmt.Fprintln(out, "Product added to product set.")
	return nil
}

func removeProductFromProductSet(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error {
	err := api.RemoveProductFromProductSet(ctx, loc.ProductSetName(args[0]), loc.ProductName(args[1]))
	if err != nil {
		return apperrors.FromRPC("remove product from product set", err)
	}
	fmt.Fprintln(out, "Product removed from product set.")
	return nil
}

func deleteProductSet(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error {
	if err := api.DeleteProductSet(ctx, loc.ProductSetName(args[0])); err != nil {
		return apperrors.FromRPC("delete product set", err)
	}
	fmt.Fprintln(out, "Product set deleted")
	return nil
}

func createProduct(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error {
	product, err := api.CreateProduct(ctx, loc.Name(), args[0], &visionpb.Product{
		DisplayName:     args[1],
		ProductCategory: args[2],
	})
	if err != nil {
		return apperrors.FromRPC("create product", err)
	}
	fmt.Fprintf(out, "Product name: %s\n", product.GetName())
	return nil
}

func listProducts(ctx context.Context, api productsearch.API, loc productsearch.Location, _ []string, out io.Writer) error {
	it := api.ListProducts(ctx, loc.Name())
	return printProducts(it, out, "list products")
}

func getProduct(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error {
	product, err := api.GetProduct(ctx, loc.ProductName(args[0]))
	if err != nil {
		return apperrors.FromRPC("get product", err)
	}
	printProduct(out, product)
	return nil
}

func updateProductLabels(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error {
	labels, err := parseLabels(args[1])
	if err != nil {
		return err
	}
	product, err := api.UpdateProduct(ctx, &visionpb.Product{
		Name:          loc.ProductName(args[0]),
		ProductLabels: labels,
	}, &fieldmaskpb.FieldMask{Paths: []string{"product_labels"}})
	if err != nil {
		return apperrors.FromRPC("update product labels", err)
	}
	fmt.Fprintf(out, "Product name: %s\n", product.GetName())
	fmt.Fprintf(out, "Updated product labels: %s\n", formatLabels(product.GetProductLabels()))
	return nil
}

func deleteProduct(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error {
	if err := api.DeleteProduct(ctx, loc.ProductName(args[0])); err != nil {
		return apperrors.FromRPC("delete product", err)
	}
	fmt.Fprintln(out, "Product deleted.")
	return nil
}

// printProducts drains the iterator, printing each product as it arrives.
// The result set is never materialized; the service governs page size.
func printProducts(it productsearch.ProductIterator, out io.Writer, op string) error {
	for {
		product, err := it.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return apperrors.FromRPC(op, err)
		}
		printProduct(out, product)
	}
}

func printProductSet(out io.Writer, set *visionpb.ProductSet) {
	fmt.Fprintf(out, "Product set name: %s\n", set.GetName())
	fmt.Fprintf(out, "Product set id: %s\n", productsearch.ResourceID(set.GetName()))
	fmt.Fprintf(out, "Product set display name: %s\n", set.GetDisplayName())
	fmt.Fprintln(out, "Product set index time:")
	fmt.Fprintf(out, "\tseconds: %d\n", set.GetIndexTime().GetSeconds())
	fmt.Fprintf(out, "\tnanos: %d\n", set.GetIndexTime().GetNanos())
}

func printProduct(out io.Writer, product *visionpb.Product) {
	fmt.Fprintf(out, "Product name: %s\n", product.GetName())
	fmt.Fprintf(out, "Product id: %s\n", productsearch.ResourceID(product.GetName()))
	fmt.Fprintf(out, "Product display name: %s\n", product.GetDisplayName())
	fmt.Fprintf(out, "Product description: %s\n", product.GetDescription())
	fmt.Fprintf(out, "Product category: %s\n", product.GetProductCategory())
	fmt.Fprintf(out, "Product labels: %s\n\n", formatLabels(product.GetProductLabels()))
}

// formatLabels renders labels as "[key=value, key=value]".
func formatLabels(labels []*visionpb.Product_KeyValue) string {
	pairs := make([]string, 0, len(labels))
	for _, label := range labels {
		pairs = append(pairs, fmt.Sprintf("%s=%s", label.GetKey(), label.GetValue()))
	}
	return "[" + strings.Join(pairs, ", ") + "]"
}

// parseLabels parses a "key=value,key=value" argument. Malformed entries are
// usage errors; nothing is sent to the service.
func parseLabels(arg string) ([]*visionpb.Product_KeyValue, error) {
	var labels []*visionpb.Product_KeyValue
	for _, pair := range strings.Split(arg, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, apperrors.Newf(apperrors.CodeUsageInvalidArgument,
				"update_product_labels: label %q must be key=value", pair)
		}
		labels = append(labels, &visionpb.Product_KeyValue{Key: key, Value: value})
	}
	if len(labels) == 0 {
		return nil, apperrors.New(apperrors.CodeUsageInvalidArgument,
			"update_product_labels: at least one key=value label is required")
	}
	return labels, nil
}
