package psctl

import (
	"context"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/iterator"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/visionops/psctl/internal/productsearch"
)

// fakeAPI records calls and returns canned responses for router tests.
type fakeAPI struct {
	calls map[string]int

	sets     []*visionpb.ProductSet
	products []*visionpb.Product
	err      error

	lastParent       string
	lastName         string
	lastProduct      string
	lastProductSetID string
	lastProductID    string
	lastCreateSet    *visionpb.ProductSet
	lastCreate       *visionpb.Product
	lastUpdate       *visionpb.Product
	lastMask         *fieldmaskpb.FieldMask

	closed bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: map[string]int{}}
}

// total returns the number of remote calls across all methods.
func (f *fakeAPI) total() int {
	n := 0
	for _, count := range f.calls {
		n += count
	}
	return n
}

func (f *fakeAPI) CreateProductSet(_ context.Context, parent, productSetID string, set *visionpb.ProductSet) (*visionpb.ProductSet, error) {
	f.calls["CreateProductSet"]++
	f.lastParent = parent
	f.lastProductSetID = productSetID
	f.lastCreateSet = set
	if f.err != nil {
		return nil, f.err
	}
	if len(f.sets) > 0 {
		return f.sets[0], nil
	}
	return &visionpb.ProductSet{Name: parent + "/productSets/" + productSetID, DisplayName: set.GetDisplayName()}, nil
}

func (f *fakeAPI) ListProductSets(_ context.Context, parent string) productsearch.ProductSetIterator {
	f.calls["ListProductSets"]++
	f.lastParent = parent
	return &fakeSetIterator{sets: f.sets, err: f.err}
}

func (f *fakeAPI) GetProductSet(_ context.Context, name string) (*visionpb.ProductSet, error) {
	f.calls["GetProductSet"]++
	f.lastName = name
	if f.err != nil {
		return nil, f.err
	}
	if len(f.sets) > 0 {
		return f.sets[0], nil
	}
	return &visionpb.ProductSet{Name: name}, nil
}

func (f *fakeAPI) DeleteProductSet(_ context.Context, name string) error {
	f.calls["DeleteProductSet"]++
	f.lastName = name
	return f.err
}

func (f *fakeAPI) CreateProduct(_ context.Context, parent, productID string, product *visionpb.Product) (*visionpb.Product, error) {
	f.calls["CreateProduct"]++
	f.lastParent = parent
	f.lastProductID = productID
	f.lastCreate = product
	if f.err != nil {
		return nil, f.err
	}
	return &visionpb.Product{
		Name:            parent + "/products/" + productID,
		DisplayName:     product.GetDisplayName(),
		ProductCategory: product.GetProductCategory(),
	}, nil
}

func (f *fakeAPI) ListProducts(_ context.Context, parent string) productsearch.ProductIterator {
	f.calls["ListProducts"]++
	f.lastParent = parent
	return &fakeProductIterator{products: f.products, err: f.err}
}

func (f *fakeAPI) GetProduct(_ context.Context, name string) (*visionpb.Product, error) {
	f.calls["GetProduct"]++
	f.lastName = name
	if f.err != nil {
		return nil, f.err
	}
	if len(f.products) > 0 {
		return f.products[0], nil
	}
	return &visionpb.Product{Name: name}, nil
}

func (f *fakeAPI) UpdateProduct(_ context.Context, product *visionpb.Product, mask *fieldmaskpb.FieldMask) (*visionpb.Product, error) {
	f.calls["UpdateProduct"]++
	f.lastUpdate = product
	f.lastMask = mask
	if f.err != nil {
		return nil, f.err
	}
	return product, nil
}

func (f *fakeAPI) DeleteProduct(_ context.Context, name string) error {
	f.calls["DeleteProduct"]++
	f.lastName = name
	return f.err
}

func (f *fakeAPI) ListProductsInProductSet(_ context.Context, name string) productsearch.ProductIterator {
	f.calls["ListProductsInProductSet"]++
	f.lastName = name
	return &fakeProductIterator{products: f.products, err: f.err}
}

func (f *fakeAPI) AddProductToProductSet(_ context.Context, name, product string) error {
	f.calls["AddProductToProductSet"]++
	f.lastName = name
	f.lastProduct = product
	return f.err
}

func (f *fakeAPI) RemoveProductFromProductSet(_ context.Context, name, product string) error {
	f.calls["RemoveProductFromProductSet"]++
	f.lastName = name
	f.lastProduct = product
	return f.err
}

func (f *fakeAPI) Close() error {
	f.closed = true
	return nil
}

// fakeSetIterator yields canned product sets, then iterator.Done. A non-nil
// err is returned after the canned elements are exhausted.
type fakeSetIterator struct {
	sets []*visionpb.ProductSet
	err  error
}

func (it *fakeSetIterator) Next() (*visionpb.ProductSet, error) {
	if len(it.sets) > 0 {
		set := it.sets[0]
		it.sets = it.sets[1:]
		return set, nil
	}
	if it.err != nil {
		return nil, it.err
	}
	return nil, iterator.Done
}

type fakeProductIterator struct {
	products []*visionpb.Product
	err      error
}

func (it *fakeProductIterator) Next() (*visionpb.Product, error) {
	if len(it.products) > 0 {
		product := it.products[0]
		it.products = it.products[1:]
		return product, nil
	}
	if it.err != nil {
		return nil, it.err
	}
	return nil, iterator.Done
}
