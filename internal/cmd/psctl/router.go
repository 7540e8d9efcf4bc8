package psctl

import (
	"context"
	"fmt"
	"io"
	"strings"

	entrypoint "github.com/visionops/psctl/internal/platform/cmd"
	apperrors "github.com/visionops/psctl/internal/platform/errors"
	"github.com/visionops/psctl/internal/productsearch"
)

// handler executes one subcommand against the injected capability set. The
// args slice length always matches the command's declared params.
type handler func(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error

// command describes one routable subcommand.
type command struct {
	name   string
	params []string
	run    handler
}

// commands lists the routable subcommands in usage order.
var commands = []command{
	{"create_product_set", []string{"productSetId", "productSetDisplayName"}, createProductSet},
	{"list_product_sets", nil, listProductSets},
	{"get_product_set", []string{"productSetId"}, getProductSet},
	{"list_products_in_product_set", []string{"productSetId"}, listProductsInProductSet},
	{"add_product_to_product_set", []string{"productSetId", "productId"}, addProductToProductSet},
	{"remove_product_from_product_set", []string{"productSetId", "productId"}, removeProductFromProductSet},
	{"delete_product_set", []string{"productSetId"}, deleteProductSet},
	{"create_product", []string{"productId", "productDisplayName", "productCategory"}, createProduct},
	{"list_products", nil, listProducts},
	{"get_product", []string{"productId"}, getProduct},
	{"update_product_labels", []string{"productId", "labels"}, updateProductLabels},
	{"delete_product", []string{"productId"}, deleteProduct},
}

// resolve maps args to a command and its positional parameters. Any failure
// here is a usage error, raised before a remote client exists.
func resolve(args []string) (command, []string, error) {
	if len(args) == 0 {
		return command{}, nil, apperrors.New(apperrors.CodeUsageMissingCommand, "command is required")
	}
	name := args[0]
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		rest := args[1:]
		if len(rest) < len(cmd.params) {
			return command{}, nil, apperrors.Newf(apperrors.CodeUsageMissingArgument,
				"%s: missing argument %s", cmd.name, cmd.params[len(rest)])
		}
		if len(rest) > len(cmd.params) {
			return command{}, nil, apperrors.Newf(apperrors.CodeUsageExtraArgument,
				"%s: unexpected argument %q", cmd.name, rest[len(cmd.params)])
		}
		return cmd, rest, nil
	}
	return command{}, nil, apperrors.Newf(apperrors.CodeUsageUnknownCommand, "unknown command %q", name)
}

// Dispatch resolves a subcommand and runs it against the injected API.
// Argument validation completes before any remote call is made.
func Dispatch(ctx context.Context, api productsearch.API, loc productsearch.Location, args []string, out io.Writer) error {
	cmd, params, err := resolve(args)
	if err != nil {
		return err
	}
	return cmd.run(ctx, api, loc, params, out)
}

// Run resolves the subcommand, validates configuration, acquires the remote
// client, and executes the command. The client is released when the command
// finishes; each process invocation performs exactly one command.
func Run(ctx context.Context, cfg Config, args []string, factory ClientFactory, out io.Writer) error {
	cmd, params, err := resolve(args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ToolName, func(ctx context.Context) error {
		api, err := factory(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = api.Close() }()
		return cmd.run(ctx, api, cfg.Location(), params, out)
	})
}

// Usage writes the command table to w.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		if len(cmd.params) == 0 {
			fmt.Fprintf(w, "  %s\n", cmd.name)
			continue
		}
		fmt.Fprintf(w, "  %s <%s>\n", cmd.name, strings.Join(cmd.params, "> <"))
	}
}
