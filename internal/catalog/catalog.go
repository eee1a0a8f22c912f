// Package catalog loads the product catalog from gzip-compressed
// JSON-lines shard files, one product object per line.
package catalog

import (
	"bufio"
	"context"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	pgzip "github.com/klauspost/pgzip"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/checkout/internal/domain/product"
)

// Catalog is an in-memory product catalog keyed by product ID.
type Catalog struct {
	products map[string]product.Product
	ordered  []product.Product
}

// Load reads all shard files concurrently and merges them into one
// catalog. Later shards win on duplicate product IDs.
func Load(ctx context.Context, paths ...string) (*Catalog, error) {
	shards := make([][]product.Product, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(loadShard(ctx, i, path, shards))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Catalog{products: make(map[string]product.Product)}
	for _, shard := range shards {
		for _, p := range shard {
			if _, seen := c.products[p.ID]; !seen {
				c.ordered = append(c.ordered, p)
			}
			c.products[p.ID] = p
		}
	}
	return c, nil
}

// Get returns the product with the given ID, or product.ErrNotFound.
func (c *Catalog) Get(id string) (*product.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

// List returns all products in first-seen shard order.
func (c *Catalog) List() []product.Product {
	out := make([]product.Product, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of distinct products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

func loadShard(ctx context.Context, idx int, path string, shards [][]product.Product) func() error {
	return func() error {
		var products []product.Product

		if err := streamGzFile(ctx, path, func(line []byte) error {
			p, err := decodeProduct(line)
			if err != nil {
				return err
			}
			products = append(products, p)
			return nil
		}); err != nil {
			return errors.Wrapf(err, "load shard %s", path)
		}

		shards[idx] = products
		return nil
	}
}

// decodeProduct parses one JSON-lines catalog entry.
func decodeProduct(line []byte) (product.Product, error) {
	var (
		id, name string
		category string
	)
	d := jx.DecodeBytes(line)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			id, err = d.Str()
		case "name":
			name, err = d.Str()
		case "category":
			category, err = d.Str()
		default:
			err = d.Skip()
		}
		return err
	}); err != nil {
		return product.Product{}, errors.Wrap(err, "decode product")
	}

	cat, err := product.ParseCategory(category)
	if err != nil {
		return product.Product{}, errors.Wrapf(err, "product %q", id)
	}

	return product.Product{ID: id, Name: name, Category: cat}, nil
}

// streamGzFile opens a gzip-compressed file and calls fn for each line.
func streamGzFile(ctx context.Context, path string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "create gzip reader for %s", path)
	}
	defer func() { _ = gz.Close() }()

	scanner := bufio.NewScanner(gz)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(scanner.Bytes()) == 0 {
			continue
		}
		if err := fn(scanner.Bytes()); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "scan %s", path)
	}

	return nil
}
