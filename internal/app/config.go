package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (CHECKOUT_ prefix), flags, or YAML config files.
type Config struct {
	CatalogPaths []string `usage:"Gzipped JSON-lines product catalog shards" flag:"catalog"`
	CardHash     string   `default:"43567890-987654367" usage:"Hashed credit card token for the demo payment" flag:"card-hash"`
	Customer     CustomerConfig
}

// CustomerConfig identifies the customer the demo checkout runs for.
type CustomerConfig struct {
	Name  string `default:"André" usage:"Demo customer name"`
	Email string `default:"andre@email" usage:"Demo customer email"`
}

// LoadConfig loads configuration from environment variables, flags, and
// YAML config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CHECKOUT",
		Files:     []string{"config.yaml", "/etc/checkout/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}
