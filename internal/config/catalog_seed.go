package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type SeedProduct struct {
	Name        string          `yaml:"name"`
	Price       decimal.Decimal `yaml:"price"`
	Description *string         `yaml:"description"`
}

type CatalogSeedConfig struct {
	Products []SeedProduct `yaml:"products"`
}

// yaml path : SEED_CATALOG_FILE
func LoadCatalogSeedConfig(path string) (*CatalogSeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &CatalogSeedConfig{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	for i, p := range config.Products {
		if p.Name == "" {
			return nil, fmt.Errorf("seed product %d: name is required", i)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("seed product %q: price must not be negative", p.Name)
		}
	}

	return config, nil
}
