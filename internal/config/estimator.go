package config

import (
	"sitegen-cost/core/catalog"
	"sitegen-cost/core/estimator"
)

// Estimator builds an estimator from the pricing section and the shipped
// catalog. Categories in the HCL file named by catalogFile, or by
// Catalog.File when catalogFile is empty, replace shipped categories of
// the same name.
func (c *Config) Estimator(catalogFile string) (*estimator.Estimator, error) {
	policy, err := c.Pricing.Policy()
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	if catalogFile == "" {
		catalogFile = c.Catalog.File
	}
	if catalogFile != "" {
		overrides, err := catalog.LoadFile(catalogFile)
		if err != nil {
			return nil, err
		}
		cat = cat.Merge(overrides)
	}

	return estimator.New(cat, policy), nil
}
