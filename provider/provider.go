// Package provider resolves catalog names to search backends.
package provider

import (
	"fmt"

	"github.com/eztv-cli/eztv/constant"
	"github.com/eztv-cli/eztv/key"
	"github.com/eztv-cli/eztv/markup"
	"github.com/eztv-cli/eztv/network"
	"github.com/eztv-cli/eztv/series"
	"github.com/eztv-cli/eztv/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Provider is a catalog the application knows how to search.
type Provider struct {
	ID   string
	Name string
	// CreateFetcher builds the search transport from the current configuration.
	CreateFetcher func() (source.Fetcher, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Series returns an unfetched series looked up through this provider.
func (p *Provider) Series(name string) (*series.Series, error) {
	fetcher, err := p.CreateFetcher()
	if err != nil {
		return nil, err
	}
	return series.New(name, fetcher, markup.Goquery{}), nil
}

// Builtins returns the compiled-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   constant.DefaultCatalog,
			Name: "EZTV",
			CreateFetcher: func() (source.Fetcher, error) {
				return network.NewCatalog(
					constant.DefaultCatalog,
					viper.GetString(key.CatalogBaseURL),
					viper.GetString(key.CatalogSearchPath),
					viper.GetString(key.NetworkUserAgent),
					network.NewClient(),
				)
			},
		},
	}
}

// Get finds a provider by ID.
func Get(id string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return p.ID == id
	})
}

// Default returns the provider named by catalog.provider.
func Default() (*Provider, error) {
	id := viper.GetString(key.CatalogProvider)
	p, ok := Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown catalog provider %q", id)
	}
	return p, nil
}
