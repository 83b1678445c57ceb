package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/eztv-cli/eztv/icon"
	"github.com/eztv-cli/eztv/key"
	"github.com/eztv-cli/eztv/provider"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// UnknownKeyError is returned for keys that are not registered in Default.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s", e.Key)
}

var checks = map[string]func(any) error{
	key.CatalogProvider: func(v any) error {
		ids := lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
			return p.ID
		})
		if !lo.Contains(ids, v.(string)) {
			return fmt.Errorf("unknown catalog provider %q, available: %s", v, strings.Join(ids, ", "))
		}
		return nil
	},
	key.CatalogBaseURL: func(v any) error {
		u, err := url.Parse(v.(string))
		if err != nil {
			return err
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("catalog url must be http or https, got %q", v)
		}
		if u.Host == "" {
			return fmt.Errorf("catalog url %q has no host", v)
		}
		return nil
	},
	key.CatalogSearchPath: func(v any) error {
		if !strings.HasPrefix(v.(string), "/") {
			return fmt.Errorf("search path must start with /, got %q", v)
		}
		return nil
	},
	key.NetworkTimeout: func(v any) error {
		if v.(int) < 0 {
			return fmt.Errorf("timeout can not be negative, got %d", v)
		}
		return nil
	},
	key.LogsLevel: func(v any) error {
		_, err := logrus.ParseLevel(v.(string))
		return err
	},
	key.IconsVariant: func(v any) error {
		if !lo.Contains(icon.AvailableVariants(), v.(string)) {
			return fmt.Errorf("unknown icons variant %q, available: %s", v, strings.Join(icon.AvailableVariants(), ", "))
		}
		return nil
	},
}

// Parse converts command line values to the type registered for k and checks them.
func Parse(k string, raw []string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, &UnknownKeyError{Key: k}
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("no value for %s", k)
	}

	var (
		v   any
		err error
	)

	switch field.Value.(type) {
	case string:
		v = raw[0]
	case int:
		v, err = strconv.Atoi(raw[0])
	case bool:
		v, err = strconv.ParseBool(raw[0])
	case []string:
		v = raw
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", k, field.typeName())
	}

	if err != nil {
		return nil, fmt.Errorf("%s expects %s: %w", k, field.typeName(), err)
	}

	if check, ok := checks[k]; ok {
		if err := check(v); err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
	}

	return v, nil
}

// Save writes the current settings to the config file, creating it when missing.
func Save() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}

	return err
}

// Reset restores k to its registered default. An empty k resets every key.
func Reset(k string) error {
	if k == "" {
		for name, field := range Default {
			viper.Set(name, field.Value)
		}
		return nil
	}

	field, ok := Default[k]
	if !ok {
		return &UnknownKeyError{Key: k}
	}

	viper.Set(k, field.Value)
	return nil
}
