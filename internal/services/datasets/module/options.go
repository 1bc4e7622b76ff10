package module

import (
	"strings"
	"time"

	"vizdash/internal/datasets"
	"vizdash/internal/platform/config"
	"vizdash/internal/platform/logger"
	dom "vizdash/internal/services/datasets/domain"
	"vizdash/internal/services/datasets/service"
)

// defaultLimits mirrors the row caps the dashboards were designed around
var defaultLimits = map[string]int{
	datasets.Flights: 5000,
}

// Options holds configuration settings for the dataset catalog
type Options struct {
	Datasets    []service.Spec
	LoadTimeout time.Duration

	// url sources
	FetchTimeout time.Duration
	// CacheDir keeps downloaded files between runs, empty downloads on every load
	CacheDir   string
	Revalidate bool
}

// FromConfig reads DATASET_<NAME>_SOURCE and DATASET_<NAME>_LIMIT per dataset, plus
// DATASET_LOAD_TIMEOUT, DATASET_FETCH_TIMEOUT, DATASET_CACHE_DIR and DATASET_REVALIDATE
// an unparsable source panics like any other invalid required setting
func FromConfig(cfg config.Conf) Options {
	dc := cfg.Prefix("DATASET_")
	opts := Options{
		LoadTimeout:  dc.MayDuration("LOAD_TIMEOUT", time.Minute),
		FetchTimeout: dc.MayDuration("FETCH_TIMEOUT", 30*time.Second),
		CacheDir:     dc.MayString("CACHE_DIR", ""),
		Revalidate:   dc.MayBool("REVALIDATE", true),
	}
	for _, name := range datasets.Names() {
		key := strings.ToUpper(name) + "_"
		raw := dc.MayString(key+"SOURCE", string(dom.SourceSample))
		src, err := dom.ParseSource(raw)
		if err != nil {
			logger.Get().Panic().Err(err).Str("key", dc.Key(key+"SOURCE")).Msg("invalid dataset source")
		}
		opts.Datasets = append(opts.Datasets, service.Spec{
			Name:   name,
			Source: src,
			Limit:  dc.MayInt(key+"LIMIT", defaultLimits[name]),
		})
	}
	return opts
}
