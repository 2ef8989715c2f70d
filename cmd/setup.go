package main

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/verityai/capital-recommender/internal/catalog"
	"github.com/verityai/capital-recommender/internal/engine"
	"github.com/verityai/capital-recommender/internal/market"
)

// env bundles the stores and engine shared by the commands.
type env struct {
	Catalog *catalog.Store
	Market  *market.Store
	Engine  *engine.Engine
}

// initEnv loads the catalog (external file if configured, built-in set
// otherwise) and wires the engine.
func initEnv() (*env, error) {
	sources := catalog.BuiltIn()
	if cfg.Catalog.File != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			return nil, eris.Wrap(err, "load catalog file")
		}
		sources = loaded
		zap.L().Info("loaded external catalog",
			zap.String("file", cfg.Catalog.File),
			zap.Int("sources", len(sources)),
		)
	}
	if err := catalog.Validate(sources); err != nil {
		return nil, eris.Wrap(err, "validate catalog")
	}

	cat := catalog.NewStore(sources)
	mkt := market.NewStore()

	eng, err := engine.New(cat, mkt, cfg.Matcher.MatcherSettings())
	if err != nil {
		return nil, err
	}

	return &env{Catalog: cat, Market: mkt, Engine: eng}, nil
}
