package main

import (
	"context"

	"anchors/internal/platform/config"
	"anchors/internal/platform/logger"
	phttp "anchors/internal/platform/net/http"
	"anchors/internal/platform/store"

	"anchors/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (ANCHORS_API_*)
	root := config.New()
	apiCfg := root.Prefix("ANCHORS_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres)
	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:  true,
				URL:      pgCfg.MustString("DBURL"),
				MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 4)),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads ANCHORS_API_PORT / ANCHORS_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config: apiCfg,
			Store:  st,
			Logger: l,
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
