// Package api provides the HTTP API for the application
package api

import (
	"anchors/internal/platform/config"
	"anchors/internal/platform/logger"
	phttp "anchors/internal/platform/net/http"
	"anchors/internal/platform/store"

	"anchors/internal/modkit"
	"anchors/internal/modkit/httpkit"
	"anchors/internal/modkit/module"

	analysismod "anchors/internal/services/analysis/module"
	anchorsmod "anchors/internal/services/anchors/module"
	contentdomain "anchors/internal/services/content/domain"
	contentmod "anchors/internal/services/content/module"
	lbmod "anchors/internal/services/linkbuilder/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
		PG:  opt.Store.PG.Querier(),
	}

	// content first, everything downstream reads documents through it
	content := contentmod.New(deps)
	reader := module.MustPortsOf[contentmod.Ports](content).Reader

	analysis := analysismod.New(deps, modkit.WithPorts(analysismod.PortsIn{
		Reader: reader,
	}))
	profiles := module.MustPortsOf[analysismod.Ports](analysis).Profiles

	anchors := anchorsmod.New(deps, modkit.WithPorts(anchorsmod.PortsIn{
		Reader: reader,
	}))
	extractor := module.MustPortsOf[anchorsmod.Ports](anchors).Extractor

	linkbuilder := lbmod.New(deps, modkit.WithPorts(lbmod.PortsIn{
		Reader:    reader,
		Profiles:  profiles,
		Extractor: extractor,
	}))

	mods := []module.Module{content, analysis, anchors, linkbuilder}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its prefix
			m.MountRoutes(api)
		}

		// publish the annotator under the name document search looks up
		module.Register(
			contentdomain.AnnotatorModule,
			module.MustPortsOf[lbmod.Ports](linkbuilder).Annotator,
		)
	})
}
