// Package api provides the HTTP API for the application
package api

import (
	"moodroom/internal/platform/clock"
	"moodroom/internal/platform/config"
	"moodroom/internal/platform/logger"
	phttp "moodroom/internal/platform/net/http"
	"moodroom/internal/platform/store"

	"moodroom/internal/modkit"
	"moodroom/internal/modkit/httpkit"
	"moodroom/internal/modkit/module"
	"moodroom/internal/modkit/swaggerkit"

	metamod "moodroom/internal/services/api/meta/module"
	authmod "moodroom/internal/services/auth/module"
	commentsmod "moodroom/internal/services/comments/module"
	commentssvc "moodroom/internal/services/comments/service"
	emotionsmod "moodroom/internal/services/emotions/module"
	presencemod "moodroom/internal/services/presence/module"
)

// Options are the API options
type Options struct {
	// Config is the root view; modules pick their own prefixes
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
	Clock  clock.Clock

	// Queue runs the classification pipeline in the background
	Queue commentssvc.Queue

	// Comments and Emotions override wiring, mainly for tests; unset auth and
	// presence fields resolve from the port registry
	Comments commentsmod.Wiring
	Emotions emotionsmod.Wiring

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router and returns the mounted modules
func Mount(r phttp.Router, opt Options) []module.Module {
	if opt.Store == nil || opt.Store.PG == nil {
		panic("api.Mount requires a postgres store")
	}
	deps := modkit.Deps{
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		Clock: opt.Clock,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// auth and presence register first; comments and emotions look their ports up
	authMod := module.RegisterModule(authmod.New(deps))
	presMod := module.RegisterModule(presencemod.New(deps))

	cw := opt.Comments
	cw.Queue = opt.Queue

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(opt.Queue)),
		authMod,
		presMod,
		commentsmod.New(deps, modkit.WithPorts(cw)),
		emotionsmod.New(deps, modkit.WithPorts(opt.Emotions)),
	}

	// Swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	apiCfg := opt.Config.Prefix("CORE_API_")
	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
		SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", 0),
		MaxInFlight: apiCfg.MayInt("MAX_IN_FLIGHT", 0),
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
	return mods
}
