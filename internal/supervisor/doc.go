// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

/*
Package supervisor runs CareerPath's long-lived services under a suture v4
supervisor tree.

# Tree Layout

	careerpath (root)
	├── engine-layer
	│   └── cache-maintenance   (services.CacheMaintenanceService)
	└── api-layer
	    └── http-server         (services.HTTPServerService)

A service that returns an error or panics is restarted. When failures
exceed FailureThreshold (decaying at FailureDecay per second) the
supervisor waits FailureBackoff before the next restart.

# Logging

Supervisor events go through sutureslog to an *slog.Logger. The server
builds that logger with logging.SupervisorLogger so events land in the same
zerolog stream as the rest of the process.

# Usage

	tree, err := supervisor.NewSupervisorTree(slogger, supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddEngineService(services.NewCacheMaintenanceService(engine, time.Minute, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, addr, shutdownTimeout, logger))
	return tree.Serve(ctx)
*/
package supervisor
