// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

/*
Package services provides suture.Service wrappers for CareerPath components.

  - HTTPServerService: runs the API server and shuts it down gracefully
  - CacheMaintenanceService: evicts expired recommendation results on a ticker

Each wrapper blocks in Serve until its context is canceled and implements
fmt.Stringer so supervisor events name it.

Example:

	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.Addr(), cfg.Server.ShutdownTimeout, logger))
	tree.AddEngineService(services.NewCacheMaintenanceService(engine, time.Minute, logger))
*/
package services
