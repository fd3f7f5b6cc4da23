// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package middlewares

import (
	"log/slog"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"
)

func wrapPprof(h http.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		h(ctx.Response().Writer, ctx.Request())
		return nil
	}
}

// AddProfileEndpoints mounts net/http/pprof under /debug/pprof. Only wired
// when ENABLE_PROFILING is set, the routes are unauthenticated.
func AddProfileEndpoints(e *echo.Echo) {
	slog.Warn("profiling endpoints enabled under /debug/pprof")

	g := e.Group("/debug/pprof")
	g.GET("", wrapPprof(pprof.Index))
	g.GET("/", wrapPprof(pprof.Index))
	g.GET("/cmdline/", wrapPprof(pprof.Cmdline))
	g.GET("/profile/", wrapPprof(pprof.Profile))
	g.GET("/symbol/", wrapPprof(pprof.Symbol))
	g.POST("/symbol/", wrapPprof(pprof.Symbol))
	g.GET("/trace/", wrapPprof(pprof.Trace))

	for _, profile := range []string{"heap", "goroutine", "block", "threadcreate", "mutex"} {
		g.GET("/"+profile+"/", wrapPprof(pprof.Handler(profile).ServeHTTP))
	}
}
