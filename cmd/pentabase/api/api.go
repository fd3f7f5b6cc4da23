// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package api

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/middlewares"
	"go.uber.org/fx"
)

var StartedAt = time.Now()

// Server wraps the echo instance so routers can hang their groups off it.
type Server struct {
	Echo *echo.Echo
}

// NewServer builds the echo server and binds its lifecycle to the fx app:
// listen on start, drain on stop.
func NewServer(lc fx.Lifecycle) Server {
	e := middlewares.Server()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			routes := e.Routes()
			sort.Slice(routes, func(i, j int) bool {
				return routes[i].Path < routes[j].Path
			})
			for _, route := range routes {
				if route.Method != "echo_route_not_found" {
					slog.Info(route.Path, "method", route.Method)
				}
			}

			go func() {
				if err := e.Start(":" + port); err != nil {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}

// Module provides the server and exposes the raw echo instance for
// fx.Invoke consumers.
var Module = fx.Options(
	fx.Provide(NewServer),
	fx.Provide(func(srv Server) *echo.Echo { return srv.Echo }),
)
