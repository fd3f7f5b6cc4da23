package services

import (
	"os"

	"github.com/pentabase/pentabase/shared"
	"go.uber.org/fx"
)

func tokenServiceFactory() *tokenService {
	return NewTokenService(os.Getenv("JWT_SECRET"))
}

var ServiceModule = fx.Options(
	fx.Provide(fx.Annotate(NewReportService, fx.As(new(shared.ReportService)))),
	fx.Provide(fx.Annotate(tokenServiceFactory, fx.As(new(shared.TokenService)))),
)
