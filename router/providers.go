package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewAuthenticatedRouter),
	fx.Provide(NewAuthRouter),
	fx.Provide(NewAdminRouter),
	fx.Provide(NewProjectRouter),
	fx.Provide(NewTemplateRouter),
)
