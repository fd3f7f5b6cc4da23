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

package repositories

import (
	"github.com/pentabase/pentabase/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewAssessmentTargetRepository, fx.As(new(shared.AssessmentTargetRepository)))),
	fx.Provide(fx.Annotate(NewAssessmentScopeRepository, fx.As(new(shared.AssessmentScopeRepository)))),
	fx.Provide(fx.Annotate(NewCollectedInformationRepository, fx.As(new(shared.CollectedInformationRepository)))),
	fx.Provide(fx.Annotate(NewBugRepository, fx.As(new(shared.BugRepository)))),
	fx.Provide(fx.Annotate(NewAffectedObjectRepository, fx.As(new(shared.AffectedObjectRepository)))),
	fx.Provide(fx.Annotate(NewRecommendationRepository, fx.As(new(shared.RecommendationRepository)))),
	fx.Provide(fx.Annotate(NewBugImageRepository, fx.As(new(shared.BugImageRepository)))),
	fx.Provide(fx.Annotate(NewCVEInformationRepository, fx.As(new(shared.CVEInformationRepository)))),
	fx.Provide(fx.Annotate(NewVulnerabilityTemplateRepository, fx.As(new(shared.VulnerabilityTemplateRepository)))),
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
	fx.Provide(fx.Annotate(NewProjectAccessRepository, fx.As(new(shared.ProjectAccessRepository)))),
)
