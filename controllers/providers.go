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

package controllers

import (
	"os"

	"go.uber.org/fx"
)

func imageStoreFactory() *imageStore {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	return newImageStore(uploadDir)
}

// ControllerModule provides all HTTP controller constructors
var ControllerModule = fx.Options(
	fx.Provide(imageStoreFactory),

	// Authentication & user management
	fx.Provide(NewAuthController),
	fx.Provide(NewUserController),

	// Project and its subtree
	fx.Provide(NewProjectController),
	fx.Provide(NewAssessmentTargetController),
	fx.Provide(NewAssessmentScopeController),
	fx.Provide(NewCollectedInformationController),
	fx.Provide(NewBugController),
	fx.Provide(NewAffectedObjectController),
	fx.Provide(NewRecommendationController),
	fx.Provide(NewBugImageController),
	fx.Provide(NewCVEInformationController),

	// Reporting
	fx.Provide(NewReportController),

	// Vulnerability catalog
	fx.Provide(NewVulnerabilityTemplateController),
)
