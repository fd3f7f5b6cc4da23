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

package controllers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pentabase/pentabase/database"
	"github.com/pentabase/pentabase/database/models"
	"github.com/pentabase/pentabase/dtos"
	"github.com/pentabase/pentabase/shared"
	"github.com/pentabase/pentabase/utils"
)

type BugImageController struct {
	imageRepository   shared.BugImageRepository
	bugRepository     shared.BugRepository
	projectRepository shared.ProjectRepository
	store             *imageStore
}

func NewBugImageController(imageRepository shared.BugImageRepository, bugRepository shared.BugRepository, projectRepository shared.ProjectRepository, store *imageStore) *BugImageController {
	return &BugImageController{
		imageRepository:   imageRepository,
		bugRepository:     bugRepository,
		projectRepository: projectRepository,
		store:             store,
	}
}

func (c *BugImageController) List(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	images, err := c.imageRepository.GetByBugID(bug.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list images").WithInternal(err)
	}
	return ctx.JSON(200, images)
}

// Upload stores the image bytes under a server generated filename. The
// client supplied name only contributes its extension.
func (c *BugImageController) Upload(ctx shared.Context) error {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(400, "missing file upload").WithInternal(err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(400, "could not read file upload").WithInternal(err)
	}
	defer src.Close()

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))

	if err := c.store.save(filename, src); err != nil {
		return echo.NewHTTPError(500, "could not store image").WithInternal(err)
	}

	image := models.BugImage{
		BugID:    bug.ID,
		Filename: filename,
	}
	if caption := ctx.FormValue("caption"); caption != "" {
		image.Caption = utils.Ptr(utils.SanitizeInput(caption))
	}

	if err := c.imageRepository.Create(nil, &image); err != nil {
		// the row failed, do not leave the bytes behind
		c.store.remove(filename)
		return mapWriteError(err, "image")
	}

	touchProject(c.projectRepository, ctx)
	return ctx.JSON(201, image)
}

func (c *BugImageController) Download(ctx shared.Context) error {
	image, err := c.imageFromContext(ctx)
	if err != nil {
		return err
	}

	path := c.store.path(image.Filename)
	if _, err := os.Stat(path); err != nil {
		return echo.NewHTTPError(404, "image file not found").WithInternal(err)
	}

	return ctx.File(path)
}

func (c *BugImageController) Patch(ctx shared.Context) error {
	image, err := c.imageFromContext(ctx)
	if err != nil {
		return err
	}

	req, err := bindAndValidate[dtos.BugImagePatchRequest](ctx)
	if err != nil {
		return err
	}

	if req.ApplyToModel(&image) {
		if err := c.imageRepository.Save(nil, &image); err != nil {
			return mapWriteError(err, "image")
		}
		touchProject(c.projectRepository, ctx)
	}

	return ctx.JSON(200, image)
}

func (c *BugImageController) Delete(ctx shared.Context) error {
	image, err := c.imageFromContext(ctx)
	if err != nil {
		return err
	}

	if err := c.imageRepository.Delete(nil, image.ID); err != nil {
		return mapWriteError(err, "image")
	}

	c.store.remove(image.Filename)

	touchProject(c.projectRepository, ctx)
	return ctx.NoContent(204)
}

func (c *BugImageController) imageFromContext(ctx shared.Context) (models.BugImage, error) {
	bug, err := bugFromContext(ctx, c.bugRepository)
	if err != nil {
		return models.BugImage{}, err
	}

	imageID, err := shared.ParamUint(ctx, "imageID")
	if err != nil {
		return models.BugImage{}, err
	}

	image, err := c.imageRepository.Read(imageID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return models.BugImage{}, echo.NewHTTPError(404, "image not found").WithInternal(err)
		}
		return models.BugImage{}, echo.NewHTTPError(500, "could not load image").WithInternal(err)
	}
	if image.BugID != bug.ID {
		return models.BugImage{}, echo.NewHTTPError(404, "image not found")
	}

	return image, nil
}
