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
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pentabase/pentabase/database/models"
)

// imageStore holds the upload directory. Image rows cascade with their
// bug and project, the bytes on disk do not, so every delete path also
// goes through here.
type imageStore struct {
	dir string
}

func newImageStore(dir string) *imageStore {
	return &imageStore{dir: dir}
}

func (s *imageStore) path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}

func (s *imageStore) save(filename string, src io.Reader) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return err
	}

	dst, err := os.Create(s.path(filename))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// remove is best effort. The row is already gone, a leftover file only
// costs disk space and must never fail the request.
func (s *imageStore) remove(filename string) {
	if err := os.Remove(s.path(filename)); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not remove image file", "filename", filename, "err", err)
	}
}

func (s *imageStore) removeAll(images []models.BugImage) {
	for _, image := range images {
		s.remove(image.Filename)
	}
}
