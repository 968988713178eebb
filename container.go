// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package docx2md

import (
	"archive/zip"
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/conductor-oss/docx2md/internal/ooxml"
)

// container is a fully buffered document package.
type container struct {
	path string
	data []byte
	mime string
	zip  *zip.Reader
}

// openContainer reads the whole file at path into memory and checks that it
// is a zip package holding a main body part.
func openContainer(path string) (*container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ContainerNotFoundError{Path: path, Err: err}
		}
		return nil, &ContainerFormatError{Path: path, Reason: "unreadable", Err: err}
	}
	return newContainer(path, data)
}

func newContainer(path string, data []byte) (*container, error) {
	mtype := mimetype.Detect(data)
	if !isZipFamily(mtype) {
		return nil, &ContainerFormatError{
			Path:     path,
			MIMEType: mtype.String(),
			Reason:   "not a zip package",
		}
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ContainerFormatError{Path: path, MIMEType: mtype.String(), Reason: "open zip", Err: err}
	}

	if !ooxml.HasFile(zr, ooxml.PartDocument) {
		return nil, &ContainerFormatError{
			Path:     path,
			MIMEType: mtype.String(),
			Reason:   "missing " + ooxml.PartDocument,
		}
	}

	return &container{
		path: path,
		data: data,
		mime: mtype.String(),
		zip:  zr,
	}, nil
}

// isZipFamily reports whether the detected type is zip or derives from it
// (docx, jar, epub, ...).
func isZipFamily(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}

// body returns the main body XML.
func (c *container) body() ([]byte, error) {
	data, err := ooxml.ReadFileFromZip(c.zip, ooxml.PartDocument)
	if err != nil {
		return nil, &ContainerFormatError{Path: c.path, MIMEType: c.mime, Reason: "read body", Err: err}
	}
	return data, nil
}
