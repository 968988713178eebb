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
	"errors"
	"fmt"
	"strings"
)

// ContainerNotFoundError is returned when the input path does not resolve.
type ContainerNotFoundError struct {
	Path string
	Err  error
}

func (e *ContainerNotFoundError) Error() string {
	return fmt.Sprintf("container not found: %s", e.Path)
}

func (e *ContainerNotFoundError) Unwrap() error { return e.Err }

// ContainerFormatError is returned when the input is not a zip container or
// lacks the main body part.
type ContainerFormatError struct {
	Path     string
	MIMEType string
	Reason   string
	Err      error
}

func (e *ContainerFormatError) Error() string {
	parts := []string{"invalid container"}
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%q", e.Path))
	}
	if e.MIMEType != "" {
		parts = append(parts, fmt.Sprintf("mime=%q", e.MIMEType))
	}
	msg := strings.Join(parts, " ")
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ContainerFormatError) Unwrap() error { return e.Err }

// WriteError is returned when the destination cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// IsContainerNotFound reports whether the error is a ContainerNotFoundError.
func IsContainerNotFound(err error) bool {
	var target *ContainerNotFoundError
	return errors.As(err, &target)
}

// IsContainerFormat reports whether the error is a ContainerFormatError.
func IsContainerFormat(err error) bool {
	var target *ContainerFormatError
	return errors.As(err, &target)
}

// IsWriteError reports whether the error is a WriteError.
func IsWriteError(err error) bool {
	var target *WriteError
	return errors.As(err, &target)
}

// JobError records a batch job that failed.
type JobError struct {
	Job Job
	Err error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("%s: %v", e.Job.Input, e.Err)
}

func (e *JobError) Unwrap() error { return e.Err }
