// seehuhn.de/go/stipple - turn grayscale images into animated dot drawings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package stipple

import "errors"

var (
	// ErrInvalidImage is returned for zero-area or malformed input buffers.
	ErrInvalidImage = errors.New("stipple: invalid image")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("stipple: invalid configuration")

	// ErrEmptyResult is stored in DotSet.Warning when sampling produced no
	// dots at all. It is a warning, not a failure.
	ErrEmptyResult = errors.New("stipple: no dots generated")
)
