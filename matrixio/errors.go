// SPDX-License-Identifier: MIT

package matrixio

import "errors"

// ErrUnknownFormat is returned for a format name or file extension that
// has no codec.
var ErrUnknownFormat = errors.New("matrixio: unknown format")
