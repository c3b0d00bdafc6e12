// SPDX-License-Identifier: EPL-2.0

package retrosfx

import "errors"

var (
	// ErrUnknownExtension indicates that no decoder is registered for
	// a file's extension.
	ErrUnknownExtension = errors.New("unknown file extension")

	// ErrNilDecoder indicates an attempt to register a nil decoder.
	ErrNilDecoder = errors.New("nil decoder")
)
