// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package crypto // import "planet.pub/internal/crypto"

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// HashFromString returns a stable, hex-encoded hash of the given string. The
// same input always produces the same output across runs and platforms.
func HashFromString(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 16)
}
