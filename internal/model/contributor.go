// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package model // import "planet.pub/internal/model"

// Contributor is one member of the planet: a person or site whose feed is
// aggregated. Posts keep a non-owning back-reference to their contributor.
type Contributor struct {
	Name    string `yaml:"name" validate:"required"`
	URL     string `yaml:"url" validate:"omitempty,url"`
	FeedURL string `yaml:"feed" validate:"required,url"`
}
