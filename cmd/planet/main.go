// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log"

	dotenv "github.com/dsh2dsh/expx-dotenv"

	"planet.pub/internal/cli"
)

func main() {
	if err := dotenv.New().Load(); err != nil {
		log.Fatalf("planet: load .env: %v", err)
	}
	cli.Execute()
}
