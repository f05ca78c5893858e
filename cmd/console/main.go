// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"log"

	"github.com/relabs-tech/gnss_fix/internal/app"
)

func main() {
	log.Println("starting gnss-fix (mock console)")

	app.RunMockConsole()
}
