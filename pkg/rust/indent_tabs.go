// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build rmodgen_tabs

package rust

// IndentUnit is emitted once per nesting level.
const IndentUnit = "\t"
