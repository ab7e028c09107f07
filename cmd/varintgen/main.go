// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command varintgen renders the shuffle/dispatch lookup tables that
// varint/tables.go builds at init() time as Go source literals, so the
// tables can be reviewed as a diff (e.g. after changing a saturation
// limit). The varint package does not read the generated file; it still
// builds its tables in init().
//
// Usage:
//
//	varintgen tables --out tables_generated.go
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "varintgen"})

	root := &cobra.Command{
		Use:   "varintgen",
		Short: "Generate varint shuffle/dispatch lookup tables as Go source",
	}
	root.AddCommand(newTablesCmd(logger))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
