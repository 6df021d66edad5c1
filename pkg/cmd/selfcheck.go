// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-fore/pkg/field/gfp2"
	"github.com/consensys/go-fore/pkg/transform"
	"github.com/spf13/cobra"
)

var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck [flags]",
	Short: "check the algebraic preconditions of the encoding.",
	Long: `Confirm that x² - x - 1 is irreducible over GF(p), that the keyed elements
	 are inverse to each other and that a sample message survives a round trip.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys := configure(cmd)
		hw := transform.Detect()
		failed := false
		//
		check := func(name string, ok bool) {
			status := "ok"
			if !ok {
				status, failed = "FAILED", true
			}
			//
			fmt.Printf("%-24s %s\n", name, status)
		}
		//
		fmt.Printf("cores: %d, chunk size: %d elements\n", hw.Cores, hw.ChunkSize)
		check("irreducible", gfp2.CheckIrreducible())
		check("inverse", sys.PhiK().Mul(sys.PhiNegK()).IsOne())
		//
		const sample = "Test message"
		check("round trip", sys.Reconstruct(sys.ProcessData([]byte(sample))) == sample)
		//
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(selfcheckCmd)
}
