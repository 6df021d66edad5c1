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
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [flags] [frame]",
	Short: "edit a coefficient of a frequency domain frame.",
	Long: `Write a value (moved into the frequency domain) at position pos·2^level of
	 the frame, along with its negation at the paired position pos·2^level +
	 2^(level-1).  Edits beyond the end of the frame are rejected unless
	 --lenient is given, in which case they are silently ignored.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys := configure(cmd)
		seq := readFrame(args)
		level := GetUint(cmd, "level")
		pos := GetUint(cmd, "pos")
		value := gfp2.New(uint64(GetUint(cmd, "value")), uint64(GetUint(cmd, "ext")))
		// Bounds are not enforced by the edit itself.
		if !GetFlag(cmd, "lenient") && !editInBounds(len(seq), level, pos) {
			fmt.Printf("edit at level %d position %d is outside frame of %d elements\n", level, pos, len(seq))
			os.Exit(1)
		}
		//
		sys.EditFrequency(seq, level, pos, value)
		printFrame(seq)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] [frame]",
	Short: "verify the dyadic pairing structure of a frame.",
	Long: `Check that, at every dyadic level, the element at the start of each block
	 and the element half a block later sum to zero.  Exits with status 1 when
	 the check fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys := configure(cmd)
		seq := readFrame(args)
		//
		if !sys.VerifyRelationships(seq) {
			fmt.Println("frame relationships violated")
			os.Exit(1)
		}
		//
		fmt.Println("frame relationships hold")
	},
}

// editInBounds checks whether an edit at the given level and position starts
// within a frame of n elements.
func editInBounds(n int, level uint, pos uint) bool {
	if n == 0 || level >= 63 {
		return false
	}

	return pos <= uint(n-1)>>level
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(verifyCmd)
	editCmd.Flags().Uint("level", 0, "dyadic level of the edit")
	editCmd.Flags().Uint("pos", 0, "block position at the given level")
	editCmd.Flags().Uint("value", 0, "base field component of the new value")
	editCmd.Flags().Uint("ext", 0, "extension component of the new value")
	editCmd.Flags().Bool("lenient", false, "silently ignore out of bounds edits")
	editCmd.MarkFlagRequired("value")
}
