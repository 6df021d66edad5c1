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

	"github.com/consensys/go-fore/pkg/util"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] [text]",
	Short: "encode data into the keyed frequency domain.",
	Long: `Lift each byte of the given text (or of stdin when no text is given) into
	 GF(p²), apply the Haar pass and multiply by the keyed element.  The
	 resulting frame is written as hex.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys := configure(cmd)
		data := readInput(args)
		stats := util.NewPerfStats()
		//
		seq := sys.ProcessData(data)
		stats.Log(fmt.Sprintf("Encoding %d bytes", len(data)))
		//
		printFrame(seq)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] [frame]",
	Short: "reconstruct text from a frequency domain frame.",
	Long: `Align a hex encoded frame (given or read from stdin) with the scalar domain
	 and print the recovered ASCII text.  Elements which do not decode into
	 ASCII are skipped.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys := configure(cmd)
		seq := readFrame(args)
		//
		text := sys.Reconstruct(seq)
		if len(text) < len(seq) {
			fmt.Printf("warning: %d of %d elements skipped\n", len(seq)-len(text), len(seq))
		}
		//
		fmt.Println(text)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}
