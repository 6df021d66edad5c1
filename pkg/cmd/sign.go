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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/consensys/go-fore/pkg/signature"
	"github.com/spf13/cobra"
)

var signCmd = &cobra.Command{
	Use:   "sign [flags] [text]",
	Short: "sign the frequency domain encoding of some text.",
	Long: `Encode the given text (or stdin) into a frame, and sign the frame's byte
	 encoding with a key pair derived from the key.  Prints the public key and
	 the signature as hex.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys := configure(cmd)
		signer := newSigner(cmd)
		frame := signature.EncodeFrame(sys, readInput(args))
		//
		sig, err := signer.CreateSignature(frame)
		if err != nil {
			fmt.Printf("error: %s\n", err)
			os.Exit(1)
		}
		//
		fmt.Printf("public key: %s\n", hex.EncodeToString(signer.PublicKey()))
		fmt.Printf("signature:  %s\n", hex.EncodeToString(sig))
	},
}

var checkSigCmd = &cobra.Command{
	Use:   "check-sig [flags] signature text",
	Short: "check a signature over the frequency domain encoding of some text.",
	Long: `Encode the given text into a frame and check the hex encoded signature
	 against it.  Exits with status 1 when the signature is invalid.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		sys := configure(cmd)
		signer := newSigner(cmd)
		//
		sig, err := hex.DecodeString(args[0])
		if err != nil {
			fmt.Printf("malformed signature: %s\n", err)
			os.Exit(2)
		}
		//
		frame := signature.EncodeFrame(sys, readInput(args[1:]))
		if !signer.VerifySignature(frame, sig) {
			fmt.Println("signature invalid")
			os.Exit(1)
		}
		//
		fmt.Println("signature valid")
	},
}

func newSigner(cmd *cobra.Command) *signature.Signer {
	signer, err := signature.NewSigner(GetKey(cmd))
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}

	return signer
}

func init() {
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(checkSigCmd)
}
