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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-fore/pkg/codec"
	"github.com/consensys/go-fore/pkg/field/gfp2"
	"github.com/consensys/go-fore/pkg/fore"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetKey parses the key flag, which is either decimal or 0x-prefixed
// hexadecimal.
func GetKey(cmd *cobra.Command) uint32 {
	key, err := parseKey(GetString(cmd, "key"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return key
}

// configure the logging level and construct the keyed system for a command.
func configure(cmd *cobra.Command) *fore.System {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	key := GetKey(cmd)
	log.Debugf("using key %#x", key)
	//
	return fore.New(key)
}

func parseKey(text string) (uint32, error) {
	key, err := strconv.ParseUint(strings.TrimSpace(text), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid key \"%s\": %w", text, err)
	}

	return uint32(key), nil
}

// readInput returns the given arguments joined by spaces or, when there are
// none, everything on stdin.
func readInput(args []string) []byte {
	if len(args) > 0 {
		return []byte(strings.Join(args, " "))
	}
	//
	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return bytes
}

// readFrame decodes a hex encoded frame from the given arguments (or stdin).
func readFrame(args []string) []gfp2.Element {
	seq, err := codec.UnmarshalHex(string(readInput(args)))
	if err != nil {
		fmt.Printf("error reading frame: %s\n", err)
		os.Exit(1)
	}
	//
	return seq
}

// printFrame writes a frame to stdout.  On a terminal every element is listed
// before the hex encoding, otherwise only the encoding is written such that it
// can be piped into other commands.
func printFrame(seq []gfp2.Element) {
	if isTerminal(os.Stdout) {
		printElements(os.Stdout, seq)
	}
	//
	fmt.Println(codec.MarshalHex(seq))
}

func printElements(w io.Writer, seq []gfp2.Element) {
	width := len(strconv.Itoa(max(len(seq)-1, 0)))
	//
	for i, e := range seq {
		fmt.Fprintf(w, "%*d: %10d %10d\n", width, i, e.A, e.B)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
