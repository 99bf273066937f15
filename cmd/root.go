// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/ensinfo/config"
	"github.com/tranvictor/ensinfo/ui"
)

var appUI ui.UI = ui.NewTerminalUI()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ensinfo",
	Short: "Compute ENS namehashes and decode ENS contenthash records offline",
	Long: `ensinfo is a command line tool to work with ENS identifiers without
talking to any ethereum node.

	1. namehash: computes the registry node of one or more names, eg.
	ensinfo namehash vitalik.eth

	2. labelhash: computes the keccak256 hash of single labels.

	3. contenthash: decodes the raw contenthash record of a resolver
	(0xe3... ipfs, 0xe4... swarm, 0xe5... ipns, anything else utf-8 text).

Every command reads its inputs from the arguments, or from stdin when no
argument is given, so it can be piped:

	cat names.txt | ensinfo namehash -t eth -j

Names are hashed exactly as given. Use --normalize to apply UTS-46
normalization first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs rootCmd and writes errors that weren't reported per input to
// stderr, stdout only ever carries results.
func execute() error {
	err := rootCmd.Execute()
	var reportedErr reportedError
	if err != nil && !errors.As(err, &reportedErr) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&config.JSONOutput, "json", "j", false, "Print the result as one JSON document instead of human readable blocks.")
}
