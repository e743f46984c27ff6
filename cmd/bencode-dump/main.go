// Copyright 2026 Blink Labs Software
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

package main

import (
	"fmt"
	"os"

	"github.com/blinklabs-io/gotorrent/bencode"
	"github.com/blinklabs-io/gotorrent/cmd/common"
)

func main() {
	// Parse commandline
	f := common.NewGlobalFlags()
	f.Parse()
	if f.Flagset.NArg() < 1 {
		fmt.Printf("Usage: %s [flags] <file>\n", os.Args[0])
		os.Exit(1)
	}
	value, err := bencode.DecodeFile(
		f.Flagset.Arg(0),
		bencode.WithMaxDepth(f.MaxDepth),
	)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Print(bencode.DumpStructure(value, ""))
}
