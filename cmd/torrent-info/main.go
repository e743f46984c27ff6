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
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blinklabs-io/gotorrent/cmd/common"
	"github.com/blinklabs-io/gotorrent/metainfo"
	"github.com/blinklabs-io/gotorrent/tracker"
)

type torrentInfoFlags struct {
	*common.GlobalFlags
	peers   bool
	port    uint
	timeout time.Duration
}

func main() {
	// Parse commandline
	f := torrentInfoFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.BoolVar(
		&f.peers,
		"peers",
		false,
		"announce to the tracker and list returned peers",
	)
	f.Flagset.UintVar(
		&f.port,
		"port",
		6881,
		"port to report to the tracker",
	)
	f.Flagset.DurationVar(
		&f.timeout,
		"timeout",
		30*time.Second,
		"timeout for the tracker announce",
	)
	f.Parse()
	if f.port > 65535 {
		fmt.Printf("Invalid port specified: %d\n", f.port)
		os.Exit(1)
	}
	if f.Flagset.NArg() < 1 {
		fmt.Printf("Usage: %s [flags] <file.torrent>\n", os.Args[0])
		os.Exit(1)
	}

	m, err := metainfo.FromFile(f.Flagset.Arg(0))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	infoHash := m.Info.Hash()

	fmt.Printf("Announce:     %s\n", m.Announce)
	for _, url := range m.AnnounceList {
		fmt.Printf("Also:         %s\n", url)
	}
	fmt.Printf("Info hash:    %s\n", hex.EncodeToString(infoHash[:]))
	fmt.Printf("Piece length: %d\n", m.Info.PieceLength)
	fmt.Printf("Pieces:       %d\n", m.Info.NumPieces())
	fmt.Printf("Total length: %d\n", m.Info.Mode.TotalLength())
	fmt.Printf("Private:      %v\n", m.Info.Private)
	switch mode := m.Info.Mode.(type) {
	case metainfo.SingleFile:
		fmt.Printf("File:         %s\n", mode.Name)
	case metainfo.MultiFile:
		fmt.Printf("Directory:    %s\n", mode.Name)
		for _, file := range mode.Files {
			fmt.Printf(
				"  %s (%d bytes)\n",
				filepath.Join(file.Path...),
				file.Length,
			)
		}
	}

	if f.peers {
		client := tracker.NewClient(
			tracker.WithPort(uint16(f.port)),
		)
		ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
		defer cancel()
		resp, err := client.Announce(
			ctx,
			m.Announce,
			m.Info,
			tracker.EventStarted,
		)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf(
			"Peers (%d seeders, %d leechers):\n",
			resp.Complete,
			resp.Incomplete,
		)
		for _, peer := range resp.Peers {
			fmt.Printf("  %s\n", peer.Addr())
		}
	}
}
