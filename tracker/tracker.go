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

// Package tracker talks to HTTP announce trackers and decodes their bencoded
// responses into typed peer lists.
package tracker

import (
	"encoding/binary"
	"fmt"
	"net"
	"net/netip"
	"strconv"

	"github.com/blinklabs-io/gotorrent/bencode"
)

// Compact peer entries are 4 address bytes plus 2 port bytes, big endian
const compactPeerLength = 6

// AnnounceResponse is the decoded result of a tracker announce
type AnnounceResponse struct {
	// Interval is the number of seconds to wait before re-announcing
	Interval uint64
	// MinInterval is an optional lower re-announce bound, zero when absent
	MinInterval uint64
	// Complete is the number of seeders
	Complete uint64
	// Incomplete is the number of leechers
	Incomplete uint64
	// TrackerID should be echoed back on later announces when present
	TrackerID string
	Peers     []Peer
}

// Peer is one peer returned by a tracker
type Peer struct {
	// ID is the peer's self-reported ID. The compact peer model doesn't
	// carry IDs, so it may be empty.
	ID string
	// IP is an address literal or, in the dictionary peer model, possibly a
	// DNS name
	IP   string
	Port uint16
}

// Addr returns the peer as a host:port dial target
func (p Peer) Addr() string {
	return net.JoinHostPort(p.IP, strconv.Itoa(int(p.Port)))
}

// ParseAnnounceResponse extracts a typed announce result from a decoded
// tracker response document. Both peer list models are supported: the
// dictionary model (a list of dicts with "peer id", "ip", and "port") and the
// compact model (a byte string of 6-byte address/port entries).
func ParseAnnounceResponse(value bencode.Value) (*AnnounceResponse, error) {
	dict, ok := value.Dict()
	if !ok {
		return nil, fmt.Errorf(
			"%w: document is %s, expected dict",
			ErrInvalidResponse,
			value.Type(),
		)
	}
	if reason, ok := dict.GetString("failure reason"); ok {
		if text, ok := reason.Text(); ok {
			return nil, FailureError{Reason: text.String()}
		}
		return nil, FailureError{Reason: "unknown"}
	}
	interval, err := requireInteger(dict, "interval")
	if err != nil {
		return nil, err
	}
	complete, err := requireInteger(dict, "complete")
	if err != nil {
		return nil, err
	}
	incomplete, err := requireInteger(dict, "incomplete")
	if err != nil {
		return nil, err
	}
	peersValue, ok := dict.GetString("peers")
	if !ok {
		return nil, fmt.Errorf("%w: missing key %q", ErrInvalidResponse, "peers")
	}
	var peers []Peer
	switch peersValue.Type() {
	case bencode.TypeText:
		text, _ := peersValue.Text()
		peers, err = parseCompactPeers(text)
	case bencode.TypeList:
		list, _ := peersValue.List()
		peers, err = parseDictModelPeers(list)
	default:
		err = fmt.Errorf(
			"%w: key %q holds %s, expected text or list",
			ErrInvalidResponse,
			"peers",
			peersValue.Type(),
		)
	}
	if err != nil {
		return nil, err
	}
	resp := &AnnounceResponse{
		Interval:    interval,
		MinInterval: optionalInteger(dict, "min interval"),
		Complete:    complete,
		Incomplete:  incomplete,
		TrackerID:   optionalText(dict, "tracker id"),
		Peers:       peers,
	}
	return resp, nil
}

// parseCompactPeers unpacks the compact model: a byte string of consecutive
// 6-byte entries, 4 address bytes then 2 port bytes, in network byte order
func parseCompactPeers(text bencode.ByteString) ([]Peer, error) {
	data := text.Bytes()
	if len(data)%compactPeerLength != 0 {
		return nil, fmt.Errorf(
			"%w: compact peer list length %d is not a multiple of %d",
			ErrInvalidResponse,
			len(data),
			compactPeerLength,
		)
	}
	peers := make([]Peer, 0, len(data)/compactPeerLength)
	for offset := 0; offset < len(data); offset += compactPeerLength {
		entry := data[offset : offset+compactPeerLength]
		addr := netip.AddrFrom4([4]byte(entry[:4]))
		peers = append(peers, Peer{
			IP:   addr.String(),
			Port: binary.BigEndian.Uint16(entry[4:]),
		})
	}
	return peers, nil
}

func parseDictModelPeers(list []bencode.Value) ([]Peer, error) {
	peers := make([]Peer, 0, len(list))
	for _, item := range list {
		peerDict, ok := item.Dict()
		if !ok {
			return nil, fmt.Errorf(
				"%w: peer entry is %s, expected dict",
				ErrInvalidResponse,
				item.Type(),
			)
		}
		ip, err := requireText(peerDict, "ip")
		if err != nil {
			return nil, err
		}
		port, err := requireInteger(peerDict, "port")
		if err != nil {
			return nil, err
		}
		if port > 65535 {
			return nil, fmt.Errorf(
				"%w: peer port %d out of range",
				ErrInvalidResponse,
				port,
			)
		}
		peers = append(peers, Peer{
			ID:   optionalText(peerDict, "peer id"),
			IP:   ip.String(),
			Port: uint16(port),
		})
	}
	return peers, nil
}

func requireText(
	dict *bencode.Dict,
	key string,
) (bencode.ByteString, error) {
	value, ok := dict.GetString(key)
	if !ok {
		return bencode.ByteString{}, fmt.Errorf(
			"%w: missing key %q",
			ErrInvalidResponse,
			key,
		)
	}
	text, ok := value.Text()
	if !ok {
		return bencode.ByteString{}, fmt.Errorf(
			"%w: key %q holds %s, expected text",
			ErrInvalidResponse,
			key,
			value.Type(),
		)
	}
	return text, nil
}

func requireInteger(dict *bencode.Dict, key string) (uint64, error) {
	value, ok := dict.GetString(key)
	if !ok {
		return 0, fmt.Errorf(
			"%w: missing key %q",
			ErrInvalidResponse,
			key,
		)
	}
	n, ok := value.Integer()
	if !ok {
		return 0, fmt.Errorf(
			"%w: key %q holds %s, expected integer",
			ErrInvalidResponse,
			key,
			value.Type(),
		)
	}
	return n, nil
}

func optionalText(dict *bencode.Dict, key string) string {
	value, ok := dict.GetString(key)
	if !ok {
		return ""
	}
	text, ok := value.Text()
	if !ok {
		return ""
	}
	return text.String()
}

func optionalInteger(dict *bencode.Dict, key string) uint64 {
	value, ok := dict.GetString(key)
	if !ok {
		return 0
	}
	n, ok := value.Integer()
	if !ok {
		return 0
	}
	return n
}
