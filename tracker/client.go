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

package tracker

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/blinklabs-io/gotorrent/bencode"
	"github.com/blinklabs-io/gotorrent/metainfo"
)

const (
	// PeerIDLength is the wire size of a peer ID
	PeerIDLength = 20

	defaultPort = 6881
)

// AnnounceEvent tells the tracker why the client is announcing
type AnnounceEvent string

const (
	EventStarted   AnnounceEvent = "started"
	EventStopped   AnnounceEvent = "stopped"
	EventCompleted AnnounceEvent = "completed"
)

// Client announces to HTTP trackers, mostly following the conventions
// documented at wiki.theory.org/BitTorrentSpecification
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	peerID     []byte
	port       uint16
}

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*Client)

// WithHTTPClient specifies the HTTP client to use. If none is provided, a
// default client is created
func WithHTTPClient(httpClient *http.Client) ClientOptionFunc {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger specifies the logger to use. If none is provided, the process
// default logger is used
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithPeerID specifies the 20-byte peer ID to announce as. If none is
// provided, a random alphanumeric ID is generated
func WithPeerID(peerID []byte) ClientOptionFunc {
	return func(c *Client) {
		c.peerID = peerID
	}
}

// WithPort specifies the port reported to the tracker for incoming peer
// connections
func WithPort(port uint16) ClientOptionFunc {
	return func(c *Client) {
		c.port = port
	}
}

func NewClient(opts ...ClientOptionFunc) *Client {
	c := &Client{
		port: defaultPort,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if len(c.peerID) == 0 {
		c.peerID = GeneratePeerID()
	}
	return c
}

// PeerID returns the ID this client announces as
func (c *Client) PeerID() []byte {
	return c.peerID
}

// Announce reports the client's state for the given torrent to the announce
// URL and returns the tracker's peer list. The info hash and total payload
// length are derived from the torrent's info dictionary.
func (c *Client) Announce(
	ctx context.Context,
	announceURL string,
	info metainfo.Info,
	event AnnounceEvent,
) (*AnnounceResponse, error) {
	infoHash := info.Hash()
	params := url.Values{}
	// url.Values escaping is byte-oriented, so the raw SHA-1 bytes pass
	// through it unharmed
	params.Set("info_hash", string(infoHash[:]))
	params.Set("peer_id", string(c.peerID))
	params.Set("port", strconv.Itoa(int(c.port)))
	params.Set("uploaded", "0")
	params.Set("downloaded", "0")
	params.Set("left", strconv.FormatUint(info.Mode.TotalLength(), 10))
	params.Set("compact", "1")
	params.Set("event", string(event))

	requestURL := announceURL + "?" + params.Encode()
	c.logger.Debug(
		"sending announce",
		"component", "tracker",
		"url", announceURL,
		"event", string(event),
	)
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		requestURL,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("tracker: build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tracker: announce request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, StatusError{Code: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tracker: read response: %w", err)
	}
	value, err := bencode.Decode(body)
	if err != nil {
		return nil, err
	}
	result, err := ParseAnnounceResponse(value)
	if err != nil {
		return nil, err
	}
	c.logger.Debug(
		"announce response",
		"component", "tracker",
		"peers", len(result.Peers),
		"interval", result.Interval,
	)
	return result, nil
}

// GeneratePeerID creates a random 20-byte alphanumeric peer ID
func GeneratePeerID() []byte {
	const charset = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	id := make([]byte, PeerIDLength)
	_, _ = rand.Read(id)
	for i := range id {
		id[i] = charset[int(id[i])%len(charset)]
	}
	return id
}
