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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blinklabs-io/gotorrent/bencode"
	"github.com/blinklabs-io/gotorrent/internal/test"
	"github.com/blinklabs-io/gotorrent/metainfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func testMetaInfo(t *testing.T) *metainfo.MetaInfo {
	t.Helper()
	infoDict := bencode.NewDict()
	infoDict.SetString("name", bencode.NewTextFromString("sample.bin"))
	infoDict.SetString("piece length", bencode.NewInteger(262144))
	infoDict.SetString(
		"pieces",
		bencode.NewText(
			test.DecodeHexString("99c82bb73505a3c0b453f9fa0e881d6e5a32a0c1"),
		),
	)
	infoDict.SetString("length", bencode.NewInteger(555555))
	root := bencode.NewDict()
	root.SetString("announce", bencode.NewTextFromString("placeholder"))
	root.SetString("info", infoDict.Value())

	m, err := metainfo.FromBytes(bencode.Encode(root.Value()))
	require.NoError(t, err)
	return m
}

func TestClientAnnounce(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := testMetaInfo(t)
	infoHash := m.Info.Hash()
	peerID := []byte("-GT0001-abcdefghijkl")

	ts := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			// The raw info hash bytes must survive URL encoding intact
			assert.Equal(t, string(infoHash[:]), query.Get("info_hash"))
			assert.Equal(t, string(peerID), query.Get("peer_id"))
			assert.Equal(t, "6889", query.Get("port"))
			assert.Equal(t, "555555", query.Get("left"))
			assert.Equal(t, "1", query.Get("compact"))
			assert.Equal(t, "started", query.Get("event"))

			dict := bencode.NewDict()
			dict.SetString("interval", bencode.NewInteger(1800))
			dict.SetString("complete", bencode.NewInteger(5))
			dict.SetString("incomplete", bencode.NewInteger(2))
			dict.SetString(
				"peers",
				bencode.NewText(
					test.DecodeHexString("0a0000011ae1c0a80102c8d5"),
				),
			)
			_, _ = w.Write(bencode.Encode(dict.Value()))
		}),
	)
	defer ts.Close()
	defer ts.Client().CloseIdleConnections()

	client := NewClient(
		WithHTTPClient(ts.Client()),
		WithPeerID(peerID),
		WithPort(6889),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.Announce(ctx, ts.URL, m.Info, EventStarted)
	require.NoError(t, err)
	assert.Equal(t, uint64(1800), resp.Interval)
	require.Len(t, resp.Peers, 2)
	assert.Equal(t, "10.0.0.1:6881", resp.Peers[0].Addr())
}

func TestClientAnnounceFailureReason(t *testing.T) {
	defer goleak.VerifyNone(t)

	ts := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dict := bencode.NewDict()
			dict.SetString(
				"failure reason",
				bencode.NewTextFromString("torrent not registered"),
			)
			_, _ = w.Write(bencode.Encode(dict.Value()))
		}),
	)
	defer ts.Close()
	defer ts.Client().CloseIdleConnections()

	client := NewClient(WithHTTPClient(ts.Client()))
	_, err := client.Announce(
		context.Background(),
		ts.URL,
		testMetaInfo(t).Info,
		EventStarted,
	)
	require.Error(t, err)
	var failure FailureError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "torrent not registered", failure.Reason)
}

func TestClientAnnounceHTTPError(t *testing.T) {
	defer goleak.VerifyNone(t)

	ts := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}),
	)
	defer ts.Close()
	defer ts.Client().CloseIdleConnections()

	client := NewClient(WithHTTPClient(ts.Client()))
	_, err := client.Announce(
		context.Background(),
		ts.URL,
		testMetaInfo(t).Info,
		EventStarted,
	)
	require.Error(t, err)
	var status StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusInternalServerError, status.Code)
}

func TestClientAnnounceMalformedBody(t *testing.T) {
	defer goleak.VerifyNone(t)

	ts := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not bencode"))
		}),
	)
	defer ts.Close()
	defer ts.Client().CloseIdleConnections()

	client := NewClient(WithHTTPClient(ts.Client()))
	_, err := client.Announce(
		context.Background(),
		ts.URL,
		testMetaInfo(t).Info,
		EventStarted,
	)
	require.Error(t, err)
	var decodeErr *bencode.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestGeneratePeerID(t *testing.T) {
	const charset = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	a := GeneratePeerID()
	b := GeneratePeerID()

	require.Len(t, a, PeerIDLength)
	for _, c := range a {
		assert.True(t, strings.ContainsRune(charset, rune(c)))
	}
	// Two generated IDs colliding would mean the randomness is broken
	assert.NotEqual(t, a, b)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()
	require.NotNil(t, client)
	assert.Len(t, client.PeerID(), PeerIDLength)
}
