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

// Package metainfo provides a typed view of .torrent documents (BEP 3
// metainfo files) decoded with the bencode package.
package metainfo

import (
	"crypto/sha1"

	"github.com/blinklabs-io/gotorrent/bencode"
)

// PieceHashLength is the size of each SHA-1 piece digest in the pieces blob
const PieceHashLength = 20

// MetaInfo is the top-level structure of a .torrent document. Optional fields
// are zero-valued when the document omits them.
type MetaInfo struct {
	Info Info
	// Announce is the announce URL of the tracker
	Announce string
	// AnnounceList holds the flattened announce-list extension tiers
	AnnounceList []string
	// CreationDate is a UNIX timestamp, zero when absent
	CreationDate uint64
	// Comment holds free-form text from the torrent author
	Comment   string
	CreatedBy string
	// Encoding names the string encoding used for the pieces part of the
	// info dictionary
	Encoding string
}

// Info is the info dictionary of a torrent
type Info struct {
	// PieceLength is the number of bytes in each piece
	PieceLength uint64
	// Pieces is the concatenation of the 20-byte SHA-1 digests of all
	// pieces. It's raw binary data, not text.
	Pieces bencode.ByteString
	// Private reports whether peers may only be obtained from the trackers
	// named in this document (no DHT or peer exchange)
	Private bool
	// Mode describes the payload: a single file or a file tree
	Mode FileMode
	// raw retains the decoded info dictionary so Hash can reproduce the
	// exact bytes the document was built from
	raw bencode.Value
}

// Hash returns the SHA-1 digest of the re-encoded info dictionary. This is
// the torrent's identity on the wire (the tracker's info_hash parameter).
func (i Info) Hash() [sha1.Size]byte {
	return sha1.Sum(bencode.Encode(i.raw))
}

// NumPieces returns the number of complete piece digests in the pieces blob
func (i Info) NumPieces() int {
	return i.Pieces.Len() / PieceHashLength
}

// PieceHashes splits the pieces blob into its individual 20-byte digests
func (i Info) PieceHashes() []bencode.ByteString {
	pieces := i.Pieces.Bytes()
	hashes := make([]bencode.ByteString, 0, i.NumPieces())
	for idx := 0; idx+PieceHashLength <= len(pieces); idx += PieceHashLength {
		hashes = append(
			hashes,
			bencode.NewByteString(pieces[idx:idx+PieceHashLength]),
		)
	}
	return hashes
}

// FileMode describes how the torrent payload is laid out on disk
type FileMode interface {
	// TotalLength returns the total payload size in bytes
	TotalLength() uint64
}

// SingleFile is the single-file mode: the whole payload is one file
type SingleFile struct {
	Name   string
	Length uint64
	// MD5Sum is an optional hex digest carried by some torrent creators.
	// BitTorrent itself doesn't use it.
	MD5Sum string
}

func (f SingleFile) TotalLength() uint64 {
	return f.Length
}

// MultiFile is the multiple-file mode: the payload is a directory tree
type MultiFile struct {
	// Name is the advisory name of the directory holding the files
	Name  string
	Files []FileEntry
}

func (f MultiFile) TotalLength() uint64 {
	var total uint64
	for _, file := range f.Files {
		total += file.Length
	}
	return total
}

// FileEntry is one file within a multiple-file torrent
type FileEntry struct {
	Length uint64
	// Path holds the directory names leading to the file, with the filename
	// as the final element
	Path   []string
	MD5Sum string
}

// FromFile reads and parses a .torrent file
func FromFile(path string) (*MetaInfo, error) {
	value, err := bencode.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return FromValue(value)
}

// FromBytes parses .torrent document bytes
func FromBytes(data []byte) (*MetaInfo, error) {
	value, err := bencode.Decode(data)
	if err != nil {
		return nil, err
	}
	return FromValue(value)
}

// FromValue extracts torrent metadata from an already-decoded document
func FromValue(value bencode.Value) (*MetaInfo, error) {
	dict, ok := value.Dict()
	if !ok {
		return nil, ErrNotDict
	}
	announce, err := requireText(dict, "announce")
	if err != nil {
		return nil, err
	}
	info, err := parseInfo(dict)
	if err != nil {
		return nil, err
	}
	m := &MetaInfo{
		Info:         info,
		Announce:     announce.String(),
		AnnounceList: parseAnnounceList(dict),
		CreationDate: optionalInteger(dict, "creation date"),
		Comment:      optionalText(dict, "comment"),
		CreatedBy:    optionalText(dict, "created by"),
		Encoding:     optionalText(dict, "encoding"),
	}
	return m, nil
}

func parseInfo(dict *bencode.Dict) (Info, error) {
	infoValue, ok := dict.GetString("info")
	if !ok {
		return Info{}, MissingKeyError{Key: "info"}
	}
	infoDict, ok := infoValue.Dict()
	if !ok {
		return Info{}, UnexpectedTypeError{
			Key:      "info",
			Expected: bencode.TypeDict,
			Actual:   infoValue.Type(),
		}
	}
	pieceLength, err := requireInteger(infoDict, "piece length")
	if err != nil {
		return Info{}, err
	}
	pieces, err := requireText(infoDict, "pieces")
	if err != nil {
		return Info{}, err
	}
	mode, err := parseFileMode(infoDict)
	if err != nil {
		return Info{}, err
	}
	info := Info{
		PieceLength: pieceLength,
		Pieces:      pieces,
		Private:     optionalInteger(infoDict, "private") == 1,
		Mode:        mode,
		raw:         infoValue,
	}
	return info, nil
}

func parseFileMode(infoDict *bencode.Dict) (FileMode, error) {
	name, err := requireText(infoDict, "name")
	if err != nil {
		return nil, err
	}
	filesValue, ok := infoDict.GetString("files")
	if !ok {
		// Single-file mode
		length, err := requireInteger(infoDict, "length")
		if err != nil {
			return nil, err
		}
		return SingleFile{
			Name:   name.String(),
			Length: length,
			MD5Sum: optionalText(infoDict, "md5sum"),
		}, nil
	}
	files, ok := filesValue.List()
	if !ok {
		return nil, UnexpectedTypeError{
			Key:      "files",
			Expected: bencode.TypeList,
			Actual:   filesValue.Type(),
		}
	}
	entries := make([]FileEntry, 0, len(files))
	for _, fileValue := range files {
		fileDict, ok := fileValue.Dict()
		if !ok {
			return nil, UnexpectedTypeError{
				Key:      "files",
				Expected: bencode.TypeDict,
				Actual:   fileValue.Type(),
			}
		}
		length, err := requireInteger(fileDict, "length")
		if err != nil {
			return nil, err
		}
		pathValue, ok := fileDict.GetString("path")
		if !ok {
			return nil, MissingKeyError{Key: "path"}
		}
		pathList, ok := pathValue.List()
		if !ok {
			return nil, UnexpectedTypeError{
				Key:      "path",
				Expected: bencode.TypeList,
				Actual:   pathValue.Type(),
			}
		}
		path := make([]string, 0, len(pathList))
		for _, element := range pathList {
			if text, ok := element.Text(); ok {
				path = append(path, text.String())
			}
		}
		entries = append(entries, FileEntry{
			Length: length,
			Path:   path,
			MD5Sum: optionalText(fileDict, "md5sum"),
		})
	}
	return MultiFile{
		Name:  name.String(),
		Files: entries,
	}, nil
}

// parseAnnounceList flattens the announce-list tiers (a list of lists of
// URLs) into a single slice, skipping entries of unexpected shape
func parseAnnounceList(dict *bencode.Dict) []string {
	listValue, ok := dict.GetString("announce-list")
	if !ok {
		return nil
	}
	tiers, ok := listValue.List()
	if !ok {
		return nil
	}
	var urls []string
	for _, tier := range tiers {
		tierList, ok := tier.List()
		if !ok {
			continue
		}
		for _, entry := range tierList {
			if text, ok := entry.Text(); ok {
				urls = append(urls, text.String())
			}
		}
	}
	return urls
}

func requireText(
	dict *bencode.Dict,
	key string,
) (bencode.ByteString, error) {
	value, ok := dict.GetString(key)
	if !ok {
		return bencode.ByteString{}, MissingKeyError{Key: key}
	}
	text, ok := value.Text()
	if !ok {
		return bencode.ByteString{}, UnexpectedTypeError{
			Key:      key,
			Expected: bencode.TypeText,
			Actual:   value.Type(),
		}
	}
	return text, nil
}

func requireInteger(dict *bencode.Dict, key string) (uint64, error) {
	value, ok := dict.GetString(key)
	if !ok {
		return 0, MissingKeyError{Key: key}
	}
	n, ok := value.Integer()
	if !ok {
		return 0, UnexpectedTypeError{
			Key:      key,
			Expected: bencode.TypeInteger,
			Actual:   value.Type(),
		}
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
