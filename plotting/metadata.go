package plotting

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"sort"

	"github.com/gwinfer/postplot/common"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// EmbedText splices tEXt chunks into an encoded PNG, directly after the
// IHDR chunk, one per entry. Keys are written in sorted order so output
// is deterministic.
func EmbedText(png []byte, entries map[string]string) ([]byte, error) {
	if len(png) < len(pngSignature)+12 || !bytes.Equal(png[:8], pngSignature) {
		return nil, fmt.Errorf("%w: not a PNG stream", common.ErrorInvalidValue)
	}

	ihdrLen := int(binary.BigEndian.Uint32(png[8:12]))
	insert := 8 + 12 + ihdrLen
	if insert > len(png) {
		return nil, fmt.Errorf("%w: truncated PNG stream", common.ErrorInvalidValue)
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		if entries[k] != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(png[:insert])
	for _, k := range keys {
		data := make([]byte, 0, len(k)+1+len(entries[k]))
		data = append(data, k...)
		data = append(data, 0)
		data = append(data, entries[k]...)
		writeChunk(&buf, "tEXt", data)
	}
	buf.Write(png[insert:])
	return buf.Bytes(), nil
}

// ReadText returns the tEXt entries of an encoded PNG.
func ReadText(png []byte) (map[string]string, error) {
	if len(png) < len(pngSignature) || !bytes.Equal(png[:8], pngSignature) {
		return nil, fmt.Errorf("%w: not a PNG stream", common.ErrorInvalidValue)
	}

	entries := map[string]string{}
	pos := 8
	for pos+12 <= len(png) {
		length := int(binary.BigEndian.Uint32(png[pos : pos+4]))
		typ := string(png[pos+4 : pos+8])
		if pos+12+length > len(png) {
			break
		}
		if typ == "tEXt" {
			data := png[pos+8 : pos+8+length]
			if i := bytes.IndexByte(data, 0); i >= 0 {
				entries[string(data[:i])] = string(data[i+1:])
			}
		}
		pos += 12 + length
	}
	return entries, nil
}

func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(len(data)))
	buf.Write(word[:])
	buf.WriteString(typ)
	buf.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	binary.BigEndian.PutUint32(word[:], crc.Sum32())
	buf.Write(word[:])
}
