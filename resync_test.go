package zipscan

import (
	"bytes"
	"testing"
)

func TestResyncScan_FindsSignatureAfterGarbage(t *testing.T) {
	garbage := bytes.Repeat([]byte{0x00}, 9)
	data := append(garbage, le32(sigLocalFileHeader)...)
	c, err := newCursor(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("newCursor returned error: %v", err)
	}
	match, err := resyncScan(c)
	if err != nil {
		t.Fatalf("resyncScan returned error: %v", err)
	}
	if match != resyncLocalFileHeader {
		t.Errorf("resyncScan match = %v; want resyncLocalFileHeader", match)
	}
	if c.position() != int64(len(data)) {
		t.Errorf("position() = %d; want %d (signature consumed)", c.position(), len(data))
	}
}

func TestResyncScan_EndOfInputWhenExhausted(t *testing.T) {
	c, err := newCursor(bytes.NewReader([]byte{0x00, 0x01, 0x02}))
	if err != nil {
		t.Fatalf("newCursor returned error: %v", err)
	}
	match, err := resyncScan(c)
	if err != nil {
		t.Fatalf("resyncScan returned error: %v", err)
	}
	if match != resyncEndOfInput {
		t.Errorf("resyncScan match = %v; want resyncEndOfInput", match)
	}
}

func TestResyncScan_DistinguishesAllThreeSignatures(t *testing.T) {
	var testcases = []struct {
		name string
		sig  uint32
		want resyncMatch
	}{
		{"LocalFileHeader", sigLocalFileHeader, resyncLocalFileHeader},
		{"ArchiveExtraData", sigArchiveExtraData, resyncArchiveExtraData},
		{"CentralDirFileHeader", sigCentralDirFileHeader, resyncCentralDirFileHeader},
	}
	for _, c := range testcases {
		t.Run(c.name, func(t *testing.T) {
			cur, err := newCursor(bytes.NewReader(le32(c.sig)))
			if err != nil {
				t.Fatalf("newCursor returned error: %v", err)
			}
			match, err := resyncScan(cur)
			if err != nil {
				t.Fatalf("resyncScan returned error: %v", err)
			}
			if match != c.want {
				t.Errorf("resyncScan match = %v; want %v", match, c.want)
			}
		})
	}
}
