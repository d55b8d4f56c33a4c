package zipscan

import (
	"bytes"
	"testing"
)

func TestProbeSignature_MatchConsumes(t *testing.T) {
	c, err := newCursor(bytes.NewReader(le32(sigLocalFileHeader)))
	if err != nil {
		t.Fatalf("newCursor returned error: %v", err)
	}
	matched, err := probeSignature(c, sigLocalFileHeader)
	if err != nil {
		t.Fatalf("probeSignature returned error: %v", err)
	}
	if !matched {
		t.Fatalf("probeSignature should have matched")
	}
	if c.position() != 4 {
		t.Errorf("position() after match = %d; want 4", c.position())
	}
}

func TestProbeSignature_MissRewinds(t *testing.T) {
	c, err := newCursor(bytes.NewReader(le32(sigCentralDirFileHeader)))
	if err != nil {
		t.Fatalf("newCursor returned error: %v", err)
	}
	matched, err := probeSignature(c, sigLocalFileHeader)
	if err != nil {
		t.Fatalf("probeSignature returned error: %v", err)
	}
	if matched {
		t.Fatalf("probeSignature should not have matched")
	}
	if c.position() != 0 {
		t.Errorf("position() after miss = %d; want 0 (rewound)", c.position())
	}
}

func TestProbeSignature_ShortReadIsAMiss(t *testing.T) {
	c, err := newCursor(bytes.NewReader([]byte{0x50, 0x4b}))
	if err != nil {
		t.Fatalf("newCursor returned error: %v", err)
	}
	matched, err := probeSignature(c, sigLocalFileHeader)
	if err != nil {
		t.Fatalf("probeSignature returned error: %v", err)
	}
	if matched {
		t.Fatalf("probeSignature should not have matched on a short read")
	}
}

func TestMatchSignatureRaw(t *testing.T) {
	if !matchSignatureRaw(le32(sigEndOfCentralDirectory), sigEndOfCentralDirectory) {
		t.Errorf("matchSignatureRaw should match identical bytes")
	}
	if matchSignatureRaw(le32(sigEndOfCentralDirectory), sigLocalFileHeader) {
		t.Errorf("matchSignatureRaw should not match different signatures")
	}
	if matchSignatureRaw([]byte{0x01, 0x02, 0x03}, sigLocalFileHeader) {
		t.Errorf("matchSignatureRaw should reject a non-4-byte chunk")
	}
}
