package fastq

import (
	"bytes"
	"testing"
)

func TestSeqID(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{1, "SEQ_000001"},
		{42, "SEQ_000042"},
		{999999, "SEQ_999999"},
		{1000000, "SEQ_1000000"}, // padding overflows, never truncates
		{1234567, "SEQ_1234567"},
	}
	for _, tc := range tests {
		if got := SeqID(tc.index); got != tc.want {
			t.Errorf("SeqID(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}

func TestWriter_FourLineRecords(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	recs := []Record{
		{Name: "SEQ_000001", Seq: []byte("ACGTACGTAC"), Qual: []byte("IIIIIIIIII")},
		{Name: "SEQ_000002", Seq: []byte("TTTTGGGGCC"), Qual: []byte("!!!!IIII##")},
	}
	for _, rec := range recs {
		if err := w.WriteRecord(rec); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	want := "@SEQ_000001\nACGTACGTAC\n+\nIIIIIIIIII\n" +
		"@SEQ_000002\nTTTTGGGGCC\n+\n!!!!IIII##\n"
	if buf.String() != want {
		t.Fatalf("output mismatch:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestWriter_EmptyRecord(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteRecord(Record{Name: "SEQ_000001"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if buf.String() != "@SEQ_000001\n\n+\n\n" {
		t.Fatalf("zero-length record wrong: %q", buf.String())
	}
}
