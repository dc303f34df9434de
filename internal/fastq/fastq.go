package fastq

import (
	"bufio"
	"fmt"
	"io"
)

// Record is one four-line FASTQ entry. Seq and Qual are the same length
// for every record the simulator produces.
type Record struct {
	Name string
	Seq  []byte
	Qual []byte
}

// SeqID formats a 1-based record index as a read name. Indexes past six
// digits widen the field rather than truncate.
func SeqID(index int) string {
	return fmt.Sprintf("SEQ_%06d", index)
}

// Writer streams records as four-line FASTQ (@name / seq / + / qual).
type Writer struct {
	bw *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

func (w *Writer) WriteRecord(rec Record) error {
	if err := w.bw.WriteByte('@'); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(rec.Name); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := w.bw.Write(rec.Seq); err != nil {
		return err
	}
	if _, err := w.bw.WriteString("\n+\n"); err != nil {
		return err
	}
	if _, err := w.bw.Write(rec.Qual); err != nil {
		return err
	}
	return w.bw.WriteByte('\n')
}

// Flush drains the internal buffer to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
