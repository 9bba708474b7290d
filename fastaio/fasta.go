// Package fastaio writes and reads the FASTA files produced by the peptide
// generators. Output records are two lines each: a >Seq_<index> header and
// the raw sequence. Reading is gzip-aware.
package fastaio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format renders the sequences as FASTA text with >Seq_<index> headers.
func Format(seqs []string) string {
	var sb strings.Builder
	for i, s := range seqs {
		fmt.Fprintf(&sb, ">Seq_%d\n%s\n", i, s)
	}
	return sb.String()
}

// Save writes the sequences to path in FASTA format, overwriting any
// existing file.
func Save(path string, seqs []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, s := range seqs {
		if _, err := fmt.Fprintf(w, ">Seq_%d\n%s\n", i, s); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return w.Flush()
}

// SaveGzip writes the sequences to path as gzip-compressed FASTA,
// overwriting any existing file.
func SaveGzip(path string, seqs []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(Format(seqs))); err != nil {
		return fmt.Errorf("failed to write compressed data: %w", err)
	}
	return gz.Close()
}

// Read loads all records from a FASTA file, returning parallel id and
// sequence lists. Gzipped files are detected by their magic bytes and
// decompressed transparently. Multi-line sequence bodies are joined.
func Read(path string) ([]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	buf := make([]byte, 2)
	if _, err := f.Read(buf); err == nil && buf[0] == 0x1F && buf[1] == 0x8B {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, nil, err
		}
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	} else {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, nil, err
		}
	}

	var ids, seqs []string
	var currentID string
	var body strings.Builder
	flush := func() {
		if currentID != "" {
			ids = append(ids, currentID)
			seqs = append(seqs, body.String())
			body.Reset()
		}
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			flush()
			currentID = strings.TrimPrefix(line, ">")
		} else {
			body.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scanner error: %w", err)
	}
	flush()
	return ids, seqs, nil
}
