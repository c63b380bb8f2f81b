package seqguard

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/seqguard/seqguard-go/internal/sequence"
)

// ReadFASTA reads sequences from a FASTA file.
func ReadFASTA(filename string) ([]*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}

// ParseFASTA parses FASTA format from a reader.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	sequences := make([]*Sequence, 0)
	scanner := bufio.NewScanner(r)

	var currentID, currentDesc string
	var currentBases strings.Builder

	flushSequence := func() error {
		if currentBases.Len() > 0 {
			seq, err := sequence.WithMetadata(
				currentBases.String(),
				currentID,
				currentDesc,
			)
			if err != nil {
				return err
			}
			sequences = append(sequences, seq)
			currentBases.Reset()
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			// Flush previous sequence
			if err := flushSequence(); err != nil {
				return nil, err
			}

			// Parse header
			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			currentID = parts[0]
			if len(parts) > 1 {
				currentDesc = parts[1]
			} else {
				currentDesc = ""
			}
		} else {
			currentBases.WriteString(line)
		}
	}

	// Flush last sequence
	if err := flushSequence(); err != nil {
		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return sequences, nil
}

// ReadHitsJSON reads normalized alignment-hit records from a JSON
// file. The file holds an array of hit objects as produced by the
// upstream search-output parser.
func ReadHitsJSON(filename string) ([]Hit, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening hits file: %w", err)
	}
	defer file.Close()

	return ParseHitsJSON(file)
}

// ParseHitsJSON parses an array of alignment-hit records from a
// reader.
func ParseHitsJSON(r io.Reader) ([]Hit, error) {
	var hits []Hit
	if err := json.NewDecoder(r).Decode(&hits); err != nil {
		return nil, fmt.Errorf("parsing hits: %w", err)
	}
	return hits, nil
}
