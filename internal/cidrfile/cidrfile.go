// Package cidrfile reads CIDR lists from and writes subnet lists to plain
// text files, one entry per line.
package cidrfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/Flarenzy/subnetsplit/internal/domain"
)

// Lines holds the outcome of reading an input file.
type Lines struct {
	Valid    []string
	Rejected int
}

// Read loads path and keeps the trimmed lines that look like a CIDR.
func Read(path string) (Lines, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Lines{}, fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		}
		return Lines{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadFrom(f)
	if err != nil {
		return Lines{}, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// ReadFrom is Read for an already opened source. Lines have no length
// limit; an oversized line is just another rejected line. It returns
// domain.ErrNoValidCIDR when nothing usable is found.
func ReadFrom(r io.Reader) (Lines, error) {
	var raw []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			raw = append(raw, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Lines{}, err
		}
	}

	valid, rejected := domain.FilterCIDRLines(raw)
	if len(valid) == 0 {
		return Lines{Rejected: rejected}, domain.ErrNoValidCIDR
	}
	return Lines{Valid: valid, Rejected: rejected}, nil
}

// Write truncates path and stores one subnet per line.
func Write(path string, subnets []domain.Subnet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := WriteTo(f, subnets); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func WriteTo(w io.Writer, subnets []domain.Subnet) error {
	bw := bufio.NewWriter(w)
	for _, subnet := range subnets {
		if _, err := bw.WriteString(subnet.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
