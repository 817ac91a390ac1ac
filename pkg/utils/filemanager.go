// =============================================================================
// CMMC Assessment Importer - File Utilities
// =============================================================================
//
// Shared file helpers: input format detection and post-import archival.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// =============================================================================
// FORMAT DETECTION
// =============================================================================

// Format classifies an input file by how it must be decoded.
type Format int

const (
	// FormatDelimited is delimited text (CSV and friends).
	FormatDelimited Format = iota

	// FormatWorkbook is a spreadsheet workbook decoded via its first sheet.
	FormatWorkbook

	// FormatUnknown is anything else.
	FormatUnknown
)

// DetectFormat classifies a file by extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return FormatDelimited
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatWorkbook
	default:
		return FormatUnknown
	}
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchiveFile moves a successfully imported file into dir. When a file with
// the same name already exists there, a timestamp is inserted before the
// extension so nothing gets clobbered. Returns the final archive path.
func ArchiveFile(path, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	name := filepath.Base(path)
	dest := filepath.Join(dir, name)

	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		dest = filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, time.Now().Format("20060102_150405"), ext))
	}

	if err := os.Rename(path, dest); err == nil {
		return dest, nil
	}

	// Rename fails across filesystems; fall back to copy-and-remove.
	if err := copyFile(path, dest); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("failed to remove %s after archiving: %w", path, err)
	}
	return dest, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
