package ingest

import (
	"archive/zip"
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"recipeflow/internal/services"
)

// MaxLineBytes bounds a single input line.
const MaxLineBytes = 1 << 20

// Source identifies one document: a plain file or a member of a zip archive.
type Source struct {
	Path    string
	Member  string
	Size    int64
	ModTime time.Time
}

// Name returns a display name for the source.
func (s Source) Name() string {
	if s.Member == "" {
		return s.Path
	}
	return s.Path + "!" + s.Member
}

// Document is a source together with its text lines.
type Document struct {
	Source
	Lines []string
}

// Discover expands paths into document sources in a stable order.
func Discover(paths []string) ([]Source, error) {
	var sources []Source
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, services.Wrap(services.ErrNotFound, "import", "stat input", path, err)
		}
		if !info.IsDir() {
			found, err := expandFile(path, info)
			if err != nil {
				return nil, err
			}
			sources = append(sources, found...)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if p != path && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			fi, err := d.Info()
			if err != nil {
				return err
			}
			found, err := expandFile(p, fi)
			if err != nil {
				return err
			}
			sources = append(sources, found...)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}
	return sources, nil
}

func expandFile(path string, info fs.FileInfo) ([]Source, error) {
	if !IsArchive(path) {
		return []Source{{Path: path, Size: info.Size(), ModTime: info.ModTime()}}, nil
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "import", "open archive", path, err)
	}
	defer zr.Close()
	var sources []Source
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || strings.HasPrefix(filepath.Base(f.Name), ".") {
			continue
		}
		sources = append(sources, Source{
			Path:    path,
			Member:  f.Name,
			Size:    int64(f.UncompressedSize64),
			ModTime: f.Modified,
		})
	}
	sort.SliceStable(sources, func(i, j int) bool { return sources[i].Member < sources[j].Member })
	return sources, nil
}

// IsArchive reports whether path names a zip archive.
func IsArchive(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zip")
}

// Read loads the lines of src.
func Read(ctx context.Context, src Source) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := readBytes(src)
	if err != nil {
		return nil, err
	}
	lines, err := SplitLines(data)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "import", "split lines", src.Name(), err)
	}
	return &Document{Source: src, Lines: lines}, nil
}

func readBytes(src Source) ([]byte, error) {
	if src.Member == "" {
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, services.Wrap(services.ErrNotFound, "import", "read file", src.Path, err)
		}
		return data, nil
	}
	zr, err := zip.OpenReader(src.Path)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "import", "open archive", src.Path, err)
	}
	defer zr.Close()
	f, err := zr.Open(src.Member)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "import", "open member", src.Name(), err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "import", "read member", src.Name(), err)
	}
	return data, nil
}

// SplitLines decodes data to UTF-8 and splits it into lines without their
// terminators. CRLF and lone CR endings are accepted.
func SplitLines(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode windows-1252: %w", err)
		}
		data = decoded
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
