package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"recipeflow/internal/fileutil"
	"recipeflow/internal/recipe"
	"recipeflow/internal/textutil"
)

// Writer writes every configured format of a document's recipes under root.
type Writer struct {
	root     string
	encoders []Encoder
}

// NewWriter returns a Writer for the given encoders.
func NewWriter(root string, encoders []Encoder) *Writer {
	return &Writer{root: root, encoders: append([]Encoder(nil), encoders...)}
}

// Root returns the directory the format subdirectories are created in.
func (w *Writer) Root() string {
	return w.root
}

// Encoders returns the configured encoders.
func (w *Writer) Encoders() []Encoder {
	return append([]Encoder(nil), w.encoders...)
}

// Render encodes recs with enc into a fresh sink.
func Render(enc Encoder, document string, recs []*recipe.Record) (*Sink, error) {
	sink := &Sink{}
	framer, framed := enc.(Framer)
	if framed {
		framer.Begin(sink, document)
	}
	for _, rec := range recs {
		if err := enc.Encode(rec, sink); err != nil {
			return nil, fmt.Errorf("%s encode: %w", enc.Name(), err)
		}
	}
	if framed {
		framer.End(sink)
	}
	return sink, nil
}

// WriteDocument renders recs in every format and returns the written paths.
// Documents without recipes produce no files.
func (w *Writer) WriteDocument(document string, recs []*recipe.Record) ([]string, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	base := OutputName(document)
	paths := make([]string, 0, len(w.encoders))
	for _, enc := range w.encoders {
		sink, err := Render(enc, document, recs)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(w.root, enc.Name(), base+enc.Extension())
		err = fileutil.WriteFunc(path, 0o644, func(out io.Writer) error {
			_, err := sink.WriteTo(out)
			return err
		})
		if err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// OutputName derives a file name stem for a document: its sanitized base
// name plus a short stable suffix so equal base names in different folders
// do not collide.
func OutputName(document string) string {
	base := filepath.Base(strings.ReplaceAll(document, "!", "/"))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	token := textutil.SanitizeToken(base)
	suffix := uuid.NewSHA1(uuid.NameSpaceURL, []byte(document)).String()[:8]
	return token + "-" + suffix
}
