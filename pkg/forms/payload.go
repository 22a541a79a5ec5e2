// Package forms collects and validates the fields for one record and turns
// them into a multipart payload.
//
// Each entity gets an explicit typed form rather than a dynamically keyed
// map, so a missing field is a compile error instead of a runtime surprise.
// Validation runs entirely client-side and never touches the network: a
// form that fails Validate must not be submitted.
package forms

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
)

// BoolStyle selects how a boolean field is encoded in the payload. The
// backend expects "true"/"false" for most entities and "1"/"0" for study
// materials and video testimonials.
type BoolStyle int

const (
	BoolWords  BoolStyle = iota // "true" / "false"
	BoolDigits                  // "1" / "0"
)

func (s BoolStyle) format(v bool) string {
	if s == BoolDigits {
		if v {
			return "1"
		}
		return "0"
	}
	return strconv.FormatBool(v)
}

// Fixed multipart field names the backend expects for uploads.
const (
	FieldImage     = "image"
	FieldFile      = "file"
	FieldMainImage = "mainImage"
)

// Field is one text field of a multipart payload, in submission order.
type Field struct {
	Name  string
	Value string
}

// Attachment is one file to upload under a fixed multipart field name.
type Attachment struct {
	Field    string
	Filename string
	Size     int64
	// Path is the local source of the file, if it came from disk. Pages use
	// it to show a preview without any network round trip.
	Path string
	Open func() (io.ReadCloser, error)
}

// FileFromPath stats the file at path and prepares it for upload under the
// given multipart field name.
func FileFromPath(field, path string) (*Attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("forms: stat upload: %w", err)
	}
	return &Attachment{
		Field:    field,
		Filename: filepath.Base(path),
		Size:     info.Size(),
		Path:     path,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// FileFromBytes wraps in-memory content as an upload, mainly for tests.
func FileFromBytes(field, filename string, data []byte) *Attachment {
	return &Attachment{
		Field:    field,
		Filename: filename,
		Size:     int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// Payload is an ordered set of text fields plus file attachments, ready to
// be encoded as multipart/form-data.
type Payload struct {
	fields []Field
	files  []*Attachment
}

func NewPayload() *Payload {
	return &Payload{}
}

func (p *Payload) Set(name, value string) *Payload {
	p.fields = append(p.fields, Field{Name: name, Value: value})
	return p
}

func (p *Payload) SetInt(name string, v int64) *Payload {
	return p.Set(name, strconv.FormatInt(v, 10))
}

func (p *Payload) SetBool(name string, v bool, style BoolStyle) *Payload {
	return p.Set(name, style.format(v))
}

func (p *Payload) Attach(a *Attachment) *Payload {
	if a != nil {
		p.files = append(p.files, a)
	}
	return p
}

func (p *Payload) Fields() []Field      { return p.fields }
func (p *Payload) Files() []*Attachment { return p.files }

// Get returns the first value set under name, for inspection in tests and
// optimistic updates.
func (p *Payload) Get(name string) (string, bool) {
	for _, f := range p.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Encode writes the multipart body to w and returns its content type.
func (p *Payload) Encode(w io.Writer) (string, error) {
	mw := multipart.NewWriter(w)
	for _, f := range p.fields {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return "", fmt.Errorf("forms: write field %q: %w", f.Name, err)
		}
	}
	for _, a := range p.files {
		fw, err := mw.CreateFormFile(a.Field, a.Filename)
		if err != nil {
			return "", fmt.Errorf("forms: create file part %q: %w", a.Field, err)
		}
		rc, err := a.Open()
		if err != nil {
			return "", fmt.Errorf("forms: open upload %q: %w", a.Filename, err)
		}
		_, err = io.Copy(fw, rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("forms: copy upload %q: %w", a.Filename, err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}
	return mw.FormDataContentType(), nil
}

// ActivePayload builds the partial payload used by publish toggles: a
// single isActive field and nothing else.
func ActivePayload(active bool, style BoolStyle) *Payload {
	return NewPayload().SetBool("isActive", active, style)
}
