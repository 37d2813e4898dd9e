// Package manifest describes a multipart document in YAML and assembles it.
//
//	subject: Quarterly numbers
//	from: reports@example.com
//	to: "Ann <ann@example.com>, bob@example.com"
//	headers:
//	  X-Priority: "1"
//	parts:
//	  - text: See the attached report.
//	  - file: report.pdf
//	    content_type: application/pdf
//
// Relative file paths are resolved against the directory of the manifest.
package manifest

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zostay/go-mimekit/header"
	"github.com/zostay/go-mimekit/message"
	"github.com/zostay/go-mimekit/message/transfer"
)

// DefaultAttachmentType is used for file parts whose type cannot be guessed
// from the file extension.
const DefaultAttachmentType = "application/octet-stream"

var (
	// ErrEmptyPart is returned by Build when a part sets none of text, file,
	// or data.
	ErrEmptyPart = errors.New("part has no content")

	// ErrAmbiguousPart is returned by Build when a part sets more than one of
	// text, file, or data.
	ErrAmbiguousPart = errors.New("part sets more than one of text, file, and data")

	// ErrMissingFilename is returned by Build when a data part has no
	// filename.
	ErrMissingFilename = errors.New("data part has no filename")
)

// Manifest is the YAML description of a document.
type Manifest struct {
	Boundary string            `yaml:"boundary"`
	Subject  string            `yaml:"subject"`
	From     string            `yaml:"from"`
	To       string            `yaml:"to"`
	Cc       string            `yaml:"cc"`
	Draft    bool              `yaml:"draft"`
	Headers  map[string]string `yaml:"headers"`
	Parts    []Part            `yaml:"parts"`

	// baseDir is where relative file paths are resolved.
	baseDir string
}

// Part is one part of the document. Exactly one of Text, File, or Data must be
// set. Data is content the author already base64 encoded and requires Filename.
type Part struct {
	Text        string            `yaml:"text"`
	Charset     string            `yaml:"charset"`
	File        string            `yaml:"file"`
	Data        string            `yaml:"data"`
	Filename    string            `yaml:"filename"`
	ContentType string            `yaml:"content_type"`
	Headers     map[string]string `yaml:"headers"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return Parse(data, filepath.Dir(path))
}

// Parse parses a manifest. Relative file paths are resolved against baseDir.
func Parse(data []byte, baseDir string) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	m.baseDir = baseDir
	return m, nil
}

// Build assembles the document described by the manifest.
func (m *Manifest) Build() (*message.Multipart, error) {
	var doc *message.Multipart
	if m.Boundary != "" {
		doc = message.NewMultipartWithBoundary(m.Boundary)
	} else {
		doc = message.NewMultipart()
	}

	addrs := []struct{ name, body string }{
		{header.From, m.From},
		{header.To, m.To},
		{header.Cc, m.Cc},
	}
	for _, a := range addrs {
		if a.body == "" {
			continue
		}
		al, err := header.FormatAddressList(a.body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.name, err)
		}
		doc.SetHeader(a.name, al)
	}

	if m.Subject != "" {
		doc.SetHeader(header.Subject, m.Subject)
	}
	if m.Draft {
		doc.SetHeader(header.XUnsent, "1")
	}
	for k, v := range m.Headers {
		doc.SetHeader(k, v)
	}

	parts := make([]message.Part, 0, len(m.Parts))
	for i := range m.Parts {
		p, err := m.buildPart(&m.Parts[i])
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		parts = append(parts, p)
	}
	doc.AttachAll(parts...)

	return doc, nil
}

func (m *Manifest) buildPart(p *Part) (message.Part, error) {
	set := 0
	for _, s := range []string{p.Text, p.File, p.Data} {
		if s != "" {
			set++
		}
	}
	switch {
	case set == 0:
		return nil, ErrEmptyPart
	case set > 1:
		return nil, ErrAmbiguousPart
	}

	var (
		part message.Part
		hdr  header.Set
	)
	switch {
	case p.Text != "":
		txt, err := m.buildText(p)
		if err != nil {
			return nil, err
		}
		part, hdr = txt, txt.Header

	case p.File != "":
		att, err := m.buildFile(p)
		if err != nil {
			return nil, err
		}
		part, hdr = att, att.Header

	default:
		if p.Filename == "" {
			return nil, ErrMissingFilename
		}
		att := message.NewAttachment(p.Data, p.Filename)
		if p.ContentType != "" {
			att.Header[header.ContentType] = p.ContentType
		}
		part, hdr = att, att.Header
	}

	for k, v := range p.Headers {
		hdr[k] = v
	}

	return part, nil
}

func (m *Manifest) buildText(p *Part) (*message.Text, error) {
	var txt *message.Text
	if p.Charset != "" {
		var err error
		txt, err = message.NewTextCharset(p.Text, p.Charset)
		if err != nil {
			return nil, err
		}
	} else {
		txt = message.NewText(p.Text)
	}
	if p.ContentType != "" {
		txt.Header[header.ContentType] = p.ContentType
	}
	return txt, nil
}

func (m *Manifest) buildFile(p *Part) (*message.Attachment, error) {
	path := p.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.baseDir, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}

	enc, err := transfer.EncodeString(transfer.Base64, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attachment: %w", err)
	}

	filename := p.Filename
	if filename == "" {
		filename = filepath.Base(path)
	}

	ct := p.ContentType
	if ct == "" {
		ct = mime.TypeByExtension(filepath.Ext(filename))
	}
	if ct == "" {
		ct = DefaultAttachmentType
	}

	return message.NewAttachmentWithType(enc, filename, ct), nil
}
