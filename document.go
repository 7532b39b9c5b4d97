package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"napkinwire/sketch"
)

const napkinHeader = "NAPKIN"

// Document is the ordered shape list being sketched plus the mode it is read in.
// Shape order is creation order and decides labels and rasterizer precedence.
type Document struct {
	shapes []sketch.Shape
	mode   sketch.Mode
}

func NewDocument(mode sketch.Mode) *Document {
	return &Document{mode: mode}
}

func (d *Document) Add(s sketch.Shape) int {
	d.shapes = append(d.shapes, s)
	return len(d.shapes) - 1
}

func (d *Document) SetText(i int, text string) bool {
	if i < 0 || i >= len(d.shapes) {
		return false
	}
	d.shapes[i].Text = text
	return true
}

func (d *Document) Text(i int) string {
	if i < 0 || i >= len(d.shapes) {
		return ""
	}
	return d.shapes[i].Text
}

// Truncate drops every shape from index n on.
func (d *Document) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(d.shapes) {
		d.shapes = d.shapes[:n]
	}
}

// Clear removes all shapes and returns them.
func (d *Document) Clear() []sketch.Shape {
	removed := d.shapes
	d.shapes = nil
	return removed
}

func (d *Document) Restore(shapes []sketch.Shape) {
	d.shapes = append([]sketch.Shape(nil), shapes...)
}

// Shapes returns a copy of the shape list.
func (d *Document) Shapes() []sketch.Shape {
	return append([]sketch.Shape(nil), d.shapes...)
}

func (d *Document) Len() int {
	return len(d.shapes)
}

// ShapeAt returns the index of the topmost non-arrow shape containing the
// point, or -1.
func (d *Document) ShapeAt(px, py int) int {
	for i := len(d.shapes) - 1; i >= 0; i-- {
		if sketch.IsInside(px, py, d.shapes[i]) {
			return i
		}
	}
	return -1
}

func (d *Document) Mode() sketch.Mode {
	return d.mode
}

func (d *Document) SetMode(mode sketch.Mode) {
	d.mode = mode
}

type shapeRecord struct {
	Kind   string `json:"kind" yaml:"kind"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Role   string `json:"role,omitempty" yaml:"role,omitempty"`
	Color  string `json:"color,omitempty" yaml:"color,omitempty"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
}

type documentRecord struct {
	Mode   string        `json:"mode" yaml:"mode"`
	Shapes []shapeRecord `json:"shapes" yaml:"shapes"`
}

func recordFor(s sketch.Shape) shapeRecord {
	r := shapeRecord{
		Kind:   s.Kind.String(),
		X:      s.X,
		Y:      s.Y,
		Width:  s.Width,
		Height: s.Height,
		Color:  s.Color,
		Text:   s.Text,
	}
	if s.Role != sketch.RoleStructural {
		r.Role = s.Role.String()
	}
	return r
}

func (r shapeRecord) shape() (sketch.Shape, error) {
	kind, err := sketch.ParseKind(r.Kind)
	if err != nil {
		return sketch.Shape{}, err
	}
	role, err := sketch.ParseRole(r.Role)
	if err != nil {
		return sketch.Shape{}, err
	}
	return sketch.Shape{
		Kind:   kind,
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
		Text:   r.Text,
		Role:   role,
		Color:  r.Color,
	}, nil
}

func (d *Document) record() documentRecord {
	rec := documentRecord{Mode: d.mode.String(), Shapes: make([]shapeRecord, 0, len(d.shapes))}
	for _, s := range d.shapes {
		rec.Shapes = append(rec.Shapes, recordFor(s))
	}
	return rec
}

func (d *Document) applyRecord(rec documentRecord) error {
	mode, err := sketch.ParseMode(rec.Mode)
	if err != nil {
		return err
	}
	shapes := make([]sketch.Shape, 0, len(rec.Shapes))
	for i, r := range rec.Shapes {
		s, err := r.shape()
		if err != nil {
			return errors.Wrapf(err, "shape %d", i)
		}
		shapes = append(shapes, s)
	}
	d.mode = mode
	d.shapes = shapes
	return nil
}

type fileFormat int

const (
	formatNapkin fileFormat = iota
	formatJSON
	formatYAML
)

func formatFor(filename string) fileFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatNapkin
	}
}

// SaveToFile writes the document in the format implied by the file extension.
func (d *Document) SaveToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filename)
	}
	defer file.Close()

	switch formatFor(filename) {
	case formatJSON:
		enc := json.NewEncoder(file)
		enc.SetIndent("", "  ")
		err = enc.Encode(d.record())
	case formatYAML:
		enc := yaml.NewEncoder(file)
		enc.SetIndent(2)
		if err = enc.Encode(d.record()); err == nil {
			err = enc.Close()
		}
	default:
		err = d.writeNapkin(file)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", filename)
	}
	return nil
}

func (d *Document) writeNapkin(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", napkinHeader)
	fmt.Fprintf(bw, "MODE:%s\n", d.mode)
	fmt.Fprintf(bw, "SHAPES:%d\n", len(d.shapes))
	for _, s := range d.shapes {
		r := recordFor(s)
		fmt.Fprintf(bw, "%s,%d,%d,%d,%d,%s,%s,%s\n",
			r.Kind, r.X, r.Y, r.Width, r.Height, r.Role, r.Color, escapeText(r.Text))
	}
	return bw.Flush()
}

// LoadFromFile replaces the document with the contents of filename. On error
// the document is left unchanged.
func (d *Document) LoadFromFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", filename)
	}
	defer file.Close()

	var rec documentRecord
	switch formatFor(filename) {
	case formatJSON:
		err = json.NewDecoder(file).Decode(&rec)
	case formatYAML:
		err = yaml.NewDecoder(file).Decode(&rec)
	default:
		rec, err = readNapkin(file)
	}
	if err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "failed to read %s", filename),
			"napkin files start with a NAPKIN header; .json and .yaml files hold {mode, shapes}",
		)
	}
	return d.applyRecord(rec)
}

func readNapkin(r io.Reader) (documentRecord, error) {
	var rec documentRecord
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != napkinHeader {
		return rec, errors.New("invalid file format")
	}

	if !scanner.Scan() || !strings.HasPrefix(scanner.Text(), "MODE:") {
		return rec, errors.New("missing mode header")
	}
	rec.Mode = strings.TrimPrefix(scanner.Text(), "MODE:")

	if !scanner.Scan() || !strings.HasPrefix(scanner.Text(), "SHAPES:") {
		return rec, errors.New("missing shapes header")
	}
	count, err := strconv.Atoi(strings.TrimPrefix(scanner.Text(), "SHAPES:"))
	if err != nil || count < 0 {
		return rec, errors.Newf("invalid shape count %q", scanner.Text())
	}

	rec.Shapes = make([]shapeRecord, 0, count)
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			return rec, errors.Newf("missing shape %d of %d", i+1, count)
		}
		parts := strings.SplitN(scanner.Text(), ",", 8)
		if len(parts) < 8 {
			return rec, errors.Newf("invalid shape record on line %d", i+4)
		}
		nums := make([]int, 4)
		for j := range nums {
			if nums[j], err = strconv.Atoi(strings.TrimSpace(parts[j+1])); err != nil {
				return rec, errors.Wrapf(err, "invalid number in shape %d", i+1)
			}
		}
		rec.Shapes = append(rec.Shapes, shapeRecord{
			Kind:   parts[0],
			X:      nums[0],
			Y:      nums[1],
			Width:  nums[2],
			Height: nums[3],
			Role:   parts[5],
			Color:  parts[6],
			Text:   unescapeText(parts[7]),
		})
	}
	return rec, scanner.Err()
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "\n", `\n`)
}

func unescapeText(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
