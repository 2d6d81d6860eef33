package ewsxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Writer emits namespace-qualified XML to an underlying stream. It owns
// element nesting correctness: every start is tracked on a stack and ends
// are matched against it, so callers cannot produce unbalanced output
// without getting an error back.
//
// The first write error is sticky. Once a write fails every subsequent
// call returns the same SerializationError, which keeps partial output
// from masquerading as a complete document.
type Writer struct {
	out     io.Writer
	stack   []string
	pending bool
	err     error
}

// NewWriter returns a Writer emitting to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Depth returns the number of currently open elements.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// WriteStartElement opens an element qualified by the given namespace.
func (w *Writer) WriteStartElement(ns Namespace, name string) error {
	if w.err != nil {
		return w.err
	}
	if err := w.closePending(); err != nil {
		return err
	}
	qualified := ns.Prefix() + ":" + name
	if err := w.write("start element", "<"+qualified); err != nil {
		return err
	}
	w.stack = append(w.stack, qualified)
	w.pending = true
	return nil
}

// WriteEndElement closes the most recently opened element. An element
// with no content is collapsed to the empty-element form.
func (w *Writer) WriteEndElement() error {
	if w.err != nil {
		return w.err
	}
	if len(w.stack) == 0 {
		w.err = SerializationError{Op: "end element", Err: ErrNoOpenElement}
		return w.err
	}
	qualified := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	if w.pending {
		w.pending = false
		return w.write("end element", "/>")
	}
	return w.write("end element", "</"+qualified+">")
}

// WriteAttributeValue writes a typed attribute onto the element whose
// start tag is still open. Supported types are string, bool, integers,
// time.Time (RFC3339) and fmt.Stringer.
func (w *Writer) WriteAttributeValue(name string, value interface{}) error {
	if w.err != nil {
		return w.err
	}
	if !w.pending {
		w.err = SerializationError{Op: "attribute " + name, Err: ErrNoPendingStart}
		return w.err
	}
	text, err := formatValue(value)
	if err != nil {
		w.err = SerializationError{Op: "attribute " + name, Err: err}
		return w.err
	}
	return w.write("attribute "+name, " "+name+`="`+escape(text)+`"`)
}

// WriteNamespaceAttribute declares a namespace on the element whose start
// tag is still open.
func (w *Writer) WriteNamespaceAttribute(ns Namespace) error {
	if w.err != nil {
		return w.err
	}
	if !w.pending {
		w.err = SerializationError{Op: "xmlns:" + ns.Prefix(), Err: ErrNoPendingStart}
		return w.err
	}
	return w.write("xmlns:"+ns.Prefix(), " xmlns:"+ns.Prefix()+`="`+ns.URI()+`"`)
}

// WriteCharacters writes escaped character data inside the current element.
func (w *Writer) WriteCharacters(text string) error {
	if w.err != nil {
		return w.err
	}
	if err := w.closePending(); err != nil {
		return err
	}
	return w.write("characters", escape(text))
}

// WriteElementValue writes a complete element holding a single typed value.
func (w *Writer) WriteElementValue(ns Namespace, name string, value interface{}) error {
	text, err := formatValue(value)
	if err != nil {
		w.err = SerializationError{Op: "element " + name, Err: err}
		return w.err
	}
	if err := w.WriteStartElement(ns, name); err != nil {
		return err
	}
	if err := w.WriteCharacters(text); err != nil {
		return err
	}
	return w.WriteEndElement()
}

// Element opens an element, runs fn to fill its content, and closes it
// again on every exit path. The close happens even when fn fails, so the
// element stack stays balanced on error.
func (w *Writer) Element(ns Namespace, name string, fn func() error) error {
	if err := w.WriteStartElement(ns, name); err != nil {
		return err
	}
	fnErr := fn()
	if endErr := w.WriteEndElement(); fnErr == nil {
		fnErr = endErr
	}
	return fnErr
}

func (w *Writer) closePending() error {
	if !w.pending {
		return nil
	}
	w.pending = false
	return w.write("start element", ">")
}

func (w *Writer) write(op, s string) error {
	if _, err := io.WriteString(w.out, s); err != nil {
		w.err = SerializationError{Op: op, Err: err}
		return w.err
	}
	return nil
}

func formatValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return "", fmt.Errorf("unsupported value type %T", value)
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
