package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const documentPart = "word/document.xml"

// Drawings and text boxes carry their own paragraphs, repeated in both
// branches of mc:AlternateContent. They are not part of the paragraph text.
var skippedElements = map[string]bool{
	"AlternateContent": true,
	"drawing":          true,
	"pict":             true,
	"txbxContent":      true,
}

// ReadParagraphs returns the text of every top-level body paragraph in order.
// Empty paragraphs are returned as empty strings.
func ReadParagraphs(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", documentPart, err)
		}
		defer rc.Close()
		return parseParagraphs(rc)
	}

	return nil, fmt.Errorf("missing %s", documentPart)
}

func parseParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		stack      []string
		current    strings.Builder
		inPara     bool
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", documentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if inPara && skippedElements[name] {
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("parse %s: %w", documentPart, err)
				}
				continue
			}
			switch {
			case name == "p" && len(stack) > 0 && stack[len(stack)-1] == "body":
				inPara = true
				current.Reset()
			case inPara && name == "t":
				inText = true
			case inPara && name == "tab":
				current.WriteByte('\t')
			case inPara && (name == "br" || name == "cr"):
				current.WriteByte('\n')
			}
			stack = append(stack, name)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			switch {
			case t.Name.Local == "t":
				inText = false
			case t.Name.Local == "p" && inPara && len(stack) > 0 && stack[len(stack)-1] == "body":
				paragraphs = append(paragraphs, current.String())
				inPara = false
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
