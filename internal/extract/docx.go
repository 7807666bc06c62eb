package extract

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"talentsift/internal/domain"
)

// extractDocxText joins the text of every paragraph with newlines, in
// document order.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	defer doc.Close()

	text, err := paragraphText(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	return text, nil
}

// paragraphText walks the WordprocessingML body and collects the character
// data of each <w:t> run, emitting one line per <w:p> paragraph.
func paragraphText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var b strings.Builder
	var para strings.Builder
	inText := false
	first := true

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				if !first {
					b.WriteString("\n")
				}
				b.WriteString(para.String())
				para.Reset()
				first = false
			}
		case xml.CharData:
			if inText {
				para.Write(el)
			}
		}
	}
	return b.String(), nil
}
