// Package pdftest builds small, well formed PDF documents for tests.
package pdftest

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
)

// Build returns a PDF with one page per entry of pages, each showing its text in Helvetica.
// Entries of info are written to the document information dictionary.
func Build(pages []string, info map[string]string) []byte {
	var objects []string

	// 1: catalog, 2: page tree, 3: font, then a page and content stream per page, then info.
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}
	objects = append(objects, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 612 792] >>", strings.Join(kids, " "), len(pages)))
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, text := range pages {
		content := fmt.Sprintf("BT /F1 24 Tf 72 700 Td (%s) Tj ET", escape(text))
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	infoRef := ""
	if len(info) > 0 {
		keys := make([]string, 0, len(info))
		for key := range info {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var dict strings.Builder
		dict.WriteString("<<")
		for _, key := range keys {
			fmt.Fprintf(&dict, " /%s (%s)", key, escape(info[key]))
		}
		dict.WriteString(" >>")

		objects = append(objects, dict.String())
		infoRef = fmt.Sprintf(" /Info %d 0 R", len(objects))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, offset := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offset)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R%s >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, infoRef, xref)

	return buf.Bytes()
}

// Base64 returns the document encoded the way clients send it, optionally with the data URI prefix.
func Base64(document []byte, withPrefix bool) string {
	encoded := base64.StdEncoding.EncodeToString(document)
	if withPrefix {
		return "data:application/pdf;base64," + encoded
	}
	return encoded
}

func escape(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(text)
}
