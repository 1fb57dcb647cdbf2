// Package sitexml renders Hadoop style site configuration documents and
// writes them to disk.
package sitexml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

const (
	DefaultRoot = "configuration"

	DeclarationHeader = `<?xml version="1.0" encoding="UTF-8"?>`
	StylesheetHeader  = `<?xml-stylesheet type="text/xsl" href="configuration.xsl"?>`

	indent = "\t"
)

var (
	DefaultHeaders = []string{DeclarationHeader, StylesheetHeader}

	elementNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9._-]*$`)
)

type Property struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

// Document is one site file. Zero Root and nil Headers take the defaults; an
// empty non-nil Headers slice renders no header lines.
type Document struct {
	Name       string
	Root       string
	Headers    []string
	Properties []Property
}

func (d Document) FileName() string {
	return d.Name + ".xml"
}

type configuration struct {
	XMLName    xml.Name
	Properties []Property `xml:"property"`
}

// Render returns the header lines followed by the pretty printed tree.
func Render(doc Document) ([]byte, error) {
	root := doc.Root
	if root == "" {
		root = DefaultRoot
	}
	if !elementNameRe.MatchString(root) {
		return nil, fmt.Errorf("render %s: invalid root element %q", doc.Name, root)
	}
	headers := doc.Headers
	if headers == nil {
		headers = DefaultHeaders
	}

	body, err := xml.MarshalIndent(configuration{
		XMLName:    xml.Name{Local: root},
		Properties: doc.Properties,
	}, "", indent)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", doc.Name, err)
	}

	var b bytes.Buffer
	if len(headers) > 0 {
		b.WriteString(strings.Join(headers, "\n"))
		b.WriteByte('\n')
	}
	b.Write(body)
	b.WriteByte('\n')
	return b.Bytes(), nil
}
