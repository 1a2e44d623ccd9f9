package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/odvcencio/prodx/pkg/cmpx"
	"github.com/odvcencio/prodx/pkg/enumx"
	"github.com/odvcencio/prodx/pkg/flatfile"
	"github.com/odvcencio/prodx/pkg/hierarchy"
	"github.com/odvcencio/prodx/pkg/streamx"
	"github.com/odvcencio/prodx/pkg/stringx"
)

type outputFormat uint8

const (
	outTree outputFormat = iota
	outJSON
	outYAML
	outMsgpack
)

var outputFormats = enumx.NewNamedSet(map[outputFormat]string{
	outTree:    "tree",
	outJSON:    "json",
	outYAML:    "yaml",
	outMsgpack: "msgpack",
})

var encodedFormats = map[outputFormat]flatfile.Format{
	outJSON:    flatfile.JSON,
	outYAML:    flatfile.YAML,
	outMsgpack: flatfile.Msgpack,
}

// minLabelWidth keeps deep labels readable when --width is small.
const minLabelWidth = 8

type renderOptions struct {
	format  outputFormat
	width   int
	zstd    bool
	noColor bool
}

// outNode is the encoded form of a node.
type outNode struct {
	ID       string    `json:"id" yaml:"id" msgpack:"id"`
	Label    string    `json:"label,omitempty" yaml:"label,omitempty" msgpack:"label,omitempty"`
	Children []outNode `json:"children,omitempty" yaml:"children,omitempty" msgpack:"children,omitempty"`
}

func toOut(n *node) outNode {
	o := outNode{ID: n.ID}
	if n.Label != n.ID {
		o.Label = n.Label
	}
	for _, c := range n.Children {
		o.Children = append(o.Children, toOut(c))
	}
	return o
}

func render(w io.Writer, roots []*node, opts renderOptions) (err error) {
	if opts.zstd {
		zw, zerr := streamx.NewZstdWriter(w)
		if zerr != nil {
			return fmt.Errorf("render: %w", zerr)
		}
		defer func() {
			if cerr := zw.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("render: flush: %w", cerr)
			}
		}()
		w = zw
	}

	if opts.format == outTree {
		return renderTree(w, roots, opts)
	}
	f, ok := encodedFormats[opts.format]
	if !ok {
		return fmt.Errorf("render: format %s: %w", outputFormats.Name(opts.format), enumx.ErrUndefined)
	}
	out := make([]outNode, 0, len(roots))
	for _, r := range roots {
		out = append(out, toOut(r))
	}
	return flatfile.Encode(w, f, out)
}

func renderTree(w io.Writer, roots []*node, opts renderOptions) error {
	labelColor := color.New(color.Bold)
	idColor := color.New(color.FgCyan)
	if opts.noColor {
		labelColor.DisableColor()
		idColor.DisableColor()
	}

	return hierarchy.Walk(roots, children, func(n *node, depth int) error {
		indent := strings.Repeat("  ", depth)
		var line strings.Builder
		line.WriteString(indent)
		if opts.width > 0 {
			line.WriteString(labelColor.Sprint(stringx.LimitWidth(n.Label, cmpx.LimitLow(opts.width-len(indent), minLabelWidth))))
		} else {
			line.WriteString(labelColor.Sprint(n.Label))
		}
		if n.Label != n.ID {
			line.WriteString(" ")
			line.WriteString(idColor.Sprintf("[%s]", n.ID))
		}
		line.WriteString("\n")
		_, err := io.WriteString(w, line.String())
		return err
	})
}
