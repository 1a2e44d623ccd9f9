package main

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/odvcencio/prodx/pkg/flatfile"
	"github.com/odvcencio/prodx/pkg/hierarchy"
	"github.com/odvcencio/prodx/pkg/slicex"
	"github.com/odvcencio/prodx/pkg/stringx"
)

type linkOptions struct {
	idField     string
	parentField string
	labelField  string
	fold        bool
	strict      bool
	sort        bool
}

type node struct {
	ID       string
	Label    string
	Source   string
	Children []*node
}

func children(n *node) []*node { return n.Children }

func byLabel(a, b *node) int {
	if c := strings.Compare(a.Label, b.Label); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// entity is a record tagged with where it came from.
type entity struct {
	source string
	index  int
	rec    flatfile.Record
}

func entities(sources []source) iter.Seq[entity] {
	return func(yield func(entity) bool) {
		for _, src := range sources {
			for i, rec := range src.records {
				if !yield(entity{source: src.name, index: i, rec: rec}) {
					return
				}
			}
		}
	}
}

// checkIDs reports every record lacking an id as one aggregated error.
func checkIDs(sources []source, idField string) error {
	var merr *multierror.Error
	for e := range entities(sources) {
		if _, ok := e.rec.String(idField); !ok {
			merr = multierror.Append(merr, fmt.Errorf("%s: record %d: missing %q", e.source, e.index+1, idField))
		}
	}
	return merr.ErrorOrNil()
}

func linkSources(sources []source, opts linkOptions, log *zap.Logger) (hierarchy.Report[*node], error) {
	if opts.strict {
		if err := checkIDs(sources, opts.idField); err != nil {
			return hierarchy.Report[*node]{}, err
		}
	}

	total := 0
	for _, src := range sources {
		total += len(src.records)
	}

	l := hierarchy.Linker[entity, string, *node]{
		Node: func(e entity) (*node, bool) {
			id, ok := e.rec.String(opts.idField)
			if !ok {
				log.Debug("record skipped", zap.String("source", e.source), zap.Int("record", e.index+1))
				return nil, false
			}
			label, _ := e.rec.String(opts.labelField)
			return &node{ID: id, Label: stringx.ValueOrDefault(label, id), Source: e.source}, true
		},
		Key: func(e entity) (string, bool) {
			return e.rec.String(opts.idField)
		},
		ParentKey: func(e entity) (string, bool) {
			return e.rec.String(opts.parentField)
		},
		Attach: func(parent, child *node) {
			if opts.sort {
				parent.Children = slicex.AddSortedFunc(parent.Children, child, byLabel)
				return
			}
			parent.Children = append(parent.Children, child)
		},
	}
	if opts.fold {
		folder := cases.Fold()
		l.Normalize = func(k string) string { return folder.String(k) }
	}

	rep, err := l.LinkReport(entities(sources), total)
	if err != nil {
		return rep, err
	}
	if opts.sort {
		slices.SortStableFunc(rep.Roots, byLabel)
	}
	if rep.Skipped > 0 {
		log.Warn("records without id skipped", zap.Int("count", rep.Skipped), zap.String("field", opts.idField))
	}
	if rep.Unresolved > 0 {
		log.Info("records with unknown parent promoted to roots", zap.Int("count", rep.Unresolved))
	}
	return rep, nil
}
