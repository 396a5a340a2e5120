// Package template manages the on-disk template store: discovery of
// templates/<name>/ entries (archive + info document), zip extraction and
// packing, and the index.html title rewrite performed during scaffolding.
package template
