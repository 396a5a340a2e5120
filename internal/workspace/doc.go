// Package workspace defines the on-disk layout under ~/.skillforge/: the
// template store, the shared dependency cache, installed skill documents,
// and the catalog clone. Every path has an environment override so tests
// and maintainer checkouts can relocate the whole tree.
package workspace
