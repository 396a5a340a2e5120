// Package depcache implements the shared dependency cache: a one-time npm
// install against a template's reference copy whose resolved node_modules
// tree is reused by every later scaffold of that template.
package depcache
