package skilldoc

import "embed"

// docsFS carries the skill documents shipped with the binary. Each skill is
// a directory holding SKILL.md (YAML front matter + procedure body) and any
// supporting reference files.
//
//go:embed docs
var docsFS embed.FS
