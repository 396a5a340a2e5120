package template

import (
	"fmt"
	"os"
	"regexp"
)

// titlePattern matches the <title> element of the template's index.html.
// Content may span lines.
var titlePattern = regexp.MustCompile(`(?is)(<title[^>]*>).*?(</title>)`)

// RewriteTitle replaces the text of the <title> element in the named HTML
// file with the given title. The replacement is literal: characters like
// '&' and '/' land in the document exactly as typed.
func RewriteTitle(htmlPath, title string) error {
	data, err := os.ReadFile(htmlPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", htmlPath, err)
	}

	if !titlePattern.Match(data) {
		return fmt.Errorf("%s has no <title> element to rewrite", htmlPath)
	}

	info, err := os.Stat(htmlPath)
	if err != nil {
		return err
	}

	var replaced bool
	out := titlePattern.ReplaceAllFunc(data, func(m []byte) []byte {
		if replaced {
			return m
		}
		replaced = true
		sub := titlePattern.FindSubmatch(m)
		// Assemble open tag + literal title + close tag; no expansion of
		// $-patterns or HTML entities.
		return append(append(append([]byte{}, sub[1]...), []byte(title)...), sub[2]...)
	})

	if err := os.WriteFile(htmlPath, out, info.Mode()); err != nil {
		return fmt.Errorf("writing %s: %w", htmlPath, err)
	}
	return nil
}
