// Package restyle compiles brace markup into ANSI SGR sequences and reflows
// styled text to a target column width.
//
// Markup uses {tag} ... {/tag} pairs, where a tag body holds one or more
// whitespace-separated style words: attributes (bold, underline, italic, ...),
// colors (named, 256-indexed, #rrggbb hex, or (r,g,b) tuples), backgrounds
// via an on_ prefix, and theme roles (error, title, ...). Literal braces are
// written doubled: {{ and }}.
//
// Core properties:
//   - Single left-to-right pass over markup and raw SGR escapes combined
//   - Width measured on visible glyphs only, wide and zero-width aware
//   - Every wrapped line is reset at its end and continuation lines reopen
//     the style state active at the break
//   - Pure, stateless transformations; safe for concurrent use
//
// Example:
//
//	out, err := restyle.Reshape("{bold red}alert{/bold red} text ...", 60)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Expand compiles markup without wrapping; RemoveMarkup and RemoveANSI strip
// the respective annotation layers.
package restyle
