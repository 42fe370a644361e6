// Package markdown renders an ordered stream of page regions into GitHub
// flavored Markdown.
//
// Text blocks become paragraphs, headings, list items or fenced code blocks;
// table regions contribute their pre-rendered pipe grid verbatim; images
// become file references or base64 data URIs. Output for identical input is
// byte-identical.
package markdown
