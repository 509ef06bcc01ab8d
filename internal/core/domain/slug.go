package domain

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

const (
	// RecipesRoot is the fixed first segment of every canonical path.
	RecipesRoot = "recipes"

	// RecipeExt is the file extension for recipe files.
	RecipeExt = ".cook"
)

var (
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9.-]+`)
	slugHyphenRe  = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a filesystem-safe slug from a title: lower-case, runs of
// anything outside [a-z0-9.-] collapsed to a single hyphen, hyphen runs
// collapsed, leading and trailing hyphens trimmed.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugInvalidRe.ReplaceAllString(s, "-")
	s = slugHyphenRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FilenameForTitle returns the file name a title slugifies to, extension
// included.
func FilenameForTitle(title string) string {
	return Slugify(title) + RecipeExt
}

// FilenameOf returns the file name component of a canonical path.
func FilenameOf(relPath string) string {
	return path.Base(relPath)
}

// RecipePath composes the canonical path for a slugged filename under a
// category. Category must already be cleaned (see CleanCategory); empty
// means root-level placement.
func RecipePath(filename, category string) string {
	if category == "" {
		return path.Join(RecipesRoot, filename)
	}
	return path.Join(RecipesRoot, category, filename)
}

// CategoryOf extracts the category from a canonical path: every segment
// between the recipes root and the filename, joined by "/". A root-level
// path yields the empty string.
func CategoryOf(relPath string) string {
	relPath = strings.TrimPrefix(relPath, RecipesRoot+"/")
	dir := path.Dir(relPath)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}

// CleanCategory normalises a caller-supplied category. Surrounding
// whitespace and slashes are trimmed; an empty result means root-level
// placement and is not an error. Empty, "." and ".." segments are rejected.
func CleanCategory(raw string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", nil
	}
	segments := strings.Split(trimmed, "/")
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" || seg == "." || seg == ".." {
			return "", NewValidationError(fmt.Sprintf("invalid category segment in %q", raw), nil)
		}
	}
	return trimmed, nil
}

// TitleFromFilename recovers a human-readable title from a canonical path's
// file name: extension stripped, hyphens to spaces, words title-cased. Used
// as a best-effort fallback when a stored file has no usable frontmatter.
func TitleFromFilename(relPath string) string {
	name := strings.TrimSuffix(path.Base(relPath), RecipeExt)
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
