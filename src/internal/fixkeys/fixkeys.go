package fixkeys

import (
	"fmt"
	"regexp"
	"strings"
)

// KeyPrefix is the stem of generated placeholder keys. The keys are
// meant to stand out so a human goes back and names the entry.
const KeyPrefix = "Foo"

// missingKey matches an entry-start line with no citation key, with or
// without the trailing comma: "@article{" or "@article{,".
var missingKey = regexp.MustCompile(`^@\w+\{,?$`)

// existingKey captures the citation key of a well-formed entry-start
// line.
var existingKey = regexp.MustCompile(`^@\w+\{\s*([^,\s{}]+)\s*,`)

// Repair rewrites entry-start lines that lack a citation key, giving
// each a placeholder like Foo1, Foo2. Counters skip keys already taken
// in the file, so a repaired file never gains a duplicate. The output
// always begins with a blank line; BibDesk and the renderer both keep
// files in that shape. Returns the repaired text and the number of
// keys assigned.
func Repair(src string) (string, int) {
	lines := strings.Split(src, "\n")
	taken := map[string]bool{}
	for _, line := range lines {
		if m := existingKey.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			taken[m[1]] = true
		}
	}
	assigned := 0
	next := 1
	for i, line := range lines {
		if !missingKey.MatchString(strings.TrimSpace(line)) {
			continue
		}
		key := fmt.Sprintf("%s%d", KeyPrefix, next)
		for taken[key] {
			next++
			key = fmt.Sprintf("%s%d", KeyPrefix, next)
		}
		taken[key] = true
		next++
		assigned++
		brace := strings.IndexByte(line, '{')
		lines[i] = line[:brace+1] + key + ","
	}
	if lines[0] != "" {
		lines = append([]string{""}, lines...)
	}
	return strings.Join(lines, "\n"), assigned
}
