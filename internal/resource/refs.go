package resource

import "regexp"

var agentRefRE = regexp.MustCompile(`cm-[a-z]+(?:-[a-z]+)*`)

// ScanAgentRefs returns the distinct agent names mentioned in content, in
// order of first appearance.
//
// A name must stand on its own: it may not be preceded by a word character,
// "-" or "/" (so the Codex command form "/cm-plan" is not an agent) and may
// not run into a following word character.
func ScanAgentRefs(content string) []string {
	var refs []string
	seen := make(map[string]bool)

	for _, loc := range agentRefRE.FindAllStringIndex(content, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isRefBoundaryByte(content[start-1], true) {
			continue
		}
		if end < len(content) && isRefBoundaryByte(content[end], false) {
			continue
		}
		name := content[start:end]
		if !seen[name] {
			seen[name] = true
			refs = append(refs, name)
		}
	}
	return refs
}

func isRefBoundaryByte(b byte, left bool) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_':
		return true
	case left && (b == '-' || b == '/'):
		return true
	}
	return false
}
