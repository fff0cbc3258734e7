package knowledge

import "strings"

// Filter narrows the catalog by a free-text term and an optional level.
// The term matches course title, description or any topic, case
// insensitively. An empty level matches all levels.
func Filter(term string, level Level) []Course {
	term = strings.ToLower(strings.TrimSpace(term))

	var out []Course
	for _, c := range catalog {
		if level != "" && c.Level != level {
			continue
		}
		if term != "" && !matches(c, term) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c Course, term string) bool {
	if strings.Contains(strings.ToLower(c.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Description), term) {
		return true
	}
	for _, topic := range c.Topics {
		if strings.Contains(strings.ToLower(topic), term) {
			return true
		}
	}
	return false
}
