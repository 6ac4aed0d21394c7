package engine

import "fmt"

// badgeCaveat is appended to the headline when the top method carries
// badges, pointing the reader at the per-method caveats in the result list.
const badgeCaveat = "Zwróć uwagę na oznaczenia przy wynikach — opisują zastrzeżenia istotne w Twojej sytuacji."

// RecommendationText renders the headline sentence for the top-ranked
// method, with the method label in **bold** markup. It returns an empty
// string when the priority or the method cannot be resolved; callers render
// nothing rather than a broken sentence. No HTML escaping happens here.
func (e *Engine) RecommendationText(priorityID string, top ScoredMethod) string {
	method, ok := e.catalog.Method(top.MethodID)
	if !ok {
		return ""
	}
	priority, ok := e.catalog.Priority(priorityID)
	if !ok {
		return ""
	}
	text := fmt.Sprintf("Przy priorytecie „%s” najczęściej rozważaną opcją jest **%s**. %s",
		priority.Phrase, method.Label, method.Short)
	if len(top.Badges) > 0 {
		text += " " + badgeCaveat
	}
	return text
}
