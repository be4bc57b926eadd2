package beacon

import "strings"

// Construct expands a raw link into a full link using the meta fields.
// It is pure: the same inputs always produce the same link.
func Construct(meta *MetaFields, raw RawLink) Link {
	prefix := meta.GetOrDefault(FieldPrefix, DefaultPrefix)
	targetPattern := meta.GetOrDefault(FieldTarget, DefaultTarget)
	relation := meta.GetOrDefault(FieldRelation, DefaultRelation)
	message := meta.GetOrDefault(FieldMessage, DefaultMessage)

	targetToken := raw.Source()
	if t, ok := raw.Target(); ok {
		targetToken = t
	}

	link := Link{
		Source:   Expand(prefix, raw.Source()),
		Target:   Expand(targetPattern, targetToken),
		Relation: relation,
	}

	annotation, hasAnnotation := raw.Annotation()
	if IsURIPattern(relation) && hasAnnotation {
		link.Relation = Expand(relation, annotation)
	}

	switch {
	case isURI(relation) && hasAnnotation:
		link.Annotation = annotation
	case message != "":
		link.Annotation = message
	}

	return link
}

// Expand substitutes token into a URI pattern.
//
//   - "{+ID}" is replaced by the token verbatim.
//   - "{ID}" is replaced by the percent-encoded token.
//   - A pattern without placeholder gets the encoded token appended.
func Expand(pattern, token string) string {
	if strings.Contains(pattern, PlaceholderReserved) {
		return strings.ReplaceAll(pattern, PlaceholderReserved, token)
	}
	if strings.Contains(pattern, PlaceholderSimple) {
		return strings.ReplaceAll(pattern, PlaceholderSimple, PercentEncode(token))
	}
	return pattern + PercentEncode(token)
}

// IsURIPattern reports whether value contains an ID placeholder.
func IsURIPattern(value string) bool {
	return strings.Contains(value, PlaceholderSimple) || strings.Contains(value, PlaceholderReserved)
}

// isURI reports whether value looks like a URI. Patterns count too, so a
// relation pattern keeps the annotation token as well as expanding it.
func isURI(value string) bool {
	return strings.Contains(value, "://")
}
