package metrics

// actionVerbs are the strong resume verbs counted by ActionVerbCount
var actionVerbs = map[string]bool{
	"achieved": true, "analyzed": true, "architected": true, "automated": true,
	"built": true, "collaborated": true, "created": true, "delivered": true,
	"designed": true, "developed": true, "drove": true, "engineered": true,
	"established": true, "executed": true, "generated": true, "implemented": true,
	"improved": true, "increased": true, "launched": true, "led": true,
	"managed": true, "mentored": true, "negotiated": true, "optimized": true,
	"reduced": true, "scaled": true, "shipped": true, "spearheaded": true,
	"streamlined": true, "transformed": true,
}

// IsActionVerb reports whether the lowercase word is one of the counted action verbs
func IsActionVerb(word string) bool {
	return actionVerbs[word]
}
