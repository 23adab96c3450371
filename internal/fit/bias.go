package fit

import (
	"strings"

	"github.com/jonathan/tailor-engine/internal/types"
)

// biasPhrases maps exclusionary phrases to the factor they indicate
var biasPhrases = []struct {
	phrase string
	factor string
}{
	{"young", "Age-coded language"},
	{"digital native", "Age-coded language"},
	{"recent graduate", "Age-coded language"},
	{"energetic", "Age-coded language"},
	{"native english", "Native-speaker requirement"},
	{"native speaker", "Native-speaker requirement"},
	{"rockstar", "Gender-coded language"},
	{"ninja", "Gender-coded language"},
	{"manpower", "Gender-coded language"},
	{"salesman", "Gender-coded language"},
	{"culture fit", "Subjective culture-fit criterion"},
}

const (
	mitigationDetected = "Score is based only on skills, experience and education evidence; flagged posting language was not used as a criterion"
	mitigationClean    = "Score is based only on skills, experience and education evidence"
)

// detectBias scans the posting text for exclusionary phrases
func detectBias(job *types.JobPosting) types.BiasIndicators {
	text := strings.ToLower(job.FullText())

	factors := make([]string, 0)
	seen := make(map[string]bool)
	for _, bp := range biasPhrases {
		if strings.Contains(text, bp.phrase) && !seen[bp.factor] {
			seen[bp.factor] = true
			factors = append(factors, bp.factor)
		}
	}

	if len(factors) == 0 {
		return types.BiasIndicators{Detected: false, Factors: factors, Mitigation: mitigationClean}
	}
	return types.BiasIndicators{Detected: true, Factors: factors, Mitigation: mitigationDetected}
}
