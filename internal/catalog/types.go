// Package catalog holds the static treatment-comparison data set: methods,
// comparison scenarios, categories, priority profiles and gating rules.
// All of it is plain declarative data, built once at startup and never
// mutated afterwards. The ranking engine only ever reads it.
package catalog

// QuestionOption is one selectable answer for a question.
type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji,omitempty"`
}

// Question is a single step of a comparator's interview flow.
// Option values must be unique within the question; they are the strings
// gating rules match against.
type Question struct {
	ID      string           `json:"id"`
	Label   string           `json:"label"`
	Options []QuestionOption `json:"options"`
}

// TableCell is one qualitative row value in a method's comparison table.
// Scale is an optional 1-5 visual rating (0 means no scale shown).
type TableCell struct {
	Value   string `json:"value"`
	Scale   int    `json:"scale,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
}

// MethodTable is the qualitative description of a method: how long it takes,
// how invasive it is, what it is good and bad for.
type MethodTable struct {
	Time         TableCell `json:"time"`
	Visits       TableCell `json:"visits"`
	Durability   TableCell `json:"durability"`
	Invasiveness TableCell `json:"invasiveness"`
	Risk         TableCell `json:"risk"`
	Hygiene      TableCell `json:"hygiene"`
	Maintenance  TableCell `json:"maintenance"`
	WorksWhen    []string  `json:"works_when"`
	NotIdealWhen []string  `json:"not_ideal_when"`
}

// MethodMetrics are the five quantitative scores in [0,100] the engine
// combines with a priority's weight vector. Higher is always better:
// RiskScore 90 means low risk, MinInvasiveScore 90 means barely invasive.
type MethodMetrics struct {
	Durability  float64 `json:"durability"`
	Speed       float64 `json:"speed"`
	MinInvasive float64 `json:"min_invasive"`
	Maintenance float64 `json:"maintenance"`
	Risk        float64 `json:"risk"`
}

// Method is a candidate treatment.
type Method struct {
	ID                    string        `json:"id"`
	Label                 string        `json:"label"`
	Short                 string        `json:"short"`
	Icon                  string        `json:"icon,omitempty"`
	Color                 string        `json:"color,omitempty"`
	Table                 MethodTable   `json:"table"`
	Metrics               MethodMetrics `json:"metrics"`
	RecommendedSpecialist string        `json:"recommended_specialist,omitempty"`
}

// Comparator is a clinical decision scenario: a question flow plus the set
// of methods eligible for it. MethodIDs order doubles as the tie order of
// the final ranking.
type Comparator struct {
	ID         string     `json:"id"`
	CategoryID string     `json:"category_id"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	Icon       string     `json:"icon,omitempty"`
	Color      string     `json:"color,omitempty"`
	MethodIDs  []string   `json:"method_ids"`
	Questions  []Question `json:"questions"`
}

// Category groups comparators on the landing view.
type Category struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
}

// PriorityOption is a user-selectable weighting profile. Phrase is the
// inflected form used inside the recommendation sentence.
type PriorityOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Sublabel string `json:"sublabel"`
	Phrase   string `json:"-"`
	Emoji    string `json:"emoji,omitempty"`
	Color    string `json:"color,omitempty"`
}

// Weights is the per-metric weight vector of a priority profile.
// The five weights must sum to 1.0; Validate enforces this at load time.
type Weights struct {
	Durability  float64
	Speed       float64
	MinInvasive float64
	Maintenance float64
	Risk        float64
}

// GatingEffect is one adjustment a fired rule applies: a signed score delta
// for a method, optionally with a caveat badge shown to the user.
type GatingEffect struct {
	MethodID   string `json:"method_id"`
	ScoreDelta int    `json:"score_delta"`
	Badge      string `json:"badge,omitempty"`
}

// GatingRule shifts scores when the user's answers match. Answers is a
// conjunction: every key must be present in the user's answers with exactly
// the required value for the rule to fire.
type GatingRule struct {
	ID           string            `json:"id"`
	ComparatorID string            `json:"comparator_id"`
	Answers      map[string]string `json:"answers"`
	Effects      []GatingEffect    `json:"effects"`
}

// TableRowLabel describes one row of the comparison table schema, shared by
// all methods.
type TableRowLabel struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Tooltip string `json:"tooltip"`
}
