package models

// MaximCategory is the area of law a maxim belongs to
type MaximCategory string

const (
	CategoryCriminalLaw       MaximCategory = "Criminal Law"
	CategoryContractLaw       MaximCategory = "Contract Law"
	CategoryConstitutionalLaw MaximCategory = "Constitutional Law"
	CategoryTortLaw           MaximCategory = "Tort Law"
	CategoryPropertyLaw       MaximCategory = "Property Law"
	CategoryEvidence          MaximCategory = "Evidence"
	CategoryProcedure         MaximCategory = "Procedure"
	CategoryGeneralPrinciple  MaximCategory = "General Principle"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// WordBreakdown maps one Latin word to its English gloss
type WordBreakdown struct {
	Latin        string `bson:"latin" json:"latin"`
	English      string `bson:"english" json:"english"`
	PartOfSpeech string `bson:"partOfSpeech,omitempty" json:"partOfSpeech,omitempty"`
}

// LegalMaxim is the atomic, read-only content unit
type LegalMaxim struct {
	ID            string          `bson:"_id" json:"id"`
	Latin         string          `bson:"latin" json:"latin"`
	English       string          `bson:"english" json:"english"`
	Category      MaximCategory   `bson:"category" json:"category"`
	Description   string          `bson:"description" json:"description"`
	Example       string          `bson:"example" json:"example"`
	WordBreakdown []WordBreakdown `bson:"wordBreakdown" json:"wordBreakdown"`
	Difficulty    Difficulty      `bson:"difficulty" json:"difficulty"`
	XPReward      int             `bson:"xpReward" json:"xpReward"`
}
