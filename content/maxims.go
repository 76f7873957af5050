package content

import "leximax/models"

var maxims = []models.LegalMaxim{
	{
		ID:          "maxim1",
		Latin:       "Actus non facit reum nisi mens sit rea",
		English:     "The act does not make a person guilty unless the mind is also guilty",
		Category:    models.CategoryCriminalLaw,
		Description: "This maxim is the foundation of criminal law, establishing that a crime requires both a guilty act (actus reus) and a guilty mind (mens rea).",
		Example:     "A person who accidentally kills someone while driving carefully would not be guilty of murder due to lack of criminal intent.",
		WordBreakdown: []models.WordBreakdown{
			{Latin: "actus", English: "act", PartOfSpeech: "noun"},
			{Latin: "non", English: "not", PartOfSpeech: "adverb"},
			{Latin: "facit", English: "makes", PartOfSpeech: "verb"},
			{Latin: "reum", English: "guilty person", PartOfSpeech: "noun"},
			{Latin: "nisi", English: "unless", PartOfSpeech: "conjunction"},
			{Latin: "mens", English: "mind", PartOfSpeech: "noun"},
			{Latin: "sit", English: "is", PartOfSpeech: "verb"},
			{Latin: "rea", English: "guilty", PartOfSpeech: "adjective"},
		},
		Difficulty: models.DifficultyBeginner,
		XPReward:   50,
	},
	{
		ID:          "maxim2",
		Latin:       "Pacta sunt servanda",
		English:     "Agreements must be kept",
		Category:    models.CategoryContractLaw,
		Description: "This fundamental principle of contract law states that agreements and promises must be honored.",
		Example:     "When two parties sign a valid contract, they are legally bound to fulfill their obligations as stated in the agreement.",
		WordBreakdown: []models.WordBreakdown{
			{Latin: "pacta", English: "agreements", PartOfSpeech: "noun"},
			{Latin: "sunt", English: "are", PartOfSpeech: "verb"},
			{Latin: "servanda", English: "to be observed/kept", PartOfSpeech: "gerundive"},
		},
		Difficulty: models.DifficultyBeginner,
		XPReward:   40,
	},
	{
		ID:          "maxim3",
		Latin:       "Ignorantia legis neminem excusat",
		English:     "Ignorance of the law excuses no one",
		Category:    models.CategoryGeneralPrinciple,
		Description: "This principle holds that a person who is unaware of a law may not escape liability for violating that law merely because they were unaware of it.",
		Example:     "A driver cannot avoid a speeding ticket by claiming they didn't know the speed limit on that particular road.",
		WordBreakdown: []models.WordBreakdown{
			{Latin: "ignorantia", English: "ignorance", PartOfSpeech: "noun"},
			{Latin: "legis", English: "of the law", PartOfSpeech: "noun"},
			{Latin: "neminem", English: "no one", PartOfSpeech: "pronoun"},
			{Latin: "excusat", English: "excuses", PartOfSpeech: "verb"},
		},
		Difficulty: models.DifficultyBeginner,
		XPReward:   45,
	},
	{
		ID:          "maxim4",
		Latin:       "Res ipsa loquitur",
		English:     "The thing speaks for itself",
		Category:    models.CategoryTortLaw,
		Description: "A doctrine in tort law when the very nature of an accident implies negligence.",
		Example:     "If a surgical tool is left inside a patient after surgery, the negligence is obvious without needing to prove specific actions of negligence.",
		WordBreakdown: []models.WordBreakdown{
			{Latin: "res", English: "thing", PartOfSpeech: "noun"},
			{Latin: "ipsa", English: "itself", PartOfSpeech: "pronoun"},
			{Latin: "loquitur", English: "speaks", PartOfSpeech: "verb"},
		},
		Difficulty: models.DifficultyIntermediate,
		XPReward:   60,
	},
	{
		ID:          "maxim5",
		Latin:       "Ei incumbit probatio qui dicit, non qui negat",
		English:     "The burden of proof lies with who declares, not who denies",
		Category:    models.CategoryEvidence,
		Description: "This principle establishes that the burden of proof rests with the party making an assertion, not with the party denying it.",
		Example:     "In a criminal trial, the prosecution must prove the defendant's guilt, rather than the defendant having to prove their innocence.",
		WordBreakdown: []models.WordBreakdown{
			{Latin: "ei", English: "on him", PartOfSpeech: "pronoun"},
			{Latin: "incumbit", English: "it lies", PartOfSpeech: "verb"},
			{Latin: "probatio", English: "proof", PartOfSpeech: "noun"},
			{Latin: "qui", English: "who", PartOfSpeech: "pronoun"},
			{Latin: "dicit", English: "says/declares", PartOfSpeech: "verb"},
			{Latin: "non", English: "not", PartOfSpeech: "adverb"},
			{Latin: "qui", English: "who", PartOfSpeech: "pronoun"},
			{Latin: "negat", English: "denies", PartOfSpeech: "verb"},
		},
		Difficulty: models.DifficultyAdvanced,
		XPReward:   75,
	},
	{
		ID:          "maxim6",
		Latin:       "Nemo judex in causa sua",
		English:     "No one should be a judge in their own case",
		Category:    models.CategoryProcedure,
		Description: "This principle of natural justice states that no person can judge a case in which they have an interest.",
		Example:     "A judge must recuse themselves from a case if they have a personal relationship with one of the parties involved.",
		WordBreakdown: []models.WordBreakdown{
			{Latin: "nemo", English: "no one", PartOfSpeech: "pronoun"},
			{Latin: "judex", English: "judge", PartOfSpeech: "noun"},
			{Latin: "in", English: "in", PartOfSpeech: "preposition"},
			{Latin: "causa", English: "case", PartOfSpeech: "noun"},
			{Latin: "sua", English: "their own", PartOfSpeech: "pronoun"},
		},
		Difficulty: models.DifficultyIntermediate,
		XPReward:   55,
	},
	{
		ID:          "maxim7",
		Latin:       "Nullum crimen sine lege",
		English:     "No crime without law",
		Category:    models.CategoryCriminalLaw,
		Description: "This principle states that one cannot be punished for doing something that is not prohibited by law.",
		Example:     "A person cannot be convicted for an act that was not criminalized at the time it was committed.",
		WordBreakdown: []models.WordBreakdown{
			{Latin: "nullum", English: "no", PartOfSpeech: "adjective"},
			{Latin: "crimen", English: "crime", PartOfSpeech: "noun"},
			{Latin: "sine", English: "without", PartOfSpeech: "preposition"},
			{Latin: "lege", English: "law", PartOfSpeech: "noun"},
		},
		Difficulty: models.DifficultyIntermediate,
		XPReward:   50,
	},
}
