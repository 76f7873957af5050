package content

import (
	"fmt"

	"leximax/models"

	"github.com/samber/lo"
)

// XP granted per activity type.
const (
	flashcardXP      = 15
	wordBreakdownXP  = 20
	dragAndDropXP    = 25
	fillInTheBlankXP = 15
	caseScenarioXP   = 30
)

// matchPairLimit caps how many pairs the drag-and-drop exercise asks for.
const matchPairLimit = 4

// exercises holds the hand-written parts of each module, keyed by maxim id.
var exercises = map[string]struct {
	fill     models.FillInTheBlankContent
	scenario models.CaseScenarioContent
}{
	"maxim1": {
		fill: models.FillInTheBlankContent{
			Question:       "The act does not make a person ____ unless the ____ is also guilty.",
			Options:        []string{"mind", "act", "guilty", "innocent", "law", "crime"},
			CorrectAnswers: []string{"guilty", "mind"},
		},
		scenario: models.CaseScenarioContent{
			Scenario: "John accidentally knocked over a vase in a store while browsing, breaking it. He had no intention of damaging any property. Under criminal law, how would this scenario likely be viewed?",
			Options: []string{
				"John is guilty of criminal damage because he broke the vase.",
				"John is not criminally liable because there was no criminal intent (mens rea).",
				"John must pay for the vase but has committed no crime.",
				"John is guilty of trespassing in the store.",
			},
			CorrectAnswer: 1,
			Explanation:   "Without criminal intent (mens rea), the act of breaking the vase (actus reus) does not constitute a crime. John may be civilly liable for the damage but lacks the criminal mind required for criminal liability.",
		},
	},
	"maxim2": {
		fill: models.FillInTheBlankContent{
			Question:       "Pacta sunt ____: agreements must be ____.",
			Options:        []string{"servanda", "kept", "legis", "broken", "rea", "signed"},
			CorrectAnswers: []string{"servanda", "kept"},
		},
		scenario: models.CaseScenarioContent{
			Scenario: "A supplier signs a one-year contract to deliver flour at a fixed price. Halfway through the year flour prices rise and the supplier announces it will stop delivering unless the baker pays more. What does the principle of 'Pacta sunt servanda' suggest?",
			Options: []string{
				"The supplier may stop because market conditions changed.",
				"The baker must accept the new price to keep the relationship.",
				"The supplier remains bound to deliver at the agreed price.",
				"The contract is void because prices are unpredictable.",
			},
			CorrectAnswer: 2,
			Explanation:   "Agreements must be kept. A rise in costs does not by itself release a party from a valid contract; the supplier must perform on the terms it accepted.",
		},
	},
	"maxim3": {
		fill: models.FillInTheBlankContent{
			Question:       "Ignorantia ____ neminem ____.",
			Options:        []string{"legis", "excusat", "lex", "facit", "rea", "judex"},
			CorrectAnswers: []string{"legis", "excusat"},
		},
		scenario: models.CaseScenarioContent{
			Scenario: "Sarah moves to a new country and imports a plant that is illegal there because it is invasive. When caught, she claims she didn't know it was illegal since it was legal in her home country.",
			Options: []string{
				"Sarah should be excused because she genuinely didn't know the law of the new country.",
				"Sarah is still liable because ignorance of the law is not a valid defense.",
				"Sarah should only be warned since it's her first offense.",
				"Sarah should be deported back to her home country.",
			},
			CorrectAnswer: 1,
			Explanation:   "Ignorance of the law excuses no one. Even though Sarah didn't know about the prohibition, she is still legally responsible for violating it.",
		},
	},
	"maxim4": {
		fill: models.FillInTheBlankContent{
			Question:       "In tort law, when negligence is obvious from the circumstances, we say ____ ____ ____.",
			Options:        []string{"res", "ipsa", "loquitur", "mens", "rea", "actus"},
			CorrectAnswers: []string{"res", "ipsa", "loquitur"},
		},
		scenario: models.CaseScenarioContent{
			Scenario: "A patient undergoes surgery and wakes up to find a surgical instrument was left inside their body. In a subsequent medical malpractice lawsuit, how might this principle apply?",
			Options: []string{
				"The patient must prove exactly how the surgeon was negligent.",
				"The surgeon is automatically guilty of intentional harm.",
				"The situation itself (instrument left behind) is sufficient evidence of negligence.",
				"The hospital, not the surgeon, is automatically liable.",
			},
			CorrectAnswer: 2,
			Explanation:   "The thing speaks for itself. An instrument left inside a patient is the kind of event that does not ordinarily occur without negligence, so the circumstances are sufficient evidence of it.",
		},
	},
	"maxim5": {
		fill: models.FillInTheBlankContent{
			Question:       "Ei incumbit ____ qui dicit, non qui ____.",
			Options:        []string{"probatio", "negat", "lex", "dicit", "causa", "reum"},
			CorrectAnswers: []string{"probatio", "negat"},
		},
		scenario: models.CaseScenarioContent{
			Scenario: "A landlord sues a former tenant, claiming the tenant damaged the kitchen. The tenant denies causing any damage. Who must prove what happened?",
			Options: []string{
				"The tenant must prove they did not cause the damage.",
				"The landlord must prove the tenant caused the damage.",
				"The court must investigate on its own.",
				"Neither party; the deposit is split equally.",
			},
			CorrectAnswer: 1,
			Explanation:   "The burden of proof lies with the one who asserts. The landlord is making the claim and must prove it; the tenant who denies it carries no burden.",
		},
	},
	"maxim6": {
		fill: models.FillInTheBlankContent{
			Question:       "Nemo ____ in causa ____.",
			Options:        []string{"judex", "sua", "lex", "rea", "res", "nisi"},
			CorrectAnswers: []string{"judex", "sua"},
		},
		scenario: models.CaseScenarioContent{
			Scenario: "A judge is assigned a commercial dispute in which one of the parties is a company the judge holds shares in. What should happen?",
			Options: []string{
				"The judge may hear the case if they promise to be fair.",
				"The judge should recuse themselves from the case.",
				"The judge should sell the shares after the verdict.",
				"The parties must decide whether the judge stays.",
			},
			CorrectAnswer: 1,
			Explanation:   "No one should be a judge in their own case. A financial interest in a party creates an appearance of bias, so the judge must step aside.",
		},
	},
	"maxim7": {
		fill: models.FillInTheBlankContent{
			Question:       "Nullum ____ sine ____.",
			Options:        []string{"crimen", "lege", "reum", "causa", "mens", "pacta"},
			CorrectAnswers: []string{"crimen", "lege"},
		},
		scenario: models.CaseScenarioContent{
			Scenario: "A new law bans drone flights over parks from 1 June. Alex flew a drone over a park on 15 May and is charged under the new law. What is the likely outcome?",
			Options: []string{
				"Alex is guilty because the conduct is now prohibited.",
				"Alex is guilty but receives a reduced sentence.",
				"Alex cannot be convicted because the act was lawful when committed.",
				"Alex must prove the drone was harmless.",
			},
			CorrectAnswer: 2,
			Explanation:   "No crime without law. Conduct can only be punished if a law prohibited it at the time it was committed; the ban cannot apply retroactively.",
		},
	},
}

// buildModules derives one module per maxim, in maxim order.
func buildModules(maxims []models.LegalMaxim) []models.LearningModule {
	modules := make([]models.LearningModule, 0, len(maxims))
	for i, m := range maxims {
		ex, ok := exercises[m.ID]
		if !ok {
			continue
		}
		n := i + 1
		activityID := func(k int) string { return fmt.Sprintf("activity%d-%d", n, k) }

		pairs := lo.Map(lo.UniqBy(m.WordBreakdown, func(w models.WordBreakdown) string { return w.Latin }),
			func(w models.WordBreakdown, _ int) models.MatchPair {
				return models.MatchPair{Latin: w.Latin, English: w.English}
			})
		if len(pairs) > matchPairLimit {
			pairs = pairs[:matchPairLimit]
		}

		fill := ex.fill
		scenario := ex.scenario
		activities := []models.Activity{
			{
				ID:        activityID(1),
				Type:      models.ActivityFlashcard,
				XPReward:  flashcardXP,
				Flashcard: &models.FlashcardContent{Front: m.Latin, Back: m.English},
			},
			{
				ID:            activityID(2),
				Type:          models.ActivityWordBreakdown,
				XPReward:      wordBreakdownXP,
				WordBreakdown: &models.WordBreakdownContent{Words: m.WordBreakdown},
			},
			{
				ID:       activityID(3),
				Type:     models.ActivityDragAndDrop,
				XPReward: dragAndDropXP,
				DragAndDrop: &models.DragAndDropContent{
					Question: "Match each Latin word with its English translation",
					Pairs:    pairs,
				},
			},
			{
				ID:             activityID(4),
				Type:           models.ActivityFillInTheBlank,
				XPReward:       fillInTheBlankXP,
				FillInTheBlank: &fill,
			},
			{
				ID:           activityID(5),
				Type:         models.ActivityCaseScenario,
				XPReward:     caseScenarioXP,
				CaseScenario: &scenario,
			},
		}

		modules = append(modules, models.LearningModule{
			ID:         fmt.Sprintf("module%d", n),
			MaximID:    m.ID,
			Activities: activities,
			TotalXP:    lo.SumBy(activities, func(a models.Activity) int { return a.XPReward }),
		})
	}
	return modules
}
