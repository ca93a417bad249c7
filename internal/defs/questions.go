package defs

import "strings"

// Question is one multiple-choice trivia question about an archetype.
// CorrectAnswer is the option letter ("A", "B", ...).
type Question struct {
	Animal        string   `json:"animal"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    int      `json:"difficulty"`
}

// IsCorrect compares a submitted option letter with the correct one.
func (q Question) IsCorrect(letter string) bool {
	return strings.EqualFold(strings.TrimSpace(letter), strings.TrimSpace(q.CorrectAnswer))
}

// QuestionProvider is the read-only question lookup used by the quiz.
type QuestionProvider interface {
	Questions(key string) []Question
}

// QuestionBank is an in-memory QuestionProvider keyed by archetype.
type QuestionBank map[string][]Question

func (b QuestionBank) Questions(key string) []Question {
	return b[key]
}

// DefaultQuestions is a small built-in bank covering the wetland roster.
func DefaultQuestions() QuestionBank {
	q := func(animal, text string, opts []string, correct, why string, diff int) Question {
		return Question{Animal: animal, Text: text, Options: opts, CorrectAnswer: correct, Explanation: why, Difficulty: diff}
	}
	return QuestionBank{
		Frog: {
			q(Frog, "What does a tadpole breathe with?", []string{"Gills", "Lungs", "Skin only", "Trachea"}, "A", "Tadpoles live in water and breathe through gills.", 1),
			q(Frog, "Why are frogs called indicator species?", []string{"They are loud", "Their permeable skin reacts to pollution", "They eat mosquitoes", "They hibernate"}, "B", "Frog skin absorbs water and pollutants, so populations drop fast in dirty wetlands.", 5),
		},
		Dragonfly: {
			q(Dragonfly, "Where do dragonfly nymphs live?", []string{"In trees", "Underground", "In water", "In flowers"}, "C", "Nymphs hunt underwater for months or years before emerging.", 2),
			q(Dragonfly, "About how many lenses make up a dragonfly's compound eye?", []string{"30", "300", "3,000", "Up to 30,000"}, "D", "Each eye can hold up to 30,000 ommatidia.", 6),
		},
		Egret: {
			q(Egret, "What is an egret's main hunting style?", []string{"Diving from the air", "Standing still and striking", "Filter feeding", "Scavenging"}, "B", "Egrets wait motionless in shallow water and spear prey.", 2),
			q(Egret, "What nearly wiped out egrets in the early 1900s?", []string{"Plume hunting for hats", "Drought", "Disease", "Predators"}, "A", "Breeding plumes were prized by the fashion trade.", 4),
		},
		Carp: {
			q(Carp, "What are the fleshy whiskers near a carp's mouth called?", []string{"Fins", "Barbels", "Gills", "Scutes"}, "B", "Barbels help carp taste and feel for food in mud.", 3),
		},
		Otter: {
			q(Otter, "What keeps an otter warm in cold water?", []string{"Thick blubber", "Very dense fur", "Feathers", "Hibernation"}, "B", "Otters rely on extremely dense, air-trapping fur.", 2),
			q(Otter, "Which word describes an otter's den?", []string{"Holt", "Drey", "Sett", "Form"}, "A", "An otter den is called a holt.", 5),
		},
		WildDuck: {
			q(WildDuck, "Why do duck feathers stay dry?", []string{"They are waxy by nature", "Oil from the preen gland", "Ducks avoid diving", "They shake constantly"}, "B", "Ducks spread preen oil over feathers to waterproof them.", 2),
		},
		Alligator: {
			q(Alligator, "What sets the sex of Chinese alligator hatchlings?", []string{"Genes only", "Nest temperature", "Moon phase", "Water depth"}, "B", "Incubation temperature determines hatchling sex.", 5),
			q(Alligator, "In which river basin does the Chinese alligator live?", []string{"Yellow River", "Pearl River", "Yangtze River", "Amur River"}, "C", "It survives only in the lower Yangtze region.", 3),
		},
		Crane: {
			q(Crane, "What does the red crown of the red-crowned crane consist of?", []string{"Feathers", "Bare red skin", "Dye from food", "A comb"}, "B", "The crown is a patch of bare skin.", 4),
			q(Crane, "What are cranes famous for during courtship?", []string{"Dancing", "Nest building", "Singing at night", "Changing color"}, "A", "Pairs perform elaborate leaping dances.", 1),
		},
		Sturgeon: {
			q(Sturgeon, "Roughly how long have sturgeon lineages existed?", []string{"1 million years", "10 million years", "Over 100 million years", "5,000 years"}, "C", "Sturgeons date back to the age of dinosaurs.", 6),
		},
		BlackStork: {
			q(BlackStork, "Where does the black stork usually nest?", []string{"On rooftops", "In quiet forests and cliffs", "On floating reeds", "In burrows"}, "B", "Unlike the white stork it avoids people and nests in secluded places.", 4),
		},
	}
}
