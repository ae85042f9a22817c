package scoring

import "github.com/abhisek/pathfinder/internal/catalog"

// fullCredit answers every Likert question at its maximum and every
// multiple-choice question correctly.
func fullCredit() []Answer {
	var answers []Answer
	for _, q := range catalog.AllQuestions() {
		switch q.Type {
		case catalog.TypeLikert:
			answers = append(answers, Answer{QuestionID: q.ID, Value: catalog.Number(float64(q.ScaleMax()))})
		case catalog.TypeMultipleChoice:
			answers = append(answers, Answer{QuestionID: q.ID, Value: q.CorrectAnswer})
		}
	}
	return answers
}

// rateAll answers every Likert question with the same rating.
func rateAll(rating float64) []Answer {
	var answers []Answer
	for _, q := range catalog.ByCategory(catalog.CategoryPsychometric) {
		answers = append(answers, Answer{QuestionID: q.ID, Value: catalog.Number(rating)})
	}
	return answers
}

// answerSection answers every multiple-choice question in a section,
// correctly or with the first wrong option.
func answerSection(sectionID string, correct bool) []Answer {
	var answers []Answer
	for _, q := range catalog.QuestionsInSection(sectionID) {
		v := q.CorrectAnswer
		if !correct {
			for _, opt := range q.Options {
				if !q.CorrectAnswer.Equal(catalog.Text(opt)) {
					v = catalog.Text(opt)
					break
				}
			}
		}
		answers = append(answers, Answer{QuestionID: q.ID, Value: v})
	}
	return answers
}

func num(id string, v float64) Answer {
	return Answer{QuestionID: id, Value: catalog.Number(v)}
}

func text(id string, v string) Answer {
	return Answer{QuestionID: id, Value: catalog.Text(v)}
}
