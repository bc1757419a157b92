package lessons

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/llm"
	"github.com/brighted/nable/internal/mastery"
)

func validLessonJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Revenue Is Not Profit",
		"explanation": "Revenue is everything a business earns from sales before any costs come out. Profit is what remains after all expenses are paid. A stall can have high revenue and still make a loss.",
		"worked_example": "1. Maria's juice stall sells 200 cups at $5 each, so revenue is $1,000\n2. Fruit, cups and stall rent cost $750\n3. Profit = $1,000 - $750 = $250",
		"practice_question": {
			"text": "A bakery takes in $2,000 from sales and pays $1,400 in expenses. What is its profit?",
			"options": ["$2,000", "$1,400", "$600", "$3,400"],
			"correct_index": 2,
			"explanation": "Profit is sales income minus expenses: $2,000 - $1,400 = $600."
		}
	}`)
}

func testSkill() content.Skill {
	skills := content.AllSkills()
	if len(skills) == 0 {
		panic("no skills in registry")
	}
	return skills[0]
}

func TestService_GeneratesLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validLessonJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	input := LessonInput{
		Skill:   testSkill(),
		Mastery: 0.4,
		RecentErrors: []string{
			"Chose 'Revenue' when the correct answer was 'Profit'",
		},
	}

	svc.RequestLesson(t.Context(), input)

	var lesson *Lesson
	var ok bool
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		lesson, ok = svc.ConsumeLesson()
		if ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !ok || lesson == nil {
		t.Fatal("expected lesson to be generated")
	}

	if lesson.Title != "Revenue Is Not Profit" {
		t.Errorf("title = %q, want 'Revenue Is Not Profit'", lesson.Title)
	}
	if lesson.Explanation == "" {
		t.Error("expected non-empty explanation")
	}
	if lesson.WorkedExample == "" {
		t.Error("expected non-empty worked example")
	}
	if len(lesson.PracticeQuestion.Options) != 4 {
		t.Errorf("practice options = %d, want 4", len(lesson.PracticeQuestion.Options))
	}
	if lesson.PracticeQuestion.CorrectIndex != 2 {
		t.Errorf("practice correct index = %d, want 2", lesson.PracticeQuestion.CorrectIndex)
	}
}

func TestService_ConsumeClearsLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validLessonJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestLesson(t.Context(), LessonInput{Skill: testSkill()})

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := svc.ConsumeLesson(); ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	_, ok := svc.ConsumeLesson()
	if ok {
		t.Error("expected second ConsumeLesson to return false")
	}
}

func TestService_LLMError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestLesson(t.Context(), LessonInput{Skill: testSkill()})

	time.Sleep(100 * time.Millisecond)

	lesson, ok := svc.ConsumeLesson()
	if ok && lesson != nil {
		t.Error("expected no lesson on LLM error")
	}
}

func TestService_RejectsOutOfRangeCorrectIndex(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "Broken",
			"explanation": "x",
			"worked_example": "x",
			"practice_question": {"text": "x", "options": ["a", "b"], "correct_index": 5, "explanation": "x"}
		}`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestLesson(t.Context(), LessonInput{Skill: testSkill()})
	time.Sleep(100 * time.Millisecond)

	if lesson, ok := svc.ConsumeLesson(); ok && lesson != nil {
		t.Error("expected malformed lesson to be rejected")
	}
}

func TestService_SchemaAttached(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validLessonJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestLesson(t.Context(), LessonInput{Skill: testSkill()})

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := svc.ConsumeLesson(); ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "micro-lesson" {
		t.Error("expected schema name 'micro-lesson'")
	}
}

func TestTemplateComposer(t *testing.T) {
	skill := testSkill()
	lesson, ok := TemplateComposer{}.Compose(skill.ID, mastery.SubSkillScore{}, nil)
	if !ok {
		t.Fatalf("no template lesson for registry skill %s", skill.ID)
	}
	if lesson.SkillID != skill.ID || lesson.Explanation == "" {
		t.Errorf("template lesson incomplete: %+v", lesson)
	}
	if len(lesson.PracticeQuestion.Options) < 2 {
		t.Error("template practice question needs at least two options")
	}

	if _, ok := (TemplateComposer{}).Compose("pob.not-a-skill", mastery.SubSkillScore{}, nil); ok {
		t.Error("unknown skill produced a template lesson")
	}
}
