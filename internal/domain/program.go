package domain

import (
	"time"

	"github.com/neuronspark/spark-server/internal/id"
)

// ExamGoal is the target examination scope a program is built for.
type ExamGoal string

// Recognized exam goals.
const (
	ExamGoalTYT    ExamGoal = "TYT"
	ExamGoalAYT    ExamGoal = "AYT"
	ExamGoalTYTAYT ExamGoal = "TYT + AYT"
)

// Weekdays is the fixed weekday label sequence used for program tasks,
// starting Monday.
var Weekdays = [7]string{"Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi", "Pazar"}

// ProgramTask is a single study task within a program.
type ProgramTask struct {
	ID        string `json:"id"`
	Lesson    string `json:"lesson"`
	Topic     string `json:"topic"`
	Duration  int    `json:"duration"` // minutes
	Completed bool   `json:"completed"`
	Day       string `json:"day"` // weekday label from Weekdays
}

// Program is a generated study plan owned by a profile.
type Program struct {
	ID         string        `json:"id"`
	ProfileID  string        `json:"profile_id"`
	ExamGoal   ExamGoal      `json:"exam_goal"`
	DailyHours string        `json:"daily_hours"` // "1-2" / "2-4" / "4+"
	StudyDays  int           `json:"study_days"`  // 1-7
	Tasks      []ProgramTask `json:"tasks"`
	CreatedAt  time.Time     `json:"created_at"`
}

// taskTemplate is a (lesson, topic, duration) triple used to seed starter tasks.
type taskTemplate struct {
	lesson   string
	topic    string
	duration int
}

// tasksPerDay is how many templates are emitted for each study day.
const tasksPerDay = 2

var taskTemplates = map[ExamGoal][]taskTemplate{
	ExamGoalTYT: {
		{"Matematik", "Temel Kavramlar", 45},
		{"Türkçe", "Sözcük - Cümle", 30},
		{"Fen", "Fizik - Hareket", 40},
		{"Sosyal", "Tarih - İnkılap", 35},
	},
	ExamGoalAYT: {
		{"Matematik", "İntegral", 50},
		{"Fizik", "Elektrik", 45},
		{"Kimya", "Organik", 40},
		{"Biyoloji", "Hücre", 35},
	},
	ExamGoalTYTAYT: {
		{"TYT Matematik", "Temel Matematik", 40},
		{"AYT Matematik", "İleri Matematik", 40},
		{"Türkçe", "Okuma - Anlama", 30},
		{"Fen", "Fizik & Kimya", 35},
	},
}

// StarterTasks generates the initial task list for a new program.
//
// The weekday sequence is truncated to studyDays entries and each day receives
// the first two templates for the goal, in template order, so the result
// always holds studyDays * 2 tasks. Unrecognized goals fall back to the TYT
// template set.
//
// dailyHours is accepted for API symmetry but does not affect the output;
// the daily-hours bucket only describes the user's availability today.
func StarterTasks(goal ExamGoal, dailyHours string, studyDays int) []ProgramTask {
	_ = dailyHours

	if studyDays < 0 {
		studyDays = 0
	} else if studyDays > len(Weekdays) {
		studyDays = len(Weekdays)
	}

	templates, ok := taskTemplates[goal]
	if !ok {
		templates = taskTemplates[ExamGoalTYT]
	}
	if len(templates) > tasksPerDay {
		templates = templates[:tasksPerDay]
	}

	tasks := make([]ProgramTask, 0, studyDays*len(templates))
	for _, day := range Weekdays[:studyDays] {
		for _, tpl := range templates {
			tasks = append(tasks, ProgramTask{
				ID:        id.MustGenerate("task"),
				Lesson:    tpl.lesson,
				Topic:     tpl.topic,
				Duration:  tpl.duration,
				Completed: false,
				Day:       day,
			})
		}
	}

	return tasks
}

// NewProgram creates a program with generated starter tasks.
func NewProgram(programID, profileID string, goal ExamGoal, dailyHours string, studyDays int) *Program {
	return &Program{
		ID:         programID,
		ProfileID:  profileID,
		ExamGoal:   goal,
		DailyHours: dailyHours,
		StudyDays:  studyDays,
		Tasks:      StarterTasks(goal, dailyHours, studyDays),
		CreatedAt:  time.Now().UTC(),
	}
}
