package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prepdrill/prepdrill/internal/difficulty"
	"github.com/prepdrill/prepdrill/internal/exam"
	"github.com/prepdrill/prepdrill/internal/performance"
	"github.com/prepdrill/prepdrill/internal/predictor"
	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/schedule"
	"github.com/prepdrill/prepdrill/internal/ui/theme"
)

// barWidth sizes the accuracy bars in topic tables.
const barWidth = 20

func row(label, value string) string {
	return theme.Label.Render(label) + theme.Value.Render(value)
}

func bar(fraction float64) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*barWidth + 0.5)
	style := theme.Good
	if fraction < 0.7 {
		style = theme.Warn
	}
	if fraction < 0.5 {
		style = theme.Bad
	}
	return style.Render(strings.Repeat("█", filled)) +
		theme.Subtitle.Render(strings.Repeat("░", barWidth-filled))
}

// Stats renders the learner's practice overview.
func Stats(p profile.Profile, perf *performance.Store, level difficulty.Level, due []string) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Practice stats") + "\n\n")
	b.WriteString(row("Answered", fmt.Sprintf("%d", perf.TotalAnswered())) + "\n")
	b.WriteString(row("Difficulty", string(level)) + "\n")
	b.WriteString(row("Reviews due", fmt.Sprintf("%d", len(due))) + "\n")

	b.WriteString(theme.Section.Render("Topics") + "\n")
	topics := perf.Topics()
	for _, t := range p.Topics {
		tp := topics[t.ID]
		if tp == nil || tp.QuestionsAttempted == 0 {
			b.WriteString(fmt.Sprintf("  %-28s %s\n", t.Name, theme.Hint.Render("no attempts")))
			continue
		}
		b.WriteString(fmt.Sprintf("  %-28s %s %3.0f%%  (%d answered)\n",
			t.Name, bar(tp.Accuracy()), tp.Accuracy()*100, tp.QuestionsAttempted))
	}
	return theme.Card.Render(b.String())
}

// Prediction renders a score forecast.
func Prediction(p profile.Profile, pred predictor.Prediction) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Score prediction") + "\n\n")
	b.WriteString(row("Predicted score", fmt.Sprintf("%d", pred.PredictedScore)) + "\n")
	b.WriteString(row("Confidence range", fmt.Sprintf("%d – %d", pred.ConfidenceLow, pred.ConfidenceHigh)) + "\n")

	probStyle := theme.Bad
	if pred.PassProbability >= 70 {
		probStyle = theme.Good
	} else if pred.PassProbability >= 50 {
		probStyle = theme.Warn
	}
	b.WriteString(theme.Label.Render("Pass probability") + probStyle.Render(fmt.Sprintf("%.0f%%", pred.PassProbability)) + "\n")
	b.WriteString(row("Readiness", string(pred.Readiness)) + "\n")
	b.WriteString(row("Based on", fmt.Sprintf("%d answers, %d mock exams", pred.AnswerCount, pred.ExamCount)) + "\n")

	b.WriteString(theme.Section.Render("Topics") + "\n")
	for _, t := range pred.PerTopic {
		mark := theme.Bad.Render("✗")
		if t.OnTrack {
			mark = theme.Good.Render("✓")
		}
		if t.Attempted == 0 {
			mark = theme.Subtitle.Render("·")
		}
		b.WriteString(fmt.Sprintf("  %s %-28s %s %3.0f%%\n", mark, t.Name, bar(t.Accuracy), t.Accuracy*100))
	}

	if len(pred.Recommendations) > 0 {
		b.WriteString(theme.Section.Render("Recommendations") + "\n")
		for _, r := range pred.Recommendations {
			b.WriteString("  • " + theme.Body.Render(r) + "\n")
		}
	}
	return theme.Card.Render(b.String())
}

// ExamResult renders a completed exam's breakdown.
func ExamResult(p profile.Profile, r exam.Result) string {
	var b strings.Builder

	verdict := theme.Bad.Render("FAIL")
	if r.Passed {
		verdict = theme.Good.Render("PASS")
	}
	b.WriteString(theme.Title.Render("Exam result") + "  " + verdict + "\n\n")
	b.WriteString(row("Scaled score", fmt.Sprintf("%d (pass: %d)", r.ScaledScore, p.PassingScaledScore)) + "\n")
	b.WriteString(row("Raw score", fmt.Sprintf("%.1f%% (%d/%d)", r.RawScore, r.CorrectCount, r.QuestionCount)) + "\n")
	b.WriteString(row("Time used", fmtDuration(r.DurationSec)) + "\n")

	b.WriteString(theme.Section.Render("Topics") + "\n")
	for _, t := range p.Topics {
		ts, ok := r.TopicScores[t.ID]
		if !ok {
			continue
		}
		mark := theme.Bad.Render("✗")
		if ts.Passed {
			mark = theme.Good.Render("✓")
		}
		b.WriteString(fmt.Sprintf("  %s %-28s %s %3.0f%%  (%d/%d)\n",
			mark, t.Name, bar(ts.Percentage/100), ts.Percentage, ts.Correct, ts.Total))
	}

	if len(r.WeakTopics) > 0 {
		names := make([]string, len(r.WeakTopics))
		for i, id := range r.WeakTopics {
			t, _ := p.Topic(id)
			names[i] = t.Name
		}
		b.WriteString(theme.Section.Render("Needs work") + "\n")
		b.WriteString("  " + theme.Warn.Render(strings.Join(names, ", ")) + "\n")
	}
	return theme.Card.Render(b.String())
}

// Plan renders a study schedule.
func Plan(plan schedule.Plan) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Study plan") + "\n\n")
	b.WriteString(row("Exam date", plan.ExamDate.Format("Mon, Jan 2 2006")) + "\n")
	b.WriteString(row("Days remaining", fmt.Sprintf("%d (%d study, %d review)", plan.TotalDays, plan.StudyDays, plan.ReviewDays)) + "\n")

	b.WriteString(theme.Section.Render("Phases") + "\n")
	for _, ph := range plan.Phases {
		b.WriteString(fmt.Sprintf("  %s – %s  %-28s %s\n",
			ph.StartDate.Format("Jan 2"),
			ph.EndDate.Format("Jan 2"),
			ph.Name,
			theme.Subtitle.Render(fmt.Sprintf("~%d questions", ph.QuestionTarget))))
	}

	b.WriteString(theme.Section.Render("Milestones") + "\n")
	for _, m := range plan.Milestones {
		b.WriteString(fmt.Sprintf("  %s  %s\n", m.Date.Format("Jan 2"), theme.Body.Render(m.Label)))
	}

	for _, w := range plan.Warnings {
		b.WriteString("\n" + theme.Warn.Render("! "+w))
	}
	return theme.Card.Render(b.String())
}

// Question renders one exam question with its countdown header.
func Question(index, total int, remainingSec int, payload string, flagged bool) string {
	header := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", index+1, total)) +
		"   " + theme.Warn.Render(fmtDuration(remainingSec))
	if flagged {
		header += "  " + theme.Warn.Render("⚑")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, theme.Body.Render(payload))
}

func fmtDuration(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%d:%02d:%02d", sec/3600, sec%3600/60, sec%60)
}
