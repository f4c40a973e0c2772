package upnote

import (
	"fmt"
	"strings"
	"time"
)

// FormatContent はmarkdownコンテンツを整形する
// addTimestampで先頭に作成時刻、addSeparatorで末尾に水平線を付加
func FormatContent(content string, addTimestamp, addSeparator bool, now time.Time) string {
	formatted := content

	if addTimestamp {
		timestamp := now.Format("2006-01-02 15:04:05")
		formatted = fmt.Sprintf("*Created: %s*\n\n%s", timestamp, formatted)
	}

	if addSeparator {
		formatted = formatted + "\n\n---\n"
	}

	return formatted
}

// Checklist はmarkdownチェックリストを生成する
func Checklist(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- [ ] " + item
	}
	return strings.Join(lines, "\n")
}

// Table はmarkdownテーブルを生成する
// 列数がヘッダーと一致しない行はスキップする
func Table(headers []string, rows [][]string) string {
	if len(headers) == 0 || len(rows) == 0 {
		return ""
	}

	headerRow := "| " + strings.Join(headers, " | ") + " |"
	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "---"
	}
	separatorRow := "| " + strings.Join(seps, " | ") + " |"

	lines := []string{headerRow, separatorRow}
	for _, row := range rows {
		if len(row) == len(headers) {
			lines = append(lines, "| "+strings.Join(row, " | ")+" |")
		}
	}

	return strings.Join(lines, "\n")
}

// TaskNoteContent はタスクノートの本文を生成する
func TaskNoteContent(title string, tasks []string, dueDate string) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	b.WriteString(Checklist(tasks))
	if dueDate != "" {
		b.WriteString("\n\n**Due Date**: " + dueDate)
	}
	return b.String()
}

// MeetingNoteContent は会議ノートの本文を生成する
func MeetingNoteContent(title, date string, attendees, agenda []string, location string) string {
	locationLine := ""
	if location != "" {
		locationLine = "**Location**: " + location
	}

	agendaLines := make([]string, len(agenda))
	for i, item := range agenda {
		agendaLines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}

	return fmt.Sprintf(`# %s

**Time**: %s
**Attendees**: %s
%s

## Agenda
%s

## Discussion Points
[Write discussion points here]

## Decisions Made
- [Decision 1]
- [Decision 2]

## Action Items
%s

## Next Meeting
**Schedule**: [Next meeting schedule]
`,
		title,
		date,
		strings.Join(attendees, ", "),
		locationLine,
		strings.Join(agendaLines, "\n"),
		Checklist([]string{
			"[Task Description] (Person, Due Date)",
			"[Task Description] (Person, Due Date)",
		}),
	)
}

// ProjectNoteContent はプロジェクトノートの本文を生成する
func ProjectNoteContent(projectName, description string, milestones, teamMembers []string, dueDate string, now time.Time) string {
	teamLines := make([]string, len(teamMembers))
	for i, member := range teamMembers {
		teamLines[i] = "- " + member
	}

	dueDateLine := ""
	if dueDate != "" {
		dueDateLine = "- **Due Date**: " + dueDate + "\n"
	}

	return fmt.Sprintf(`# 📋 %s

## Project Overview
%s

## Team Composition
%s

## Key Milestones
%s

## Progress
- **Start Date**: %s
%s- **Current Status**: Planning Phase

## Resources
- Budget: [Budget information]
- Tools: [Tools to be used]
- Reference Materials: [Related document links]

## Risk Factors
- [Risk Factor 1]
- [Risk Factor 2]

## Next Steps
%s
`,
		projectName,
		description,
		strings.Join(teamLines, "\n"),
		Checklist(milestones),
		now.Format("2006-01-02"),
		dueDateLine,
		Checklist([]string{
			"Requirements analysis",
			"Technology stack decision",
			"Development schedule establishment",
		}),
	)
}

// DailyNoteContent は日次ノートの本文を生成する
func DailyNoteContent(date, mood, weather string, goals []string, reflections string) string {
	moodLine := "**Mood**: "
	if mood != "" {
		moodLine = "**Mood**: " + mood
	}
	weatherLine := "**Weather**: "
	if weather != "" {
		weatherLine = "**Weather**: " + weather
	}

	goalsBlock := Checklist(goals)
	if len(goals) == 0 {
		goalsBlock = Checklist([]string{"Goal 1", "Goal 2", "Goal 3"})
	}

	reflectionsBlock := reflections
	if reflectionsBlock == "" {
		reflectionsBlock = "[Write about your thoughts on today's day]"
	}

	return fmt.Sprintf(`# 📅 %s

## Today's Status
%s
%s

## Today's Goals
%s

## Important Things
- [Important Thing 1]
- [Important Thing 2]

## Things Learned
- [Thing Learned 1]
- [Thing Learned 2]

## Things I'm Grateful For
- [Thing I'm Grateful For 1]
- [Thing I'm Grateful For 2]
- [Thing I'm Grateful For 3]

## Daily Reflection
%s

## Tomorrow's Plan
%s
`,
		date,
		moodLine,
		weatherLine,
		goalsBlock,
		reflectionsBlock,
		Checklist([]string{"Tomorrow's Task 1", "Tomorrow's Task 2"}),
	)
}
