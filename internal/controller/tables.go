package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

func formatScore(score float64) string {
	return fmt.Sprintf("%.2f%%", score*100)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderFilesTable(aggregate m.Aggregate) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Path", "Killed", "Survived", "No Coverage", "Timed Out", "Memory Error", "Unknown", "Score"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, file := range aggregate.Files {
		table.Append(append([]string{file.Path}, statsColumns(file.Stats, file.Score)...))
	}

	table.SetFooter(append(
		[]string{fmt.Sprintf("Total Files %d", len(aggregate.Files))},
		statsColumns(aggregate.Total, aggregate.Score)...,
	))

	table.Render()

	return tableBuffer.String()
}

func statsColumns(stats m.MutationStats, score float64) []string {
	return []string{
		strconv.Itoa(stats.Killed),
		strconv.Itoa(stats.Survived),
		strconv.Itoa(stats.NoCoverage),
		strconv.Itoa(stats.TimedOut),
		strconv.Itoa(stats.MemoryError),
		strconv.Itoa(stats.Unknown),
		formatScore(score),
	}
}

func renderFindingsTable(findings []m.Finding) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Severity", "Rule", "Location", "Message"})

	for _, finding := range findings {
		table.Append([]string{string(finding.Severity), finding.RuleKey, findingLocation(finding), finding.Message})
	}

	table.Render()

	return tableBuffer.String()
}

func findingLocation(finding m.Finding) string {
	if finding.Line > 0 {
		return fmt.Sprintf("%s:%d", finding.SourcePath, finding.Line)
	}

	return finding.SourcePath
}

func renderOperatorsTable(operators []*m.MutationOperator) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"ID", "Name", "Category", "Class"})

	for _, operator := range operators {
		table.Append([]string{operator.ID(), operator.Name(), string(operator.Category()), operator.ClassName()})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(operators)), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func renderRulesTable(rules []m.Rule) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Key", "Severity", "Active", "Name"})

	active := 0

	for _, rule := range rules {
		state := "no"
		if rule.Active {
			state = "yes"
			active++
		}

		table.Append([]string{rule.Key, string(rule.Severity), state, rule.Name})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(rules)), "", fmt.Sprintf("%d", active), ""})
	table.Render()

	return tableBuffer.String()
}
