// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/gomlx/loopbench/pkg/core/matrix"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
	headerRowStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle    = lipgloss.NewStyle().Faint(false).PaddingLeft(1).PaddingRight(1)
	evenRowStyle   = lipgloss.NewStyle().Faint(true).PaddingLeft(1).PaddingRight(1)
	borderColor    = lipgloss.Color("99")
)

// newTable creates the table used by RenderStyled: alternating faint rows, numbers right-aligned.
func newTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerRowStyle
			}
			var s lipgloss.Style
			if row%2 == 0 {
				s = oddRowStyle
			} else {
				s = evenRowStyle
			}
			return s.Align(lipgloss.Right)
		})
}

// RenderStyled renders the same table as Render, using lipgloss borders and styles for a terminal.
func RenderStyled[V matrix.Scalar](title string, orders []string, sizes []int, value Accessor[V]) string {
	table := newTable()
	header := make([]string, 0, len(orders)+1)
	header = append(header, "N")
	header = append(header, orders...)
	table.Headers(header...)
	for _, size := range sizes {
		row := make([]string, 0, len(orders)+1)
		row = append(row, strconv.Itoa(size))
		for _, order := range orders {
			row = append(row, FormatValue(value(size, order)))
		}
		table.Row(row...)
	}
	return titleStyle.Render(title) + "\n" + table.Render() + "\n"
}
