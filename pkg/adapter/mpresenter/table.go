// 指示: miu200521358
// Package mpresenter はCLIの結果表示を提供する。
package mpresenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/width"
)

// Table は列幅を揃えて表示する表を表す。
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

// NewTable は見出し付きの表を生成する。
func NewTable(w io.Writer, noColor bool, headers ...string) *Table {
	return &Table{writer: w, headers: headers, rows: make([][]string, 0), noColor: noColor}
}

// AddRow は行を追加する。
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// RowCount は追加済みの行数を返す。
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Render は表を出力する。
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}
	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = DisplayWidth(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && DisplayWidth(cell) > widths[i] {
				widths[i] = DisplayWidth(cell)
			}
		}
	}

	bold := t.newColor(color.Bold, color.FgCyan)
	for i, header := range t.headers {
		bold.Fprint(t.writer, padRight(header, widths[i]))
		if i < len(t.headers)-1 {
			fmt.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	gray := t.newColor(color.FgHiBlack)
	for i, w := range widths {
		gray.Fprint(t.writer, strings.Repeat("-", w))
		if i < len(widths)-1 {
			gray.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if i == len(row)-1 {
				fmt.Fprint(t.writer, cell)
				continue
			}
			fmt.Fprint(t.writer, padRight(cell, widths[i]))
			fmt.Fprint(t.writer, "  ")
		}
		fmt.Fprintln(t.writer)
	}
}

// newColor は無色指定を反映した色設定を返す。
func (t *Table) newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if t.noColor {
		c.DisableColor()
	}
	return c
}

// DisplayWidth は全角文字を2桁として端末上の表示幅を返す。
func DisplayWidth(s string) int {
	total := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += 2
		default:
			total++
		}
	}
	return total
}

// padRight は表示幅が w になるまで右を空白で埋める。
func padRight(s string, w int) string {
	current := DisplayWidth(s)
	if current >= w {
		return s
	}
	return s + strings.Repeat(" ", w-current)
}

// Success は成功メッセージを緑で出力する。
func Success(w io.Writer, noColor bool, format string, args ...any) {
	printColored(w, noColor, color.FgGreen, format, args...)
}

// Warning は警告メッセージを黄色で出力する。
func Warning(w io.Writer, noColor bool, format string, args ...any) {
	printColored(w, noColor, color.FgYellow, format, args...)
}

// printColored は色付きで1行出力する。
func printColored(w io.Writer, noColor bool, attr color.Attribute, format string, args ...any) {
	c := color.New(attr)
	if noColor {
		c.DisableColor()
	}
	c.Fprintf(w, format+"\n", args...)
}
