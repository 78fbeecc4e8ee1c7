// 指示: miu200521358
package mpresenter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 4, DisplayWidth("Hips"))
	assert.Equal(t, 4, DisplayWidth("左腕"))
	assert.Equal(t, 6, DisplayWidth("Ｈip左"))
	assert.Equal(t, 0, DisplayWidth(""))
}

func TestTableRenderAlignsColumns(t *testing.T) {
	buf := &bytes.Buffer{}
	table := NewTable(buf, true, "名前", "Slot")
	table.AddRow("Hips", "Hips")
	table.AddRow("左腕", "LeftUpperArm")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "名前  Slot", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "----  ------------", lines[1])
	assert.Equal(t, "Hips  Hips", lines[2])
	assert.Equal(t, "左腕  LeftUpperArm", lines[3])
	assert.Equal(t, 2, table.RowCount())
}

func TestTableRenderWithoutHeaders(t *testing.T) {
	buf := &bytes.Buffer{}
	NewTable(buf, true).Render()
	assert.Empty(t, buf.String())
}

func TestSuccessAndWarningWithoutColor(t *testing.T) {
	buf := &bytes.Buffer{}
	Success(buf, true, "saved %s", "a.yaml")
	Warning(buf, true, "missing %d", 2)
	assert.Equal(t, "saved a.yaml\nmissing 2\n", buf.String())
}
