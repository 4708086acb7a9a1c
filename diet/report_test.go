package diet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportLayout(t *testing.T) {
	m, sol := solveBase(t)

	var buf bytes.Buffer
	Report(&buf, m, sol)
	out := buf.String()

	require.Contains(t, out, "Cheapest acceptable diet costs 92.5000 per day.")
	require.Contains(t, out, "Buy 4.0000 servings of oatmeal")
	require.Contains(t, out, "Buy 4.5000 servings of whole milk")
	require.Contains(t, out, "Buy 0.0000 servings of eggs")

	require.Contains(t, out, "REQUIREMENT")
	require.Contains(t, out, "DUAL VALUE")
	require.Contains(t, out, "0.05625")

	require.Contains(t, out, "REDUCED COST")
	require.Contains(t, out, "shadow price")

	// One line per food in each of the two per-food sections.
	require.Equal(t, len(m.Variables), bytes.Count(buf.Bytes(), []byte("Buy ")))
}
