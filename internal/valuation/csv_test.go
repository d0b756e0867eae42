package valuation

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTableCSV(t *testing.T) {
	res, err := Compute(appleInputs())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, WriteTableCSV(path, res.Projections))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, TableHeader, rows[0])
	assert.Equal(t, []string{"1", "106593600000.000000", "98697777777.777771"}, rows[1])
	assert.Equal(t, "5", rows[5][0])
}

func TestEncodeTableCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeTableCSV(&buf, nil))
	assert.Equal(t, "Year,Forecasted FCF ($),Present Value of FCF ($)\n", buf.String())
}
