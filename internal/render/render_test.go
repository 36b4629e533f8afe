package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgsales/backend/internal/query"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func y(v int64) *int64 { return &v }

func TestGameTable(t *testing.T) {
	table := GameTable("Genre: shooter", []query.GameRow{
		{GameName: "Halo 3", PlatformName: "X360", ReleaseYear: y(2007)},
		{GameName: "Unknown", PlatformName: "PS2"},
	})
	assert.Equal(t, []string{"game_name", "platform_name", "release_year"}, table.Columns)
	assert.Equal(t, [][]string{{"Halo 3", "X360", "2007"}, {"Unknown", "PS2", ""}}, table.Rows)
}

func TestTemplateEscapesCells(t *testing.T) {
	table := SalesTable("<Top>", []query.SalesRow{{GameName: "<script>", TotalSales: 1.5}})

	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, TableTemplate, table))
	html := buf.String()

	assert.Contains(t, html, "<th>game_name</th><th>total_sales</th>")
	assert.Contains(t, html, "<td>&lt;script&gt;</td><td>1.50</td>")
	assert.Contains(t, html, "<h1>&lt;Top&gt;</h1>")
	assert.NotContains(t, html, "<script>")
}

func TestTemplateEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, TableTemplate, PublisherTable("Publishers", nil)))
	assert.Equal(t, 0, strings.Count(buf.String(), "<td>"))
}

func TestCountBy(t *testing.T) {
	names, counts := CountBy([]string{"PS2", "X360", "PS2", "Wii", "PS2"}, func(s string) string { return s })
	assert.Equal(t, []string{"PS2", "X360", "Wii"}, names)
	assert.Equal(t, []float64{3, 1, 1}, counts)
}

func TestPNG(t *testing.T) {
	tests := []struct {
		name   string
		series Series
	}{
		{"vertical", PlatformCounts("Genre: action", []query.GameRow{
			{PlatformName: "Wii"}, {PlatformName: "PS2"}, {PlatformName: "Wii"},
		})},
		{"horizontal sales", SalesBars("Region: Japan", []query.SalesRow{
			{GameName: "Final Fantasy X", TotalSales: 2.5}, {GameName: "The Legend of Zelda", TotalSales: 1.5},
		})},
		{"horizontal publishers", PublisherBars("Top 1 publishers", []query.PublisherRow{
			{PublisherName: "Nintendo", GameCount: 3},
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := PNG(tt.series)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(img, pngSignature))
		})
	}
}

func TestPNGNoData(t *testing.T) {
	_, err := PNG(SalesBars("empty", nil))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSeriesOrder(t *testing.T) {
	s := SalesBars("t", []query.SalesRow{{GameName: "a", TotalSales: 2}, {GameName: "b", TotalSales: 1}})
	assert.True(t, s.Horizontal)
	assert.Equal(t, []string{"a", "b"}, s.Categories)
	assert.Equal(t, []string{"b", "a"}, reversed(s.Categories))
}
