// Package render turns engine rows into HTML tables and PNG bar charts.
package render

import (
	"html/template"
	"strconv"

	"vgsales/backend/internal/query"
)

// TableTemplate is the name the table page is registered under.
const TableTemplate = "table.html"

const tableHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<table border="1">
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`

// Templates returns the parsed page templates, ready for gin's
// SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.New(TableTemplate).Parse(tableHTML))
}

// Table is the view model of an HTML table page.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

func year(y *int64) string {
	if y == nil {
		return ""
	}
	return query.YearText(*y)
}

// GameTable renders release rows.
func GameTable(title string, rows []query.GameRow) Table {
	t := Table{Title: title, Columns: []string{"game_name", "platform_name", "release_year"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.GameName, r.PlatformName, year(r.ReleaseYear)})
	}
	return t
}

// SalesTable renders top-sales rows.
func SalesTable(title string, rows []query.SalesRow) Table {
	t := Table{Title: title, Columns: []string{"game_name", "total_sales"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.GameName, strconv.FormatFloat(r.TotalSales, 'f', 2, 64)})
	}
	return t
}

// PublisherTable renders publisher rows.
func PublisherTable(title string, rows []query.PublisherRow) Table {
	t := Table{Title: title, Columns: []string{"publisher_name", "game_count"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.PublisherName, strconv.FormatInt(r.GameCount, 10)})
	}
	return t
}
