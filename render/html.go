package render

import (
	"html/template"
	"io"
	"sort"
	"strconv"

	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

// palette is a small fixed set of background colors cycled across
// predicates in sorted-name order, enough to distinguish a handful of
// predicates without pulling in a colormap library.
var palette = []string{
	"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4", "#fed9a6",
	"#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2", "#b3e2cd",
}

func predicateColors(predicates []string) map[string]string {
	colors := make(map[string]string, len(predicates))
	for i, p := range predicates {
		colors[p] = palette[i%len(palette)]
	}
	return colors
}

const metaTemplateHTML = `<!DOCTYPE html>
<html><head><title>Meta-Template</title></head><body>
<table border="1" cellspacing="0" cellpadding="4">
{{range .Rows}}<tr style="background-color:{{.Color}}">{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
</body></html>
`

type htmlRow struct {
	Color string
	Cells []string
}

// WriteMetaTemplateHTML renders the meta-template's formatted rows as an
// HTML table, one row per line, colored by the line's predicate.
func WriteMetaTemplateHTML(w io.Writer, rows []flavor.Row) error {
	var predicates []string
	seen := make(map[string]struct{})
	for _, r := range rows {
		if _, ok := seen[r.Predicate]; !ok {
			seen[r.Predicate] = struct{}{}
			predicates = append(predicates, r.Predicate)
		}
	}
	sort.Strings(predicates)
	colors := predicateColors(predicates)

	htmlRows := make([]htmlRow, len(rows))
	for i, r := range rows {
		htmlRows[i] = htmlRow{Color: colors[r.Predicate], Cells: r.Cells}
	}

	tmpl := template.Must(template.New("meta").Parse(metaTemplateHTML))
	return tmpl.Execute(w, struct{ Rows []htmlRow }{Rows: htmlRows})
}

const groupsHTML = `<!DOCTYPE html>
<html><head><title>Groups</title></head><body>
<table border="1" cellspacing="0" cellpadding="4">
<tr><th></th>{{range .Predicates}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr><th>{{.Label}}</th>{{range .Holds}}<td style="background-color:{{if .}}#ccebc5{{else}}#ffffff{{end}}">{{if .}}yes{{else}}no{{end}}</td>{{end}}</tr>
{{end}}
</table>
</body></html>
`

type groupRow struct {
	Label string
	Holds []bool
}

// WriteGroupsHTML renders the group/predicate matrix: one row per device
// group, one column per predicate, marking whether every line of that
// predicate is present for the group.
func WriteGroupsHTML(w io.Writer, plm *segment.ParametersLinesMap) error {
	var predicates []string
	for p := range plm.Predicates {
		predicates = append(predicates, p)
	}
	sort.Strings(predicates)

	groups := make([]segment.Group, len(plm.Groups))
	copy(groups, plm.Groups)
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Devices) > len(groups[j].Devices)
	})

	rows := make([]groupRow, len(groups))
	for i, g := range groups {
		present := make(map[int]struct{}, len(g.Lines))
		for _, l := range g.Lines {
			present[l] = struct{}{}
		}
		holds := make([]bool, len(predicates))
		for pi, predicate := range predicates {
			ok := true
			for _, l := range plm.Predicates[predicate] {
				if _, found := present[l]; !found {
					ok = false
					break
				}
			}
			holds[pi] = ok
		}
		rows[i] = groupRow{Label: groupLabel(i, len(g.Devices)), Holds: holds}
	}

	tmpl := template.Must(template.New("groups").Parse(groupsHTML))
	return tmpl.Execute(w, struct {
		Predicates []string
		Rows       []groupRow
	}{Predicates: predicates, Rows: rows})
}

func groupLabel(index, size int) string {
	return "group" + strconv.Itoa(index) + "(" + strconv.Itoa(size) + " routers)"
}
