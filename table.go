package webtable

import (
	"strings"

	"webtable/cmdfile"
	"webtable/keys"
	"webtable/page"
)

// Table types, each one is written to its own load file.
const (
	MainTable = "main_table"
	TimeIndex = "time_index"
	SizeIndex = "size_index"
	LinkIndex = "link_index"
	URLIndex  = "url_index"
)

// TableTypes all table types in output order.
var TableTypes = []string{MainTable, TimeIndex, SizeIndex, LinkIndex, URLIndex}

// tableNames store side table name of each table type.
var tableNames = map[string]string{
	MainTable: "webtable",
	TimeIndex: "webtable_time_idx",
	SizeIndex: "webtable_size_idx",
	LinkIndex: "webtable_link_idx",
	URLIndex:  "webtable_url_idx",
}

// refColumn column every index row stores its main table row key in.
const refColumn = "ref:rowkey"

// TableName returns the store side name of a table type.
func TableName(tableType string) string {
	return tableNames[tableType]
}

// Table is an ordered batch of mutations for one store table.
type Table struct {
	Type      string
	Name      string
	Mutations []cmdfile.Mutation
}

func newTable(tableType string) *Table {
	return &Table{Type: tableType, Name: TableName(tableType)}
}

// Put appends a cell write to the batch.
func (t *Table) Put(row, column, value string) {
	t.Mutations = append(t.Mutations, cmdfile.Mutation{Table: t.Name, Row: row, Column: column, Value: value})
}

// Len number of mutations in the batch.
func (t *Table) Len() int {
	return len(t.Mutations)
}

// Tables is the full set of batches of a dataset keyed by table type.
type Tables map[string]*Table

// Len total number of mutations across all tables.
func (ts Tables) Len() int {
	n := 0
	for _, t := range ts {
		n += t.Len()
	}
	return n
}

// BuildTables derives every page's keys and lays out the main table cells
// and the four index tables' reference rows.
func BuildTables(d *keys.Deriver, pages []*page.Page) (Tables, error) {
	ts := make(Tables, len(TableTypes))
	for _, typ := range TableTypes {
		ts[typ] = newTable(typ)
	}

	for _, p := range pages {
		idx, err := d.IndexKeys(p)
		if err != nil {
			return nil, err
		}
		row := p.RowKey
		if row == "" {
			row = keys.RowKey(p.Domain, p.Path)
		}

		putMain(ts[MainTable], row, p)

		ts[TimeIndex].Put(idx.TimeKey, refColumn, row)
		ts[SizeIndex].Put(idx.SizeKey, refColumn, row)
		ts[LinkIndex].Put(idx.InlinkKey, refColumn, row)
		ts[LinkIndex].Put(idx.OutlinkKey, refColumn, row)
		// the url key has no row key inside, this cell is the only way back.
		ts[URLIndex].Put(idx.URLKey, refColumn, row)
	}
	return ts, nil
}

func putMain(t *Table, row string, p *page.Page) {
	t.Put(row, "content:html", unquote(p.ContentHTML))
	t.Put(row, "content:size", itoa(p.ContentSize))
	t.Put(row, "content:encoding", "utf-8")
	t.Put(row, "metadata:title", unquote(p.Title))
	t.Put(row, "metadata:domain", p.Domain)
	t.Put(row, "metadata:url", p.URL)
	t.Put(row, "metadata:status_code", itoa(p.StatusCode))
	t.Put(row, "metadata:last_modified", itoa(*p.LastModified))
	t.Put(row, "metadata:page_type", p.Type.String())
	t.Put(row, "metadata:content_type", p.ContentType)

	if len(p.OutboundURLs) > 0 {
		t.Put(row, "outlinks:count", itoa(p.Outlinks))
		t.Put(row, "outlinks:urls", strings.Join(p.OutboundURLs, ";"))
	}
	if len(p.InboundURLs) > 0 {
		t.Put(row, "inlinks:count", itoa(p.Inlinks))
		t.Put(row, "inlinks:urls", strings.Join(p.InboundURLs, ";"))
	}
}

// unquote swaps single quotes for double quotes so free text cannot end a
// quoted shell argument early.
func unquote(s string) string {
	return strings.ReplaceAll(s, "'", `"`)
}
