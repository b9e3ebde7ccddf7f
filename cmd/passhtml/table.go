package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/MKhiriev/go-pass-html/models"
)

const passwordMask = "••••••••"

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderRecords lays records out sorted by opts.SortBy. Passwords are masked
// unless opts.ShowPasswords is set.
func renderRecords(records []models.CredentialRecord, opts models.PasswordsOptions) string {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.CredentialRecord) int {
		return cmp.Compare(strings.ToLower(recordField(a, opts.SortBy)), strings.ToLower(recordField(b, opts.SortBy)))
	})

	rows := make([][]string, 0, len(sorted))
	for _, r := range sorted {
		password := r.Password
		if !opts.ShowPasswords && password != "" {
			password = passwordMask
		}
		rows = append(rows, []string{r.Title, r.Username, password, r.URL, r.Notes})
	}

	return renderTable([]string{"Title", "Username", "Password", "URL", "Notes"}, rows)
}

func recordField(r models.CredentialRecord, name string) string {
	switch name {
	case "username":
		return r.Username
	case "url":
		return r.URL
	default:
		return r.Title
	}
}
