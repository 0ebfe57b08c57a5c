package tools

import "shop-assistant-be/pkg/catalog"

// UniqueByName collapses an already-ranked sequence of row indexes so each
// distinct product name appears once, preserving rank order, stopping once n
// rows are collected. Rows with a blank name are skipped. The field argument
// identifies the ranking column for signature uniformity with the callers;
// it does not influence selection.
func UniqueByName(cat *catalog.Store, rows []int, field string, n int) []int {
	seen := make(map[string]struct{}, len(rows))
	var unique []int

	for _, row := range rows {
		p, ok := cat.At(row)
		if !ok || p.Name == "" {
			continue
		}
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		unique = append(unique, row)
		if len(unique) >= n {
			break
		}
	}

	return unique
}
