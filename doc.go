// Package rel implements relational style operations, in the spirit of
// functional utility libraries, over records held in memory.
//
// Basics
//
// A Record is a map from field name to value.  A Relation is an ordered
// slice of records; records in one relation may have different fields.
// Relations are built with New and transformed with chained methods, each of
// which returns a new relation and leaves its source alone:
//
// Extend, which adds computed fields to each record.
//
// GroupByNames, which partitions records by the values of some fields.
//
// Filter, which keeps the records that satisfy a predicate.
//
// Project, which keeps only some fields of each record.
//
// Rename, which changes the names of fields.
//
// SortByNames, which orders records by the values of some fields.
//
// PrintTable, which writes some fields of each record as a table.
//
// Computed fields
//
// A computed field declares the fields it depends on.  Extend looks them up
// by name on each record and passes their values to the function in the
// order they were declared:
//
//	r := rel.New(payments).Extend(
//		rel.Ext("hasVat", func(args ...interface{}) interface{} {
//			return args[0].(float64) != 0
//		}, "vat"),
//	)
//
// A record that lacks a declared field is an error, not a zero value.
//
// Groups
//
// GroupByNames produces one record per distinct combination of the named
// fields, in order of first appearance.  Each group record carries the key
// fields and MembersField, which holds the member records in their original
// order.  Extending a grouped relation computes per group values:
//
//	totals := r.GroupByNames("product", "region", "hasVat").Extend(
//		rel.Ext("vats", func(args ...interface{}) interface{} {
//			s, _ := rel.New(args[0].([]rel.Record)).Sum("vat")
//			return s
//		}, rel.MembersField),
//	)
//	totals.PrintTable("product region hasVat vats")
//
// Errors
//
// An operation that fails returns a relation holding the error, and every
// operation applied to that relation returns the same error.  Check Err at
// the end of a chain.  Relations built before the failure are unaffected.
//
// PrintTable is the one lenient operation: a field that a record does not
// have is printed blank.
package rel
