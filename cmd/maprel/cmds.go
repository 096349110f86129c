package main

import (
	"os"
	"strings"
	"time"

	"github.com/jonlawlor/maprel"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// CountField is the field added by the group command holding the number of
// members of each group.
const CountField = "count"

var ErrBadWhere = errors.New("where clause must look like field=value")

// Represents the state used when processing a command.
type Action struct {
	cmd   *cobra.Command
	quiet bool
	start time.Time
}

func newAction(cmd *cobra.Command) *Action {
	result := &Action{cmd: cmd, start: time.Now()}
	result.quiet = result.getBool("quiet")
	return result
}

func (a *Action) getBool(name string) bool {
	result, _ := a.cmd.Flags().GetBool(name)
	return result
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

func (a *Action) getStringArray(name string) []string {
	result, _ := a.cmd.Flags().GetStringArray(name)
	return result
}

// Log a status message unless the command is quiet.
func (a *Action) Logf(format string, args ...interface{}) {
	if a.quiet {
		return
	}
	logger.Printf(format, args...)
}

// Done logs the elapsed time and passes err through.
func (a *Action) Done(err error) error {
	if err != nil {
		a.Logf("failed after %.1fs: %s", time.Since(a.start).Seconds(), err)
		return err
	}
	a.Logf("ok (%.1fs)", time.Since(a.start).Seconds())
	return nil
}

// loadRecords reads a YAML list of mappings.
func loadRecords(fname string) (*rel.Relation, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrap(err, "reading records")
	}
	var ms []map[string]interface{}
	if err := yaml.Unmarshal(data, &ms); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", fname)
	}
	return rel.FromMaps(ms), nil
}

// parseWhere turns field=value clauses into an equality predicate.  Values
// are decoded as YAML scalars, as the records are, so "vat=0" matches a vat
// of 0 or 0.0 and "product=1R" matches the string.
func parseWhere(clauses []string) (rel.Predicate, error) {
	preds := make([]rel.Predicate, len(clauses))
	for i, c := range clauses {
		name, text, ok := strings.Cut(c, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Wrapf(ErrBadWhere, "%q", c)
		}
		var v interface{}
		if err := yaml.Unmarshal([]byte(text), &v); err != nil {
			return nil, errors.Wrapf(err, "where %s", name)
		}
		preds[i] = rel.Attribute(name).EQ(v)
	}
	return rel.And(preds...), nil
}

// prepare loads the records named by the file flag and applies the where
// clauses.
func (a *Action) prepare() (*rel.Relation, error) {
	fname := a.getString("file")
	r, err := loadRecords(fname)
	if err != nil {
		return nil, err
	}
	a.Logf("loaded %d records from %s", r.Count(), fname)
	where := a.getStringArray("where")
	if len(where) == 0 {
		return r, nil
	}
	p, err := parseWhere(where)
	if err != nil {
		return nil, err
	}
	r = r.Filter(p)
	if err := r.Err(); err != nil {
		return nil, err
	}
	a.Logf("%d records where %s", r.Count(), p)
	return r, nil
}

func table(cmd *cobra.Command, args []string) error {
	action := newAction(cmd)
	r, err := action.prepare()
	if err != nil {
		return action.Done(err)
	}
	if sort := action.getString("sort"); sort != "" {
		r = r.SortByNames(sort)
	}
	return action.Done(r.FprintTable(cmd.OutOrStdout(), action.getString("columns")))
}

// sumOf returns an extension adding up field over the members of a group.
func sumOf(field string) rel.Extension {
	return rel.Ext("sum_"+field, func(args ...interface{}) interface{} {
		s, err := rel.New(args[0].([]rel.Record)).Sum(field)
		if err != nil {
			return nil
		}
		return s
	}, rel.MembersField)
}

func group(cmd *cobra.Command, args []string) error {
	action := newAction(cmd)
	r, err := action.prepare()
	if err != nil {
		return action.Done(err)
	}

	by := action.getString("by")
	exts := []rel.Extension{
		rel.Ext(CountField, func(args ...interface{}) interface{} {
			return len(args[0].([]rel.Record))
		}, rel.MembersField),
	}
	columns := by + " " + CountField
	for _, f := range action.getStringArray("sum") {
		// a sum over a field some member lacks is printed blank
		exts = append(exts, sumOf(f))
		columns += " sum_" + f
	}

	r = r.GroupByNames(by).Extend(exts...)
	if sort := action.getString("sort"); sort != "" {
		r = r.SortByNames(sort)
	}
	if c := action.getString("columns"); c != "" {
		columns = c
	}
	action.Logf("%d groups", r.Count())
	return action.Done(r.FprintTable(cmd.OutOrStdout(), columns))
}

// eurRates is the value of one euro in the currencies of the demo.
var eurRates = map[string]float64{"EUR": 1, "CZK": 25, "USD": 1.25}

// demoPayments are the payments of the demo, in their own currency.
func demoPayments() []rel.Record {
	return []rel.Record{
		{"product": "1R", "region": "eu", "vat": 0.0, "amount": 10.0, "currency": "EUR"},
		{"product": "1R", "region": "eu", "vat": 2.5, "amount": 20.0, "currency": "EUR"},
		{"product": "1R", "region": "noneu", "vat": 3.0, "amount": 15.0, "currency": "USD"},
		{"product": "3R", "region": "eu", "vat": 0.0, "amount": 40.0, "currency": "EUR"},
		{"product": "3R", "region": "noneu", "vat": 0.0, "amount": 750.0, "currency": "CZK"},
	}
}

func demo(cmd *cobra.Command, args []string) error {
	action := newAction(cmd)
	in := func(cur string) rel.Extension {
		return rel.Ext("cost"+cur, func(args ...interface{}) interface{} {
			return args[0].(float64) * eurRates[cur]
		}, "costEUR")
	}
	r := rel.New(demoPayments()).
		Extend(rel.Ext("hasVat", func(args ...interface{}) interface{} {
			return args[0].(float64) != 0
		}, "vat")).
		GroupByNames("product", "region", "hasVat").
		Extend(
			rel.Ext("costEUR", func(args ...interface{}) interface{} {
				var s float64
				for _, p := range args[0].([]rel.Record) {
					s += p["amount"].(float64) / eurRates[p["currency"].(string)]
				}
				return s
			}, rel.MembersField),
			sumOf("vat"),
		).
		Rename(map[string]string{"sum_vat": "vats"}).
		Extend(in("CZK"), in("USD"))
	return action.Done(r.FprintTable(cmd.OutOrStdout(), "product region hasVat costEUR costCZK costUSD vats"))
}
