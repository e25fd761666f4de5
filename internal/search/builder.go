package search

import (
	"fmt"
	"strings"
)

// Filters are the explicit identifier filters the form search supplies
// alongside (or instead of) free text.
type Filters struct {
	CategoryID    *int64
	SubcategoryID *int64
	CityID        *int64
}

func (f Filters) empty() bool {
	return f.CategoryID == nil && f.SubcategoryID == nil && f.CityID == nil
}

// Query is one parameterized statement ready for the catalog store. Values
// are always bound, never interpolated.
type Query struct {
	SQL    string
	Params []any
}

// clause pairs a predicate template with its bound parameters so the WHERE
// and scoring sections can be assembled as ordered lists and joined at the
// end.
type clause struct {
	expr   string
	params []any
}

// The six free-text fields a keyword may hit, in scoring order. City is
// scored separately against the joined lookup name.
var keywordFields = []string{
	"LOWER(COALESCE(f.discription, ''))",
	"LOWER(COALESCE(c.cname, ''))",
	"LOWER(COALESCE(f.marque, ''))",
	"LOWER(COALESCE(f.modele, ''))",
	"LOWER(COALESCE(f.color, ''))",
	"LOWER(COALESCE(f.type, ''))",
}

const cityField = "LOWER(COALESCE(v.ville, ''))"

const searchSelect = `SELECT f.id,
  COALESCE(f.discription, '') AS description,
  COALESCE(v.ville, '') AS city,
  COALESCE(c.cname, '') AS category_name,
  COALESCE(f.marque, '') AS marque,
  COALESCE(f.modele, '') AS modele,
  COALESCE(f.color, '') AS color,
  COALESCE(f.type, '') AS type,
  COALESCE(f.etat, '') AS etat,
  f.postdate,
  %s AS match_count
FROM fthings f
LEFT JOIN catagoery c ON f.cat_ref = c.cid
LEFT JOIN ville v ON f.ville = v.id`

// BuildSearch translates an intent plus explicit filters into a single
// bounded, scored statement. It declines (ok=false) when there are no
// criteria at all, so an unfiltered scan is never issued.
//
// Every keyword must hit at least one field (AND across keywords, OR across
// fields); a detected city adds a required clause; identifier filters are
// exact equalities. match_count sums one 0/1 hit per scored field and rows
// with scored criteria must reach at least 1.
func BuildSearch(intent Intent, f Filters, limit int) (Query, bool) {
	if len(intent.Keywords) == 0 && intent.City == "" && f.empty() {
		return Query{}, false
	}
	if limit <= 0 {
		limit = 20
	}

	var where []clause
	var score []clause

	if intent.City != "" {
		pat := "%" + intent.City + "%"
		where = append(where, clause{expr: cityField + " LIKE ?", params: []any{pat}})
		score = append(score, clause{
			expr:   "(CASE WHEN " + cityField + " LIKE ? THEN 1 ELSE 0 END)",
			params: []any{pat},
		})
	}

	for _, kw := range intent.Keywords {
		pat := "%" + kw + "%"
		parts := make([]string, 0, len(keywordFields))
		params := make([]any, 0, len(keywordFields))
		for _, field := range keywordFields {
			parts = append(parts, field+" LIKE ?")
			params = append(params, pat)
		}
		where = append(where, clause{
			expr:   "(" + strings.Join(parts, " OR ") + ")",
			params: params,
		})
	}
	if len(intent.Keywords) > 0 {
		// One 0/1 scoring term per field, hit when any keyword matches.
		for _, field := range keywordFields {
			parts := make([]string, 0, len(intent.Keywords))
			params := make([]any, 0, len(intent.Keywords))
			for _, kw := range intent.Keywords {
				parts = append(parts, field+" LIKE ?")
				params = append(params, "%"+kw+"%")
			}
			score = append(score, clause{
				expr:   "(CASE WHEN " + strings.Join(parts, " OR ") + " THEN 1 ELSE 0 END)",
				params: params,
			})
		}
	}

	if f.CategoryID != nil {
		where = append(where, clause{expr: "f.cat_ref = ?", params: []any{*f.CategoryID}})
	}
	if f.SubcategoryID != nil {
		where = append(where, clause{expr: "f.scat_ref = ?", params: []any{*f.SubcategoryID}})
	}
	if f.CityID != nil {
		where = append(where, clause{expr: "f.ville = ?", params: []any{*f.CityID}})
	}

	scoreExpr := "0"
	var params []any
	if len(score) > 0 {
		exprs := make([]string, 0, len(score))
		for _, s := range score {
			exprs = append(exprs, s.expr)
			params = append(params, s.params...)
		}
		scoreExpr = "(" + strings.Join(exprs, " + ") + ")"
	}

	var b strings.Builder
	fmt.Fprintf(&b, searchSelect, scoreExpr)
	if len(where) > 0 {
		exprs := make([]string, 0, len(where))
		for _, w := range where {
			exprs = append(exprs, w.expr)
			params = append(params, w.params...)
		}
		b.WriteString("\nWHERE " + strings.Join(exprs, " AND "))
	}
	if len(score) > 0 {
		b.WriteString("\nHAVING match_count >= 1")
	}
	b.WriteString("\nORDER BY match_count DESC, f.postdate DESC\nLIMIT ?")
	params = append(params, limit)

	return Query{SQL: b.String(), Params: params}, true
}
