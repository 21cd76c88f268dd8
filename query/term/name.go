package term

import (
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/qianniaoge/watchman/munge"
	"github.com/qianniaoge/watchman/query"
)

// NameExpr matches entries whose basename (or wholename, if scoped so)
// equals a literal string, or any member of a set of literal strings.
// "name" honors the query's ambient case sensitivity; "iname" always
// compares case-insensitively.
//
// All patterns are separator-normalized at parse time. Under
// case-insensitive matching, set elements are additionally folded at
// parse time so that evaluation is a single fold of the candidate plus
// an O(1) membership test. The single-literal path instead stores the
// unfolded literal and folds lazily, via strings.EqualFold, so the
// common one-pattern case never allocates a folded candidate per file.
type NameExpr struct {
	name          string
	set           *hashset.Set
	caseSensitive query.CaseSensitivity
	wholename     bool
}

// Evaluate reports whether the entry's name, projected per the term's
// scope, matches. It is total: any NameExpr produced by a successful
// parse evaluates without error.
func (x *NameExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	if !x.set.Empty() {
		var str string
		if x.wholename {
			str = ctx.WholeName()
			if x.caseSensitive == query.CaseInSensitive {
				str = strings.ToLower(str)
			}
		} else {
			if x.caseSensitive == query.CaseInSensitive {
				str = strings.ToLower(e.CName)
			} else {
				str = e.CName
			}
		}
		return x.set.Contains(str)
	}

	var str string
	if x.wholename {
		str = ctx.WholeName()
	} else {
		str = e.CName
	}

	if x.caseSensitive == query.CaseInSensitive {
		return strings.EqualFold(str, x.name)
	}
	return str == x.name
}

// parseNameTerm is the shared core of "name" and "iname"; which names
// the term in error messages.
func parseNameTerm(which string, term []interface{}, cs query.CaseSensitivity) (query.Expr, error) {
	if len(term) < 2 || len(term) > 3 {
		return nil, query.NewParseError(which, "invalid number of arguments")
	}

	wholename := false
	if len(term) == 3 {
		scope, ok := term[2].(string)
		if !ok {
			return nil, query.NewParseError(which, "argument 3 must be a string")
		}
		if scope != "basename" && scope != "wholename" {
			return nil, query.NewParseError(which, "invalid scope '%v'", scope)
		}
		wholename = scope == "wholename"
	}

	set := hashset.New()
	var literal string
	switch pattern := term[1].(type) {
	case []interface{}:
		if len(pattern) == 0 {
			return nil, query.NewParseError(which, "argument 2 must not be an empty array")
		}
		for _, ele := range pattern {
			s, ok := ele.(string)
			if !ok {
				return nil, query.NewParseError(which, "argument 2 must be either a string or an array of string")
			}
			s = munge.NormalizeSeparators(s)
			if cs == query.CaseInSensitive {
				s = strings.ToLower(s)
			}
			set.Add(s)
		}
	case string:
		literal = munge.NormalizeSeparators(pattern)
	default:
		return nil, query.NewParseError(which, "argument 2 must be either a string or an array of string")
	}

	return &NameExpr{
		name:          literal,
		set:           set,
		caseSensitive: cs,
		wholename:     wholename,
	}, nil
}

func parseName(q *query.Query, term []interface{}) (query.Expr, error) {
	return parseNameTerm("name", term, q.CaseSensitive)
}

func parseIName(q *query.Query, term []interface{}) (query.Expr, error) {
	return parseNameTerm("iname", term, query.CaseInSensitive)
}
