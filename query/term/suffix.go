package term

import (
	"path"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/qianniaoge/watchman/query"
)

// suffixExpr matches entries whose basename ends with one of a set of
// filename extensions. Suffix comparison is always case-insensitive,
// so the set holds folded suffixes and the candidate extension is
// folded per evaluation.
type suffixExpr struct {
	suffixes *hashset.Set
}

func (x *suffixExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	ext := path.Ext(e.CName)
	if ext == "" {
		return false
	}
	// path.Ext includes the leading dot; the term's suffixes don't.
	return x.suffixes.Contains(strings.ToLower(ext[1:]))
}

func parseSuffix(q *query.Query, term []interface{}) (query.Expr, error) {
	if len(term) != 2 {
		return nil, query.NewParseError("suffix", "invalid number of arguments")
	}

	suffixes := hashset.New()
	switch arg := term[1].(type) {
	case []interface{}:
		if len(arg) == 0 {
			return nil, query.NewParseError("suffix", "argument 2 must not be an empty array")
		}
		for _, ele := range arg {
			s, ok := ele.(string)
			if !ok {
				return nil, query.NewParseError("suffix", "argument 2 must be either a string or an array of string")
			}
			suffixes.Add(strings.ToLower(s))
		}
	case string:
		suffixes.Add(strings.ToLower(arg))
	default:
		return nil, query.NewParseError("suffix", "argument 2 must be either a string or an array of string")
	}

	return &suffixExpr{suffixes: suffixes}, nil
}
