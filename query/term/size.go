package term

import (
	"github.com/qianniaoge/watchman/query"
	"github.com/shopspring/decimal"
)

// ComparisonOp represents the comparison operators accepted by the
// "size" term.
type ComparisonOp string

const (
	EQ ComparisonOp = "eq"
	NE ComparisonOp = "ne"
	GT ComparisonOp = "gt"
	GE ComparisonOp = "ge"
	LT ComparisonOp = "lt"
	LE ComparisonOp = "le"
)

var comparisonOpMap = map[ComparisonOp]bool{
	EQ: true,
	NE: true,
	GT: true,
	GE: true,
	LT: true,
	LE: true,
}

// sizeExpr compares an entry's size against a fixed operand. The
// decimal.Decimal type handles operands larger than an int64 without
// truncation.
type sizeExpr struct {
	op ComparisonOp
	n  decimal.Decimal
}

func (x *sizeExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	n := decimal.New(e.Size, 0)
	switch x.op {
	case LT:
		return n.LessThan(x.n)
	case LE:
		return n.LessThanOrEqual(x.n)
	case GT:
		return n.GreaterThan(x.n)
	case GE:
		return n.GreaterThanOrEqual(x.n)
	case NE:
		return !n.Equal(x.n)
	default:
		return n.Equal(x.n)
	}
}

func parseSize(q *query.Query, term []interface{}) (query.Expr, error) {
	if len(term) != 3 {
		return nil, query.NewParseError("size", "invalid number of arguments")
	}

	opStr, ok := term[1].(string)
	if !ok || !comparisonOpMap[ComparisonOp(opStr)] {
		return nil, query.NewParseError("size", "argument 2 must be one of the operators eq, ne, gt, ge, lt, le")
	}

	var n decimal.Decimal
	var err error
	switch t := term[2].(type) {
	case float64:
		n = decimal.NewFromFloat(t)
	case int:
		n = decimal.New(int64(t), 0)
	case string:
		n, err = decimal.NewFromString(t)
		if err != nil {
			return nil, query.NewParseError("size", "failed to parse %v as a number: %v", t, err)
		}
	default:
		return nil, query.NewParseError("size", "argument 3 must be a number")
	}
	if n.LessThan(decimal.Zero) {
		return nil, query.NewParseError("size", "argument 3 must be a non-negative number")
	}

	return &sizeExpr{op: ComparisonOp(opStr), n: n}, nil
}
