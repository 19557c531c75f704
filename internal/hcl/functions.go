package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/errdefgen/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// snakeFunc exposes config.Snake to manifest expressions.
var snakeFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "str", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(config.Snake(args[0].AsString())), nil
	},
})

var outputFunctions = map[string]function.Function{
	"format":  stdlib.FormatFunc,
	"join":    stdlib.JoinFunc,
	"lower":   stdlib.LowerFunc,
	"replace": stdlib.ReplaceFunc,
	"snake":   snakeFunc,
	"upper":   stdlib.UpperFunc,
}

// outputEvalContext is the scope `output` expressions are evaluated in.
func outputEvalContext(name, pkg, source string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"name":    cty.StringVal(name),
			"package": cty.StringVal(pkg),
			"source":  cty.StringVal(source),
		},
		Functions: outputFunctions,
	}
}
