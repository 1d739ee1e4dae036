package config

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/mvnmin/mvnmin/internal/errors"
)

// FuncNameGetEnv is the HCL function reading environment variables.
const FuncNameGetEnv = "get_env"

func decodeHCL(path string, env map[string]string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(NewFileReadError(path, err))
	}

	parser := hclparse.NewParser()

	hclFile, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, errors.New(NewDecodeError(path, diags))
	}

	file := new(File)

	if diags := gohcl.DecodeBody(hclFile.Body, newEvalContext(env), file); diags.HasErrors() {
		return nil, errors.New(NewDecodeError(path, diags))
	}

	return file, nil
}

func newEvalContext(env map[string]string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			FuncNameGetEnv: getEnvFunc(env),
		},
	}
}

// getEnvFunc returns `get_env(name, [default])`: the variable value, else the default, else "".
func getEnvFunc(env map[string]string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		VarParam: &function.Parameter{Name: "default", Type: cty.String},
		Type:     function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if len(args) > 2 { //nolint:mnd
				return cty.StringVal(""), errors.Errorf("%s accepts at most two arguments, got %d", FuncNameGetEnv, len(args))
			}

			if value, ok := env[args[0].AsString()]; ok {
				return cty.StringVal(value), nil
			}

			if len(args) == 2 { //nolint:mnd
				return args[1], nil
			}

			return cty.StringVal(""), nil
		},
	})
}
