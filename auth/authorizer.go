package auth

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/structs"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/open-policy-agent/opa/ast"
	"github.com/open-policy-agent/opa/rego"
	"go.uber.org/zap"
)

var (
	//go:embed policy.rego
	authzPolicy string

	ErrUnauthorized = errors.New("the subject is not authorized for the requested action")
)

type RequestAuthorizer interface {
	Authorize(context.Context, *openapi3filter.AuthenticationInput) error
	EvaluatePolicy(context.Context, map[string]interface{}) error
}

func NewRequestAuthorizer(logger *zap.SugaredLogger) (RequestAuthorizer, error) {
	compiler, err := ast.CompileModules(map[string]string{
		"policy.rego": authzPolicy,
	})
	if err != nil {
		return nil, err
	}

	return &embeddedOpaAuthorizer{
		logger: logger,
		policy: compiler,
	}, nil
}

type embeddedOpaAuthorizer struct {
	logger *zap.SugaredLogger
	policy *ast.Compiler
}

func (e *embeddedOpaAuthorizer) Authorize(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	request := input.RequestValidationInput.Request
	in := map[string]interface{}{
		"path":   e.getSplitPath(input),
		"method": strings.ToUpper(request.Method),
	}

	if auth := GetAuthData(request.Context()); auth != nil {
		authStruct := structs.New(*auth)
		authStruct.TagName = "json"
		in["auth"] = authStruct.Map()
	}

	return e.EvaluatePolicy(ctx, in)
}

func (e *embeddedOpaAuthorizer) EvaluatePolicy(ctx context.Context, input map[string]interface{}) error {
	r := rego.New(
		rego.Package("http.authz.clinic"),
		rego.Query("allow"),
		rego.Compiler(e.policy),
		rego.Input(input),
	)

	results, err := r.Eval(ctx)
	if err != nil {
		return fmt.Errorf("unable to evaluate authorization policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return fmt.Errorf("evaluating authorization policy returned no results")
	}

	val, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		return fmt.Errorf("unexpected authorization result: %v", results[0].Expressions[0].Value)
	}

	e.logger.Debugw("authorization policy eval", zap.Any("input", input), zap.Bool("allow", val))

	if !val {
		return ErrUnauthorized
	}

	return nil
}

func (e *embeddedOpaAuthorizer) getSplitPath(input *openapi3filter.AuthenticationInput) []string {
	path := strings.Split(input.RequestValidationInput.Request.URL.Path, "/")
	if len(path) > 0 && path[0] == "" {
		path = path[1:]
	}
	return path
}
