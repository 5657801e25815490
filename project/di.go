package project

import (
	"errors"
	"fmt"

	"github.com/corsettigyg/astronomer-cosmos/config"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module for a named project rewriter.
// The name is used as both the module name and the DI named tag for the
// *Rewriter and its Config. If any options are passed, the module supplies
// Config to DI from those options. Otherwise, Config must be provided
// externally (e.g., via config.Provider). A config.Parser and config.Renderer
// must be available in the DI graph; the yaml implementations under
// config/parser/yaml and config/renderer/yaml are the usual choices.
// Call multiple times with different names to rewrite several projects in
// one container.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	hasConfigFromOptions := len(opts) > 0

	var moduleOpts []fx.Option

	if hasConfigFromOptions {
		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(fmt.Sprintf(`name:"%s"`, name))),
		))
	}

	moduleOpts = append(moduleOpts, fx.Provide(
		fx.Annotate(
			func(parser config.Parser, renderer config.Renderer, rewriterCfg Config) (*Rewriter, error) {
				return NewRewriter(rewriterCfg, parser, renderer)
			},
			fx.ParamTags("", "", fmt.Sprintf(`name:"%s"`, name)),
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	))

	return fx.Module(name, moduleOpts...)
}
