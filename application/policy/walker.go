package policy

import "github.com/typegate-dev/typegate/domain/entities"

// Check walks one compilation unit. Script units are skipped outright.
// Every remaining top-level class that is neither whitelisted nor excluded
// by the default-package rule first gets the static-typing directive
// injected unless it already opted out, then the enforcement rules run
// over the class, its fields, its methods and each method's parameters in
// declaration order. Violations go to the diagnostics sink; the walk never
// stops on one.
func (e *Engine) Check(unit *entities.CompilationUnit) {
	if unit == nil || excludedUnit(unit.Name, e.patterns) {
		return
	}
	cfg := e.Config()
	for _, class := range unit.Classes {
		e.checkClass(class, cfg)
	}
}

func (e *Engine) checkClass(class *entities.Declaration, cfg entities.PolicyConfig) {
	if Whitelisted(class.Name, cfg.DynamicCompileWhitelist) {
		return
	}
	if cfg.SkipDefaultPackage && class.Package == "" {
		return
	}

	e.inject(class, cfg)

	// Fast path: with every flag permissive the enforcement pass is
	// skipped for the whole class.
	if !cfg.Restrictive() {
		return
	}

	e.enforce(class, cfg)
	for _, field := range class.Fields {
		e.enforce(field, cfg)
	}
	for _, method := range class.Methods {
		e.enforce(method, cfg)
		for _, param := range method.Params {
			e.enforce(param, cfg)
		}
	}
}

// inject adds the static-typing directive to the class, carrying the
// allowed extensions when that list is non-empty. Classes already carrying
// a compile-mode marker are left alone; because the injected directive is
// itself the static marker, injection is idempotent.
func (e *Engine) inject(class *entities.Declaration, cfg entities.PolicyConfig) {
	if class.Marker() != entities.MarkerNone {
		return
	}
	ann := entities.Annotation{Name: entities.DirectiveStatic}
	if len(cfg.AllowedExtensions) > 0 {
		ann.Extensions = append([]string(nil), cfg.AllowedExtensions...)
	}
	class.AddAnnotation(ann)
}

// enforce runs every rule applicable to the declaration's kind. Rules are
// independent: one declaration may report several violations in one pass,
// and a violation is a terminal report, never a control-flow signal.
func (e *Engine) enforce(decl *entities.Declaration, cfg entities.PolicyConfig) {
	switch decl.Kind {
	case entities.KindClass, entities.KindMethod:
		if cfg.DisableDynamicCompile &&
			!Whitelisted(decl.Name, cfg.DynamicCompileWhitelist) &&
			decl.HasAnnotation(entities.DirectiveDynamic) {
			e.report(entities.Violation{Kind: entities.DynamicCompileDisallowed, Decl: decl})
		}
		if cfg.LimitExtensions && hasDisallowedExtensions(decl, cfg.AllowedExtensions) {
			e.report(entities.Violation{
				Kind:    entities.ExtensionsLimited,
				Decl:    decl,
				Allowed: cfg.AllowedExtensions,
			})
		}
		if decl.Kind == entities.KindMethod && !cfg.UntypedAllowed && decl.Untyped {
			e.report(entities.Violation{Kind: entities.UntypedNotAllowed, Decl: decl})
		}
	case entities.KindField, entities.KindParameter:
		if !cfg.UntypedAllowed && decl.Untyped {
			e.report(entities.Violation{Kind: entities.UntypedNotAllowed, Decl: decl})
		}
	}
}
