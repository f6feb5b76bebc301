package reflector

import (
	"go.uber.org/zap"

	"github.com/kn3ll/jui"
	"github.com/kn3ll/jui/errors"
)

// Reflector wraps an environment and produces Class handles. It is bound
// to the same single native thread as the environment it wraps.
type Reflector struct {
	env jui.Env
}

// New wraps env. The Reflector holds no state beyond the environment;
// closing resources is the job of the Class handles it produces.
func New(env jui.Env) *Reflector {
	return &Reflector{env: env}
}

// Env returns the wrapped environment for direct use.
func (r *Reflector) Env() jui.Env { return r.env }

// GetClass resolves a class by qualified slash-separated name and
// promotes the result to a global reference owned by the returned Class.
// Every callable derived from the Class shares that reference; the Class
// must outlive them all.
func (r *Reflector) GetClass(name string) (*Class, error) {
	local, err := r.env.FindClass(name)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseResolve, errors.KindNotFound, err, "find class "+name)
	}

	global, err := r.env.NewRef(jui.RefGlobal, local)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseResolve, errors.KindInvalidData, err, "promote class reference")
	}

	Logger().Debug("class resolved", zap.String("class", name))

	return &Class{r: r, name: name, ref: global, owns: true}, nil
}
